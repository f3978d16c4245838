package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/storage/memory"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func serve(t *testing.T, handler http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestHandler_Healthy(t *testing.T) {
	t.Parallel()

	handler := NewHandler("v1.2.0")
	handler.RegisterChecker("storage", NewStorageChecker(pinger{}))

	w := serve(t, handler.ServeHTTP)
	require.Equal(t, http.StatusOK, w.Code)

	var response Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, "v1.2.0", response.Version)
	assert.Len(t, response.Checks, 1)
}

func TestHandler_UnhealthyStorage(t *testing.T) {
	t.Parallel()

	handler := NewHandler("v1.2.0")
	handler.RegisterChecker("storage", NewStorageChecker(pinger{err: errors.New("connection refused")}))

	w := serve(t, handler.ServeHTTP)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, StatusUnhealthy, response.Status)
	assert.Equal(t, "connection refused", response.Checks["storage"].Message)

	assert.Equal(t, http.StatusServiceUnavailable, serve(t, handler.ReadinessHandler).Code)
}

func TestHandler_DegradedIsStillReady(t *testing.T) {
	t.Parallel()

	outbox := memory.NewOutboxRepository()
	for i := 0; i < 3; i++ {
		_, err := outbox.Enqueue(context.Background(), domain.OutboxMessage{
			AggregateType: domain.AggregateOrder, AggregateID: "700", EventType: "order.created", Payload: []byte(`{}`),
		})
		require.NoError(t, err)
	}

	handler := NewHandler("dev")
	handler.RegisterChecker("storage", NewStorageChecker(pinger{}))
	handler.RegisterChecker("outbox", NewOutboxChecker(outbox, 2, time.Hour))

	response := handler.Evaluate(context.Background())
	assert.Equal(t, StatusDegraded, response.Status)
	assert.Equal(t, StatusDegraded, response.Checks["outbox"].Status)
	assert.Equal(t, http.StatusOK, serve(t, handler.ReadinessHandler).Code)
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	w := serve(t, LivenessHandler)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestSyncGRPC_ReflectsStorageState(t *testing.T) {
	t.Parallel()

	handler := NewHandler("dev")
	handler.RegisterChecker("storage", NewStorageChecker(pinger{err: errors.New("down")}))
	server := health.NewServer()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		handler.SyncGRPC(ctx, server, 5*time.Millisecond, "webshop.v1.OrderService")
	}()

	require.Eventually(t, func() bool {
		resp, err := server.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "webshop.v1.OrderService"})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}

type failingStats struct {
	domain.OutboxRepository
	err error
}

func (f failingStats) Stats(context.Context) (domain.OutboxStats, error) {
	return domain.OutboxStats{}, f.err
}

func TestOutboxChecker_OldBacklogAndErrors(t *testing.T) {
	t.Parallel()

	outbox := memory.NewOutboxRepository()
	_, err := outbox.Enqueue(context.Background(), domain.OutboxMessage{
		AggregateType: domain.AggregateProfile, AggregateID: "3", EventType: "profile.created",
	})
	require.NoError(t, err)

	checker := NewOutboxChecker(outbox, 0, time.Minute)
	checker.now = func() time.Time { return time.Now().Add(time.Hour) }
	check := checker.Check(context.Background())
	assert.Equal(t, StatusDegraded, check.Status)
	assert.Equal(t, "oldest outbox message is too old", check.Message)

	broken := NewOutboxChecker(failingStats{err: errors.New("stats down")}, 10, time.Minute)
	check = broken.Check(context.Background())
	assert.Equal(t, StatusUnhealthy, check.Status)
	assert.Equal(t, "stats down", check.Message)
}

func TestStatus_WorstWins(t *testing.T) {
	t.Parallel()

	handler := NewHandler("dev")
	handler.RegisterChecker("a", NewSimpleChecker("a", func(context.Context) error { return nil }))
	handler.RegisterChecker("b", NewSimpleChecker("b", func(context.Context) error { return errors.New("x") }))
	handler.RegisterChecker("c", NewOutboxChecker(memory.NewOutboxRepository(), 1, 0))

	response := handler.Evaluate(context.Background())
	assert.Equal(t, StatusUnhealthy, response.Status)
	assert.Len(t, response.Checks, 3)
}
