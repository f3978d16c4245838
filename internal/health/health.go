// Package health сводит проверки хранилища и очереди событий в HTTP- и gRPC-статус.
package health

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

const (
	defaultCheckTimeout = 2 * time.Second
	defaultSyncInterval = 5 * time.Second
)

// Status — состояние компонента.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// severity упорядочивает статусы: общий статус равен худшему из компонентов.
func (s Status) severity() int {
	switch s {
	case StatusHealthy:
		return 0
	case StatusDegraded:
		return 1
	default:
		return 2
	}
}

// Check — результат проверки одного компонента.
type Check struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Response — тело ответа /healthz.
type Response struct {
	Status        Status           `json:"status"`
	Timestamp     time.Time        `json:"timestamp"`
	Version       string           `json:"version,omitempty"`
	UptimeSeconds int64            `json:"uptime_seconds"`
	Checks        map[string]Check `json:"checks,omitempty"`
}

// Checker проверяет один компонент.
type Checker interface {
	Check(ctx context.Context) Check
}

// Handler отдаёт состояние магазина по HTTP и синхронизирует gRPC health service.
type Handler struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	version  string
	started  time.Time
	timeout  time.Duration
}

func NewHandler(version string) *Handler {
	return &Handler{
		checkers: map[string]Checker{},
		version:  version,
		started:  time.Now(),
		timeout:  defaultCheckTimeout,
	}
}

// RegisterChecker регистрирует проверку; повторное имя заменяет прежнюю.
func (h *Handler) RegisterChecker(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// Evaluate запускает проверки параллельно с общим таймаутом.
func (h *Handler) Evaluate(ctx context.Context) Response {
	h.mu.RLock()
	checkers := maps.Clone(h.checkers)
	h.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	var (
		mu     sync.Mutex
		checks = make(map[string]Check, len(checkers))
		g      errgroup.Group
	)
	for name, checker := range checkers {
		g.Go(func() error {
			check := checker.Check(ctx)
			mu.Lock()
			checks[name] = check
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	overall := StatusHealthy
	for _, check := range checks {
		if check.Status.severity() > overall.severity() {
			overall = check.Status
		}
	}

	return Response{
		Status:        overall,
		Timestamp:     time.Now().UTC(),
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.started) / time.Second),
		Checks:        checks,
	}
}

// ServeHTTP отдаёт подробный отчёт; unhealthy даёт 503.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := h.Evaluate(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if response.Status == StatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(response)
}

func writePlain(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

// LivenessHandler отвечает 200, пока процесс жив.
func LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	writePlain(w, http.StatusOK, "ok")
}

// ReadinessHandler отвечает 503, если хоть один компонент unhealthy.
func (h *Handler) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	if h.Evaluate(r.Context()).Status == StatusUnhealthy {
		writePlain(w, http.StatusServiceUnavailable, "not ready")
		return
	}
	writePlain(w, http.StatusOK, "ready")
}

// SyncGRPC переносит общий статус в grpc.health.v1 до отмены ctx.
// Degraded считается обслуживающим состоянием.
func (h *Handler) SyncGRPC(ctx context.Context, server *health.Server, interval time.Duration, services ...string) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		serving := healthpb.HealthCheckResponse_SERVING
		if h.Evaluate(ctx).Status == StatusUnhealthy {
			serving = healthpb.HealthCheckResponse_NOT_SERVING
		}
		server.SetServingStatus("", serving)
		for _, service := range services {
			server.SetServingStatus(service, serving)
		}

		select {
		case <-ctx.Done():
			server.Shutdown()
			return
		case <-ticker.C:
		}
	}
}

// SimpleChecker превращает функцию, возвращающую ошибку, в Checker.
type SimpleChecker struct {
	name  string
	probe func(ctx context.Context) error
}

func NewSimpleChecker(name string, probe func(ctx context.Context) error) *SimpleChecker {
	return &SimpleChecker{name: name, probe: probe}
}

func (c *SimpleChecker) Check(ctx context.Context) Check {
	started := time.Now()
	err := c.probe(ctx)
	check := Check{Name: c.name, Status: StatusHealthy, DurationMs: time.Since(started).Milliseconds()}
	if err != nil {
		check.Status, check.Message = StatusUnhealthy, err.Error()
	}
	return check
}

// Pinger — хранилище, умеющее проверять соединение.
type Pinger interface {
	Ping(ctx context.Context) error
}

func NewStorageChecker(storage Pinger) *SimpleChecker {
	return NewSimpleChecker("storage", storage.Ping)
}

// OutboxChecker помечает сервис degraded, пока очередь событий длиннее maxPending
// или старейшее недоставленное событие старше maxAge. Нулевой порог не проверяется.
type OutboxChecker struct {
	outbox     domain.OutboxRepository
	maxPending int
	maxAge     time.Duration
	now        func() time.Time
}

func NewOutboxChecker(outbox domain.OutboxRepository, maxPending int, maxAge time.Duration) *OutboxChecker {
	return &OutboxChecker{outbox: outbox, maxPending: maxPending, maxAge: maxAge, now: time.Now}
}

func (c *OutboxChecker) Check(ctx context.Context) Check {
	started := time.Now()
	stats, err := c.outbox.Stats(ctx)
	check := Check{Name: "outbox", Status: StatusHealthy, DurationMs: time.Since(started).Milliseconds()}

	switch {
	case err != nil:
		check.Status, check.Message = StatusUnhealthy, err.Error()
	case c.maxPending > 0 && stats.PendingCount > c.maxPending:
		check.Status, check.Message = StatusDegraded, "outbox backlog is above threshold"
	case c.maxAge > 0 && stats.PendingCount > 0 && !stats.OldestPendingAt.IsZero() &&
		c.now().Sub(stats.OldestPendingAt) > c.maxAge:
		check.Status, check.Message = StatusDegraded, "oldest outbox message is too old"
	case stats.FailedCount > 0:
		check.Message = "some events were moved to the dead letter queue"
	}
	return check
}
