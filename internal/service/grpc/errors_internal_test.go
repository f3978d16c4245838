package grpcsvc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/storage/memory"
)

func quietLogger() *log.Entry {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return log.NewEntry(logger)
}

func TestToStatus_MapsKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code codes.Code
	}{
		{domain.WithKey(domain.ErrProfileNotFound, "x@y.de"), codes.NotFound},
		{domain.ErrPasswordMismatch, codes.InvalidArgument},
		{domain.ErrProfileDuplicate, codes.AlreadyExists},
		{domain.WithKey(domain.ErrConcurrentUpdate, 7), codes.Aborted},
		{domain.WithKey(domain.ErrConcurrentDelete, 7), codes.Aborted},
		{domain.ErrArticleQuantity, codes.FailedPrecondition},
		{domain.ErrUnauthenticated, codes.Unauthenticated},
		{domain.ErrAccessDenied, codes.PermissionDenied},
		{fmt.Errorf("wrapped: %w", domain.ErrOrderNotOpen), codes.FailedPrecondition},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, status.Code(toStatus(quietLogger(), "Test", tc.err)), tc.err.Error())
	}
}

func TestToStatus_HidesInternalMessage(t *testing.T) {
	t.Parallel()

	err := toStatus(quietLogger(), "Test", errors.New("pq: connection refused to 10.0.0.1"))
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "internal error", status.Convert(err).Message())
}

func TestToStatus_KeepsKeyInMessage(t *testing.T) {
	t.Parallel()

	err := toStatus(quietLogger(), "Test", domain.WithKey(domain.ErrArticleNotFound, "XX-1"))
	assert.Equal(t, "article not found: XX-1", status.Convert(err).Message())
}

func TestToOrder_TimesAndMoney(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	out := toOrder(domain.Order{
		ID:        703,
		CreatedAt: created,
		Positions: []domain.OrderPosition{{ID: 5, ArticleNo: "VZ90/10", Quantity: 3, UnitPrice: decimal.RequireFromString("199.9")}},
	})
	assert.Equal(t, created.UnixMilli(), out.GetCreatedUnixMs())
	assert.Zero(t, out.GetUpdatedUnixMs(), "zero time is not sent as a negative timestamp")
	assert.Equal(t, "599.70", out.GetTotal())
	assert.Equal(t, "199.90", out.GetPositions()[0].GetUnitPrice())
	assert.NotNil(t, out.GetShippingAddress())
}

type stubAuthenticator struct {
	caller domain.Caller
	err    error
}

func (s stubAuthenticator) Authenticate(context.Context, string, string) (domain.Caller, error) {
	return s.caller, s.err
}

func runInterceptor(t *testing.T, authn CallerAuthenticator, md metadata.MD, method string) (domain.Caller, error) {
	t.Helper()
	ctx := context.Background()
	if md != nil {
		ctx = metadata.NewIncomingContext(ctx, md)
	}
	var seen domain.Caller
	interceptor := UnaryAuthInterceptor(authn, quietLogger(), "/grpc.health.v1.Health/")
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, func(ctx context.Context, _ any) (any, error) {
		seen = auth.CallerFrom(ctx)
		return nil, nil
	})
	return seen, err
}

func TestUnaryAuthInterceptor(t *testing.T) {
	t.Parallel()

	customer := domain.Caller{ProfileID: 2, Email: "max@hs-karlsruhe.de", Role: domain.RoleCustomer}
	basic := metadata.Pairs(webshopv1.AuthorizationHeader, auth.BasicHeader("max@hs-karlsruhe.de", "pass"))

	caller, err := runInterceptor(t, stubAuthenticator{caller: customer}, basic, webshopv1.OrderService_CreateOrder_FullMethodName)
	require.NoError(t, err)
	assert.Equal(t, customer, caller)

	caller, err = runInterceptor(t, stubAuthenticator{caller: customer}, nil, webshopv1.OrderService_CreateOrder_FullMethodName)
	require.NoError(t, err)
	assert.False(t, caller.Authenticated())

	_, err = runInterceptor(t, stubAuthenticator{err: domain.ErrUnauthenticated}, basic, webshopv1.OrderService_CreateOrder_FullMethodName)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	malformed := metadata.Pairs(webshopv1.AuthorizationHeader, "Bearer abc")
	_, err = runInterceptor(t, stubAuthenticator{caller: customer}, malformed, webshopv1.OrderService_CreateOrder_FullMethodName)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = runInterceptor(t, stubAuthenticator{err: errors.New("db down")}, malformed, "/grpc.health.v1.Health/Check")
	assert.NoError(t, err)
}

func TestRunIdempotent_PendingKeyIsAborted(t *testing.T) {
	t.Parallel()

	repo := memory.NewIdempotencyRepository()
	guard := NewIdempotency(repo, 0, quietLogger())
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(webshopv1.IdempotencyKeyHeader, "k-1"))
	req := &webshopv1.IDRequest{Id: 1}

	hash, err := requestHash(req)
	require.NoError(t, err)
	_, err = repo.Claim(ctx, domain.IdempotencyRecord{
		Scope: domain.ReplayScope{Key: "k-1"}, Method: "m", RequestHash: hash, ExpiresAt: timeNowPlusHour(),
	})
	require.NoError(t, err)

	_, err = runIdempotent(ctx, guard, "m", req, func(context.Context) (*webshopv1.Empty, error) {
		t.Fatal("handler must not run for a pending key")
		return nil, nil
	})
	assert.Equal(t, codes.Aborted, status.Code(err))
}

func TestRunIdempotent_WithoutKeyRunsEveryTime(t *testing.T) {
	t.Parallel()

	guard := NewIdempotency(memory.NewIdempotencyRepository(), 0, quietLogger())
	calls := 0
	for i := 0; i < 2; i++ {
		_, err := runIdempotent(context.Background(), guard, "m", &webshopv1.Empty{}, func(context.Context) (*webshopv1.Empty, error) {
			calls++
			return &webshopv1.Empty{}, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
}

func TestRunIdempotent_KeysAreScopedPerCaller(t *testing.T) {
	t.Parallel()

	guard := NewIdempotency(memory.NewIdempotencyRepository(), 0, quietLogger())
	incoming := metadata.NewIncomingContext(context.Background(), metadata.Pairs(webshopv1.IdempotencyKeyHeader, "same-key"))
	calls := 0
	handler := func(context.Context) (*webshopv1.IDRequest, error) {
		calls++
		return &webshopv1.IDRequest{Id: int64(calls)}, nil
	}

	for _, caller := range []domain.Caller{{ProfileID: 2}, {ProfileID: 5}, {ProfileID: 2}} {
		_, err := runIdempotent(auth.WithCaller(incoming, caller), guard, "m", &webshopv1.IDRequest{Id: 700}, handler)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls, "the third call replays the first caller's response")
}

func TestRunIdempotent_MethodMismatchIsRejected(t *testing.T) {
	t.Parallel()

	guard := NewIdempotency(memory.NewIdempotencyRepository(), 0, quietLogger())
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(webshopv1.IdempotencyKeyHeader, "k-2"))
	req := &webshopv1.IDRequest{Id: 700}
	ok := func(context.Context) (*webshopv1.Empty, error) { return &webshopv1.Empty{}, nil }

	_, err := runIdempotent(ctx, guard, "/a", req, ok)
	require.NoError(t, err)
	_, err = runIdempotent(ctx, guard, "/b", req, ok)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestRunIdempotent_InfrastructureFailureIsNotReplayed(t *testing.T) {
	t.Parallel()

	for _, code := range []codes.Code{codes.Internal, codes.Canceled, codes.DeadlineExceeded, codes.Unavailable} {
		guard := NewIdempotency(memory.NewIdempotencyRepository(), 0, quietLogger())
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(webshopv1.IdempotencyKeyHeader, "k-3"))
		req := &webshopv1.IDRequest{Id: 700}
		calls := 0
		handler := func(context.Context) (*webshopv1.Empty, error) {
			calls++
			if calls == 1 {
				return nil, status.Error(code, "temporary")
			}
			return &webshopv1.Empty{}, nil
		}

		_, err := runIdempotent(ctx, guard, "m", req, handler)
		require.Equal(t, code, status.Code(err))
		_, err = runIdempotent(ctx, guard, "m", req, handler)
		require.NoError(t, err, code.String())
		assert.Equal(t, 2, calls, code.String())
	}
}

func TestRunIdempotent_BusinessFailureIsReplayed(t *testing.T) {
	t.Parallel()

	guard := NewIdempotency(memory.NewIdempotencyRepository(), 0, quietLogger())
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(webshopv1.IdempotencyKeyHeader, "k-4"))
	req := &webshopv1.IDRequest{Id: 700}
	calls := 0
	handler := func(context.Context) (*webshopv1.Empty, error) {
		calls++
		return nil, status.Error(codes.FailedPrecondition, "order is not open")
	}

	for i := 0; i < 2; i++ {
		_, err := runIdempotent(ctx, guard, "m", req, handler)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	}
	assert.Equal(t, 1, calls)
}

func TestDecodeFailure_FallsBackToStoredCode(t *testing.T) {
	t.Parallel()

	err := decodeFailure(domain.IdempotencyRecord{State: domain.ReplayRejected, Code: uint32(codes.FailedPrecondition)})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	err = decodeFailure(domain.IdempotencyRecord{State: domain.ReplayRejected})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestReadIdempotencyKey_TooLong(t *testing.T) {
	t.Parallel()

	long := make([]byte, maxIdempotencyKeyLen+1)
	for i := range long {
		long[i] = 'k'
	}
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(webshopv1.IdempotencyKeyHeader, string(long)))
	_, err := readIdempotencyKey(ctx)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func timeNowPlusHour() time.Time {
	return time.Now().UTC().Add(time.Hour)
}
