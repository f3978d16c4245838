package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

const statusMethod = "/webshop.v1.OrderService/SetOrderStatus"

var replayColumns = []string{
	"profile_id", "key", "method", "request_hash", "state", "code", "response", "expires_at", "created_at", "updated_at",
}

func TestIdempotencyRepository_ClaimInserts(t *testing.T) {
	store, mock := newMockStore(t)
	expires := fixedNow.Add(time.Hour)

	mock.ExpectExec(q("INSERT INTO idempotency_keys")).
		WithArgs(int64(1), "status-700", statusMethod, "hash-1", "pending", expires, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	record, err := NewIdempotencyRepository(store).Claim(context.Background(), domain.IdempotencyRecord{
		Scope:       domain.ReplayScope{ProfileID: 1, Key: "status-700"},
		Method:      statusMethod,
		RequestHash: "hash-1",
		ExpiresAt:   expires,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReplayPending, record.State)
	assert.Equal(t, fixedNow, record.CreatedAt)
}

func TestIdempotencyRepository_ClaimTakenKey(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want error
	}{
		{name: "same request", hash: "hash-1", want: domain.ErrIdempotencyKeyAlreadyExists},
		{name: "other request", hash: "hash-2", want: domain.ErrIdempotencyHashMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)

			mock.ExpectExec(q("INSERT INTO idempotency_keys")).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectQuery(q("FROM idempotency_keys")).
				WithArgs(int64(1), "status-700").
				WillReturnRows(sqlmock.NewRows(replayColumns).AddRow(
					int64(1), "status-700", statusMethod, "hash-1", "completed", int64(0), []byte(`{"order":{"id":700}}`),
					fixedNow.Add(time.Hour), fixedNow, fixedNow,
				))

			existing, err := NewIdempotencyRepository(store).Claim(context.Background(), domain.IdempotencyRecord{
				Scope:       domain.ReplayScope{ProfileID: 1, Key: "status-700"},
				Method:      statusMethod,
				RequestHash: tt.hash,
			})
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, domain.ReplayCompleted, existing.State)
			assert.JSONEq(t, `{"order":{"id":700}}`, string(existing.Response))
		})
	}
}

func TestIdempotencyRepository_Settle(t *testing.T) {
	updateQuery := q("UPDATE idempotency_keys")
	existsQuery := q("SELECT EXISTS (SELECT 1 FROM idempotency_keys WHERE profile_id = $1 AND key = $2)")
	scope := domain.ReplayScope{ProfileID: 2, Key: "order-1"}

	t.Run("pending record", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(updateQuery).
			WithArgs(int64(2), "order-1", "rejected", int64(9), []byte(`{"code":9}`), fixedNow).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewIdempotencyRepository(store).Settle(context.Background(), scope, domain.ReplayRejected, 9, []byte(`{"code":9}`))
		require.NoError(t, err)
	})

	t.Run("already settled", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(updateQuery).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(existsQuery).WithArgs(int64(2), "order-1").WillReturnRows(boolRow(true))

		err := NewIdempotencyRepository(store).Settle(context.Background(), scope, domain.ReplayCompleted, 0, nil)
		require.ErrorIs(t, err, domain.ErrIdempotencyAlreadySettled)
	})

	t.Run("missing", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(updateQuery).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(existsQuery).WillReturnRows(boolRow(false))

		err := NewIdempotencyRepository(store).Settle(context.Background(), scope, domain.ReplayCompleted, 0, nil)
		require.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)
	})

	t.Run("pending is not a result", func(t *testing.T) {
		store, _ := newMockStore(t)
		err := NewIdempotencyRepository(store).Settle(context.Background(), scope, domain.ReplayPending, 0, nil)
		require.ErrorIs(t, err, domain.ErrInvalidReplayState)
	})
}

func TestIdempotencyRepository_DeleteExpiredBatch(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(q("DELETE FROM idempotency_keys")).
		WithArgs(fixedNow, 500).
		WillReturnResult(sqlmock.NewResult(0, 42))

	removed, err := NewIdempotencyRepository(store).DeleteExpired(context.Background(), time.Time{}, 500)
	require.NoError(t, err)
	assert.Equal(t, 42, removed)
}

func TestIdempotencyRepository_GetRejectsUnknownState(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(q("FROM idempotency_keys")).
		WillReturnRows(sqlmock.NewRows(replayColumns).AddRow(
			int64(0), "signup", "/webshop.v1.ProfileService/CreateProfile", "h", "done", int64(0), nil,
			fixedNow, fixedNow, fixedNow,
		))

	_, err := NewIdempotencyRepository(store).Get(context.Background(), domain.ReplayScope{Key: "signup"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid replay state "done"`)
}

func TestIdempotencyRepository_Release(t *testing.T) {
	releaseQuery := q("DELETE FROM idempotency_keys")
	existsQuery := q("SELECT EXISTS (SELECT 1 FROM idempotency_keys WHERE profile_id = $1 AND key = $2)")
	scope := domain.ReplayScope{ProfileID: 1, Key: "status-700"}

	t.Run("pending", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(releaseQuery).WithArgs(int64(1), "status-700").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewIdempotencyRepository(store).Release(context.Background(), scope))
	})

	t.Run("settled", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(releaseQuery).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(existsQuery).WithArgs(int64(1), "status-700").WillReturnRows(boolRow(true))

		err := NewIdempotencyRepository(store).Release(context.Background(), scope)
		require.ErrorIs(t, err, domain.ErrIdempotencyAlreadySettled)
	})
}
