package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/storage/memory"
)

const createOrderMethod = "/webshop.v1.OrderService/CreateOrder"

func claim(profileID int64, key, hash string, expires time.Time) domain.IdempotencyRecord {
	return domain.IdempotencyRecord{
		Scope:       domain.ReplayScope{ProfileID: profileID, Key: key},
		Method:      createOrderMethod,
		RequestHash: hash,
		ExpiresAt:   expires,
	}
}

func TestIdempotencyRepository_ClaimAndSettle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	expires := time.Now().UTC().Add(2 * time.Hour)
	scope := domain.ReplayScope{ProfileID: 2, Key: "order-1"}

	created, err := repo.Claim(ctx, claim(2, " order-1 ", "hash-1", expires))
	require.NoError(t, err)
	assert.Equal(t, scope, created.Scope)
	assert.Equal(t, domain.ReplayPending, created.State)

	require.NoError(t, repo.Settle(ctx, scope, domain.ReplayCompleted, 0, []byte(`{"order":{"id":703}}`)))

	got, err := repo.Get(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, domain.ReplayCompleted, got.State)
	assert.JSONEq(t, `{"order":{"id":703}}`, string(got.Response))
	assert.True(t, got.ExpiresAt.Equal(expires))

	err = repo.Settle(ctx, scope, domain.ReplayRejected, 9, nil)
	assert.ErrorIs(t, err, domain.ErrIdempotencyAlreadySettled)
	err = repo.Settle(ctx, scope, domain.ReplayPending, 0, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidReplayState)
}

func TestIdempotencyRepository_ClaimConflicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	expires := time.Now().UTC().Add(time.Hour)

	_, err := repo.Claim(ctx, claim(2, "order-2", "hash-a", expires))
	require.NoError(t, err)

	existing, err := repo.Claim(ctx, claim(2, "order-2", "hash-a", expires))
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyAlreadyExists)
	assert.Equal(t, domain.ReplayPending, existing.State)

	_, err = repo.Claim(ctx, claim(2, "order-2", "hash-b", expires))
	require.ErrorIs(t, err, domain.ErrIdempotencyHashMismatch)

	other := claim(2, "order-2", "hash-a", expires)
	other.Method = "/webshop.v1.OrderService/SetOrderStatus"
	_, err = repo.Claim(ctx, other)
	require.ErrorIs(t, err, domain.ErrIdempotencyHashMismatch)

	_, err = repo.Claim(ctx, claim(5, "order-2", "hash-b", expires))
	require.NoError(t, err, "keys are scoped per caller")
}

func TestIdempotencyRepository_ExpiredKeyIsReclaimed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	now := time.Now().UTC()

	_, err := repo.Claim(ctx, claim(0, "signup", "hash-old", now.Add(-time.Minute)))
	require.NoError(t, err)

	fresh, err := repo.Claim(ctx, claim(0, "signup", "hash-new", now.Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "hash-new", fresh.RequestHash)
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	now := time.Now().UTC()

	for i, key := range []string{"old-1", "old-2", "old-3"} {
		_, err := repo.Claim(ctx, claim(2, key, "h", now.Add(-time.Duration(5-i)*time.Minute)))
		require.NoError(t, err)
	}
	_, err := repo.Claim(ctx, claim(2, "live", "h", now.Add(time.Hour)))
	require.NoError(t, err)

	removed, err := repo.DeleteExpired(ctx, now, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = repo.Get(ctx, domain.ReplayScope{ProfileID: 2, Key: "old-1"})
	assert.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound, "oldest records go first")
	_, err = repo.Get(ctx, domain.ReplayScope{ProfileID: 2, Key: "old-3"})
	assert.NoError(t, err)

	removed, err = repo.DeleteExpired(ctx, now, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.Get(ctx, domain.ReplayScope{ProfileID: 2, Key: "live"})
	assert.NoError(t, err)
}

func TestIdempotencyRepository_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()

	_, err := repo.Claim(ctx, claim(2, " ", "h", time.Time{}))
	assert.ErrorIs(t, err, domain.ErrIdempotencyKeyRequired)
	_, err = repo.Claim(ctx, claim(2, "k", "", time.Time{}))
	assert.ErrorIs(t, err, domain.ErrIdempotencyRequestHashRequired)
	_, err = repo.Get(ctx, domain.ReplayScope{ProfileID: 2, Key: "missing"})
	assert.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)
}

func TestIdempotencyRepository_ReleasePending(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	expires := time.Now().UTC().Add(time.Hour)
	scope := domain.ReplayScope{ProfileID: 2, Key: "order-9"}

	_, err := repo.Claim(ctx, claim(2, "order-9", "hash-1", expires))
	require.NoError(t, err)
	require.NoError(t, repo.Release(ctx, scope))

	_, err = repo.Get(ctx, scope)
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyNotFound)
	_, err = repo.Claim(ctx, claim(2, "order-9", "hash-1", expires))
	require.NoError(t, err, "released key can be claimed again")

	require.NoError(t, repo.Settle(ctx, scope, domain.ReplayCompleted, 0, []byte(`{}`)))
	assert.ErrorIs(t, repo.Release(ctx, scope), domain.ErrIdempotencyAlreadySettled)
	assert.ErrorIs(t, repo.Release(ctx, domain.ReplayScope{ProfileID: 2, Key: "unknown"}), domain.ErrIdempotencyKeyNotFound)
}
