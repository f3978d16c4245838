package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

func TestOutboxRepository_PullKeepsEnqueueOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewOutboxRepository()

	created, err := repo.Enqueue(ctx, domain.OutboxMessage{
		AggregateType: domain.AggregateOrder,
		AggregateID:   "700",
		EventType:     "order.created",
		Payload:       []byte(`{"order_id":700}`),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	changed, err := repo.Enqueue(ctx, domain.OutboxMessage{ID: "fixed", AggregateType: domain.AggregateProfile, AggregateID: "2"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", changed.ID)

	pending, err := repo.PullPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, []string{created.ID, "fixed"}, []string{pending[0].ID, pending[1].ID})

	oldest, err := repo.PullPending(ctx, 1)
	require.NoError(t, err)
	require.Len(t, oldest, 1)
	assert.Equal(t, created.ID, oldest[0].ID)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PendingCount)
	assert.False(t, stats.OldestPendingAt.IsZero())
}

func TestOutboxRepository_PayloadIsCopied(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewOutboxRepository()
	payload := []byte(`{"a":1}`)

	_, err := repo.Enqueue(ctx, domain.OutboxMessage{Payload: payload})
	require.NoError(t, err)
	payload[2] = 'b'

	pending := repo.AllPending()
	require.Len(t, pending, 1)
	assert.Equal(t, `{"a":1}`, string(pending[0].Payload))
}

func TestOutboxRepository_SettleOnlyOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewOutboxRepository()

	sent, err := repo.Enqueue(ctx, domain.OutboxMessage{AggregateType: domain.AggregateOrder})
	require.NoError(t, err)
	failed, err := repo.Enqueue(ctx, domain.OutboxMessage{AggregateType: domain.AggregateOrder})
	require.NoError(t, err)

	require.NoError(t, repo.MarkSent(ctx, sent.ID))
	require.NoError(t, repo.MarkFailed(ctx, failed.ID))
	assert.Empty(t, repo.AllPending())

	assert.ErrorIs(t, repo.MarkFailed(ctx, sent.ID), domain.ErrOutboxMessageSettled)
	assert.ErrorIs(t, repo.MarkSent(ctx, "missing"), domain.ErrOutboxMessageNotFound)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.PendingCount)
	assert.Equal(t, 1, stats.FailedCount)
	assert.True(t, stats.OldestPendingAt.IsZero())
}
