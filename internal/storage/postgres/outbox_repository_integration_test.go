package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

func TestOutboxRepository_PostgresDeliveryOrder(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOutboxRepository(store)
	ctx := context.Background()

	var ids []string
	for _, eventType := range []string{"order.created", "order.position_added", "order.status_changed"} {
		msg, err := repo.Enqueue(ctx, domain.OutboxMessage{
			AggregateType: domain.AggregateOrder,
			AggregateID:   "700",
			EventType:     eventType,
			Payload:       []byte(`{"order_id":700}`),
		})
		require.NoError(t, err)
		ids = append(ids, msg.ID)
	}

	pending, err := repo.PullPending(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	for i, msg := range pending {
		assert.Equal(t, ids[i], msg.ID, "rows written in the same instant keep enqueue order")
	}
	assert.JSONEq(t, `{"order_id":700}`, string(pending[0].Payload))

	require.NoError(t, repo.MarkSent(ctx, ids[0]))
	require.NoError(t, repo.MarkFailed(ctx, ids[1]))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.FailedCount)
	assert.False(t, stats.OldestPendingAt.IsZero())

	rest, err := repo.PullPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, ids[2], rest[0].ID)
}

func TestOutboxRepository_PostgresSettleErrors(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOutboxRepository(store)
	ctx := context.Background()

	msg, err := repo.Enqueue(ctx, domain.OutboxMessage{ID: "profile-2-updated", AggregateType: domain.AggregateProfile, AggregateID: "2"})
	require.NoError(t, err)
	_, err = repo.Enqueue(ctx, domain.OutboxMessage{ID: msg.ID, AggregateType: domain.AggregateProfile, AggregateID: "2"})
	assert.ErrorIs(t, err, domain.ErrOutboxMessageDuplicate)

	require.NoError(t, repo.MarkSent(ctx, msg.ID))
	assert.ErrorIs(t, repo.MarkSent(ctx, msg.ID), domain.ErrOutboxMessageSettled)
	assert.ErrorIs(t, repo.MarkFailed(ctx, "missing-outbox"), domain.ErrOutboxMessageNotFound)
}
