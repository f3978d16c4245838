package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

func TestOutboxRepository_EnqueueDefaultsPayload(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOutboxRepository(store)

	mock.ExpectExec(q("INSERT INTO outbox_messages")).
		WithArgs("evt-1", domain.AggregateProfile, "4", "profile.deleted", []byte("{}"), "pending", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg, err := repo.Enqueue(context.Background(), domain.OutboxMessage{
		ID: "evt-1", AggregateType: domain.AggregateProfile, AggregateID: "4", EventType: "profile.deleted",
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-1", msg.ID)
}

func TestOutboxRepository_EnqueueDuplicate(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOutboxRepository(store)

	mock.ExpectExec(q("INSERT INTO outbox_messages")).WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Enqueue(context.Background(), domain.OutboxMessage{ID: "evt-1", Payload: []byte(`{}`)})
	assert.ErrorIs(t, err, domain.ErrOutboxMessageDuplicate)
}

func TestOutboxRepository_PullPendingBySeq(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOutboxRepository(store)

	mock.ExpectQuery(q("ORDER BY seq")).
		WithArgs("pending", defaultOutboxPull).
		WillReturnRows(sqlmock.NewRows([]string{"id", "aggregate_type", "aggregate_id", "event_type", "payload"}).
			AddRow("a", "order", "700", "order.created", []byte(`{"order_id":700}`)).
			AddRow("b", "order", "700", "order.status_changed", []byte(`{"order_id":700}`)))

	batch, err := repo.PullPending(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, "order.status_changed", batch[1].EventType)
}

func TestOutboxRepository_Stats(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewOutboxRepository(store)

	mock.ExpectQuery(q("COUNT(*) FILTER (WHERE status = 'pending')")).
		WillReturnRows(sqlmock.NewRows([]string{"pending", "failed", "oldest"}).AddRow(3, 1, fixedNow))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.OutboxStats{PendingCount: 3, FailedCount: 1, OldestPendingAt: fixedNow}, stats)
}

func TestOutboxRepository_SettleOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		exists   bool
		wantErr  error
	}{
		{name: "pending row", affected: 1},
		{name: "already settled", exists: true, wantErr: domain.ErrOutboxMessageSettled},
		{name: "missing", wantErr: domain.ErrOutboxMessageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			repo := NewOutboxRepository(store)

			mock.ExpectExec(q("UPDATE outbox_messages SET status = $2")).
				WithArgs("evt-1", "sent", fixedNow).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			if tt.affected == 0 {
				mock.ExpectQuery(q("SELECT EXISTS")).WithArgs("evt-1").WillReturnRows(boolRow(tt.exists))
			}

			err := repo.MarkSent(context.Background(), "evt-1")
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTimelineRepository_AppendStampsTime(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewTimelineRepository(store)

	mock.ExpectExec(q("INSERT INTO timeline_events")).
		WithArgs(int64(700), domain.TimelineComplaintFiled, "position 1", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Append(context.Background(), domain.TimelineEvent{
		OrderID: 700, Type: domain.TimelineComplaintFiled, Reason: "position 1",
	}))
	assert.ErrorIs(t, repo.Append(context.Background(), domain.TimelineEvent{Type: domain.TimelineOrderCreated}), domain.ErrOrderNotFound)
}

func TestTimelineRepository_ListEmpty(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewTimelineRepository(store)

	mock.ExpectQuery(q("FROM timeline_events")).WithArgs(int64(702)).
		WillReturnRows(sqlmock.NewRows([]string{"type", "reason", "occurred"}))

	events, err := repo.List(context.Background(), 702)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}
