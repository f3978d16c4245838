package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

type timelineRepository struct {
	store *Store
}

// NewTimelineRepository создаёт историю заказов в таблице timeline_events.
// Fixture reload очищает её вместе с заказами.
func NewTimelineRepository(store *Store) domain.TimelineRepository {
	return &timelineRepository{store: store}
}

func (r *timelineRepository) Append(ctx context.Context, event domain.TimelineEvent) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return insertTimeline(ctx, r.store.db, event, r.store.now())
}

func insertTimeline(ctx context.Context, q querier, event domain.TimelineEvent, now time.Time) error {
	if event.OrderID <= 0 {
		return domain.WithKey(domain.ErrOrderNotFound, event.OrderID)
	}
	if event.Occurred.IsZero() {
		event.Occurred = now
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO timeline_events (order_id, type, reason, occurred) VALUES ($1, $2, $3, $4)`,
		event.OrderID, event.Type, event.Reason, event.Occurred.UTC())
	if err != nil {
		return fmt.Errorf("append %s to order %d timeline: %w", event.Type, event.OrderID, err)
	}
	return nil
}

// List отдаёт историю заказа по времени; события одного момента идут в порядке записи.
func (r *timelineRepository) List(ctx context.Context, orderID int64) ([]domain.TimelineEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.store.db.QueryContext(ctx,
		`SELECT type, reason, occurred FROM timeline_events WHERE order_id = $1 ORDER BY occurred, id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %d timeline: %w", orderID, err)
	}
	defer rows.Close()

	events := []domain.TimelineEvent{}
	for rows.Next() {
		event := domain.TimelineEvent{OrderID: orderID}
		if err := rows.Scan(&event.Type, &event.Reason, &event.Occurred); err != nil {
			return nil, fmt.Errorf("scan order %d timeline: %w", orderID, err)
		}
		event.Occurred = event.Occurred.UTC()
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order %d timeline: %w", orderID, err)
	}
	return events, nil
}

var _ domain.TimelineRepository = (*timelineRepository)(nil)
