package memory

import (
	"context"
	"slices"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// timelineRepositoryInMemory хранит историю заказов в общем Store,
// поэтому перезагрузка набора данных очищает и её.
type timelineRepositoryInMemory struct {
	store *Store
}

// NewTimelineRepository создаёт историю заказов в памяти.
func NewTimelineRepository(store *Store) domain.TimelineRepository {
	return &timelineRepositoryInMemory{store: store}
}

// Append вставляет событие по времени; при равном времени оно встаёт после уже записанных.
func (r *timelineRepositoryInMemory) Append(_ context.Context, event domain.TimelineEvent) error {
	if event.OrderID <= 0 {
		return domain.WithKey(domain.ErrOrderNotFound, event.OrderID)
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendTimelineLocked(event)
	return nil
}

// List возвращает копию истории заказа; для заказа без событий пустой непустой слайс.
func (r *timelineRepositoryInMemory) List(_ context.Context, orderID int64) ([]domain.TimelineEvent, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := slices.Clone(s.timeline[orderID])
	if events == nil {
		events = []domain.TimelineEvent{}
	}
	return events, nil
}

var _ domain.TimelineRepository = (*timelineRepositoryInMemory)(nil)
