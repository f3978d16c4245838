package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

type outboxEntry struct {
	msg        domain.OutboxMessage
	status     domain.OutboxStatus
	enqueuedAt time.Time
}

// OutboxRepository — очередь доставки в памяти процесса. Порядок постановки
// хранится в слайсе, поэтому выборка не требует сортировки.
type OutboxRepository struct {
	mu      sync.RWMutex
	entries []*outboxEntry
	byID    map[string]*outboxEntry
	now     func() time.Time
}

// NewOutboxRepository создаёт пустую очередь.
func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{
		byID: make(map[string]*outboxEntry),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Enqueue ставит событие в конец очереди.
func (r *OutboxRepository) Enqueue(_ context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	queued, err := r.enqueueAll([]domain.OutboxMessage{msg})
	if err != nil {
		return domain.OutboxMessage{}, err
	}
	return queued[0], nil
}

// enqueueAll ставит события в очередь целиком или не ставит ни одного.
func (r *OutboxRepository) enqueueAll(msgs []domain.OutboxMessage) ([]domain.OutboxMessage, error) {
	if len(msgs) == 0 {
		return nil, nil
	}
	queued := make([]domain.OutboxMessage, 0, len(msgs))
	seen := make(map[string]struct{}, len(msgs))
	for _, msg := range msgs {
		if msg.ID == "" {
			msg.ID = uuid.NewString()
		}
		if _, dup := seen[msg.ID]; dup {
			return nil, domain.WithKey(domain.ErrOutboxMessageDuplicate, msg.ID)
		}
		seen[msg.ID] = struct{}{}
		msg.Payload = append([]byte(nil), msg.Payload...)
		queued = append(queued, msg)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, msg := range queued {
		if _, ok := r.byID[msg.ID]; ok {
			return nil, domain.WithKey(domain.ErrOutboxMessageDuplicate, msg.ID)
		}
	}
	now := r.now()
	for _, msg := range queued {
		entry := &outboxEntry{msg: msg, status: domain.OutboxPending, enqueuedAt: now}
		r.entries = append(r.entries, entry)
		r.byID[msg.ID] = entry
	}
	return queued, nil
}

// PullPending возвращает до limit недоставленных событий, начиная с самых старых.
func (r *OutboxRepository) PullPending(_ context.Context, limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	return r.pending(limit), nil
}

// Stats считает недоставленные и отброшенные события.
func (r *OutboxRepository) Stats(context.Context) (domain.OutboxStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats domain.OutboxStats
	for _, entry := range r.entries {
		switch entry.status {
		case domain.OutboxPending:
			if stats.PendingCount == 0 {
				stats.OldestPendingAt = entry.enqueuedAt
			}
			stats.PendingCount++
		case domain.OutboxFailed:
			stats.FailedCount++
		}
	}
	return stats, nil
}

// MarkSent завершает доставку события.
func (r *OutboxRepository) MarkSent(_ context.Context, id string) error {
	return r.settle(id, domain.OutboxSent)
}

// MarkFailed отбрасывает событие после исчерпания попыток.
func (r *OutboxRepository) MarkFailed(_ context.Context, id string) error {
	return r.settle(id, domain.OutboxFailed)
}

// AllPending возвращает все недоставленные события в порядке постановки.
func (r *OutboxRepository) AllPending() []domain.OutboxMessage {
	return r.pending(0)
}

func (r *OutboxRepository) settle(id string, status domain.OutboxStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.byID[id]
	if !ok {
		return domain.WithKey(domain.ErrOutboxMessageNotFound, id)
	}
	if entry.status != domain.OutboxPending {
		return domain.WithKey(domain.ErrOutboxMessageSettled, id)
	}
	entry.status = status
	return nil
}

// pending копирует недоставленные события; limit 0 снимает ограничение.
func (r *OutboxRepository) pending(limit int) []domain.OutboxMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.OutboxMessage, 0)
	for _, entry := range r.entries {
		if entry.status != domain.OutboxPending {
			continue
		}
		msg := entry.msg
		msg.Payload = append([]byte(nil), entry.msg.Payload...)
		out = append(out, msg)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

var _ domain.OutboxRepository = (*OutboxRepository)(nil)
