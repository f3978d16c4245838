package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

const defaultReplayTTL = 24 * time.Hour

// IdempotencyRepository хранит вызовы для повтора в памяти процесса.
// Записи не входят в Store: перезагрузка фикстур их не затрагивает.
type IdempotencyRepository struct {
	mu      sync.Mutex
	records map[domain.ReplayScope]domain.IdempotencyRecord
	now     func() time.Time
}

// NewIdempotencyRepository создаёт пустой репозиторий.
func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{
		records: make(map[domain.ReplayScope]domain.IdempotencyRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Claim регистрирует вызов или возвращает живую запись под тем же ключом.
func (r *IdempotencyRepository) Claim(_ context.Context, record domain.IdempotencyRecord) (domain.IdempotencyRecord, error) {
	now := r.now()
	record, err := domain.PrepareClaim(record, now, defaultReplayTTL)
	if err != nil {
		return domain.IdempotencyRecord{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.records[record.Scope]; ok && !existing.Expired(now) {
		if !existing.Matches(record.Method, record.RequestHash) {
			return cloneRecord(existing), domain.WithKey(domain.ErrIdempotencyHashMismatch, record.Scope)
		}
		return cloneRecord(existing), domain.WithKey(domain.ErrIdempotencyKeyAlreadyExists, record.Scope)
	}

	r.records[record.Scope] = cloneRecord(record)
	return cloneRecord(record), nil
}

// Get возвращает запись по ключу вызывающего.
func (r *IdempotencyRepository) Get(_ context.Context, scope domain.ReplayScope) (domain.IdempotencyRecord, error) {
	scope, err := scope.Normalize()
	if err != nil {
		return domain.IdempotencyRecord{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[scope]
	if !ok {
		return domain.IdempotencyRecord{}, domain.WithKey(domain.ErrIdempotencyKeyNotFound, scope)
	}
	return cloneRecord(record), nil
}

// Settle сохраняет результат вызова, зарегистрированного через Claim.
func (r *IdempotencyRepository) Settle(_ context.Context, scope domain.ReplayScope, state domain.ReplayState, code uint32, response []byte) error {
	if !state.Settled() {
		return domain.WithKey(domain.ErrInvalidReplayState, state)
	}
	scope, err := scope.Normalize()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[scope]
	if !ok {
		return domain.WithKey(domain.ErrIdempotencyKeyNotFound, scope)
	}
	if record.State.Settled() {
		return domain.WithKey(domain.ErrIdempotencyAlreadySettled, scope)
	}

	record.State = state
	record.Code = code
	record.Response = append([]byte(nil), response...)
	record.UpdatedAt = r.now()
	r.records[scope] = record
	return nil
}

// Release удаляет pending-запись.
func (r *IdempotencyRepository) Release(_ context.Context, scope domain.ReplayScope) error {
	scope, err := scope.Normalize()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[scope]
	if !ok {
		return domain.WithKey(domain.ErrIdempotencyKeyNotFound, scope)
	}
	if record.State.Settled() {
		return domain.WithKey(domain.ErrIdempotencyAlreadySettled, scope)
	}
	delete(r.records, scope)
	return nil
}

// DeleteExpired удаляет до limit записей, истёкших к моменту before, начиная с самых старых.
// limit <= 0 снимает ограничение.
func (r *IdempotencyRepository) DeleteExpired(_ context.Context, before time.Time, limit int) (int, error) {
	if before.IsZero() {
		before = r.now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	expired := make([]domain.IdempotencyRecord, 0)
	for _, record := range r.records {
		if record.Expired(before) {
			expired = append(expired, record)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i].ExpiresAt.Before(expired[j].ExpiresAt) })
	if limit > 0 && len(expired) > limit {
		expired = expired[:limit]
	}
	for _, record := range expired {
		delete(r.records, record.Scope)
	}
	return len(expired), nil
}

func cloneRecord(src domain.IdempotencyRecord) domain.IdempotencyRecord {
	dst := src
	if src.Response != nil {
		dst.Response = append([]byte(nil), src.Response...)
	}
	return dst
}

var _ domain.IdempotencyRepository = (*IdempotencyRepository)(nil)
