package domain

import (
	"context"
	"time"
)

// OutboxPublisher публикует события из transactional outbox.
type OutboxPublisher interface {
	// Publish передаёт событие наружу; должен быть идемпотентным.
	Publish(event OutboxMessage) error
}

// OutboxRepository — очередь событий профилей и заказов, ожидающих доставки.
type OutboxRepository interface {
	// Enqueue ставит событие в очередь; пустой ID заполняется UUID.
	Enqueue(ctx context.Context, msg OutboxMessage) (OutboxMessage, error)
	// PullPending возвращает до limit недоставленных событий в порядке постановки.
	PullPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	Stats(ctx context.Context) (OutboxStats, error)
	// MarkSent и MarkFailed переводят pending-событие в конечный статус.
	// Для уже завершённого события возвращается ErrOutboxMessageSettled.
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

// TimelineRepository хранит события жизненного цикла заказа.
type TimelineRepository interface {
	Append(ctx context.Context, event TimelineEvent) error
	List(ctx context.Context, orderID int64) ([]TimelineEvent, error)
}

// IdempotencyRepository хранит изменяющие вызовы для повтора по ключу.
type IdempotencyRepository interface {
	// Claim регистрирует вызов в стадии pending. Если ключ уже занят живой записью,
	// возвращает её вместе с ErrIdempotencyKeyAlreadyExists либо, для другого
	// метода или тела запроса, с ErrIdempotencyHashMismatch. Истёкшая запись
	// заменяется новой.
	Claim(ctx context.Context, record IdempotencyRecord) (IdempotencyRecord, error)
	Get(ctx context.Context, scope ReplayScope) (IdempotencyRecord, error)
	// Settle сохраняет результат вызова: ReplayCompleted с ответом или
	// ReplayRejected с gRPC-кодом ошибки.
	Settle(ctx context.Context, scope ReplayScope, state ReplayState, code uint32, response []byte) error
	// Release снимает pending-запись, чтобы вызов с тем же ключом выполнился заново.
	// Завершённая запись не снимается: ErrIdempotencyAlreadySettled.
	Release(ctx context.Context, scope ReplayScope) error
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error)
}
