package domain

import "time"

// Агрегаты, для которых публикуются события.
const (
	AggregateProfile = "profile"
	AggregateOrder   = "order"
)

// OutboxStatus — стадия доставки события.
type OutboxStatus string

const (
	OutboxPending OutboxStatus = "pending"
	OutboxSent    OutboxStatus = "sent"
	OutboxFailed  OutboxStatus = "failed"
)

// OutboxMessage — событие, ожидающее публикации в брокер.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// OutboxStats — размер очереди доставки. OldestPendingAt нулевое, если очередь пуста.
type OutboxStats struct {
	PendingCount    int
	FailedCount     int
	OldestPendingAt time.Time
}
