package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// EventType определяет тип события
type EventType string

const (
	// Profile события
	EventTypeProfileCreated       EventType = "profile.created"
	EventTypeProfileUpdated       EventType = "profile.updated"
	EventTypeProfileStatusChanged EventType = "profile.status_changed"
	EventTypeProfileDeleted       EventType = "profile.deleted"

	// Order события
	EventTypeOrderCreated        EventType = "order.created"
	EventTypeOrderStatusChanged  EventType = "order.status_changed"
	EventTypeOrderPositionAdded  EventType = "order.position_added"
	EventTypeOrderComplaintFiled EventType = "order.complaint_filed"
)

// Topics для Kafka
const (
	TopicShopEvents      = "webshop.events"
	TopicDeadLetterQueue = "webshop.dlq" // Dead Letter Queue для failed messages
)

// Kafka headers публикуемых сообщений
const (
	HeaderEventType     = "x-event-type"
	HeaderOriginalTopic = "x-original-topic"
	HeaderReplayedAt    = "x-replayed-at"
)

// ProfileEvent представляет событие профиля. Хэш пароля никогда не публикуется.
type ProfileEvent struct {
	EventType EventType `json:"event_type"`
	ProfileID int64     `json:"profile_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	Status    string    `json:"status,omitempty"`
	Version   int64     `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderEvent представляет событие заказа
type OrderEvent struct {
	EventType  EventType         `json:"event_type"`
	OrderID    int64             `json:"order_id"`
	CustomerID int64             `json:"customer_id"`
	Status     string            `json:"status"`
	Total      string            `json:"total"`
	Version    int64             `json:"version"`
	Timestamp  time.Time         `json:"timestamp"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// NewProfileEvent создает событие профиля
func NewProfileEvent(eventType EventType, profile domain.Profile) *ProfileEvent {
	return &ProfileEvent{
		EventType: eventType,
		ProfileID: profile.ID,
		Email:     profile.Email,
		Role:      string(profile.Role),
		Status:    string(profile.Status),
		Version:   profile.Version,
		Timestamp: time.Now().UTC(),
	}
}

// NewOrderEvent создает событие заказа
func NewOrderEvent(eventType EventType, order domain.Order, metadata map[string]string) *OrderEvent {
	return &OrderEvent{
		EventType:  eventType,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Status:     string(order.Status),
		Total:      order.Total().StringFixed(2),
		Version:    order.Version,
		Timestamp:  time.Now().UTC(),
		Metadata:   metadata,
	}
}

// OutboxMessage сериализует событие в сообщение transactional outbox.
func (e *ProfileEvent) OutboxMessage() (domain.OutboxMessage, error) {
	return outboxMessage(domain.AggregateProfile, e.ProfileID, e.EventType, e)
}

// OutboxMessage сериализует событие в сообщение transactional outbox.
func (e *OrderEvent) OutboxMessage() (domain.OutboxMessage, error) {
	return outboxMessage(domain.AggregateOrder, e.OrderID, e.EventType, e)
}

func outboxMessage(aggregateType string, aggregateID int64, eventType EventType, event any) (domain.OutboxMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return domain.OutboxMessage{}, fmt.Errorf("marshal %s event: %w", eventType, err)
	}
	return domain.OutboxMessage{
		AggregateType: aggregateType,
		AggregateID:   fmt.Sprint(aggregateID),
		EventType:     string(eventType),
		Payload:       payload,
	}, nil
}
