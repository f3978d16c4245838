package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// Envelope — значение Kafka-сообщения с событием из outbox.
type Envelope struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishedAt   time.Time       `json:"published_at"`
}

func envelopeOf(event domain.OutboxMessage, at time.Time) Envelope {
	payload := json.RawMessage(event.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return Envelope{
		ID:            event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       payload,
		PublishedAt:   at.UTC(),
	}
}

// OutboxTopicPublisher отправляет события outbox в один топик. Ключ сообщения —
// идентификатор агрегата, так что события одного заказа или профиля не
// обгоняют друг друга.
type OutboxTopicPublisher struct {
	producer *Producer
	topic    string
}

// NewOutboxPublisher создаёт паблишер; пустой topic означает TopicShopEvents.
func NewOutboxPublisher(producer *Producer, topic string) *OutboxTopicPublisher {
	if topic == "" {
		topic = TopicShopEvents
	}
	return &OutboxTopicPublisher{producer: producer, topic: topic}
}

// NewDeadLetterPublisher создаёт паблишер в TopicDeadLetterQueue.
func NewDeadLetterPublisher(producer *Producer) *OutboxTopicPublisher {
	return NewOutboxPublisher(producer, TopicDeadLetterQueue)
}

// Topic возвращает целевой топик.
func (p *OutboxTopicPublisher) Topic() string {
	return p.topic
}

// Publish упаковывает событие в Envelope и отправляет его.
func (p *OutboxTopicPublisher) Publish(event domain.OutboxMessage) error {
	return p.publish(event, nil)
}

func (p *OutboxTopicPublisher) publish(event domain.OutboxMessage, extra map[string]string) error {
	if p == nil || p.producer == nil {
		return errors.New("kafka outbox publisher has no producer")
	}

	value, err := json.Marshal(envelopeOf(event, time.Now()))
	if err != nil {
		return fmt.Errorf("marshal envelope for %s: %w", event.ID, err)
	}

	key := event.AggregateID
	if key == "" {
		key = event.ID
	}
	headers := map[string]string{HeaderEventType: event.EventType}
	maps.Copy(headers, extra)

	return p.producer.Send(Record{Topic: p.topic, Key: key, Value: value, Headers: headers})
}

var _ domain.OutboxPublisher = (*OutboxTopicPublisher)(nil)
