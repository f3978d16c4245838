package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// DeadLetter описывает событие outbox, которое не удалось доставить.
type DeadLetter struct {
	OutboxID      string          `json:"outbox_id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishError  string          `json:"publish_error"`
	FailedAt      time.Time       `json:"failed_at"`
}

// NewDeadLetterMessage упаковывает недоставленное событие в сообщение для DLQ.
func NewDeadLetterMessage(event domain.OutboxMessage, publishErr error) (domain.OutboxMessage, error) {
	original := json.RawMessage(event.Payload)
	if len(original) == 0 {
		original = json.RawMessage("null")
	}
	reason := ""
	if publishErr != nil {
		reason = publishErr.Error()
	}
	payload, err := json.Marshal(DeadLetter{
		OutboxID:      event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       original,
		PublishError:  reason,
		FailedAt:      time.Now().UTC(),
	})
	if err != nil {
		return domain.OutboxMessage{}, fmt.Errorf("marshal dead letter %s: %w", event.ID, err)
	}
	return domain.OutboxMessage{
		ID:            event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       payload,
	}, nil
}

// DecodeDeadLetter восстанавливает исходное событие из значения сообщения DLQ.
func DecodeDeadLetter(value []byte) (domain.OutboxMessage, DeadLetter, error) {
	var envelope Envelope
	if err := json.Unmarshal(value, &envelope); err != nil {
		return domain.OutboxMessage{}, DeadLetter{}, fmt.Errorf("decode dlq envelope: %w", err)
	}
	if len(envelope.Payload) == 0 || string(envelope.Payload) == "null" {
		return domain.OutboxMessage{}, DeadLetter{}, fmt.Errorf("dlq envelope %q has no payload", envelope.ID)
	}

	var letter DeadLetter
	if err := json.Unmarshal(envelope.Payload, &letter); err != nil {
		return domain.OutboxMessage{}, DeadLetter{}, fmt.Errorf("decode dead letter %q: %w", envelope.ID, err)
	}
	if len(letter.Payload) == 0 {
		return domain.OutboxMessage{}, DeadLetter{}, fmt.Errorf("dead letter %q does not carry the original payload", envelope.ID)
	}

	return domain.OutboxMessage{
		ID:            firstNonEmpty(letter.OutboxID, envelope.ID),
		AggregateType: firstNonEmpty(letter.AggregateType, envelope.AggregateType),
		AggregateID:   firstNonEmpty(letter.AggregateID, envelope.AggregateID),
		EventType:     firstNonEmpty(letter.EventType, envelope.EventType),
		Payload:       letter.Payload,
	}, letter, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
