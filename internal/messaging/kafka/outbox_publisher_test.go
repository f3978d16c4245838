package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

func TestOutboxPublisher_Publish(t *testing.T) {
	t.Parallel()

	producer, mockProducer := testProducer(t)
	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var envelope Envelope
		if err := json.Unmarshal(val, &envelope); err != nil {
			return err
		}
		if envelope.AggregateID != "700" || envelope.EventType != string(EventTypeOrderStatusChanged) {
			return fmt.Errorf("unexpected envelope %+v", envelope)
		}
		if string(envelope.Payload) != `{"status":"processing"}` {
			return fmt.Errorf("unexpected payload %s", envelope.Payload)
		}
		return nil
	})

	publisher := NewOutboxPublisher(producer, "")
	if publisher.Topic() != TopicShopEvents {
		t.Fatalf("expected default topic %s, got %s", TopicShopEvents, publisher.Topic())
	}

	err := publisher.Publish(domain.OutboxMessage{
		ID:            "outbox-1",
		AggregateType: domain.AggregateOrder,
		AggregateID:   "700",
		EventType:     string(EventTypeOrderStatusChanged),
		Payload:       []byte(`{"status":"processing"}`),
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOutboxPublisher_PublishProducerError(t *testing.T) {
	t.Parallel()

	producer, mockProducer := testProducer(t)
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := NewDeadLetterPublisher(producer).Publish(domain.OutboxMessage{
		ID:          "outbox-2",
		AggregateID: "701",
		EventType:   string(EventTypeOrderComplaintFiled),
		Payload:     []byte(`{}`),
	})
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected broker error, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOutboxPublisher_PublishNilProducer(t *testing.T) {
	t.Parallel()

	publisher := NewOutboxPublisher(nil, TopicShopEvents)
	if err := publisher.Publish(domain.OutboxMessage{ID: "outbox-3"}); err == nil {
		t.Fatal("expected error for nil producer")
	}
}

func TestDeadLetter_RoundTripThroughEnvelope(t *testing.T) {
	t.Parallel()

	original := domain.OutboxMessage{
		ID:            "outbox-4",
		AggregateType: domain.AggregateProfile,
		AggregateID:   "5",
		EventType:     string(EventTypeProfileUpdated),
		Payload:       []byte(`{"profile_id":5}`),
	}
	letter, err := NewDeadLetterMessage(original, errors.New("broker down"))
	if err != nil {
		t.Fatalf("dead letter: %v", err)
	}
	value, err := json.Marshal(Envelope{ID: letter.ID, AggregateID: letter.AggregateID, Payload: letter.Payload})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}

	decoded, meta, err := DecodeDeadLetter(value)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ID != original.ID || decoded.EventType != original.EventType || decoded.AggregateType != original.AggregateType {
		t.Fatalf("unexpected decoded message %+v", decoded)
	}
	if string(decoded.Payload) != string(original.Payload) {
		t.Fatalf("expected payload %s, got %s", original.Payload, decoded.Payload)
	}
	if meta.PublishError != "broker down" {
		t.Fatalf("expected publish error to survive, got %q", meta.PublishError)
	}
}

func TestDecodeDeadLetter_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"not json":      `garbage`,
		"no payload":    `{"id":"x"}`,
		"null payload":  `{"id":"x","payload":null}`,
		"empty letter":  `{"id":"x","payload":{"outbox_id":"x"}}`,
		"broken letter": `{"id":"x","payload":"text"}`,
	}
	for name, value := range cases {
		if _, _, err := DecodeDeadLetter([]byte(value)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
