// Package kafka публикует события магазина в Kafka и переигрывает недоставленные сообщения из DLQ.
package kafka

import (
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

var errProducerClosed = errors.New("kafka producer is not initialized")

// Record — одно сообщение для отправки.
type Record struct {
	Topic   string
	Key     string
	Value   []byte
	Headers map[string]string
}

func (r Record) message(now time.Time) *sarama.ProducerMessage {
	msg := &sarama.ProducerMessage{
		Topic:     r.Topic,
		Key:       sarama.StringEncoder(r.Key),
		Value:     sarama.ByteEncoder(r.Value),
		Timestamp: now,
		Headers:   make([]sarama.RecordHeader, 0, len(r.Headers)),
	}
	for name, value := range r.Headers {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(name), Value: []byte(value)})
	}
	return msg
}

// Producer синхронно отправляет записи; ключ записи задаёт партицию, поэтому
// события одного агрегата приходят потребителю по порядку.
type Producer struct {
	sync   sarama.SyncProducer
	logger *log.Entry
}

// ProducerOption настраивает Producer.
type ProducerOption func(*Producer)

// WithProducerLogger задаёт logger.
func WithProducerLogger(logger *log.Entry) ProducerOption {
	return func(p *Producer) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProducer подключается к брокерам идемпотентным producer'ом с подтверждением от всех реплик.
func NewProducer(brokers []string, opts ...ProducerOption) (*Producer, error) {
	sync, err := sarama.NewSyncProducer(brokers, ProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("connect kafka producer to %v: %w", brokers, err)
	}
	return NewProducerFromSync(sync, opts...), nil
}

// NewProducerFromSync оборачивает готовый sarama.SyncProducer, например из sarama/mocks.
func NewProducerFromSync(sync sarama.SyncProducer, opts ...ProducerOption) *Producer {
	p := &Producer{sync: sync, logger: log.WithField("component", "kafka-producer")}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProducerConfig возвращает настройки sarama для доставки без дублей внутри сессии producer'а.
func ProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = "webshop"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Compression = sarama.CompressionSnappy
	cfg.Net.MaxOpenRequests = 1
	return cfg
}

// Send отправляет запись и ждёт подтверждения брокера.
func (p *Producer) Send(rec Record) error {
	if p == nil || p.sync == nil {
		return errProducerClosed
	}

	fields := log.Fields{"topic": rec.Topic, "key": rec.Key}
	partition, offset, err := p.sync.SendMessage(rec.message(time.Now()))
	if err != nil {
		p.logger.WithError(err).WithFields(fields).Error("kafka send failed")
		return fmt.Errorf("send to %s: %w", rec.Topic, err)
	}
	p.logger.WithFields(fields).WithFields(log.Fields{"partition": partition, "offset": offset}).Debug("kafka message sent")
	return nil
}

// Close закрывает соединения с брокерами.
func (p *Producer) Close() error {
	if p == nil || p.sync == nil {
		return nil
	}
	if err := p.sync.Close(); err != nil {
		return fmt.Errorf("close kafka producer: %w", err)
	}
	return nil
}
