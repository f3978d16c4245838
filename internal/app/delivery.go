package app

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/webshop/internal/metrics"
	"github.com/vladislavdragonenkov/webshop/internal/service/outbox"
)

// delivery связывает очередь outbox с Kafka. Без брокеров worker равен nil:
// события копятся в очереди и видны в метриках и readiness.
type delivery struct {
	worker   *outbox.Worker
	producer *kafka.Producer
	logger   *log.Entry
}

func newDelivery(cfg Config, repo domain.OutboxRepository, registry prometheus.Registerer, logger *log.Entry) *delivery {
	d := &delivery{logger: logger}
	if len(cfg.KafkaBrokers) == 0 {
		logger.Warn("kafka is not configured, outbox messages stay pending")
		return d
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, kafka.WithProducerLogger(logger))
	if err != nil {
		logger.WithError(err).Warn("kafka is unreachable, outbox messages stay pending")
		return d
	}
	logger.WithField("brokers", cfg.KafkaBrokers).Info("kafka producer connected")

	d.producer = producer
	d.worker = outbox.NewWorker(repo, kafka.NewOutboxPublisher(producer, cfg.KafkaTopic),
		outbox.WithDLQPublisher(kafka.NewDeadLetterPublisher(producer)),
		outbox.WithPollInterval(cfg.OutboxPollInterval),
		outbox.WithBatchSize(cfg.OutboxBatchSize),
		outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
		outbox.WithRetryBaseDelay(cfg.OutboxRetryDelay),
		outbox.WithMetrics(metrics.NewOutboxMetrics(registry)),
		outbox.WithLogger(logger.WithField("component", "outbox-worker")),
	)
	return d
}

func (d *delivery) close() {
	if d.producer == nil {
		return
	}
	if err := d.producer.Close(); err != nil {
		d.logger.WithError(err).Warn("failed to close kafka producer")
		return
	}
	d.logger.Info("kafka producer closed")
}
