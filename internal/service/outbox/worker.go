// Package outbox доставляет события профилей и заказов из очереди outbox в брокер.
package outbox

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/webshop/internal/metrics"
)

type workerConfig struct {
	logger         *log.Entry
	metrics        *metrics.OutboxMetrics
	dlq            domain.OutboxPublisher
	pollInterval   time.Duration
	batchSize      int
	maxAttempts    int
	retryBaseDelay time.Duration
}

func defaultWorkerConfig() workerConfig {
	return workerConfig{
		pollInterval:   time.Second,
		batchSize:      100,
		maxAttempts:    3,
		retryBaseDelay: 50 * time.Millisecond,
	}
}

// Option настраивает Worker.
type Option func(*workerConfig)

// WithLogger задаёт logger.
func WithLogger(logger *log.Entry) Option {
	return func(c *workerConfig) { c.logger = logger }
}

// WithMetrics задаёт метрики доставки.
func WithMetrics(m *metrics.OutboxMetrics) Option {
	return func(c *workerConfig) { c.metrics = m }
}

// WithDLQPublisher задаёт получателя событий, которые не удалось доставить.
func WithDLQPublisher(publisher domain.OutboxPublisher) Option {
	return func(c *workerConfig) { c.dlq = publisher }
}

// WithPollInterval задаёт паузу между опросами очереди.
func WithPollInterval(interval time.Duration) Option {
	return func(c *workerConfig) {
		if interval > 0 {
			c.pollInterval = interval
		}
	}
}

// WithBatchSize задаёт число событий, забираемых за один опрос.
func WithBatchSize(size int) Option {
	return func(c *workerConfig) {
		if size > 0 {
			c.batchSize = size
		}
	}
}

// WithMaxAttempts задаёт число попыток публикации одного события.
func WithMaxAttempts(attempts int) Option {
	return func(c *workerConfig) {
		if attempts > 0 {
			c.maxAttempts = attempts
		}
	}
}

// WithRetryBaseDelay задаёт паузу перед второй попыткой; дальше она удваивается.
// Ноль отключает паузы.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(c *workerConfig) { c.retryBaseDelay = max(delay, 0) }
}

// Worker публикует события в порядке постановки. Событие, не доставленное за
// maxAttempts попыток, копией уходит в DLQ и помечается failed; если DLQ
// недоступна, оно остаётся pending. Следующие события батча доставляются дальше.
type Worker struct {
	repo      domain.OutboxRepository
	publisher domain.OutboxPublisher
	cfg       workerConfig
}

// NewWorker создаёт воркер доставки.
func NewWorker(repo domain.OutboxRepository, publisher domain.OutboxPublisher, options ...Option) *Worker {
	cfg := defaultWorkerConfig()
	for _, option := range options {
		option(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.WithField("component", "outbox-worker")
	}
	return &Worker{repo: repo, publisher: publisher, cfg: cfg}
}

// Run опрашивает очередь до отмены ctx.
func (w *Worker) Run(ctx context.Context) {
	if w.repo == nil || w.publisher == nil {
		w.cfg.logger.Warn("outbox delivery is disabled: no repository or publisher")
		return
	}

	ticker := time.NewTicker(w.cfg.pollInterval)
	defer ticker.Stop()

	for {
		w.ProcessOnce(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// ProcessOnce доставляет один батч и возвращает число опубликованных событий.
func (w *Worker) ProcessOnce(ctx context.Context) int {
	if ctx.Err() != nil {
		return 0
	}
	defer w.reportBacklog(ctx)

	batch, err := w.repo.PullPending(ctx, w.cfg.batchSize)
	if err != nil {
		w.cfg.logger.WithError(err).Warn("failed to pull pending outbox messages")
		return 0
	}

	delivered := 0
	for _, msg := range batch {
		if ctx.Err() != nil {
			break
		}
		if w.deliver(ctx, msg) {
			delivered++
		}
	}
	return delivered
}

// deliver публикует одно событие и фиксирует исход в очереди.
func (w *Worker) deliver(ctx context.Context, msg domain.OutboxMessage) bool {
	logger := w.cfg.logger.WithFields(log.Fields{
		"outbox_id":    msg.ID,
		"event_type":   msg.EventType,
		"aggregate_id": msg.AggregateID,
	})

	publishErr := w.publish(ctx, msg)
	if publishErr == nil {
		if err := w.repo.MarkSent(ctx, msg.ID); err != nil {
			logger.WithError(err).Warn("event published but not marked as sent")
			return false
		}
		return true
	}
	if ctx.Err() != nil {
		return false
	}

	// Без копии в DLQ событие остаётся pending и повторяется следующим опросом.
	if err := w.deadLetter(msg, publishErr); err != nil {
		logger.WithError(err).WithField("cause", publishErr.Error()).Error("outbox event kept pending: DLQ publish failed")
		w.cfg.metrics.RecordAttempt("dlq_failed")
		return false
	}
	logger.WithError(publishErr).Error("outbox event dropped after retries")
	w.cfg.metrics.RecordAttempt("failed")
	if err := w.repo.MarkFailed(ctx, msg.ID); err != nil {
		logger.WithError(err).Warn("failed to mark outbox event as failed")
	}
	return false
}

func (w *Worker) publish(ctx context.Context, msg domain.OutboxMessage) error {
	var err error
	for attempt := 1; ; attempt++ {
		if err = w.publisher.Publish(msg); err == nil {
			w.cfg.metrics.RecordAttempt("sent")
			return nil
		}
		w.cfg.metrics.RecordAttempt("retry_error")
		if attempt == w.cfg.maxAttempts {
			return fmt.Errorf("publish failed after %d attempts: %w", attempt, err)
		}
		if delay := w.retryBackoff(attempt); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
}

// retryBackoff возвращает паузу после попытки attempt: base, 2*base, 4*base и так далее.
func (w *Worker) retryBackoff(attempt int) time.Duration {
	delay := w.cfg.retryBaseDelay
	if delay <= 0 {
		return 0
	}
	for ; attempt > 1; attempt-- {
		if delay > time.Duration(1<<62) {
			return time.Duration(1<<63 - 1)
		}
		delay *= 2
	}
	return delay
}

func (w *Worker) deadLetter(msg domain.OutboxMessage, cause error) error {
	if w.cfg.dlq == nil {
		return nil
	}
	letter, err := kafka.NewDeadLetterMessage(msg, cause)
	if err != nil {
		return err
	}
	if err := w.cfg.dlq.Publish(letter); err != nil {
		return fmt.Errorf("publish to dlq: %w", err)
	}
	return nil
}

func (w *Worker) reportBacklog(ctx context.Context) {
	stats, err := w.repo.Stats(ctx)
	if err != nil {
		w.cfg.logger.WithError(err).Warn("failed to collect outbox backlog stats")
		return
	}
	w.cfg.metrics.SetBacklog(stats, time.Now().UTC())
}
