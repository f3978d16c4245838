// Package idempotency обслуживает ключи повтора изменяющих вызовов.
package idempotency

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/metrics"
)

const (
	defaultCleanupInterval  = 10 * time.Minute
	defaultCleanupBatchSize = 500
)

type cleanupConfig struct {
	logger    *log.Entry
	metrics   *metrics.CleanupMetrics
	interval  time.Duration
	batchSize int
	clock     func() time.Time
}

func (c cleanupConfig) normalized() cleanupConfig {
	if c.logger == nil {
		c.logger = log.WithField("component", "idempotency-cleanup")
	}
	if c.interval <= 0 {
		c.interval = defaultCleanupInterval
	}
	if c.batchSize <= 0 {
		c.batchSize = defaultCleanupBatchSize
	}
	if c.clock == nil {
		c.clock = func() time.Time { return time.Now().UTC() }
	}
	return c
}

// CleanupOption настраивает CleanupWorker.
type CleanupOption func(*cleanupConfig)

// WithLogger задаёт logger.
func WithLogger(logger *log.Entry) CleanupOption {
	return func(c *cleanupConfig) { c.logger = logger }
}

// WithMetrics задаёт метрики очистки.
func WithMetrics(m *metrics.CleanupMetrics) CleanupOption {
	return func(c *cleanupConfig) { c.metrics = m }
}

// WithInterval задаёт паузу между проходами.
func WithInterval(interval time.Duration) CleanupOption {
	return func(c *cleanupConfig) { c.interval = interval }
}

// WithBatchSize ограничивает число записей, удаляемых одним запросом к хранилищу.
func WithBatchSize(batchSize int) CleanupOption {
	return func(c *cleanupConfig) { c.batchSize = batchSize }
}

// CleanupWorker удаляет просроченные ключи повтора, чтобы таблица не росла без границ.
type CleanupWorker struct {
	repo domain.IdempotencyRepository
	cfg  cleanupConfig
}

// NewCleanupWorker создаёт воркер очистки.
func NewCleanupWorker(repo domain.IdempotencyRepository, options ...CleanupOption) *CleanupWorker {
	var cfg cleanupConfig
	for _, option := range options {
		option(&cfg)
	}
	return &CleanupWorker{repo: repo, cfg: cfg.normalized()}
}

// Run чистит ключи сразу и затем каждые interval до отмены ctx.
func (w *CleanupWorker) Run(ctx context.Context) {
	if w.repo == nil {
		w.cfg.logger.Warn("idempotency cleanup is disabled: no repository")
		return
	}

	ticker := time.NewTicker(w.cfg.interval)
	defer ticker.Stop()

	for {
		w.sweep(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (w *CleanupWorker) sweep(ctx context.Context) {
	deleted, err := w.DeleteExpired(ctx, w.cfg.clock())
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return
	case err != nil:
		w.cfg.metrics.RecordRun(err, deleted)
		w.cfg.logger.WithError(err).WithField("deleted", deleted).Warn("idempotency cleanup failed")
	default:
		w.cfg.metrics.RecordRun(nil, deleted)
		if deleted > 0 {
			w.cfg.logger.WithField("deleted", deleted).Info("expired idempotency keys removed")
		}
	}
}

// DeleteExpired удаляет записи с ExpiresAt <= before, пока хранилище отдаёт полные порции.
// Возвращает число удалённых записей, в том числе при ошибке на середине.
func (w *CleanupWorker) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	if before.IsZero() {
		before = w.cfg.clock()
	}

	var total int
	for ctx.Err() == nil {
		n, err := w.repo.DeleteExpired(ctx, before, w.cfg.batchSize)
		total += n
		w.cfg.metrics.AddDeleted(n)
		if err != nil {
			return total, err
		}
		if n < w.cfg.batchSize {
			return total, nil
		}
	}
	return total, ctx.Err()
}
