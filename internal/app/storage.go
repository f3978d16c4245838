package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/fixtures"
	"github.com/vladislavdragonenkov/webshop/internal/health"
	"github.com/vladislavdragonenkov/webshop/internal/storage/memory"
	"github.com/vladislavdragonenkov/webshop/internal/storage/postgres"
)

// storageTarget — хранилище, которое пингуется и перезагружается наборами данных.
type storageTarget interface {
	fixtures.Target
	health.Pinger
}

// runtimeDependencies — репозитории выбранного хранилища.
type runtimeDependencies struct {
	profiles    domain.ProfileRepository
	orders      domain.OrderRepository
	catalog     domain.CatalogRepository
	timeline    domain.TimelineRepository
	outbox      domain.OutboxRepository
	idempotency domain.IdempotencyRepository
	storage     storageTarget
	closeFn     func() error
}

// initRuntimeDependencies открывает хранилище по cfg.StorageDriver.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory, "":
		store := memory.NewStore()
		logger.Info("using in-memory storage")
		return &runtimeDependencies{
			profiles:    memory.NewProfileRepository(store),
			orders:      memory.NewOrderRepository(store),
			catalog:     memory.NewCatalogRepository(store),
			timeline:    memory.NewTimelineRepository(store),
			outbox:      store.Outbox(),
			idempotency: memory.NewIdempotencyRepository(),
			storage:     store,
			closeFn:     func() error { return nil },
		}, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres dsn is required for storage driver %q", cfg.StorageDriver)
		}
		pool := postgres.DefaultPoolOptions()
		pool.MaxOpenConns = cfg.PostgresMaxConns
		pool.MaxIdleConns = cfg.PostgresMaxConns
		store, err := postgres.OpenWithOptions(ctx, cfg.PostgresDSN, pool)
		if err != nil {
			return nil, err
		}
		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("apply migrations: %w", err)
			}
			logger.Info("postgres migrations applied")
		}
		logger.Info("using postgres storage")
		return &runtimeDependencies{
			profiles:    postgres.NewProfileRepository(store),
			orders:      postgres.NewOrderRepository(store),
			catalog:     postgres.NewCatalogRepository(store),
			timeline:    postgres.NewTimelineRepository(store),
			outbox:      postgres.NewOutboxRepository(store),
			idempotency: postgres.NewIdempotencyRepository(store),
			storage:     store,
			closeFn:     store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
