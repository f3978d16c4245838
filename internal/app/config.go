package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vladislavdragonenkov/webshop/internal/messaging/kafka"
)

const (
	// StorageDriverMemory — хранилище в памяти процесса.
	StorageDriverMemory = "memory"
	// StorageDriverPostgres — PostgreSQL через pgx.
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска магазина.
type Config struct {
	GRPCAddr    string
	MetricsAddr string

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool
	PostgresMaxConns    int
	FixtureDataset      string

	KafkaBrokers []string
	KafkaTopic   string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
	OutboxRetryDelay   time.Duration
	OutboxMaxPending   int

	IdempotencyTTL              time.Duration
	IdempotencyCleanupInterval  time.Duration
	IdempotencyCleanupBatchSize int

	BcryptCost int
}

// DefaultConfig возвращает настройки по умолчанию: память, без Kafka.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:                    ":50051",
		MetricsAddr:                 ":9090",
		StorageDriver:               StorageDriverMemory,
		PostgresAutoMigrate:         true,
		PostgresMaxConns:            25,
		KafkaTopic:                  kafka.TopicShopEvents,
		OutboxPollInterval:          time.Second,
		OutboxBatchSize:             100,
		OutboxMaxAttempts:           3,
		OutboxRetryDelay:            50 * time.Millisecond,
		OutboxMaxPending:            1000,
		IdempotencyTTL:              24 * time.Hour,
		IdempotencyCleanupInterval:  10 * time.Minute,
		IdempotencyCleanupBatchSize: 500,
		BcryptCost:                  bcrypt.DefaultCost,
	}
}

// LoadConfigFromEnv читает WEBSHOP_* поверх DefaultConfig. lookup обычно os.LookupEnv.
func LoadConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	env := envReader{lookup: lookup}

	env.str("WEBSHOP_GRPC_ADDR", &cfg.GRPCAddr)
	env.str("WEBSHOP_METRICS_ADDR", &cfg.MetricsAddr)
	env.str("WEBSHOP_STORAGE_DRIVER", &cfg.StorageDriver)
	env.str("WEBSHOP_POSTGRES_DSN", &cfg.PostgresDSN)
	env.boolean("WEBSHOP_POSTGRES_AUTO_MIGRATE", &cfg.PostgresAutoMigrate)
	env.integer("WEBSHOP_POSTGRES_MAX_CONNS", &cfg.PostgresMaxConns)
	env.str("WEBSHOP_FIXTURE_DATASET", &cfg.FixtureDataset)
	env.list("KAFKA_BROKERS", &cfg.KafkaBrokers)
	env.str("WEBSHOP_KAFKA_TOPIC", &cfg.KafkaTopic)
	env.duration("WEBSHOP_OUTBOX_POLL_INTERVAL", &cfg.OutboxPollInterval)
	env.integer("WEBSHOP_OUTBOX_BATCH_SIZE", &cfg.OutboxBatchSize)
	env.integer("WEBSHOP_OUTBOX_MAX_ATTEMPTS", &cfg.OutboxMaxAttempts)
	env.duration("WEBSHOP_OUTBOX_RETRY_DELAY", &cfg.OutboxRetryDelay)
	env.integer("WEBSHOP_OUTBOX_MAX_PENDING", &cfg.OutboxMaxPending)
	env.duration("WEBSHOP_IDEMPOTENCY_TTL", &cfg.IdempotencyTTL)
	env.duration("WEBSHOP_IDEMPOTENCY_CLEANUP_INTERVAL", &cfg.IdempotencyCleanupInterval)
	env.integer("WEBSHOP_IDEMPOTENCY_CLEANUP_BATCH_SIZE", &cfg.IdempotencyCleanupBatchSize)
	env.integer("WEBSHOP_BCRYPT_COST", &cfg.BcryptCost)

	if env.err != nil {
		return Config{}, env.err
	}
	return cfg, cfg.Validate()
}

// Validate проверяет согласованность настроек.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("WEBSHOP_POSTGRES_DSN is required for storage driver %q", c.StorageDriver)
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.StorageDriver)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.OutboxBatchSize <= 0 || c.OutboxMaxAttempts <= 0 || c.IdempotencyCleanupBatchSize <= 0 {
		return fmt.Errorf("batch sizes and attempts must be positive")
	}
	return nil
}

// envReader запоминает первую ошибку разбора.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *envReader) value(key string) (string, bool) {
	if r.err != nil || r.lookup == nil {
		return "", false
	}
	v, ok := r.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *envReader) str(key string, dst *string) {
	if v, ok := r.value(key); ok {
		*dst = v
	}
}

func (r *envReader) list(key string, dst *[]string) {
	v, ok := r.value(key)
	if !ok {
		return
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*dst = out
}

func (r *envReader) boolean(key string, dst *bool) {
	v, ok := r.value(key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		r.err = fmt.Errorf("parse %s: %w", key, err)
		return
	}
	*dst = parsed
}

func (r *envReader) integer(key string, dst *int) {
	v, ok := r.value(key)
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		r.err = fmt.Errorf("parse %s: %w", key, err)
		return
	}
	*dst = parsed
}

func (r *envReader) duration(key string, dst *time.Duration) {
	v, ok := r.value(key)
	if !ok {
		return
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		r.err = fmt.Errorf("parse %s: %w", key, err)
		return
	}
	*dst = parsed
}
