package postgres

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/fixtures"
)

// integrationDSN берёт адрес тестовой базы из окружения; пустая строка пропускает тест.
func integrationDSN() string {
	for _, key := range []string{"WEBSHOP_POSTGRES_TEST_DSN", "WEBSHOP_POSTGRES_DSN"} {
		if dsn := strings.TrimSpace(os.Getenv(key)); dsn != "" {
			return dsn
		}
	}
	return ""
}

// openPostgresStoreForIntegrationTest возвращает мигрированную базу с загруженным набором "webshop".
func openPostgresStoreForIntegrationTest(t *testing.T) *Store {
	t.Helper()

	store := openRawPostgresStoreForIntegrationTest(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	require.NoError(t, store.EnsureSchema(ctx))
	_, err := store.DB().ExecContext(ctx, `TRUNCATE TABLE idempotency_keys, outbox_messages`)
	require.NoError(t, err)

	reloader := fixtures.NewReloader(store, auth.NewBcryptHasher(bcrypt.MinCost))
	require.NoError(t, reloader.ReloadFixtures(ctx, fixtures.DefaultDataset))
	return store
}

func openRawPostgresStoreForIntegrationTest(t *testing.T) *Store {
	t.Helper()

	dsn := integrationDSN()
	if dsn == "" {
		t.Skip("WEBSHOP_POSTGRES_TEST_DSN is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store, err := Open(ctx, dsn)
	if err != nil {
		t.Skipf("postgres is not available at %s: %v", dsn, err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}
