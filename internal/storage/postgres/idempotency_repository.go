package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

const (
	defaultReplayTTL = 24 * time.Hour

	idempotencyColumns = `profile_id, key, method, request_hash, state, code, response, expires_at, created_at, updated_at`
)

type idempotencyRepository struct {
	store *Store
}

// NewIdempotencyRepository создаёт PostgreSQL-реализацию IdempotencyRepository.
func NewIdempotencyRepository(store *Store) domain.IdempotencyRepository {
	return &idempotencyRepository{store: store}
}

// Claim вставляет запись; истёкшая запись под тем же ключом перезаписывается
// одним upsert, живая остаётся нетронутой.
func (r *idempotencyRepository) Claim(ctx context.Context, record domain.IdempotencyRecord) (domain.IdempotencyRecord, error) {
	now := r.store.now()
	record, err := domain.PrepareClaim(record, now, defaultReplayTTL)
	if err != nil {
		return domain.IdempotencyRecord{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.store.db.ExecContext(ctx, `
		INSERT INTO idempotency_keys (`+idempotencyColumns+`)
		VALUES ($1, $2, $3, $4, $5, 0, NULL, $6, $7, $7)
		ON CONFLICT (profile_id, key) DO UPDATE
		SET method = EXCLUDED.method,
		    request_hash = EXCLUDED.request_hash,
		    state = EXCLUDED.state,
		    code = 0,
		    response = NULL,
		    expires_at = EXCLUDED.expires_at,
		    created_at = EXCLUDED.created_at,
		    updated_at = EXCLUDED.updated_at
		WHERE idempotency_keys.expires_at <= $7
	`,
		record.Scope.ProfileID, record.Scope.Key, record.Method, record.RequestHash,
		string(record.State), record.ExpiresAt, now,
	)
	if err != nil {
		return domain.IdempotencyRecord{}, fmt.Errorf("claim idempotency key %s: %w", record.Scope, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.IdempotencyRecord{}, fmt.Errorf("idempotency rows affected: %w", err)
	}
	if affected > 0 {
		return record, nil
	}

	existing, err := r.Get(ctx, record.Scope)
	if err != nil {
		return domain.IdempotencyRecord{}, err
	}
	if !existing.Matches(record.Method, record.RequestHash) {
		return existing, domain.WithKey(domain.ErrIdempotencyHashMismatch, record.Scope)
	}
	return existing, domain.WithKey(domain.ErrIdempotencyKeyAlreadyExists, record.Scope)
}

func (r *idempotencyRepository) Get(ctx context.Context, scope domain.ReplayScope) (domain.IdempotencyRecord, error) {
	scope, err := scope.Normalize()
	if err != nil {
		return domain.IdempotencyRecord{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	record, err := scanIdempotencyRecord(r.store.db.QueryRowContext(ctx, `
		SELECT `+idempotencyColumns+`
		FROM idempotency_keys
		WHERE profile_id = $1 AND key = $2
	`, scope.ProfileID, scope.Key))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.IdempotencyRecord{}, domain.WithKey(domain.ErrIdempotencyKeyNotFound, scope)
	}
	if err != nil {
		return domain.IdempotencyRecord{}, fmt.Errorf("get idempotency key %s: %w", scope, err)
	}
	return record, nil
}

// Settle переводит pending-запись в итоговую стадию. Уже завершённая запись
// не перезаписывается.
func (r *idempotencyRepository) Settle(ctx context.Context, scope domain.ReplayScope, state domain.ReplayState, code uint32, response []byte) error {
	if !state.Settled() {
		return domain.WithKey(domain.ErrInvalidReplayState, state)
	}
	scope, err := scope.Normalize()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.store.db.ExecContext(ctx, `
		UPDATE idempotency_keys
		SET state = $3, code = $4, response = $5, updated_at = $6
		WHERE profile_id = $1 AND key = $2 AND state = 'pending'
	`, scope.ProfileID, scope.Key, string(state), int64(code), response, r.store.now())
	if err != nil {
		return fmt.Errorf("settle idempotency key %s: %w", scope, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("idempotency rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	return r.settledOrMissing(ctx, scope)
}

// Release удаляет pending-запись; завершённая остаётся для повторов.
func (r *idempotencyRepository) Release(ctx context.Context, scope domain.ReplayScope) error {
	scope, err := scope.Normalize()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.store.db.ExecContext(ctx, `
		DELETE FROM idempotency_keys
		WHERE profile_id = $1 AND key = $2 AND state = 'pending'
	`, scope.ProfileID, scope.Key)
	if err != nil {
		return fmt.Errorf("release idempotency key %s: %w", scope, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("idempotency rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}
	return r.settledOrMissing(ctx, scope)
}

// settledOrMissing объясняет, почему pending-запись по ключу не нашлась.
func (r *idempotencyRepository) settledOrMissing(ctx context.Context, scope domain.ReplayScope) error {
	found, err := exists(ctx, r.store.db, `SELECT EXISTS (SELECT 1 FROM idempotency_keys WHERE profile_id = $1 AND key = $2)`,
		scope.ProfileID, scope.Key)
	if err != nil {
		return err
	}
	if found {
		return domain.WithKey(domain.ErrIdempotencyAlreadySettled, scope)
	}
	return domain.WithKey(domain.ErrIdempotencyKeyNotFound, scope)
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error) {
	if before.IsZero() {
		before = r.store.now()
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		res sql.Result
		err error
	)
	if limit > 0 {
		res, err = r.store.db.ExecContext(ctx, `
			DELETE FROM idempotency_keys
			WHERE (profile_id, key) IN (
				SELECT profile_id, key
				FROM idempotency_keys
				WHERE expires_at <= $1
				ORDER BY expires_at
				LIMIT $2
			)
		`, before, limit)
	} else {
		res, err = r.store.db.ExecContext(ctx, `DELETE FROM idempotency_keys WHERE expires_at <= $1`, before)
	}
	if err != nil {
		return 0, fmt.Errorf("delete expired idempotency keys: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("idempotency rows affected: %w", err)
	}
	return int(affected), nil
}

func scanIdempotencyRecord(row rowScanner) (domain.IdempotencyRecord, error) {
	var (
		record   domain.IdempotencyRecord
		state    string
		code     int64
		response []byte
	)
	if err := row.Scan(
		&record.Scope.ProfileID, &record.Scope.Key, &record.Method, &record.RequestHash,
		&state, &code, &response, &record.ExpiresAt, &record.CreatedAt, &record.UpdatedAt,
	); err != nil {
		return domain.IdempotencyRecord{}, err
	}

	record.State = domain.ReplayState(state)
	if !record.State.Valid() {
		return domain.IdempotencyRecord{}, fmt.Errorf("invalid replay state %q for key %s", state, record.Scope)
	}
	if code < 0 || code > int64(^uint32(0)) {
		return domain.IdempotencyRecord{}, fmt.Errorf("invalid replay code %d for key %s", code, record.Scope)
	}
	record.Code = uint32(code)
	if response != nil {
		record.Response = append([]byte(nil), response...)
	}
	return record, nil
}

var _ domain.IdempotencyRepository = (*idempotencyRepository)(nil)
