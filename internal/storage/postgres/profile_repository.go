package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

const profileColumns = `id, email, last_name, first_name, telephone_no, role, status, password_hash,
	address_name, street, house_no, postcode, city, version, created_at, updated_at`

type profileRepository struct {
	store *Store
}

// NewProfileRepository создаёт PostgreSQL-реализацию ProfileRepository.
func NewProfileRepository(store *Store) domain.ProfileRepository {
	return &profileRepository{store: store}
}

// Create вставляет профиль и пишет журнал в одной транзакции.
func (r *profileRepository) Create(ctx context.Context, profile domain.Profile, journal domain.ProfileJournal) (domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := r.store.now()
	profile.Email = domain.NormalizeEmail(profile.Email)
	profile.Version = 0
	profile.CreatedAt = now
	profile.UpdatedAt = now
	profile.Orders = nil

	err := inTx(ctx, r.store.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO profiles (
				email, last_name, first_name, telephone_no, role, status, password_hash,
				address_name, street, house_no, postcode, city, version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,0,$13,$13)
			RETURNING id
		`,
			profile.Email, profile.LastName, profile.FirstName, profile.TelephoneNo,
			string(profile.Role), string(profile.Status), profile.PasswordHash,
			profile.Address.Name, profile.Address.Street, profile.Address.HouseNo,
			profile.Address.Postcode, profile.Address.City, now,
		).Scan(&profile.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.WithKey(domain.ErrProfileDuplicate, profile.Email)
			}
			return fmt.Errorf("insert profile: %w", err)
		}
		return r.journal(ctx, tx, journal, profile, now)
	})
	if err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (r *profileRepository) Get(ctx context.Context, id int64) (domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.store.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, domain.WithKey(domain.ErrProfileNotFound, id)
	}
	return profile, err
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	email = domain.NormalizeEmail(email)
	row := r.store.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE lower(email) = $1`, email)
	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, domain.WithKey(domain.ErrProfileNotFound, email)
	}
	return profile, err
}

func (r *profileRepository) ListByLastName(ctx context.Context, lastName string) ([]domain.Profile, error) {
	return r.list(ctx, `SELECT `+profileColumns+` FROM profiles WHERE lower(last_name) = lower($1) ORDER BY id`, lastName)
}

func (r *profileRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.Profile, error) {
	return r.list(ctx, `SELECT `+profileColumns+` FROM profiles WHERE role = $1 ORDER BY id`, string(role))
}

// Update применяет изменения одним UPDATE с условием на версию и пишет журнал
// в той же транзакции. Пустой хэш пароля сохраняет текущий.
func (r *profileRepository) Update(ctx context.Context, profile domain.Profile, journal domain.ProfileJournal) (domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := r.store.now()
	var updated domain.Profile
	err := inTx(ctx, r.store.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE profiles
			SET email = $1,
			    last_name = $2,
			    first_name = $3,
			    telephone_no = $4,
			    role = $5,
			    status = $6,
			    password_hash = COALESCE(NULLIF($7, ''), password_hash),
			    address_name = $8,
			    street = $9,
			    house_no = $10,
			    postcode = $11,
			    city = $12,
			    version = version + 1,
			    updated_at = $13
			WHERE id = $14
			  AND version = $15
			RETURNING `+profileColumns,
			domain.NormalizeEmail(profile.Email), profile.LastName, profile.FirstName, profile.TelephoneNo,
			string(profile.Role), string(profile.Status), profile.PasswordHash,
			profile.Address.Name, profile.Address.Street, profile.Address.HouseNo,
			profile.Address.Postcode, profile.Address.City,
			now, profile.ID, profile.Version,
		)
		var err error
		updated, err = scanProfile(row)
		switch {
		case err == nil:
			return r.journal(ctx, tx, journal, updated, now)
		case errors.Is(err, sql.ErrNoRows):
			return guardFailure(ctx, tx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE id = $1)`, profile.ID)
		case isUniqueViolation(err):
			return domain.WithKey(domain.ErrProfileDuplicate, domain.NormalizeEmail(profile.Email))
		default:
			return err
		}
	})
	if err != nil {
		return domain.Profile{}, err
	}
	return updated, nil
}

// Delete удаляет профиль в транзакции: строка блокируется, версия и ссылки проверяются до удаления.
func (r *profileRepository) Delete(ctx context.Context, id, version int64, journal domain.Journal) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return inTx(ctx, r.store.db, func(tx *sql.Tx) error {
		var stored int64
		err := tx.QueryRowContext(ctx, `SELECT version FROM profiles WHERE id = $1 FOR UPDATE`, id).Scan(&stored)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.WithKey(domain.ErrConcurrentDelete, id)
		}
		if err != nil {
			return fmt.Errorf("lock profile: %w", err)
		}
		if stored != version {
			return domain.WithKey(domain.ErrConcurrentUpdate, id)
		}

		hasOrders, err := exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM orders WHERE customer_id = $1)`, id)
		if err != nil {
			return err
		}
		if hasOrders {
			return domain.WithKey(domain.ErrProfileHasOrders, id)
		}
		hasArticles, err := exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM articles WHERE supplier_id = $1)`, id)
		if err != nil {
			return err
		}
		if hasArticles {
			return domain.WithKey(domain.ErrProfileHasArticles, id)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		return writeJournal(ctx, tx, journal, r.store.now())
	})
}

func (r *profileRepository) journal(ctx context.Context, q querier, journal domain.ProfileJournal, profile domain.Profile, now time.Time) error {
	j, err := journal.Build(profile)
	if err != nil {
		return err
	}
	return writeJournal(ctx, q, j, now)
}

func (r *profileRepository) list(ctx context.Context, query string, args ...any) ([]domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]domain.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile rows: %w", err)
	}
	return profiles, nil
}

func scanProfile(row rowScanner) (domain.Profile, error) {
	var (
		p      domain.Profile
		role   string
		status string
	)
	err := row.Scan(
		&p.ID, &p.Email, &p.LastName, &p.FirstName, &p.TelephoneNo, &role, &status, &p.PasswordHash,
		&p.Address.Name, &p.Address.Street, &p.Address.HouseNo, &p.Address.Postcode, &p.Address.City,
		&p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, err
		}
		return domain.Profile{}, fmt.Errorf("scan profile: %w", err)
	}
	p.Role = domain.Role(role)
	p.Status = domain.ProfileStatus(status)
	return p, nil
}

var _ domain.ProfileRepository = (*profileRepository)(nil)
