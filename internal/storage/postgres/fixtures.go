package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/fixtures"
)

// Таблицы, которые очищаются перед загрузкой набора данных. История заказов
// связана с заказами и очищается вместе с ними; outbox и ключи идемпотентности не трогаются.
const truncateDatasetTables = `
	TRUNCATE TABLE
		timeline_events,
		order_positions,
		orders,
		article_categories,
		article_attributes,
		articles,
		attributes,
		categories,
		profiles
	RESTART IDENTITY CASCADE
`

// Последовательности, продолжающиеся после максимальных ID набора.
var datasetSequences = []struct{ table, column string }{
	{"profiles", "id"},
	{"categories", "id"},
	{"attributes", "id"},
	{"orders", "id"},
	{"order_positions", "id"},
}

// ReplaceAll загружает набор данных по принципу clean insert: все строки предметных таблиц
// удаляются, строки набора вставляются с явными ID, последовательности сдвигаются за максимум.
func (s *Store) ReplaceAll(ctx context.Context, ds fixtures.Dataset) error {
	ctx, cancel := context.WithTimeout(ctx, 4*opTimeout)
	defer cancel()

	return inTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, truncateDatasetTables); err != nil {
			return fmt.Errorf("truncate dataset tables: %w", err)
		}
		if err := insertProfiles(ctx, tx, ds.Profiles); err != nil {
			return err
		}
		if err := insertCatalog(ctx, tx, ds); err != nil {
			return err
		}
		if err := insertOrders(ctx, tx, ds.Orders); err != nil {
			return err
		}
		for _, seq := range datasetSequences {
			query := fmt.Sprintf(
				`SELECT setval(pg_get_serial_sequence('%[1]s', '%[2]s'), COALESCE((SELECT MAX(%[2]s) FROM %[1]s), 0) + 1, false)`,
				seq.table, seq.column,
			)
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("reset sequence %s.%s: %w", seq.table, seq.column, err)
			}
		}
		return nil
	})
}

func insertProfiles(ctx context.Context, tx *sql.Tx, profiles []domain.Profile) error {
	for _, p := range profiles {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO profiles (
				id, email, last_name, first_name, telephone_no, role, status, password_hash,
				address_name, street, house_no, postcode, city, version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		`,
			p.ID, p.Email, p.LastName, p.FirstName, p.TelephoneNo, string(p.Role), string(p.Status), p.PasswordHash,
			p.Address.Name, p.Address.Street, p.Address.HouseNo, p.Address.Postcode, p.Address.City,
			p.Version, p.CreatedAt, p.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert profile %d: %w", p.ID, err)
		}
	}
	return nil
}

func insertCatalog(ctx context.Context, tx *sql.Tx, ds fixtures.Dataset) error {
	for _, c := range ds.Categories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories (id, name) VALUES ($1,$2)`, c.ID, c.Name); err != nil {
			return fmt.Errorf("insert category %d: %w", c.ID, err)
		}
	}
	for _, a := range ds.Attributes {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO attributes (id, name, category_id) VALUES ($1,$2,$3)
		`, a.ID, a.Name, a.Category.ID); err != nil {
			return fmt.Errorf("insert attribute %d: %w", a.ID, err)
		}
	}
	for _, a := range ds.Articles {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO articles (article_no, name, price, quantity, supplier_id, version, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`, a.ArticleNo, a.Name, a.Price, a.Quantity, nullableID(a.SupplierID), a.Version, a.CreatedAt, a.UpdatedAt); err != nil {
			return fmt.Errorf("insert article %s: %w", a.ArticleNo, err)
		}
		for i, attr := range a.Attributes {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO article_attributes (article_no, attribute_id, position) VALUES ($1,$2,$3)
			`, a.ArticleNo, attr.ID, i); err != nil {
				return fmt.Errorf("link article %s to attribute %d: %w", a.ArticleNo, attr.ID, err)
			}
		}
		for i, c := range a.Categories {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO article_categories (article_no, category_id, position) VALUES ($1,$2,$3)
			`, a.ArticleNo, c.ID, i); err != nil {
				return fmt.Errorf("link article %s to category %d: %w", a.ArticleNo, c.ID, err)
			}
		}
	}
	return nil
}

func insertOrders(ctx context.Context, tx *sql.Tx, orders []domain.Order) error {
	for _, o := range orders {
		addr := o.ShippingAddress
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO orders (
				id, customer_id, status, payment_mode, ship_name, ship_street, ship_house_no,
				ship_postcode, ship_city, version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		`,
			o.ID, o.CustomerID, string(o.Status), string(o.PaymentMode),
			addr.Name, addr.Street, addr.HouseNo, addr.Postcode, addr.City,
			o.Version, o.CreatedAt, o.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert order %d: %w", o.ID, err)
		}
		for _, p := range o.Positions {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO order_positions (id, order_id, article_no, quantity, unit_price, complaint, complaint_text, created_at)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			`, p.ID, o.ID, p.ArticleNo, p.Quantity, p.UnitPrice, p.Complaint, p.ComplaintText, createdAt(p.CreatedAt, o.CreatedAt)); err != nil {
				return fmt.Errorf("insert order position %d: %w", p.ID, err)
			}
		}
	}
	return nil
}

func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}

func createdAt(value, fallback time.Time) time.Time {
	if value.IsZero() {
		return fallback
	}
	return value
}

var _ fixtures.Target = (*Store)(nil)
