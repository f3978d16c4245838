package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

const (
	orderColumns = `id, customer_id, status, payment_mode, ship_name, ship_street, ship_house_no,
	ship_postcode, ship_city, version, created_at, updated_at`
	positionColumns = `id, order_id, article_no, quantity, unit_price, complaint, complaint_text, created_at`
)

type orderRepository struct {
	store *Store
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{store: store}
}

// Create списывает остатки, сохраняет заказ и пишет журнал в одной транзакции.
// Остаток уменьшается условным UPDATE, поэтому параллельные заказы не уводят его в минус.
func (r *orderRepository) Create(ctx context.Context, order domain.Order, journal domain.OrderJournal) (domain.Order, error) {
	merged, err := domain.MergePositions(order.Positions)
	if err != nil {
		return domain.Order{}, err
	}
	requests, err := domain.StockRequests(merged)
	if err != nil {
		return domain.Order{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := r.store.now()
	err = inTx(ctx, r.store.db, func(tx *sql.Tx) error {
		found, err := exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE id = $1)`, order.CustomerID)
		if err != nil {
			return err
		}
		if !found {
			return domain.WithKey(domain.ErrProfileNotFound, order.CustomerID)
		}

		prices, err := takeStock(ctx, tx, requests, now)
		if err != nil {
			return err
		}

		addr := order.ShippingAddress
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (
				customer_id, status, payment_mode, ship_name, ship_street, ship_house_no,
				ship_postcode, ship_city, version, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,0,$9,$9)
			RETURNING id
		`,
			order.CustomerID, string(order.Status), string(order.PaymentMode),
			addr.Name, addr.Street, addr.HouseNo, addr.Postcode, addr.City, now,
		).Scan(&order.ID); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		positions := make([]domain.OrderPosition, 0, len(merged))
		for _, p := range merged {
			p.UnitPrice = prices[p.ArticleNo]
			placed, err := insertPosition(ctx, tx, order.ID, p, now)
			if err != nil {
				return err
			}
			positions = append(positions, placed)
		}
		order.Positions = positions
		order.Version = 0
		order.CreatedAt = now
		order.UpdatedAt = now

		j, err := journal.Build(order)
		if err != nil {
			return err
		}
		return writeJournal(ctx, tx, j, now)
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (r *orderRepository) Get(ctx context.Context, id int64) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return getOrder(ctx, r.store.db, id)
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.store.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = $1
		ORDER BY id
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		orders = append(orders, order)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for i := range orders {
		positions, err := queryPositions(ctx, r.store.db, `
			SELECT `+positionColumns+` FROM order_positions WHERE order_id = $1 ORDER BY id
		`, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Positions = positions
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id, version int64, status domain.OrderStatus, journal domain.OrderJournal) (domain.Order, error) {
	return r.mutate(ctx, id, version, journal, func(tx *sql.Tx, _ time.Time) error {
		if _, err := tx.ExecContext(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, string(status)); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
}

func (r *orderRepository) AddPosition(ctx context.Context, id, version int64, position domain.OrderPosition, journal domain.OrderJournal) (domain.Order, error) {
	return r.mutate(ctx, id, version, journal, func(tx *sql.Tx, now time.Time) error {
		request := domain.StockRequest{ArticleNo: position.ArticleNo, Quantity: position.Quantity}
		prices, err := takeStock(ctx, tx, []domain.StockRequest{request}, now)
		if err != nil {
			return err
		}
		position.UnitPrice = prices[position.ArticleNo]
		_, err = insertPosition(ctx, tx, id, position, now)
		return err
	})
}

func (r *orderRepository) FileComplaint(ctx context.Context, id, version, positionID int64, text string, journal domain.OrderJournal) (domain.Order, error) {
	return r.mutate(ctx, id, version, journal, func(tx *sql.Tx, _ time.Time) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE order_positions
			SET complaint = TRUE,
			    complaint_text = $3
			WHERE order_id = $1
			  AND id = $2
		`, id, positionID, text)
		if err != nil {
			return fmt.Errorf("file complaint: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			return domain.WithKey(domain.ErrOrderPositionNotFound, positionID)
		}
		return nil
	})
}

func (r *orderRepository) ListComplaintsByCustomer(ctx context.Context, customerID int64) ([]domain.OrderPosition, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return queryPositions(ctx, r.store.db, `
		SELECT p.id, p.order_id, p.article_no, p.quantity, p.unit_price, p.complaint, p.complaint_text, p.created_at
		FROM order_positions p
		JOIN orders o ON o.id = p.order_id
		WHERE o.customer_id = $1
		  AND p.complaint
		ORDER BY p.id
	`, customerID)
}

// mutate поднимает версию одним UPDATE с условием на неё (как профиль),
// затем применяет изменение и пишет журнал в той же транзакции.
func (r *orderRepository) mutate(ctx context.Context, id, version int64, journal domain.OrderJournal, apply func(tx *sql.Tx, now time.Time) error) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := r.store.now()
	var updated domain.Order
	err := inTx(ctx, r.store.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE orders
			SET version = version + 1,
			    updated_at = $3
			WHERE id = $1
			  AND version = $2
		`, id, version, now)
		if err != nil {
			return fmt.Errorf("bump order version: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			return guardFailure(ctx, tx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id)
		}

		if err := apply(tx, now); err != nil {
			return err
		}
		updated, err = getOrder(ctx, tx, id)
		if err != nil {
			return err
		}
		j, err := journal.Build(updated)
		if err != nil {
			return err
		}
		return writeJournal(ctx, tx, j, now)
	})
	if err != nil {
		return domain.Order{}, err
	}
	return updated, nil
}

// takeStock списывает остатки в порядке номеров артикулов и возвращает текущие цены.
// Единый порядок блокировок исключает взаимные блокировки параллельных заказов.
func takeStock(ctx context.Context, tx *sql.Tx, requests []domain.StockRequest, now time.Time) (map[string]decimal.Decimal, error) {
	sorted := append([]domain.StockRequest(nil), requests...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ArticleNo < sorted[j].ArticleNo })

	prices := make(map[string]decimal.Decimal, len(sorted))
	for _, req := range sorted {
		var price decimal.Decimal
		err := tx.QueryRowContext(ctx, `
			UPDATE articles
			SET quantity = quantity - $2,
			    version = version + 1,
			    updated_at = $3
			WHERE article_no = $1
			  AND quantity >= $2
			RETURNING price
		`, req.ArticleNo, req.Quantity, now).Scan(&price)
		if errors.Is(err, sql.ErrNoRows) {
			found, existsErr := exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM articles WHERE article_no = $1)`, req.ArticleNo)
			if existsErr != nil {
				return nil, existsErr
			}
			if !found {
				return nil, domain.WithKey(domain.ErrArticleNotFound, req.ArticleNo)
			}
			return nil, domain.WithKey(domain.ErrArticleQuantity, req.ArticleNo)
		}
		if err != nil {
			return nil, fmt.Errorf("take stock for %s: %w", req.ArticleNo, err)
		}
		prices[req.ArticleNo] = price
	}
	return prices, nil
}

func insertPosition(ctx context.Context, tx *sql.Tx, orderID int64, p domain.OrderPosition, now time.Time) (domain.OrderPosition, error) {
	p.OrderID = orderID
	p.Complaint = false
	p.ComplaintText = ""
	p.CreatedAt = now
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO order_positions (order_id, article_no, quantity, unit_price, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, orderID, p.ArticleNo, p.Quantity, p.UnitPrice, now).Scan(&p.ID); err != nil {
		return domain.OrderPosition{}, fmt.Errorf("insert order position: %w", err)
	}
	return p, nil
}

func getOrder(ctx context.Context, q querier, id int64) (domain.Order, error) {
	row := q.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, domain.WithKey(domain.ErrOrderNotFound, id)
	}
	if err != nil {
		return domain.Order{}, err
	}

	positions, err := queryPositions(ctx, q, `
		SELECT `+positionColumns+` FROM order_positions WHERE order_id = $1 ORDER BY id
	`, id)
	if err != nil {
		return domain.Order{}, err
	}
	order.Positions = positions
	return order, nil
}

func queryPositions(ctx context.Context, q querier, query string, args ...any) ([]domain.OrderPosition, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load order positions: %w", err)
	}
	defer rows.Close()

	positions := make([]domain.OrderPosition, 0)
	for rows.Next() {
		var p domain.OrderPosition
		if err := rows.Scan(
			&p.ID, &p.OrderID, &p.ArticleNo, &p.Quantity, &p.UnitPrice,
			&p.Complaint, &p.ComplaintText, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order positions: %w", err)
	}
	return positions, nil
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var (
		o           domain.Order
		status      string
		paymentMode string
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &status, &paymentMode,
		&o.ShippingAddress.Name, &o.ShippingAddress.Street, &o.ShippingAddress.HouseNo,
		&o.ShippingAddress.Postcode, &o.ShippingAddress.City,
		&o.Version, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("scan order: %w", err)
	}
	o.Status = domain.OrderStatus(status)
	o.PaymentMode = domain.PaymentMode(paymentMode)
	return o, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
