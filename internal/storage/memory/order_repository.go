package memory

import (
	"context"
	"sort"
	"time"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// orderRepositoryInMemory — in-memory реализация OrderRepository поверх общего Store.
type orderRepositoryInMemory struct {
	store *Store
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepositoryInMemory{store: store}
}

// Create списывает остатки, сохраняет заказ и пишет журнал под одной блокировкой.
func (r *orderRepositoryInMemory) Create(_ context.Context, order domain.Order, journal domain.OrderJournal) (domain.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[order.CustomerID]; !ok {
		return domain.Order{}, domain.WithKey(domain.ErrProfileNotFound, order.CustomerID)
	}
	merged, err := domain.MergePositions(order.Positions)
	if err != nil {
		return domain.Order{}, err
	}
	if err := r.checkStockLocked(merged); err != nil {
		return domain.Order{}, err
	}

	now := s.now()
	order.ID = s.nextOrderID
	order.Version = 0
	order.CreatedAt = now
	order.UpdatedAt = now
	order.Positions = make([]domain.OrderPosition, 0, len(merged))
	for i, p := range merged {
		order.Positions = append(order.Positions, r.pricePositionLocked(order.ID, s.nextPositionID+int64(i), p, now))
	}

	j, err := journal.Build(order)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.writeJournalLocked(j); err != nil {
		return domain.Order{}, err
	}

	s.nextOrderID++
	s.nextPositionID += int64(len(order.Positions))
	for _, p := range order.Positions {
		r.takeStockLocked(p, now)
	}
	s.orders[order.ID] = cloneOrder(order)
	return order, nil
}

// Get возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Get(_ context.Context, id int64) (domain.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.WithKey(domain.ErrOrderNotFound, id)
	}
	return cloneOrder(order), nil
}

// ListByCustomer возвращает заказы клиента в порядке создания.
func (r *orderRepositoryInMemory) ListByCustomer(_ context.Context, customerID int64) ([]domain.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range s.orders {
		if order.CustomerID != customerID {
			continue
		}
		result = append(result, cloneOrder(order))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// UpdateStatus меняет статус заказа, проверяя версию (optimistic locking).
func (r *orderRepositoryInMemory) UpdateStatus(_ context.Context, id, version int64, status domain.OrderStatus, journal domain.OrderJournal) (domain.Order, error) {
	return r.mutate(id, version, journal, func(order *domain.Order, _ time.Time) (func(), error) {
		order.Status = status
		return nil, nil
	})
}

// AddPosition добавляет позицию, списывая остаток артикула.
func (r *orderRepositoryInMemory) AddPosition(_ context.Context, id, version int64, position domain.OrderPosition, journal domain.OrderJournal) (domain.Order, error) {
	return r.mutate(id, version, journal, func(order *domain.Order, now time.Time) (func(), error) {
		if err := r.checkStockLocked([]domain.OrderPosition{position}); err != nil {
			return nil, err
		}
		placed := r.pricePositionLocked(order.ID, r.store.nextPositionID, position, now)
		order.Positions = append(order.Positions, placed)
		return func() {
			r.store.nextPositionID++
			r.takeStockLocked(placed, now)
		}, nil
	})
}

// FileComplaint помечает позицию заказа рекламацией.
func (r *orderRepositoryInMemory) FileComplaint(_ context.Context, id, version, positionID int64, text string, journal domain.OrderJournal) (domain.Order, error) {
	return r.mutate(id, version, journal, func(order *domain.Order, _ time.Time) (func(), error) {
		for i := range order.Positions {
			if order.Positions[i].ID == positionID {
				order.Positions[i].Complaint = true
				order.Positions[i].ComplaintText = text
				return nil, nil
			}
		}
		return nil, domain.WithKey(domain.ErrOrderPositionNotFound, positionID)
	})
}

// ListComplaintsByCustomer возвращает позиции с рекламациями по всем заказам клиента.
func (r *orderRepositoryInMemory) ListComplaintsByCustomer(_ context.Context, customerID int64) ([]domain.OrderPosition, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.OrderPosition, 0)
	for _, order := range s.orders {
		if order.CustomerID != customerID {
			continue
		}
		for _, p := range order.Positions {
			if p.Complaint {
				result = append(result, p)
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// mutate применяет изменение к копии заказа; при успехе версия увеличивается на 1.
// apply не трогает Store, а побочные изменения возвращает в commit: они выполняются
// только после успешной записи журнала.
func (r *orderRepositoryInMemory) mutate(id, version int64, journal domain.OrderJournal, apply func(order *domain.Order, now time.Time) (commit func(), err error)) (domain.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.WithKey(domain.ErrConcurrentDelete, id)
	}
	if current.Version != version {
		return domain.Order{}, domain.WithKey(domain.ErrConcurrentUpdate, id)
	}

	now := s.now()
	updated := cloneOrder(current)
	commit, err := apply(&updated, now)
	if err != nil {
		return domain.Order{}, err
	}
	updated.Version++
	updated.UpdatedAt = now

	j, err := journal.Build(updated)
	if err != nil {
		return domain.Order{}, err
	}
	if err := s.writeJournalLocked(j); err != nil {
		return domain.Order{}, err
	}
	if commit != nil {
		commit()
	}
	s.orders[id] = cloneOrder(updated)
	return updated, nil
}

// checkStockLocked проверяет наличие всех артикулов, ничего не меняя.
// Позиции должны быть уже объединены по артикулу.
func (r *orderRepositoryInMemory) checkStockLocked(positions []domain.OrderPosition) error {
	for _, p := range positions {
		article, ok := r.store.articles[p.ArticleNo]
		if !ok {
			return domain.WithKey(domain.ErrArticleNotFound, p.ArticleNo)
		}
		if article.Quantity < p.Quantity {
			return domain.WithKey(domain.ErrArticleQuantity, p.ArticleNo)
		}
	}
	return nil
}

// pricePositionLocked возвращает позицию с назначенным ID и текущей ценой артикула.
func (r *orderRepositoryInMemory) pricePositionLocked(orderID, positionID int64, p domain.OrderPosition, now time.Time) domain.OrderPosition {
	p.ID = positionID
	p.OrderID = orderID
	p.UnitPrice = r.store.articles[p.ArticleNo].Price
	p.Complaint = false
	p.ComplaintText = ""
	p.CreatedAt = now
	return p
}

// takeStockLocked списывает остаток под позицию, прошедшую checkStockLocked.
func (r *orderRepositoryInMemory) takeStockLocked(p domain.OrderPosition, now time.Time) {
	s := r.store
	article := s.articles[p.ArticleNo]
	article.Quantity -= p.Quantity
	article.Version++
	article.UpdatedAt = now
	s.articles[p.ArticleNo] = article
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
