// Package order реализует оформление и сопровождение заказов: списание остатков,
// смену статусов, рекламации и историю заказа.
package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/webshop/internal/metrics"
	"github.com/vladislavdragonenkov/webshop/internal/service/validation"
)

const serviceName = "order"

// Service управляет заказами.
type Service struct {
	orders    domain.OrderRepository
	profiles  domain.ProfileRepository
	timeline  domain.TimelineRepository
	events    bool
	validator *validation.Validator
	metrics   *metrics.ServiceMetrics
	logger    *log.Entry
}

// Option настраивает Service.
type Option func(*Service)

// WithTimeline включает историю заказа: изменения пишут её вместе с заказом,
// а FindOrderHistory читает из timeline.
func WithTimeline(timeline domain.TimelineRepository) Option {
	return func(s *Service) { s.timeline = timeline }
}

// WithEvents включает события заказа: хранилище ставит их в outbox
// в одной транзакции с изменением.
func WithEvents() Option {
	return func(s *Service) { s.events = true }
}

// WithMetrics подключает метрики.
func WithMetrics(m *metrics.ServiceMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *log.Entry) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService создаёт сервис заказов.
func NewService(orders domain.OrderRepository, profiles domain.ProfileRepository, opts ...Option) *Service {
	s := &Service{
		orders:    orders,
		profiles:  profiles,
		validator: validation.New(),
		logger:    log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithField("component", "order-service")
	return s
}

// FindOrderByID возвращает заказ владельцу или администратору.
func (s *Service) FindOrderByID(ctx context.Context, caller domain.Caller, id int64) (_ domain.Order, err error) {
	defer s.observe("FindOrderByID", time.Now(), &err)

	return s.visibleOrder(ctx, caller, id)
}

// FindOrdersByCustomerEmail возвращает заказы клиента.
func (s *Service) FindOrdersByCustomerEmail(ctx context.Context, caller domain.Caller, email string) (_ []domain.Order, err error) {
	defer s.observe("FindOrdersByCustomerEmail", time.Now(), &err)

	customer, err := s.visibleCustomer(ctx, caller, email)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.WithKey(domain.ErrOrderNotFound, customer.Email)
	}
	return orders, nil
}

// FindProfileByOrderID возвращает профиль клиента, оформившего заказ.
func (s *Service) FindProfileByOrderID(ctx context.Context, caller domain.Caller, id int64) (_ domain.Profile, err error) {
	defer s.observe("FindProfileByOrderID", time.Now(), &err)

	order, err := s.visibleOrder(ctx, caller, id)
	if err != nil {
		return domain.Profile{}, err
	}
	return s.profiles.Get(ctx, order.CustomerID)
}

// FindPositionsByOrderID возвращает позиции заказа.
func (s *Service) FindPositionsByOrderID(ctx context.Context, caller domain.Caller, id int64) (_ []domain.OrderPosition, err error) {
	defer s.observe("FindPositionsByOrderID", time.Now(), &err)

	order, err := s.visibleOrder(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return order.Positions, nil
}

// CreateOrder оформляет заказ: остатки списываются вместе с сохранением заказа.
// Клиент оформляет заказ на себя, администратор на любого клиента.
func (s *Service) CreateOrder(ctx context.Context, caller domain.Caller, order domain.Order) (_ domain.Order, err error) {
	defer s.observe("CreateOrder", time.Now(), &err)

	if err := caller.RequireAuthenticated(); err != nil {
		return domain.Order{}, err
	}
	if order.CustomerID == 0 {
		order.CustomerID = caller.ProfileID
	}
	if err := caller.RequireOwnerOrAdmin(order.CustomerID); err != nil {
		return domain.Order{}, err
	}
	if order.PaymentMode == "" {
		order.PaymentMode = domain.PaymentModeInvoice
	}
	if !order.PaymentMode.Valid() {
		return domain.Order{}, domain.WithKey(domain.ErrInvalidPaymentMode, order.PaymentMode)
	}
	if len(order.Positions) == 0 {
		return domain.Order{}, domain.ErrNoOrderPositions
	}
	for _, p := range order.Positions {
		if err := validatePosition(p); err != nil {
			return domain.Order{}, err
		}
	}

	customer, err := s.profiles.Get(ctx, order.CustomerID)
	if err != nil {
		return domain.Order{}, err
	}
	if !customer.IsActive() {
		return domain.Order{}, domain.WithKey(domain.ErrProfileDeactivated, customer.Email)
	}
	if order.ShippingAddress == (domain.Address{}) {
		order.ShippingAddress = customer.Address
	}
	order.Status = domain.OrderStatusOpen

	if _, err := domain.MergePositions(order.Positions); err != nil {
		return domain.Order{}, err
	}

	journal := s.journal(kafka.EventTypeOrderCreated, domain.TimelineOrderCreated,
		func(o domain.Order) string { return fmt.Sprintf("status=%s", o.Status) },
		func(o domain.Order) map[string]string {
			return map[string]string{"payment_mode": string(o.PaymentMode)}
		})
	created, err := s.orders.Create(ctx, order, journal)
	if err != nil {
		return domain.Order{}, err
	}

	s.metrics.RecordOrderCreated()
	s.recorded(kafka.EventTypeOrderCreated)
	s.logger.WithFields(log.Fields{
		"order_id":    created.ID,
		"customer_id": created.CustomerID,
		"positions":   len(created.Positions),
		"total":       created.Total().StringFixed(2),
	}).Info("order created")
	return created, nil
}

// AddOrderPosition добавляет позицию в открытый заказ.
func (s *Service) AddOrderPosition(ctx context.Context, caller domain.Caller, order domain.Order, position domain.OrderPosition) (_ domain.Order, err error) {
	defer s.observe("AddOrderPosition", time.Now(), &err)

	if err := caller.RequireAuthenticated(); err != nil {
		return domain.Order{}, err
	}
	if err := validatePosition(position); err != nil {
		return domain.Order{}, err
	}
	current, err := s.current(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	if err := caller.RequireOwnerOrAdmin(current.CustomerID); err != nil {
		return domain.Order{}, err
	}
	if current.Status != domain.OrderStatusOpen {
		return domain.Order{}, domain.WithKey(domain.ErrOrderNotOpen, current.Status)
	}

	journal := s.journal(kafka.EventTypeOrderPositionAdded, domain.TimelinePositionAdded,
		func(domain.Order) string { return fmt.Sprintf("%s x%d", position.ArticleNo, position.Quantity) },
		func(domain.Order) map[string]string { return map[string]string{"article_no": position.ArticleNo} })
	updated, err := s.orders.AddPosition(ctx, order.ID, order.Version, position, journal)
	if err != nil {
		return domain.Order{}, err
	}

	s.recorded(kafka.EventTypeOrderPositionAdded)
	s.logger.WithFields(log.Fields{
		"order_id":   updated.ID,
		"article_no": position.ArticleNo,
		"quantity":   position.Quantity,
	}).Info("order position added")
	return updated, nil
}

// SetOrderStatus меняет статус заказа. Администратор устанавливает любой статус,
// владелец может только отменить открытый заказ.
func (s *Service) SetOrderStatus(ctx context.Context, caller domain.Caller, order domain.Order, status domain.OrderStatus) (_ domain.Order, err error) {
	defer s.observe("SetOrderStatus", time.Now(), &err)

	if err := caller.RequireAuthenticated(); err != nil {
		return domain.Order{}, err
	}
	if !status.Valid() {
		return domain.Order{}, domain.WithKey(domain.ErrInvalidStatus, status)
	}
	current, err := s.current(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	if err := caller.RequireOwnerOrAdmin(current.CustomerID); err != nil {
		return domain.Order{}, err
	}
	if current.Status == status {
		return domain.Order{}, domain.WithKey(domain.ErrStatusAlreadySet, status)
	}
	if !caller.IsAdmin() {
		if status != domain.OrderStatusCanceled {
			return domain.Order{}, domain.ErrAccessDenied
		}
		if current.Status != domain.OrderStatusOpen {
			return domain.Order{}, domain.WithKey(domain.ErrOrderNotOpen, current.Status)
		}
	}

	journal := s.journal(kafka.EventTypeOrderStatusChanged, domain.TimelineStatusChanged,
		func(o domain.Order) string { return fmt.Sprintf("%s -> %s", current.Status, o.Status) },
		func(domain.Order) map[string]string {
			return map[string]string{"previous_status": string(current.Status)}
		})
	updated, err := s.orders.UpdateStatus(ctx, order.ID, order.Version, status, journal)
	if err != nil {
		return domain.Order{}, err
	}

	s.recorded(kafka.EventTypeOrderStatusChanged)
	s.logger.WithFields(log.Fields{
		"order_id": updated.ID,
		"from":     current.Status,
		"to":       updated.Status,
	}).Info("order status changed")
	return updated, nil
}

// FileComplaint регистрирует рекламацию по позиции. Только владелец заказа.
func (s *Service) FileComplaint(ctx context.Context, caller domain.Caller, order domain.Order, positionID int64, text string) (_ domain.Order, err error) {
	defer s.observe("FileComplaint", time.Now(), &err)

	if err := caller.RequireAuthenticated(); err != nil {
		return domain.Order{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Order{}, domain.ErrComplaintTextRequired
	}
	current, err := s.current(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	if !caller.Owns(current.CustomerID) {
		return domain.Order{}, domain.ErrAccessDenied
	}

	journal := s.journal(kafka.EventTypeOrderComplaintFiled, domain.TimelineComplaintFiled,
		func(domain.Order) string { return fmt.Sprintf("position=%d", positionID) },
		func(domain.Order) map[string]string { return map[string]string{"position_id": fmt.Sprint(positionID)} })
	updated, err := s.orders.FileComplaint(ctx, order.ID, order.Version, positionID, text, journal)
	if err != nil {
		return domain.Order{}, err
	}

	s.recorded(kafka.EventTypeOrderComplaintFiled)
	s.logger.WithFields(log.Fields{
		"order_id":    updated.ID,
		"position_id": positionID,
	}).Info("complaint filed")
	return updated, nil
}

// FindComplaintsByCustomerEmail возвращает позиции с рекламациями клиента.
func (s *Service) FindComplaintsByCustomerEmail(ctx context.Context, caller domain.Caller, email string) (_ []domain.OrderPosition, err error) {
	defer s.observe("FindComplaintsByCustomerEmail", time.Now(), &err)

	customer, err := s.visibleCustomer(ctx, caller, email)
	if err != nil {
		return nil, err
	}
	complaints, err := s.orders.ListComplaintsByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if len(complaints) == 0 {
		return nil, domain.WithKey(domain.ErrComplaintNotFound, customer.Email)
	}
	return complaints, nil
}

// FindOrderHistory возвращает историю заказа в хронологическом порядке.
func (s *Service) FindOrderHistory(ctx context.Context, caller domain.Caller, id int64) (_ []domain.TimelineEvent, err error) {
	defer s.observe("FindOrderHistory", time.Now(), &err)

	if _, err := s.visibleOrder(ctx, caller, id); err != nil {
		return nil, err
	}
	if s.timeline == nil {
		return []domain.TimelineEvent{}, nil
	}
	return s.timeline.List(ctx, id)
}

func validatePosition(p domain.OrderPosition) error {
	if strings.TrimSpace(p.ArticleNo) == "" {
		return domain.WithKey(domain.ErrArticleNotFound, p.ArticleNo)
	}
	if p.Quantity <= 0 {
		return domain.WithKey(domain.ErrInvalidQuantity, p.ArticleNo)
	}
	return nil
}

// visibleOrder читает заказ и проверяет, что вызывающий — владелец или администратор.
func (s *Service) visibleOrder(ctx context.Context, caller domain.Caller, id int64) (domain.Order, error) {
	if err := caller.RequireAuthenticated(); err != nil {
		return domain.Order{}, err
	}
	if id <= 0 {
		return domain.Order{}, domain.WithKey(domain.ErrOrderNotFound, id)
	}
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if err := caller.RequireOwnerOrAdmin(order.CustomerID); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *Service) visibleCustomer(ctx context.Context, caller domain.Caller, email string) (domain.Profile, error) {
	if err := caller.RequireAuthenticated(); err != nil {
		return domain.Profile{}, err
	}
	if err := s.validator.Email(email); err != nil {
		return domain.Profile{}, err
	}
	customer, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := caller.RequireOwnerOrAdmin(customer.ID); err != nil {
		return domain.Profile{}, err
	}
	return customer, nil
}

// current читает сохранённый заказ; отсутствие записи означает параллельное удаление.
func (s *Service) current(ctx context.Context, id int64) (domain.Order, error) {
	current, err := s.orders.Get(ctx, id)
	if errors.Is(err, domain.ErrOrderNotFound) {
		return domain.Order{}, domain.WithKey(domain.ErrConcurrentDelete, id)
	}
	return current, err
}

// journal собирает историю и событие изменения; хранилище пишет их
// в одной транзакции с заказом.
func (s *Service) journal(eventType kafka.EventType, timelineType string, reason func(domain.Order) string, metadata func(domain.Order) map[string]string) domain.OrderJournal {
	if s.timeline == nil && !s.events {
		return nil
	}
	return func(order domain.Order) (domain.Journal, error) {
		var j domain.Journal
		if s.timeline != nil {
			j.Timeline = append(j.Timeline, domain.TimelineEvent{
				OrderID:  order.ID,
				Type:     timelineType,
				Reason:   reason(order),
				Occurred: time.Now().UTC(),
			})
		}
		if s.events {
			msg, err := kafka.NewOrderEvent(eventType, order, metadata(order)).OutboxMessage()
			if err != nil {
				return domain.Journal{}, err
			}
			j.Events = append(j.Events, msg)
		}
		return j, nil
	}
}

func (s *Service) recorded(eventType kafka.EventType) {
	if s.timeline != nil {
		s.metrics.RecordTimelineEvent()
	}
	if s.events {
		s.metrics.RecordOutboxEvent(string(eventType))
	}
}

func (s *Service) observe(operation string, started time.Time, err *error) {
	s.metrics.ObserveOperation(serviceName, operation, started, *err)
	if *err == nil {
		return
	}
	entry := s.logger.WithError(*err).WithField("operation", operation)
	switch domain.KindOf(*err) {
	case domain.KindInternal:
		entry.Error("operation failed")
	case domain.KindConcurrency, domain.KindStateConflict:
		entry.Warn("operation rejected")
	default:
		entry.Debug("operation rejected")
	}
}
