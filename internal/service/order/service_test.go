package order_test

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/fixtures"
	"github.com/vladislavdragonenkov/webshop/internal/metrics"
	"github.com/vladislavdragonenkov/webshop/internal/service/order"
	"github.com/vladislavdragonenkov/webshop/internal/storage/memory"
)

var (
	admin      = domain.Caller{ProfileID: 1, Email: "admin@hs-karlsruhe.de", Role: domain.RoleAdmin}
	mustermann = domain.Caller{ProfileID: 2, Email: "max@hs-karlsruhe.de", Role: domain.RoleCustomer}
	dorn       = domain.Caller{ProfileID: 5, Email: "rd@sc.de", Role: domain.RoleCustomer}
)

type OrderServiceSuite struct {
	suite.Suite

	ctx      context.Context
	store    *memory.Store
	reloader *fixtures.Reloader
	catalog  domain.CatalogRepository
	outbox   *memory.OutboxRepository
	svc      *order.Service
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceSuite))
}

func (s *OrderServiceSuite) SetupSuite() {
	s.ctx = context.Background()
}

// SetupTest загружает набор данных в новое хранилище: очередь outbox
// переживает перезагрузку, поэтому каждому тесту своя.
func (s *OrderServiceSuite) SetupTest() {
	s.store = memory.NewStore()
	s.reloader = fixtures.NewReloader(s.store, auth.NewBcryptHasher(bcrypt.MinCost))
	s.catalog = memory.NewCatalogRepository(s.store)
	s.Require().NoError(s.reloader.ReloadFixtures(s.ctx, fixtures.DefaultDataset))
	s.outbox = s.store.Outbox()

	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	s.svc = order.NewService(
		memory.NewOrderRepository(s.store),
		memory.NewProfileRepository(s.store),
		order.WithTimeline(memory.NewTimelineRepository(s.store)),
		order.WithEvents(),
		order.WithMetrics(metrics.NewServiceMetricsWithRegisterer(prometheus.NewRegistry())),
		order.WithLogger(log.NewEntry(logger)),
	)
}

func (s *OrderServiceSuite) stock(articleNo string) int32 {
	article, err := s.catalog.GetArticle(s.ctx, articleNo)
	s.Require().NoError(err)
	return article.Quantity
}

func positions(items ...any) []domain.OrderPosition {
	out := make([]domain.OrderPosition, 0, len(items)/2)
	for i := 0; i+1 < len(items); i += 2 {
		out = append(out, domain.OrderPosition{ArticleNo: items[i].(string), Quantity: int32(items[i+1].(int))})
	}
	return out
}

func (s *OrderServiceSuite) TestFindOrderByID() {
	o, err := s.svc.FindOrderByID(s.ctx, mustermann, 700)
	s.Require().NoError(err)
	s.Equal(int64(2), o.CustomerID)
	s.Len(o.Positions, 2)
	s.Equal("349.40", o.Total().StringFixed(2))

	_, err = s.svc.FindOrderByID(s.ctx, dorn, 700)
	s.ErrorIs(err, domain.ErrAccessDenied)

	for _, id := range []int64{0, -1, math.MinInt64} {
		_, err = s.svc.FindOrderByID(s.ctx, admin, id)
		s.ErrorIs(err, domain.ErrOrderNotFound, "id %d", id)
	}

	_, err = s.svc.FindOrderByID(s.ctx, admin, 9999)
	s.ErrorIs(err, domain.ErrOrderNotFound)
	key, _ := domain.KeyOf(err)
	s.Equal("9999", key)

	_, err = s.svc.FindOrderByID(s.ctx, domain.Anonymous, 700)
	s.ErrorIs(err, domain.ErrUnauthenticated)
}

func (s *OrderServiceSuite) TestFindOrdersByCustomerEmail() {
	orders, err := s.svc.FindOrdersByCustomerEmail(s.ctx, mustermann, "max@hs-karlsruhe.de")
	s.Require().NoError(err)
	s.Len(orders, 2)

	_, err = s.svc.FindOrdersByCustomerEmail(s.ctx, admin, "oliver.kahn@fc-bayern.de")
	s.ErrorIs(err, domain.ErrOrderNotFound)
	s.Contains(err.Error(), "oliver.kahn@fc-bayern.de")

	_, err = s.svc.FindOrdersByCustomerEmail(s.ctx, admin, "mail/invalid.de")
	s.ErrorIs(err, domain.ErrInvalidEmail)

	_, err = s.svc.FindOrdersByCustomerEmail(s.ctx, dorn, "max@hs-karlsruhe.de")
	s.ErrorIs(err, domain.ErrAccessDenied)
}

func (s *OrderServiceSuite) TestFindProfileAndPositionsByOrderID() {
	p, err := s.svc.FindProfileByOrderID(s.ctx, admin, 702)
	s.Require().NoError(err)
	s.Equal("rd@sc.de", p.Email)

	items, err := s.svc.FindPositionsByOrderID(s.ctx, dorn, 702)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("LT-500", items[0].ArticleNo)
}

func (s *OrderServiceSuite) TestCreateOrderDecrementsStock() {
	created, err := s.svc.CreateOrder(s.ctx, mustermann, domain.Order{
		PaymentMode: domain.PaymentModeCreditCard,
		Positions:   positions("VZ90/10", 2, "MR90/20", 1, "VZ90/10", 1),
	})
	s.Require().NoError(err)

	s.Equal(int64(703), created.ID)
	s.Equal(int64(2), created.CustomerID)
	s.Equal(domain.OrderStatusOpen, created.Status)
	s.Zero(created.Version)
	s.Require().Len(created.Positions, 2)
	s.Equal(int32(3), created.Positions[0].Quantity)
	s.Equal("749.20", created.Total().StringFixed(2))
	s.Equal("Karlsruhe", created.ShippingAddress.City)

	s.Equal(int32(22), s.stock("VZ90/10"))
	s.Equal(int32(2), s.stock("MR90/20"))

	history, err := s.svc.FindOrderHistory(s.ctx, mustermann, created.ID)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(domain.TimelineOrderCreated, history[0].Type)

	pending := s.outbox.AllPending()
	s.Require().Len(pending, 1)
	s.Equal("order.created", pending[0].EventType)
	s.Equal("703", pending[0].AggregateID)
}

func (s *OrderServiceSuite) TestCreateOrderRejections() {
	tests := []struct {
		name   string
		caller domain.Caller
		order  domain.Order
		want   error
	}{
		{"anonymous", domain.Anonymous, domain.Order{CustomerID: 2, Positions: positions("VZ90/10", 1)}, domain.ErrUnauthenticated},
		{"foreign customer", dorn, domain.Order{CustomerID: 2, Positions: positions("VZ90/10", 1)}, domain.ErrAccessDenied},
		{"no positions", mustermann, domain.Order{}, domain.ErrNoOrderPositions},
		{"zero quantity", mustermann, domain.Order{Positions: positions("VZ90/10", 0)}, domain.ErrInvalidQuantity},
		{"negative quantity", mustermann, domain.Order{Positions: positions("VZ90/10", -1)}, domain.ErrInvalidQuantity},
		{"payment mode", mustermann, domain.Order{PaymentMode: "cash", Positions: positions("VZ90/10", 1)}, domain.ErrInvalidPaymentMode},
		{"unknown article", mustermann, domain.Order{Positions: positions("XX-1", 1)}, domain.ErrArticleNotFound},
		{"sold out", mustermann, domain.Order{Positions: positions("VZ90/10", 1, "LT-500", 1)}, domain.ErrArticleQuantity},
		{"merged quantity", mustermann, domain.Order{Positions: positions("MR90/20", 2, "MR90/20", 2)}, domain.ErrArticleQuantity},
		{"merged quantity overflow", mustermann, domain.Order{Positions: positions("VZ90/10", math.MaxInt32, "VZ90/10", math.MaxInt32)}, domain.ErrArticleQuantity},
		{"deactivated customer", admin, domain.Order{CustomerID: 6, Positions: positions("VZ90/10", 1)}, domain.ErrProfileDeactivated},
		{"unknown customer", admin, domain.Order{CustomerID: 99, Positions: positions("VZ90/10", 1)}, domain.ErrProfileNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.CreateOrder(s.ctx, tt.caller, tt.order)
			s.ErrorIs(err, tt.want)
		})
	}

	s.Equal(int32(25), s.stock("VZ90/10"), "rejected orders must not touch stock")
	s.Equal(int32(3), s.stock("MR90/20"))
	s.Empty(s.outbox.AllPending())
}

func (s *OrderServiceSuite) TestSoldOutKeyIsArticleNo() {
	_, err := s.svc.CreateOrder(s.ctx, dorn, domain.Order{Positions: positions("LT-500", 1)})
	s.ErrorIs(err, domain.ErrArticleQuantity)
	key, ok := domain.KeyOf(err)
	s.True(ok)
	s.Equal("LT-500", key)
}

func (s *OrderServiceSuite) TestConcurrentOrdersNeverOversell() {
	const buyers = 10
	var (
		wg       sync.WaitGroup
		accepted atomic.Int32
		rejected atomic.Int32
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.CreateOrder(s.ctx, mustermann, domain.Order{Positions: positions("MR90/20", 1)})
			switch {
			case err == nil:
				accepted.Add(1)
			case domain.KindOf(err) == domain.KindStateConflict:
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(3), accepted.Load())
	s.Equal(int32(buyers-3), rejected.Load())
	s.Zero(s.stock("MR90/20"))
}

func (s *OrderServiceSuite) TestSetOrderStatusByAdmin() {
	loaded, err := s.svc.FindOrderByID(s.ctx, admin, 700)
	s.Require().NoError(err)

	updated, err := s.svc.SetOrderStatus(s.ctx, admin, loaded, domain.OrderStatusProcessing)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusProcessing, updated.Status)
	s.Equal(loaded.Version+1, updated.Version)

	_, err = s.svc.SetOrderStatus(s.ctx, admin, loaded, domain.OrderStatusProcessing)
	s.ErrorIs(err, domain.ErrStatusAlreadySet)

	_, err = s.svc.SetOrderStatus(s.ctx, admin, loaded, domain.OrderStatusShipped)
	s.ErrorIs(err, domain.ErrConcurrentUpdate)

	_, err = s.svc.SetOrderStatus(s.ctx, admin, updated, domain.OrderStatus("lost"))
	s.ErrorIs(err, domain.ErrInvalidStatus)

	history, err := s.svc.FindOrderHistory(s.ctx, admin, 700)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(domain.TimelineStatusChanged, history[0].Type)
	s.Equal("open -> processing", history[0].Reason)
}

func (s *OrderServiceSuite) TestOwnerMayOnlyCancel() {
	loaded, err := s.svc.FindOrderByID(s.ctx, dorn, 702)
	s.Require().NoError(err)

	_, err = s.svc.SetOrderStatus(s.ctx, dorn, loaded, domain.OrderStatusShipped)
	s.ErrorIs(err, domain.ErrAccessDenied)

	_, err = s.svc.SetOrderStatus(s.ctx, mustermann, loaded, domain.OrderStatusCanceled)
	s.ErrorIs(err, domain.ErrAccessDenied)

	canceled, err := s.svc.SetOrderStatus(s.ctx, dorn, loaded, domain.OrderStatusCanceled)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCanceled, canceled.Status)

	finished, err := s.svc.FindOrderByID(s.ctx, mustermann, 701)
	s.Require().NoError(err)
	_, err = s.svc.SetOrderStatus(s.ctx, mustermann, finished, domain.OrderStatusCanceled)
	s.ErrorIs(err, domain.ErrOrderNotOpen)
}

func (s *OrderServiceSuite) TestSetStatusOnDeletedOrder() {
	_, err := s.svc.SetOrderStatus(s.ctx, admin, domain.Order{ID: 9999}, domain.OrderStatusCanceled)
	s.ErrorIs(err, domain.ErrConcurrentDelete)
}

func (s *OrderServiceSuite) TestAddOrderPosition() {
	loaded, err := s.svc.FindOrderByID(s.ctx, mustermann, 700)
	s.Require().NoError(err)

	updated, err := s.svc.AddOrderPosition(s.ctx, mustermann, loaded, domain.OrderPosition{ArticleNo: "VZ140/10", Quantity: 2})
	s.Require().NoError(err)
	s.Len(updated.Positions, 3)
	s.Equal(loaded.Version+1, updated.Version)
	s.Equal(int32(8), s.stock("VZ140/10"))

	_, err = s.svc.AddOrderPosition(s.ctx, mustermann, loaded, domain.OrderPosition{ArticleNo: "VZ140/10", Quantity: 1})
	s.ErrorIs(err, domain.ErrConcurrentUpdate)
	s.Equal(int32(8), s.stock("VZ140/10"))

	_, err = s.svc.AddOrderPosition(s.ctx, mustermann, updated, domain.OrderPosition{ArticleNo: "LT-500", Quantity: 1})
	s.ErrorIs(err, domain.ErrArticleQuantity)

	finished, err := s.svc.FindOrderByID(s.ctx, mustermann, 701)
	s.Require().NoError(err)
	_, err = s.svc.AddOrderPosition(s.ctx, mustermann, finished, domain.OrderPosition{ArticleNo: "VZ90/10", Quantity: 1})
	s.ErrorIs(err, domain.ErrOrderNotOpen)

	_, err = s.svc.AddOrderPosition(s.ctx, dorn, updated, domain.OrderPosition{ArticleNo: "VZ90/10", Quantity: 1})
	s.ErrorIs(err, domain.ErrAccessDenied)
}

func (s *OrderServiceSuite) TestFileComplaint() {
	loaded, err := s.svc.FindOrderByID(s.ctx, mustermann, 700)
	s.Require().NoError(err)

	_, err = s.svc.FileComplaint(s.ctx, mustermann, loaded, 1, "   ")
	s.ErrorIs(err, domain.ErrComplaintTextRequired)

	_, err = s.svc.FileComplaint(s.ctx, admin, loaded, 1, "defekt")
	s.ErrorIs(err, domain.ErrAccessDenied)

	_, err = s.svc.FileComplaint(s.ctx, mustermann, loaded, 42, "defekt")
	s.ErrorIs(err, domain.ErrOrderPositionNotFound)

	updated, err := s.svc.FileComplaint(s.ctx, mustermann, loaded, 1, "Schraube fehlt")
	s.Require().NoError(err)
	position, ok := updated.Position(1)
	s.Require().True(ok)
	s.True(position.Complaint)
	s.Equal("Schraube fehlt", position.ComplaintText)

	complaints, err := s.svc.FindComplaintsByCustomerEmail(s.ctx, mustermann, "max@hs-karlsruhe.de")
	s.Require().NoError(err)
	s.Len(complaints, 2)

	_, err = s.svc.FindComplaintsByCustomerEmail(s.ctx, dorn, "rd@sc.de")
	s.ErrorIs(err, domain.ErrComplaintNotFound)
}

func (s *OrderServiceSuite) TestHistoryRequiresOwnership() {
	_, err := s.svc.FindOrderHistory(s.ctx, dorn, 700)
	s.ErrorIs(err, domain.ErrAccessDenied)

	history, err := s.svc.FindOrderHistory(s.ctx, mustermann, 700)
	s.Require().NoError(err)
	s.Empty(history)
}
