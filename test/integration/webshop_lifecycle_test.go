package integration

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"testing"

	"github.com/IBM/sarama/mocks"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/fixtures"
	"github.com/vladislavdragonenkov/webshop/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/webshop/internal/metrics"
	"github.com/vladislavdragonenkov/webshop/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/webshop/internal/service/grpc"
	"github.com/vladislavdragonenkov/webshop/internal/service/order"
	"github.com/vladislavdragonenkov/webshop/internal/service/outbox"
	"github.com/vladislavdragonenkov/webshop/internal/service/profile"
	"github.com/vladislavdragonenkov/webshop/internal/storage/memory"
)

const (
	customerEmail    = "lena.lifecycle@hs-karlsruhe.de"
	customerPassword = "lifecycle"
)

var asAdmin = grpc.PerRPCCredentials(webshopv1.BasicCredentials{Email: "admin@hs-karlsruhe.de", Password: "pass"})

// WebshopLifecycleSuite проходит путь клиента от регистрации до рекламации
// через gRPC и проверяет события, доставленные из outbox в Kafka.
type WebshopLifecycleSuite struct {
	suite.Suite

	server   *grpc.Server
	conn     *grpc.ClientConn
	outbox   *memory.OutboxRepository
	logger   *log.Entry
	profiles webshopv1.ProfileServiceClient
	orders   webshopv1.OrderServiceClient
	catalog  webshopv1.CatalogServiceClient
}

func TestWebshopLifecycleSuite(t *testing.T) {
	suite.Run(t, new(WebshopLifecycleSuite))
}

func (s *WebshopLifecycleSuite) SetupTest() {
	ctx := context.Background()
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel)
	s.logger = baseLogger.WithField("component", "integration-test")
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	store := memory.NewStore()
	s.Require().NoError(fixtures.NewReloader(store, hasher).ReloadFixtures(ctx, fixtures.DefaultDataset))

	profileRepo := memory.NewProfileRepository(store)
	orderRepo := memory.NewOrderRepository(store)
	s.outbox = store.Outbox()
	serviceMetrics := metrics.NewServiceMetricsWithRegisterer(prometheus.NewRegistry())

	s.server = grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcsvc.UnaryAuthInterceptor(auth.NewAuthenticator(profileRepo, hasher, s.logger), s.logger),
	))
	grpcsvc.Register(s.server, grpcsvc.Services{
		Profiles: profile.NewService(profileRepo, orderRepo, hasher,
			profile.WithEvents(), profile.WithMetrics(serviceMetrics), profile.WithLogger(s.logger)),
		Orders: order.NewService(orderRepo, profileRepo,
			order.WithTimeline(memory.NewTimelineRepository(store)), order.WithEvents(),
			order.WithMetrics(serviceMetrics), order.WithLogger(s.logger)),
		Catalog:     catalog.NewService(memory.NewCatalogRepository(store), catalog.WithLogger(s.logger)),
		Idempotency: grpcsvc.NewIdempotency(memory.NewIdempotencyRepository(), 0, s.logger),
		Logger:      s.logger,
	})

	listener := bufconn.Listen(1024 * 1024)
	go func() {
		_ = s.server.Serve(listener)
	}()

	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return listener.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.profiles = webshopv1.NewProfileServiceClient(conn)
	s.orders = webshopv1.NewOrderServiceClient(conn)
	s.catalog = webshopv1.NewCatalogServiceClient(conn)
}

func (s *WebshopLifecycleSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *WebshopLifecycleSuite) TestCustomerJourney() {
	ctx := context.Background()
	asCustomer := grpc.PerRPCCredentials(webshopv1.BasicCredentials{Email: customerEmail, Password: customerPassword})

	created, err := s.profiles.CreateProfile(ctx, &webshopv1.CreateProfileRequest{
		Profile: &webshopv1.Profile{
			Email:     customerEmail,
			LastName:  "Lebenslauf",
			FirstName: "Lena",
			Address:   &webshopv1.Address{Street: "Moltkestrasse", HouseNo: "30", Postcode: "76133", City: "Karlsruhe"},
		},
		Password:       customerPassword,
		RepeatPassword: customerPassword,
	})
	s.Require().NoError(err)
	s.Zero(created.Profile.Version, "new profiles start at version 0")

	placed, err := s.orders.CreateOrder(withKey(ctx, "journey-create"), &webshopv1.CreateOrderRequest{
		PaymentMode: "credit_card",
		Positions:   []*webshopv1.PositionInput{{ArticleNo: "VZ90/10", Quantity: 2}},
	}, asCustomer)
	s.Require().NoError(err)
	s.Equal(created.Profile.Id, placed.Order.CustomerId)
	s.Equal("Moltkestrasse", placed.Order.ShippingAddress.Street, "shipping address defaults to the customer address")
	s.Equal("399.80", placed.Order.Total)

	extended, err := s.orders.AddOrderPosition(withKey(ctx, "journey-add"), &webshopv1.AddOrderPositionRequest{
		OrderId:  placed.Order.Id,
		Version:  placed.Order.Version,
		Position: &webshopv1.PositionInput{ArticleNo: "MR90/20", Quantity: 1},
	}, asCustomer)
	s.Require().NoError(err)
	s.Len(extended.Order.Positions, 2)
	s.Equal("549.30", extended.Order.Total)
	s.assertStock("VZ90/10", 23)
	s.assertStock("MR90/20", 2)

	_, err = s.orders.SetOrderStatus(ctx, &webshopv1.SetOrderStatusRequest{
		OrderId: placed.Order.Id, Version: placed.Order.Version, Status: "processing",
	}, asAdmin)
	s.Equal(codes.Aborted, status.Code(err), "stale version must be rejected")

	version := extended.Order.Version
	for _, next := range []string{"processing", "shipped", "finished"} {
		resp, err := s.orders.SetOrderStatus(ctx, &webshopv1.SetOrderStatusRequest{
			OrderId: placed.Order.Id, Version: version, Status: next,
		}, asAdmin)
		s.Require().NoError(err, next)
		s.Equal(next, resp.Order.Status)
		version = resp.Order.Version
	}

	complained, err := s.orders.FileComplaint(ctx, &webshopv1.FileComplaintRequest{
		OrderId:    placed.Order.Id,
		Version:    version,
		PositionId: extended.Order.Positions[0].Id,
		Text:       "Scharnier gebrochen",
	}, asCustomer)
	s.Require().NoError(err)
	s.True(complained.Order.Positions[0].Complaint)

	complaints, err := s.orders.FindComplaintsByCustomerEmail(ctx, &webshopv1.EmailRequest{Email: customerEmail}, asCustomer)
	s.Require().NoError(err)
	s.Require().Len(complaints.Positions, 1)
	s.Equal("Scharnier gebrochen", complaints.Positions[0].ComplaintText)

	history, err := s.orders.FindOrderHistory(ctx, &webshopv1.IDRequest{Id: placed.Order.Id}, asCustomer)
	s.Require().NoError(err)
	var types []string
	for _, event := range history.Events {
		types = append(types, event.Type)
	}
	s.Equal([]string{
		"order_created", "position_added",
		"status_changed", "status_changed", "status_changed",
		"complaint_filed",
	}, types)

	s.Equal([]string{
		string(kafka.EventTypeProfileCreated),
		string(kafka.EventTypeOrderCreated),
		string(kafka.EventTypeOrderPositionAdded),
		string(kafka.EventTypeOrderStatusChanged),
		string(kafka.EventTypeOrderStatusChanged),
		string(kafka.EventTypeOrderStatusChanged),
		string(kafka.EventTypeOrderComplaintFiled),
	}, s.deliverOutbox())
}

func (s *WebshopLifecycleSuite) TestOrderOnDeactivatedProfileFails() {
	ctx := context.Background()

	profile, err := s.profiles.FindProfileByEmail(ctx, &webshopv1.EmailRequest{Email: "oliver.kahn@fc-bayern.de"}, asAdmin)
	s.Require().NoError(err)
	_, err = s.profiles.SetProfileStatus(ctx, &webshopv1.SetProfileStatusRequest{
		Id: profile.Profile.Id, Version: profile.Profile.Version, Status: "deactivated",
	}, asAdmin)
	s.Require().NoError(err)

	_, err = s.orders.CreateOrder(ctx, &webshopv1.CreateOrderRequest{
		CustomerId: profile.Profile.Id,
		Positions:  []*webshopv1.PositionInput{{ArticleNo: "VZ140/10", Quantity: 1}},
	}, asAdmin)
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.assertStock("VZ140/10", 10)

	s.Equal([]string{string(kafka.EventTypeProfileStatusChanged)}, s.deliverOutbox())
}

func (s *WebshopLifecycleSuite) assertStock(articleNo string, expected int32) {
	s.T().Helper()
	resp, err := s.catalog.FindArticleByArticleNo(context.Background(), &webshopv1.ArticleNoRequest{ArticleNo: articleNo}, asAdmin)
	s.Require().NoError(err)
	s.Equal(expected, resp.Article.Quantity, articleNo)
}

// deliverOutbox публикует накопленные события через mock-продюсер Kafka
// и возвращает их типы в порядке доставки.
func (s *WebshopLifecycleSuite) deliverOutbox() []string {
	pending := s.outbox.AllPending()

	mockProducer := mocks.NewSyncProducer(s.T(), nil)
	var (
		mu        sync.Mutex
		delivered []string
	)
	for range pending {
		mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var envelope kafka.Envelope
			if err := json.Unmarshal(val, &envelope); err != nil {
				return err
			}
			mu.Lock()
			delivered = append(delivered, envelope.EventType)
			mu.Unlock()
			return nil
		})
	}

	producer := kafka.NewProducerFromSync(mockProducer, kafka.WithProducerLogger(s.logger))
	worker := outbox.NewWorker(s.outbox, kafka.NewOutboxPublisher(producer, kafka.TopicShopEvents),
		outbox.WithRetryBaseDelay(0), outbox.WithLogger(s.logger))

	s.Equal(len(pending), worker.ProcessOnce(context.Background()))
	s.Empty(s.outbox.AllPending())
	s.Require().NoError(mockProducer.Close())

	mu.Lock()
	defer mu.Unlock()
	return delivered
}

func withKey(ctx context.Context, key string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, webshopv1.IdempotencyKeyHeader, key)
}
