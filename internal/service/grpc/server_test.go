package grpcsvc_test

import (
	"context"
	"math"
	"net"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/fixtures"
	"github.com/vladislavdragonenkov/webshop/internal/metrics"
	"github.com/vladislavdragonenkov/webshop/internal/service/catalog"
	grpcsvc "github.com/vladislavdragonenkov/webshop/internal/service/grpc"
	"github.com/vladislavdragonenkov/webshop/internal/service/order"
	"github.com/vladislavdragonenkov/webshop/internal/service/profile"
	"github.com/vladislavdragonenkov/webshop/internal/storage/memory"
)

const bufSize = 1024 * 1024

var (
	asAdmin = grpc.PerRPCCredentials(webshopv1.BasicCredentials{Email: "admin@hs-karlsruhe.de", Password: "pass"})
	asMax   = grpc.PerRPCCredentials(webshopv1.BasicCredentials{Email: "max@hs-karlsruhe.de", Password: "pass"})
	asDorn  = grpc.PerRPCCredentials(webshopv1.BasicCredentials{Email: "rd@sc.de", Password: "pass"})
)

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	return logger.WithField("component", "test")
}

func idemCtx(key string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), webshopv1.IdempotencyKeyHeader, key)
}

type ServerSuite struct {
	suite.Suite

	server   *grpc.Server
	conn     *grpc.ClientConn
	profiles webshopv1.ProfileServiceClient
	orders   webshopv1.OrderServiceClient
	catalog  webshopv1.CatalogServiceClient
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	ctx := context.Background()
	logger := loggerForTests()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	store := memory.NewStore()
	s.Require().NoError(fixtures.NewReloader(store, hasher).ReloadFixtures(ctx, fixtures.DefaultDataset))

	profileRepo := memory.NewProfileRepository(store)
	orderRepo := memory.NewOrderRepository(store)
	serviceMetrics := metrics.NewServiceMetricsWithRegisterer(prometheus.NewRegistry())

	s.server = grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcsvc.UnaryAuthInterceptor(auth.NewAuthenticator(profileRepo, hasher, logger), logger),
	))
	grpcsvc.Register(s.server, grpcsvc.Services{
		Profiles: profile.NewService(profileRepo, orderRepo, hasher,
			profile.WithMetrics(serviceMetrics), profile.WithLogger(logger)),
		Orders: order.NewService(orderRepo, profileRepo,
			order.WithTimeline(memory.NewTimelineRepository(store)),
			order.WithMetrics(serviceMetrics), order.WithLogger(logger)),
		Catalog: catalog.NewService(memory.NewCatalogRepository(store),
			catalog.WithMetrics(serviceMetrics), catalog.WithLogger(logger)),
		Idempotency: grpcsvc.NewIdempotency(memory.NewIdempotencyRepository(), 0, logger),
		Logger:      logger,
	})

	listener := bufconn.Listen(bufSize)
	go func() {
		_ = s.server.Serve(listener)
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return listener.Dial()
	}
	//nolint:staticcheck // grpc.Dial is required for bufconn testing
	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.profiles = webshopv1.NewProfileServiceClient(conn)
	s.orders = webshopv1.NewOrderServiceClient(conn)
	s.catalog = webshopv1.NewCatalogServiceClient(conn)
}

func (s *ServerSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *ServerSuite) requireCode(err error, code codes.Code) {
	s.T().Helper()
	s.Require().Error(err)
	s.Equal(code, status.Code(err), err.Error())
}

func (s *ServerSuite) TestFindProfileByEmail_ReturnsProfileWithoutHash() {
	resp, err := s.profiles.FindProfileByEmail(context.Background(),
		&webshopv1.EmailRequest{Email: "max@hs-karlsruhe.de"}, asAdmin)
	s.Require().NoError(err)
	s.Equal("Mustermann", resp.Profile.LastName)
	s.Equal("customer", resp.Profile.Role)
}

func (s *ServerSuite) TestAnonymousCallerIsRejected() {
	_, err := s.profiles.FindProfileByEmail(context.Background(), &webshopv1.EmailRequest{Email: "max@hs-karlsruhe.de"})
	s.requireCode(err, codes.Unauthenticated)
}

func (s *ServerSuite) TestWrongPasswordIsRejected() {
	wrong := grpc.PerRPCCredentials(webshopv1.BasicCredentials{Email: "max@hs-karlsruhe.de", Password: "nope"})
	_, err := s.catalog.FindAllCategories(context.Background(), &webshopv1.Empty{}, wrong)
	s.requireCode(err, codes.Unauthenticated)
}

func (s *ServerSuite) TestDeactivatedProfileCannotAuthenticate() {
	gomez := grpc.PerRPCCredentials(webshopv1.BasicCredentials{Email: "mario.gomez@vfb.de", Password: "pass"})
	_, err := s.catalog.FindAllCategories(context.Background(), &webshopv1.Empty{}, gomez)
	s.requireCode(err, codes.Unauthenticated)
}

func (s *ServerSuite) TestProfileNotFoundCarriesKey() {
	_, err := s.profiles.FindProfileByEmail(context.Background(),
		&webshopv1.EmailRequest{Email: "nobody@hs-karlsruhe.de"}, asAdmin)
	s.requireCode(err, codes.NotFound)
	s.Contains(status.Convert(err).Message(), "nobody@hs-karlsruhe.de")
}

func (s *ServerSuite) TestFindProfileWithOrdersByEmail_ForeignProfileDenied() {
	_, err := s.profiles.FindProfileWithOrdersByEmail(context.Background(),
		&webshopv1.EmailRequest{Email: "max@hs-karlsruhe.de"}, asDorn)
	s.requireCode(err, codes.PermissionDenied)

	resp, err := s.profiles.FindProfileWithOrdersByEmail(context.Background(),
		&webshopv1.EmailRequest{Email: "max@hs-karlsruhe.de"}, asMax)
	s.Require().NoError(err)
	s.Len(resp.Profile.Orders, 2)
}

func (s *ServerSuite) TestCreateProfile_AnonymousCustomerThenDuplicate() {
	req := &webshopv1.CreateProfileRequest{
		Profile: &webshopv1.Profile{
			Email:     "new.customer@hs-karlsruhe.de",
			LastName:  "Neumann",
			FirstName: "Nina",
			Address:   &webshopv1.Address{Street: "Moltkestrasse", HouseNo: "30", Postcode: "76133", City: "Karlsruhe"},
		},
		Password:       "secret",
		RepeatPassword: "secret",
	}
	resp, err := s.profiles.CreateProfile(context.Background(), req)
	s.Require().NoError(err)
	s.Positive(resp.GetProfile().GetId())
	s.Equal("customer", resp.Profile.Role)
	s.Equal("activated", resp.Profile.Status)

	_, err = s.profiles.CreateProfile(context.Background(), req)
	s.requireCode(err, codes.AlreadyExists)
}

func (s *ServerSuite) TestUpdateProfile_StaleVersionAborted() {
	ctx := context.Background()
	current, err := s.profiles.FindProfileByID(ctx, &webshopv1.IDRequest{Id: 2}, asMax)
	s.Require().NoError(err)

	first := proto.Clone(current.Profile).(*webshopv1.Profile)
	first.TelephoneNo = "0721 111"
	updated, err := s.profiles.UpdateProfile(ctx, &webshopv1.UpdateProfileRequest{Profile: first}, asMax)
	s.Require().NoError(err)
	s.Equal(current.Profile.Version+1, updated.Profile.Version)

	stale := proto.Clone(current.Profile).(*webshopv1.Profile)
	stale.TelephoneNo = "0721 222"
	_, err = s.profiles.UpdateProfile(ctx, &webshopv1.UpdateProfileRequest{Profile: stale}, asMax)
	s.requireCode(err, codes.Aborted)
}

func (s *ServerSuite) TestDeleteProfile_WithOrdersIsStateConflict() {
	current, err := s.profiles.FindProfileByID(context.Background(), &webshopv1.IDRequest{Id: 2}, asAdmin)
	s.Require().NoError(err)

	_, err = s.profiles.DeleteProfile(context.Background(),
		&webshopv1.VersionedRef{Id: 2, Version: current.Profile.Version}, asAdmin)
	s.requireCode(err, codes.FailedPrecondition)

	_, err = s.profiles.DeleteProfile(context.Background(),
		&webshopv1.VersionedRef{Id: 2, Version: current.Profile.Version}, asMax)
	s.requireCode(err, codes.PermissionDenied)
}

func (s *ServerSuite) TestCreateOrder_TotalAndIdempotentReplay() {
	req := &webshopv1.CreateOrderRequest{
		Positions: []*webshopv1.PositionInput{{ArticleNo: "VZ90/10", Quantity: 2}},
	}
	first, err := s.orders.CreateOrder(idemCtx("create-order-1"), req, asMax)
	s.Require().NoError(err)
	s.Equal(int64(2), first.Order.CustomerId)
	s.Equal("open", first.Order.Status)
	s.Equal("399.80", first.Order.Total)

	replayed, err := s.orders.CreateOrder(idemCtx("create-order-1"), req, asMax)
	s.Require().NoError(err)
	s.Equal(first.Order.Id, replayed.Order.Id)

	article, err := s.catalog.FindArticleByArticleNo(context.Background(),
		&webshopv1.ArticleNoRequest{ArticleNo: "VZ90/10"}, asMax)
	s.Require().NoError(err)
	s.Equal(int32(23), article.Article.Quantity, "replay must not decrement stock twice")

	req.Positions[0].Quantity = 1
	_, err = s.orders.CreateOrder(idemCtx("create-order-1"), req, asMax)
	s.requireCode(err, codes.AlreadyExists)
}

func (s *ServerSuite) TestCreateOrder_FailureIsReplayed() {
	req := &webshopv1.CreateOrderRequest{
		Positions: []*webshopv1.PositionInput{{ArticleNo: "LT-500", Quantity: 1}},
	}
	_, err := s.orders.CreateOrder(idemCtx("create-order-2"), req, asMax)
	s.requireCode(err, codes.FailedPrecondition)

	_, err = s.orders.CreateOrder(idemCtx("create-order-2"), req, asMax)
	s.requireCode(err, codes.FailedPrecondition)
}

func (s *ServerSuite) TestCreateOrder_ValidationErrors() {
	_, err := s.orders.CreateOrder(context.Background(), &webshopv1.CreateOrderRequest{}, asMax)
	s.requireCode(err, codes.InvalidArgument)

	_, err = s.orders.CreateOrder(context.Background(), &webshopv1.CreateOrderRequest{
		Positions: []*webshopv1.PositionInput{{ArticleNo: "VZ90/10", Quantity: 1}},
	})
	s.requireCode(err, codes.Unauthenticated)
}

func (s *ServerSuite) TestSetOrderStatus_VersionedAndHistory() {
	ctx := context.Background()
	current, err := s.orders.FindOrderByID(ctx, &webshopv1.IDRequest{Id: 700}, asAdmin)
	s.Require().NoError(err)

	shipped, err := s.orders.SetOrderStatus(ctx, &webshopv1.SetOrderStatusRequest{
		OrderId: 700, Version: current.Order.Version, Status: "processing",
	}, asAdmin)
	s.Require().NoError(err)
	s.Equal("processing", shipped.Order.Status)

	_, err = s.orders.SetOrderStatus(ctx, &webshopv1.SetOrderStatusRequest{
		OrderId: 700, Version: current.Order.Version, Status: "shipped",
	}, asAdmin)
	s.requireCode(err, codes.Aborted)

	history, err := s.orders.FindOrderHistory(ctx, &webshopv1.IDRequest{Id: 700}, asAdmin)
	s.Require().NoError(err)
	s.NotEmpty(history.Events)
}

func (s *ServerSuite) TestOrderOfAnotherCustomerIsHidden() {
	_, err := s.orders.FindOrderByID(context.Background(), &webshopv1.IDRequest{Id: 702}, asMax)
	s.Require().Error(err)
	s.Contains([]codes.Code{codes.NotFound, codes.PermissionDenied}, status.Code(err))
}

func (s *ServerSuite) TestFindOrderByID_NonPositiveIsNotFound() {
	for _, id := range []int64{0, -1, math.MinInt64} {
		_, err := s.orders.FindOrderByID(context.Background(), &webshopv1.IDRequest{Id: id}, asAdmin)
		s.requireCode(err, codes.NotFound)
	}
}

func (s *ServerSuite) TestCatalogLookups() {
	ctx := context.Background()
	article, err := s.catalog.FindArticleByArticleNo(ctx, &webshopv1.ArticleNoRequest{ArticleNo: "VZ90/10"}, asMax)
	s.Require().NoError(err)
	s.Equal("199.90", article.Article.Price)
	s.Len(article.Article.Attributes, 3)

	categories, err := s.catalog.FindCategoriesByName(ctx, &webshopv1.NameRequest{Name: "Dimension"}, asMax)
	s.Require().NoError(err)
	s.Require().Len(categories.Categories, 1)

	byCategory, err := s.catalog.FindArticlesByCategory(ctx, &webshopv1.IDRequest{Id: categories.Categories[0].Id}, asMax)
	s.Require().NoError(err)
	s.Len(byCategory.Articles, 4)

	_, err = s.catalog.FindAttributesByName(ctx, &webshopv1.NameRequest{Name: "Plastik"}, asMax)
	s.requireCode(err, codes.NotFound)
}
