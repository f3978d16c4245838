package grpcsvc

import (
	"context"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// ProfileService — бизнес-операции над профилями.
type ProfileService interface {
	FindProfileByID(ctx context.Context, caller domain.Caller, id int64) (domain.Profile, error)
	FindProfileByEmail(ctx context.Context, caller domain.Caller, email string) (domain.Profile, error)
	FindProfileWithOrdersByEmail(ctx context.Context, caller domain.Caller, email string) (domain.Profile, error)
	FindProfilesByLastName(ctx context.Context, caller domain.Caller, lastName string) ([]domain.Profile, error)
	FindAllProfilesByRole(ctx context.Context, caller domain.Caller, role domain.Role) ([]domain.Profile, error)
	CreateProfile(ctx context.Context, caller domain.Caller, profile domain.Profile, password, repeatPassword string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, caller domain.Caller, profile domain.Profile) (domain.Profile, error)
	DeleteProfile(ctx context.Context, caller domain.Caller, profile domain.Profile) error
	SetProfileStatus(ctx context.Context, caller domain.Caller, profile domain.Profile, status domain.ProfileStatus) (domain.Profile, error)
	ChangePassword(ctx context.Context, caller domain.Caller, profile domain.Profile, oldPassword, newPassword, repeatPassword string) (domain.Profile, error)
}

// OrderService — бизнес-операции над заказами.
type OrderService interface {
	FindOrderByID(ctx context.Context, caller domain.Caller, id int64) (domain.Order, error)
	FindOrdersByCustomerEmail(ctx context.Context, caller domain.Caller, email string) ([]domain.Order, error)
	FindProfileByOrderID(ctx context.Context, caller domain.Caller, id int64) (domain.Profile, error)
	FindPositionsByOrderID(ctx context.Context, caller domain.Caller, id int64) ([]domain.OrderPosition, error)
	CreateOrder(ctx context.Context, caller domain.Caller, order domain.Order) (domain.Order, error)
	AddOrderPosition(ctx context.Context, caller domain.Caller, order domain.Order, position domain.OrderPosition) (domain.Order, error)
	SetOrderStatus(ctx context.Context, caller domain.Caller, order domain.Order, status domain.OrderStatus) (domain.Order, error)
	FileComplaint(ctx context.Context, caller domain.Caller, order domain.Order, positionID int64, text string) (domain.Order, error)
	FindComplaintsByCustomerEmail(ctx context.Context, caller domain.Caller, email string) ([]domain.OrderPosition, error)
	FindOrderHistory(ctx context.Context, caller domain.Caller, id int64) ([]domain.TimelineEvent, error)
}

// CatalogService — поиск по каталогу.
type CatalogService interface {
	FindArticleByArticleNo(ctx context.Context, caller domain.Caller, articleNo string) (domain.Article, error)
	FindArticlesByName(ctx context.Context, caller domain.Caller, fragment string) ([]domain.Article, error)
	FindArticlesByAttribute(ctx context.Context, caller domain.Caller, attributeID int64) ([]domain.Article, error)
	FindArticlesByCategory(ctx context.Context, caller domain.Caller, categoryID int64) ([]domain.Article, error)
	FindAllCategories(ctx context.Context, caller domain.Caller) ([]domain.Category, error)
	FindCategoriesByName(ctx context.Context, caller domain.Caller, name string) ([]domain.Category, error)
	FindAllAttributes(ctx context.Context, caller domain.Caller) ([]domain.Attribute, error)
	FindAttributesByName(ctx context.Context, caller domain.Caller, name string) ([]domain.Attribute, error)
}

// Services — набор зависимостей gRPC-слоя.
type Services struct {
	Profiles    ProfileService
	Orders      OrderService
	Catalog     CatalogService
	Idempotency *Idempotency
	Logger      *log.Entry
}

// Register регистрирует все сервисы магазина на сервере.
func Register(server grpc.ServiceRegistrar, deps Services) {
	logger := deps.Logger
	if logger == nil {
		logger = log.WithField("component", "grpc")
	}
	webshopv1.RegisterProfileServiceServer(server, NewProfileServer(deps.Profiles, deps.Idempotency, logger))
	webshopv1.RegisterOrderServiceServer(server, NewOrderServer(deps.Orders, deps.Idempotency, logger))
	webshopv1.RegisterCatalogServiceServer(server, NewCatalogServer(deps.Catalog, logger))
}

// respond переводит результат сервиса в ответ gRPC.
func respond[T any, R any](logger *log.Entry, method string, value T, err error, wrap func(T) *R) (*R, error) {
	if err != nil {
		return nil, toStatus(logger, method, err)
	}
	return wrap(value), nil
}
