package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
)

type orderAPI interface {
	FindOrderByID(ctx context.Context, in *webshopv1.IDRequest, opts ...grpc.CallOption) (*webshopv1.OrderResponse, error)
	SetOrderStatus(ctx context.Context, in *webshopv1.SetOrderStatusRequest, opts ...grpc.CallOption) (*webshopv1.OrderResponse, error)
	CreateOrder(ctx context.Context, in *webshopv1.CreateOrderRequest, opts ...grpc.CallOption) (*webshopv1.OrderResponse, error)
}

type profileAPI interface {
	FindProfileByEmail(ctx context.Context, in *webshopv1.EmailRequest, opts ...grpc.CallOption) (*webshopv1.ProfileResponse, error)
	UpdateProfile(ctx context.Context, in *webshopv1.UpdateProfileRequest, opts ...grpc.CallOption) (*webshopv1.ProfileResponse, error)
}

type catalogAPI interface {
	FindArticleByArticleNo(ctx context.Context, in *webshopv1.ArticleNoRequest, opts ...grpc.CallOption) (*webshopv1.ArticleResponse, error)
}

// clients — клиенты одного соединения.
type clients struct {
	orders   orderAPI
	profiles profileAPI
	catalog  catalogAPI
}

func newClients(conn grpc.ClientConnInterface) clients {
	return clients{
		orders:   webshopv1.NewOrderServiceClient(conn),
		profiles: webshopv1.NewProfileServiceClient(conn),
		catalog:  webshopv1.NewCatalogServiceClient(conn),
	}
}

type runner struct {
	cfg   config
	col   *collector
	runID string
}

// call выполняет один RPC с таймаутом и учитывает его результат.
// Непустой key уходит заголовком идемпотентности.
func call[Req, Resp any](
	r *runner,
	method, key string,
	fn func(context.Context, *Req, ...grpc.CallOption) (*Resp, error),
	req *Req,
) (*Resp, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.timeout)
	defer cancel()
	if key != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, webshopv1.IdempotencyKeyHeader, key)
	}

	start := time.Now()
	resp, err := fn(ctx, req)
	r.col.record(method, time.Since(start), grpcCode(err))
	return resp, err
}

// runScenario выполняет сценарий режима и возвращает код первого неуспешного вызова.
func (r *runner) runScenario(cli clients, index int) codes.Code {
	start := time.Now()
	var err error
	switch r.cfg.mode {
	case modeOrderStatus:
		err = r.orderStatus(cli, index)
	case modeProfileUpdate:
		err = r.profileUpdate(cli, index)
	case modeCreateOrder:
		err = r.createOrder(cli, index)
	default:
		err = status.Errorf(codes.InvalidArgument, "unsupported mode %q", r.cfg.mode)
	}
	code := grpcCode(err)
	r.col.record(scenarioMethod, time.Since(start), code)
	return code
}

// orderStatus читает заказ и переводит его в следующий статус с прочитанной версией.
// Параллельные сценарии конкурируют за одну версию, проигравшие получают Aborted.
func (r *runner) orderStatus(cli clients, index int) error {
	resp, err := call(r, "FindOrderByID", "", cli.orders.FindOrderByID, &webshopv1.IDRequest{Id: r.cfg.orderID})
	if err != nil {
		return err
	}
	order := resp.GetOrder()
	if order == nil {
		return status.Error(codes.Internal, "empty order in response")
	}

	_, err = call(r, "SetOrderStatus", r.key("status", index), cli.orders.SetOrderStatus, &webshopv1.SetOrderStatusRequest{
		OrderId: order.GetId(),
		Version: order.GetVersion(),
		Status:  nextStatus(order.GetStatus()),
	})
	return err
}

// profileUpdate читает профиль и сохраняет его с новым номером телефона.
func (r *runner) profileUpdate(cli clients, index int) error {
	resp, err := call(r, "FindProfileByEmail", "", cli.profiles.FindProfileByEmail, &webshopv1.EmailRequest{Email: r.cfg.profileEmail})
	if err != nil {
		return err
	}
	if resp.GetProfile() == nil {
		return status.Error(codes.Internal, "empty profile in response")
	}

	profile := proto.Clone(resp.GetProfile()).(*webshopv1.Profile)
	profile.Orders = nil
	profile.TelephoneNo = telephoneFor(index)
	_, err = call(r, "UpdateProfile", r.key("profile", index), cli.profiles.UpdateProfile, &webshopv1.UpdateProfileRequest{Profile: profile})
	return err
}

// createOrder заказывает одну позицию артикула. Когда остаток исчерпан,
// сервис отвечает FailedPrecondition.
func (r *runner) createOrder(cli clients, index int) error {
	resp, err := call(r, "CreateOrder", r.key("order", index), cli.orders.CreateOrder, &webshopv1.CreateOrderRequest{
		CustomerId: r.cfg.customerID,
		Positions: []*webshopv1.PositionInput{
			{ArticleNo: r.cfg.articleNo, Quantity: r.cfg.quantity},
		},
	})
	if err != nil {
		return err
	}
	if resp.GetOrder().GetId() == 0 {
		return status.Error(codes.Internal, "create response returned empty order id")
	}
	return nil
}

func (r *runner) articleQuantity(cli clients) (int32, error) {
	resp, err := call(r, "FindArticleByArticleNo", "", cli.catalog.FindArticleByArticleNo, &webshopv1.ArticleNoRequest{ArticleNo: r.cfg.articleNo})
	if err != nil {
		return 0, fmt.Errorf("find article %s: %w", r.cfg.articleNo, err)
	}
	if resp.GetArticle() == nil {
		return 0, errors.New("empty article in response")
	}
	return resp.GetArticle().GetQuantity(), nil
}

func (r *runner) key(kind string, index int) string {
	return fmt.Sprintf("lt-%s-%s-%d", kind, r.runID, index)
}

// checkStock сравнивает списанный остаток с количеством в успешных заказах.
func checkStock(articleNo string, initial, final int32, orderedUnits int64) stockReport {
	return stockReport{
		ArticleNo:    articleNo,
		Initial:      initial,
		Final:        final,
		OrderedUnits: orderedUnits,
		Consistent:   int64(initial)-int64(final) == orderedUnits,
		Oversold:     final < 0 || orderedUnits > int64(initial),
	}
}

// nextStatus чередует processing и shipped, чтобы каждый сценарий менял статус.
func nextStatus(current string) string {
	if current == "processing" {
		return "shipped"
	}
	return "processing"
}

func telephoneFor(index int) string {
	return fmt.Sprintf("+49 721 %06d", index%1000000)
}

func grpcCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	return status.Code(err)
}
