package grpcsvc

import (
	"context"

	log "github.com/sirupsen/logrus"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// OrderServer реализует webshopv1.OrderServiceServer.
type OrderServer struct {
	webshopv1.UnimplementedOrderServiceServer

	orders OrderService
	idem   *Idempotency
	logger *log.Entry
}

// NewOrderServer создаёт gRPC-обработчик заказов.
func NewOrderServer(orders OrderService, idem *Idempotency, logger *log.Entry) *OrderServer {
	return &OrderServer{orders: orders, idem: idem, logger: logger}
}

func orderResponse(o domain.Order) *webshopv1.OrderResponse {
	return &webshopv1.OrderResponse{Order: toOrder(o)}
}

func positionsResponse(list []domain.OrderPosition) *webshopv1.PositionsResponse {
	return &webshopv1.PositionsResponse{Positions: toPositions(list)}
}

func (s *OrderServer) FindOrderByID(ctx context.Context, req *webshopv1.IDRequest) (*webshopv1.OrderResponse, error) {
	o, err := s.orders.FindOrderByID(ctx, auth.CallerFrom(ctx), req.GetId())
	return respond(s.logger, "FindOrderByID", o, err, orderResponse)
}

func (s *OrderServer) FindOrdersByCustomerEmail(ctx context.Context, req *webshopv1.EmailRequest) (*webshopv1.OrdersResponse, error) {
	list, err := s.orders.FindOrdersByCustomerEmail(ctx, auth.CallerFrom(ctx), req.GetEmail())
	return respond(s.logger, "FindOrdersByCustomerEmail", list, err, func(list []domain.Order) *webshopv1.OrdersResponse {
		return &webshopv1.OrdersResponse{Orders: toOrders(list)}
	})
}

func (s *OrderServer) FindProfileByOrderID(ctx context.Context, req *webshopv1.IDRequest) (*webshopv1.ProfileResponse, error) {
	p, err := s.orders.FindProfileByOrderID(ctx, auth.CallerFrom(ctx), req.GetId())
	return respond(s.logger, "FindProfileByOrderID", p, err, profileResponse)
}

func (s *OrderServer) FindPositionsByOrderID(ctx context.Context, req *webshopv1.IDRequest) (*webshopv1.PositionsResponse, error) {
	list, err := s.orders.FindPositionsByOrderID(ctx, auth.CallerFrom(ctx), req.GetId())
	return respond(s.logger, "FindPositionsByOrderID", list, err, positionsResponse)
}

func (s *OrderServer) CreateOrder(ctx context.Context, req *webshopv1.CreateOrderRequest) (*webshopv1.OrderResponse, error) {
	return runIdempotent(ctx, s.idem, webshopv1.OrderService_CreateOrder_FullMethodName, req,
		func(ctx context.Context) (*webshopv1.OrderResponse, error) {
			order := domain.Order{
				CustomerID:  req.GetCustomerId(),
				PaymentMode: domain.PaymentMode(req.GetPaymentMode()),
				Positions:   make([]domain.OrderPosition, 0, len(req.GetPositions())),
			}
			if req.GetShippingAddress() != nil {
				order.ShippingAddress = fromAddress(req.GetShippingAddress())
			}
			for _, p := range req.GetPositions() {
				order.Positions = append(order.Positions, fromPosition(p))
			}
			o, err := s.orders.CreateOrder(ctx, auth.CallerFrom(ctx), order)
			return respond(s.logger, "CreateOrder", o, err, orderResponse)
		})
}

func (s *OrderServer) AddOrderPosition(ctx context.Context, req *webshopv1.AddOrderPositionRequest) (*webshopv1.OrderResponse, error) {
	return runIdempotent(ctx, s.idem, webshopv1.OrderService_AddOrderPosition_FullMethodName, req,
		func(ctx context.Context) (*webshopv1.OrderResponse, error) {
			ref := domain.Order{ID: req.GetOrderId(), Version: req.GetVersion()}
			o, err := s.orders.AddOrderPosition(ctx, auth.CallerFrom(ctx), ref, fromPosition(req.GetPosition()))
			return respond(s.logger, "AddOrderPosition", o, err, orderResponse)
		})
}

func (s *OrderServer) SetOrderStatus(ctx context.Context, req *webshopv1.SetOrderStatusRequest) (*webshopv1.OrderResponse, error) {
	return runIdempotent(ctx, s.idem, webshopv1.OrderService_SetOrderStatus_FullMethodName, req,
		func(ctx context.Context) (*webshopv1.OrderResponse, error) {
			ref := domain.Order{ID: req.GetOrderId(), Version: req.GetVersion()}
			o, err := s.orders.SetOrderStatus(ctx, auth.CallerFrom(ctx), ref, domain.OrderStatus(req.GetStatus()))
			return respond(s.logger, "SetOrderStatus", o, err, orderResponse)
		})
}

func (s *OrderServer) FileComplaint(ctx context.Context, req *webshopv1.FileComplaintRequest) (*webshopv1.OrderResponse, error) {
	return runIdempotent(ctx, s.idem, webshopv1.OrderService_FileComplaint_FullMethodName, req,
		func(ctx context.Context) (*webshopv1.OrderResponse, error) {
			ref := domain.Order{ID: req.GetOrderId(), Version: req.GetVersion()}
			o, err := s.orders.FileComplaint(ctx, auth.CallerFrom(ctx), ref, req.GetPositionId(), req.GetText())
			return respond(s.logger, "FileComplaint", o, err, orderResponse)
		})
}

func (s *OrderServer) FindComplaintsByCustomerEmail(ctx context.Context, req *webshopv1.EmailRequest) (*webshopv1.PositionsResponse, error) {
	list, err := s.orders.FindComplaintsByCustomerEmail(ctx, auth.CallerFrom(ctx), req.GetEmail())
	return respond(s.logger, "FindComplaintsByCustomerEmail", list, err, positionsResponse)
}

func (s *OrderServer) FindOrderHistory(ctx context.Context, req *webshopv1.IDRequest) (*webshopv1.TimelineResponse, error) {
	events, err := s.orders.FindOrderHistory(ctx, auth.CallerFrom(ctx), req.GetId())
	return respond(s.logger, "FindOrderHistory", events, err, func(events []domain.TimelineEvent) *webshopv1.TimelineResponse {
		return &webshopv1.TimelineResponse{Events: toTimeline(events)}
	})
}
