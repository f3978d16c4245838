package webshopv1

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

type fakeClientConn struct {
	methods map[string]int
	err     error
}

func (f *fakeClientConn) Invoke(_ context.Context, method string, _ any, reply any, _ ...grpc.CallOption) error {
	f.methods[method]++
	if f.err != nil {
		return f.err
	}
	if out, ok := reply.(*OrderResponse); ok {
		out.Order = &Order{Id: 703}
	}
	return nil
}

func (f *fakeClientConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("not implemented")
}

type orderServer struct {
	UnimplementedOrderServiceServer
}

func (orderServer) FindOrderByID(_ context.Context, req *IDRequest) (*OrderResponse, error) {
	return &OrderResponse{Order: &Order{Id: req.GetId()}}, nil
}

func TestMessagesRoundTripOnTheWire(t *testing.T) {
	in := &OrderResponse{Order: &Order{
		Id:              703,
		Status:          "open",
		Total:           "749.20",
		ShippingAddress: &Address{Street: "Moltkestraße", HouseNo: "30", Postcode: "76133", City: "Karlsruhe"},
		Positions:       []*OrderPosition{{Id: 5, ArticleNo: "VZ90/10", Quantity: 3, UnitPrice: "199.90"}},
		CreatedUnixMs:   1714557600000,
	}}
	data, err := proto.Marshal(in)
	require.NoError(t, err)

	out := new(OrderResponse)
	require.NoError(t, proto.Unmarshal(data, out))
	assert.True(t, proto.Equal(in, out))
	assert.Equal(t, "Moltkestraße", out.GetOrder().GetShippingAddress().GetStreet())
}

func TestGettersAreNilSafe(t *testing.T) {
	var resp *ProfileResponse
	assert.Nil(t, resp.GetProfile())
	assert.Zero(t, resp.GetProfile().GetAddress().GetCity())
	assert.Zero(t, (*AddOrderPositionRequest)(nil).GetPosition().GetQuantity())
}

func TestOrderServiceClientUsesFullMethodNames(t *testing.T) {
	conn := &fakeClientConn{methods: map[string]int{}}
	client := NewOrderServiceClient(conn)
	ctx := context.Background()

	resp, err := client.CreateOrder(ctx, &CreateOrderRequest{Positions: []*PositionInput{{ArticleNo: "VZ90/10", Quantity: 1}}})
	require.NoError(t, err)
	assert.EqualValues(t, 703, resp.GetOrder().GetId())
	_, err = client.FindOrderHistory(ctx, &IDRequest{Id: 703})
	require.NoError(t, err)

	assert.Equal(t, 1, conn.methods[OrderService_CreateOrder_FullMethodName])
	assert.Equal(t, 1, conn.methods[OrderService_FindOrderHistory_FullMethodName])
	assert.Equal(t, "/webshop.v1.OrderService/CreateOrder", OrderService_CreateOrder_FullMethodName)

	conn.err = status.Error(codes.Internal, "boom")
	_, err = NewCatalogServiceClient(conn).FindAllCategories(ctx, &Empty{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestGeneratedHandlerPassesThroughInterceptor(t *testing.T) {
	decode := func(v interface{}) error {
		v.(*IDRequest).Id = 700
		return nil
	}

	_, err := _OrderService_FindOrderByID_Handler(orderServer{}, context.Background(), func(interface{}) error {
		return errors.New("decode failed")
	}, nil)
	require.Error(t, err)

	seen := ""
	resp, err := _OrderService_FindOrderByID_Handler(orderServer{}, context.Background(), decode,
		func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
			seen = info.FullMethod
			return handler(ctx, req)
		})
	require.NoError(t, err)
	assert.Equal(t, OrderService_FindOrderByID_FullMethodName, seen)
	assert.EqualValues(t, 700, resp.(*OrderResponse).GetOrder().GetId())

	_, err = orderServer{}.CreateOrder(context.Background(), &CreateOrderRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestServiceDescriptorsCoverProtoServices(t *testing.T) {
	assert.Len(t, ProfileService_ServiceDesc.Methods, 10)
	assert.Len(t, OrderService_ServiceDesc.Methods, 10)
	assert.Len(t, CatalogService_ServiceDesc.Methods, 8)

	fd := File_api_webshop_v1_webshop_proto
	require.Equal(t, 3, fd.Services().Len())
	for _, desc := range []grpc.ServiceDesc{ProfileService_ServiceDesc, OrderService_ServiceDesc, CatalogService_ServiceDesc} {
		assert.Equal(t, fd.Path(), desc.Metadata)
		service := fd.Services().ByName(protoreflect.FullName(desc.ServiceName).Name())
		require.NotNil(t, service, desc.ServiceName)
		assert.Equal(t, len(desc.Methods), service.Methods().Len(), desc.ServiceName)
	}
	assert.Equal(t, "webshop.v1.Order", string((&Order{}).ProtoReflect().Descriptor().FullName()))
}

func TestRegisterServer(t *testing.T) {
	server := grpc.NewServer()
	RegisterOrderServiceServer(server, orderServer{})
	_, ok := server.GetServiceInfo()["webshop.v1.OrderService"]
	assert.True(t, ok)
}

func TestBasicCredentials(t *testing.T) {
	creds := BasicCredentials{Email: "max@hs-karlsruhe.de", Password: "pass"}

	md, err := creds.GetRequestMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Basic bWF4QGhzLWthcmxzcnVoZS5kZTpwYXNz", md[AuthorizationHeader])
	assert.False(t, creds.RequireTransportSecurity())
}
