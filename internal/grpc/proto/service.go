package proto

import (
	"context"

	"github.com/tempizhere/crudapi/internal/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName полное имя gRPC сервиса
const ServiceName = "crud.v1.CrudService"

// CrudServiceServer представляет интерфейс gRPC сервиса
type CrudServiceServer interface {
	CreateUser(ctx context.Context, req *models.UserCreate) (*models.UserReturn, error)
	GetUser(ctx context.Context, req *IDRequest) (*models.UserReturn, error)
	UpdateUser(ctx context.Context, req *UpdateUserRequest) (*models.UserReturn, error)
	DeleteUser(ctx context.Context, req *IDRequest) (*models.MessageResponse, error)
	CreateTodo(ctx context.Context, req *models.Todo) (*models.TodoReturn, error)
	GetTodo(ctx context.Context, req *IDRequest) (*models.TodoReturn, error)
	UpdateTodo(ctx context.Context, req *UpdateTodoRequest) (*models.TodoReturn, error)
	DeleteTodo(ctx context.Context, req *IDRequest) (*models.MessageResponse, error)
	Ping(ctx context.Context, req *PingRequest) (*PingResponse, error)
}

// UnimplementedCrudServiceServer отвечает Unimplemented на все методы
type UnimplementedCrudServiceServer struct{}

func (UnimplementedCrudServiceServer) CreateUser(context.Context, *models.UserCreate) (*models.UserReturn, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateUser not implemented")
}

func (UnimplementedCrudServiceServer) GetUser(context.Context, *IDRequest) (*models.UserReturn, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}

func (UnimplementedCrudServiceServer) UpdateUser(context.Context, *UpdateUserRequest) (*models.UserReturn, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateUser not implemented")
}

func (UnimplementedCrudServiceServer) DeleteUser(context.Context, *IDRequest) (*models.MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteUser not implemented")
}

func (UnimplementedCrudServiceServer) CreateTodo(context.Context, *models.Todo) (*models.TodoReturn, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateTodo not implemented")
}

func (UnimplementedCrudServiceServer) GetTodo(context.Context, *IDRequest) (*models.TodoReturn, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTodo not implemented")
}

func (UnimplementedCrudServiceServer) UpdateTodo(context.Context, *UpdateTodoRequest) (*models.TodoReturn, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateTodo not implemented")
}

func (UnimplementedCrudServiceServer) DeleteTodo(context.Context, *IDRequest) (*models.MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteTodo not implemented")
}

func (UnimplementedCrudServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

// unary собирает описание метода: декодирует запрос и пропускает вызов через интерцептор
func unary[Req, Resp any](name string, call func(CrudServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(CrudServiceServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*Req))
			})
		},
	}
}

// CrudServiceDesc описание сервиса для grpc.Server
var CrudServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CrudServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateUser", CrudServiceServer.CreateUser),
		unary("GetUser", CrudServiceServer.GetUser),
		unary("UpdateUser", CrudServiceServer.UpdateUser),
		unary("DeleteUser", CrudServiceServer.DeleteUser),
		unary("CreateTodo", CrudServiceServer.CreateTodo),
		unary("GetTodo", CrudServiceServer.GetTodo),
		unary("UpdateTodo", CrudServiceServer.UpdateTodo),
		unary("DeleteTodo", CrudServiceServer.DeleteTodo),
		unary("Ping", CrudServiceServer.Ping),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "crud/v1/crud.proto",
}

// RegisterCrudServiceServer регистрирует реализацию сервиса в gRPC сервере
func RegisterCrudServiceServer(s grpc.ServiceRegistrar, srv CrudServiceServer) {
	s.RegisterService(&CrudServiceDesc, srv)
}

// CrudServiceClient клиент сервиса; все вызовы идут с JSON-кодеком
type CrudServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCrudServiceClient создаёт клиента поверх соединения
func NewCrudServiceClient(cc grpc.ClientConnInterface) *CrudServiceClient {
	return &CrudServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CrudServiceClient) CreateUser(ctx context.Context, in *models.UserCreate, opts ...grpc.CallOption) (*models.UserReturn, error) {
	return invoke[models.UserReturn](ctx, c.cc, "CreateUser", in, opts)
}

func (c *CrudServiceClient) GetUser(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*models.UserReturn, error) {
	return invoke[models.UserReturn](ctx, c.cc, "GetUser", in, opts)
}

func (c *CrudServiceClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*models.UserReturn, error) {
	return invoke[models.UserReturn](ctx, c.cc, "UpdateUser", in, opts)
}

func (c *CrudServiceClient) DeleteUser(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*models.MessageResponse, error) {
	return invoke[models.MessageResponse](ctx, c.cc, "DeleteUser", in, opts)
}

func (c *CrudServiceClient) CreateTodo(ctx context.Context, in *models.Todo, opts ...grpc.CallOption) (*models.TodoReturn, error) {
	return invoke[models.TodoReturn](ctx, c.cc, "CreateTodo", in, opts)
}

func (c *CrudServiceClient) GetTodo(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*models.TodoReturn, error) {
	return invoke[models.TodoReturn](ctx, c.cc, "GetTodo", in, opts)
}

func (c *CrudServiceClient) UpdateTodo(ctx context.Context, in *UpdateTodoRequest, opts ...grpc.CallOption) (*models.TodoReturn, error) {
	return invoke[models.TodoReturn](ctx, c.cc, "UpdateTodo", in, opts)
}

func (c *CrudServiceClient) DeleteTodo(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*models.MessageResponse, error) {
	return invoke[models.MessageResponse](ctx, c.cc, "DeleteTodo", in, opts)
}

func (c *CrudServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, "Ping", in, opts)
}
