// Package grpc содержит реализацию gRPC сервера для сервиса пользователей и задач
package grpc

import (
	"context"
	"errors"

	"github.com/tempizhere/crudapi/internal/grpc/proto"
	"github.com/tempizhere/crudapi/internal/models"
	"github.com/tempizhere/crudapi/internal/repository"
	"github.com/tempizhere/crudapi/internal/service"
	"github.com/tempizhere/crudapi/internal/validation"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server реализует gRPC сервер поверх тех же обработчиков ресурсов, что и HTTP
type Server struct {
	proto.UnimplementedCrudServiceServer
	users  *service.Users
	todos  *service.Todos
	db     repository.Gateway
	logger *zap.Logger
}

// NewServer создаёт новый gRPC сервер
func NewServer(users *service.Users, todos *service.Todos, db repository.Gateway, logger *zap.Logger) *Server {
	return &Server{
		users:  users,
		todos:  todos,
		db:     db,
		logger: logger,
	}
}

// NewGRPCServer создаёт grpc.Server с интерцепторами и регистрирует в нём srv
func NewGRPCServer(srv *Server, logger *zap.Logger) *grpc.Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RecoveryInterceptor(logger),
		LoggingInterceptor(logger),
	))
	proto.RegisterCrudServiceServer(s, srv)
	return s
}

// CreateUser создаёт пользователя
func (s *Server) CreateUser(ctx context.Context, req *models.UserCreate) (*models.UserReturn, error) {
	out, err := s.users.Create(ctx, *req)
	if err != nil {
		return nil, s.mapError(err, "user")
	}
	return &out, nil
}

// GetUser возвращает пользователя по ID
func (s *Server) GetUser(ctx context.Context, req *proto.IDRequest) (*models.UserReturn, error) {
	out, err := s.users.Get(ctx, req.ID)
	if err != nil {
		return nil, s.mapError(err, "user")
	}
	return &out, nil
}

// UpdateUser заменяет поля пользователя
func (s *Server) UpdateUser(ctx context.Context, req *proto.UpdateUserRequest) (*models.UserReturn, error) {
	out, err := s.users.Update(ctx, req.ID, req.User)
	if err != nil {
		return nil, s.mapError(err, "user")
	}
	return &out, nil
}

// DeleteUser удаляет пользователя
func (s *Server) DeleteUser(ctx context.Context, req *proto.IDRequest) (*models.MessageResponse, error) {
	if err := s.users.Delete(ctx, req.ID); err != nil {
		return nil, s.mapError(err, "user")
	}
	return &models.MessageResponse{Message: "User deleted successfully"}, nil
}

// CreateTodo создаёт задачу
func (s *Server) CreateTodo(ctx context.Context, req *models.Todo) (*models.TodoReturn, error) {
	out, err := s.todos.Create(ctx, *req)
	if err != nil {
		return nil, s.mapError(err, "todo")
	}
	return &out, nil
}

// GetTodo возвращает задачу по ID
func (s *Server) GetTodo(ctx context.Context, req *proto.IDRequest) (*models.TodoReturn, error) {
	out, err := s.todos.Get(ctx, req.ID)
	if err != nil {
		return nil, s.mapError(err, "todo")
	}
	return &out, nil
}

// UpdateTodo заменяет поля задачи
func (s *Server) UpdateTodo(ctx context.Context, req *proto.UpdateTodoRequest) (*models.TodoReturn, error) {
	out, err := s.todos.Update(ctx, req.ID, req.Todo)
	if err != nil {
		return nil, s.mapError(err, "todo")
	}
	return &out, nil
}

// DeleteTodo удаляет задачу
func (s *Server) DeleteTodo(ctx context.Context, req *proto.IDRequest) (*models.MessageResponse, error) {
	if err := s.todos.Delete(ctx, req.ID); err != nil {
		return nil, s.mapError(err, "todo")
	}
	return &models.MessageResponse{Message: "Todo deleted successfully"}, nil
}

// Ping проверяет состояние сервиса
func (s *Server) Ping(ctx context.Context, req *proto.PingRequest) (*proto.PingResponse, error) {
	if s.db == nil {
		return &proto.PingResponse{DatabaseAvailable: false}, nil
	}

	err := s.db.Ping(ctx)
	if err != nil {
		s.logger.Warn("Database ping failed", zap.Error(err))
	}
	return &proto.PingResponse{DatabaseAvailable: err == nil}, nil
}

// mapError преобразует ошибки обработчиков ресурсов в gRPC статусы
func (s *Server) mapError(err error, resource string) error {
	var verrs *validation.Errors
	switch {
	case errors.As(err, &verrs):
		return status.Error(codes.InvalidArgument, verrs.Error())
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, resource+" not found")
	default:
		s.logger.Error("Unexpected error", zap.String("resource", resource), zap.Error(err))
		return status.Error(codes.Internal, "internal server error")
	}
}
