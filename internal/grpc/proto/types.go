// Package proto содержит описание gRPC сервиса пользователей и задач
package proto

import "github.com/tempizhere/crudapi/internal/models"

// IDRequest запрос с ID записи
type IDRequest struct {
	ID int64 `json:"id"`
}

// UpdateUserRequest запрос на замену полей пользователя
type UpdateUserRequest struct {
	ID   int64             `json:"id"`
	User models.UserCreate `json:"user"`
}

// UpdateTodoRequest запрос на замену полей задачи
type UpdateTodoRequest struct {
	ID   int64       `json:"id"`
	Todo models.Todo `json:"todo"`
}

// PingRequest представляет запрос проверки состояния
type PingRequest struct{}

// PingResponse представляет ответ проверки состояния
type PingResponse struct {
	DatabaseAvailable bool `json:"database_available"`
}
