// Package models содержит входные и выходные записи API.
//
// Общие поля вынесены в отдельные структуры и встраиваются во входную
// и выходную модели, поэтому выходная модель никогда не получает поля,
// появившиеся только во входной.
package models

// UserFields общие поля пользователя
type UserFields struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

// UserCreate входная модель пользователя для создания и полного обновления
type UserCreate struct {
	UserFields
}

// UserReturn выходная модель пользователя
type UserReturn struct {
	ID int64 `json:"id"`
	UserFields
}

// NewUserReturn собирает выходную модель из входной и ID из базы
func NewUserReturn(id int64, in UserCreate) UserReturn {
	return UserReturn{ID: id, UserFields: in.UserFields}
}

// TodoFields общие поля задачи
type TodoFields struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	IsComplited bool   `json:"is_complited"`
}

// Todo входная модель задачи
type Todo struct {
	TodoFields
}

// TodoReturn выходная модель задачи
type TodoReturn struct {
	ID int64 `json:"id"`
	TodoFields
}

// NewTodoReturn собирает выходную модель из входной и ID из базы
func NewTodoReturn(id int64, in Todo) TodoReturn {
	return TodoReturn{ID: id, TodoFields: in.TodoFields}
}

// MessageResponse ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse ответ об ошибке
type DetailResponse struct {
	Detail string `json:"detail"`
}
