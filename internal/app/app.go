// Package app содержит HTTP-обработчики сервиса пользователей и задач
package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tempizhere/crudapi/internal/models"
	"github.com/tempizhere/crudapi/internal/repository"
	"github.com/tempizhere/crudapi/internal/service"
	"github.com/tempizhere/crudapi/internal/validation"
	"go.uber.org/zap"
)

// resource тексты ответов для одного ресурса
type resource struct {
	notFound string
	deleted  string
	name     string
}

var (
	userResource = resource{notFound: "User not found", deleted: "User deleted successfully", name: "user"}
	todoResource = resource{notFound: "Todo not found", deleted: "Todo deleted successfully", name: "todo"}
)

// validationResponse тело ответа 422
type validationResponse struct {
	Detail []validation.FieldError `json:"detail"`
}

// App содержит хендлеры и зависимости
type App struct {
	users              *service.Users
	todos              *service.Todos
	db                 repository.Gateway
	logger             *zap.Logger
	exposeErrorDetails bool
}

// NewApp создаёт новое приложение
func NewApp(users *service.Users, todos *service.Todos, db repository.Gateway, logger *zap.Logger, exposeErrorDetails bool) *App {
	return &App{
		users:              users,
		todos:              todos,
		db:                 db,
		logger:             logger,
		exposeErrorDetails: exposeErrorDetails,
	}
}

// HandleRoot обрабатывает GET-запросы на "/"
func (a *App) HandleRoot(w http.ResponseWriter, r *http.Request) {
	a.logger.Info("Home page")
	a.writeJSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Hello, World!"})
}

// HandlePing обрабатывает GET-запросы на "/ping"
func (a *App) HandlePing(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		a.writeJSONResponse(w, http.StatusInternalServerError, models.DetailResponse{Detail: "Database not configured"})
		return
	}
	if err := a.db.Ping(r.Context()); err != nil {
		a.logger.Error("Database ping failed", zap.Error(err))
		a.writeJSONResponse(w, http.StatusInternalServerError, models.DetailResponse{Detail: "Database connection failed"})
		return
	}
	a.writeJSONResponse(w, http.StatusOK, models.MessageResponse{Message: "ok"})
}

// parseID читает ID из пути; нецелое значение считается ошибкой валидации
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validation.NewError("id", validation.RuleInteger, "must be an integer")
	}
	return id, nil
}

// writeError переводит ошибку обработчика ресурса в код ответа
func (a *App) writeError(w http.ResponseWriter, res resource, op string, err error) {
	var verrs *validation.Errors
	switch {
	case errors.As(err, &verrs):
		a.writeJSONResponse(w, http.StatusUnprocessableEntity, validationResponse{Detail: verrs.Fields})
	case errors.Is(err, service.ErrNotFound):
		a.writeJSONResponse(w, http.StatusNotFound, models.DetailResponse{Detail: res.notFound})
	default:
		a.logger.Error("Request failed", zap.String("resource", res.name), zap.String("op", op), zap.Error(err))
		detail := "Failed to " + op + " " + res.name
		if a.exposeErrorDetails {
			detail += ": " + err.Error()
		}
		a.writeJSONResponse(w, http.StatusInternalServerError, models.DetailResponse{Detail: detail})
	}
}

// writeJSONResponse пишет JSON-ответ с проверкой ошибок
func (a *App) writeJSONResponse(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		a.logger.Error("Failed to encode JSON", zap.Error(err))
		http.Error(w, "Failed to encode JSON", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		a.logger.Warn("Failed to write response", zap.Error(err))
	}
}
