package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/tempizhere/crudapi/internal/middleware"
	"go.uber.org/zap"
)

// NewRouter собирает маршрутизатор с middleware и маршрутами ресурсов.
// CORS включается, только если задан список разрешённых источников.
func NewRouter(a *App, logger *zap.Logger, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	// Recoverer внутри журнала: паника попадает в журнал как ответ 500
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.DecompressMiddleware)
	r.Use(chiMiddleware.Compress(5, "application/json"))
	if len(corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Content-Encoding"},
			MaxAge:         300,
		}))
	}

	r.Get("/", a.HandleRoot)
	r.Get("/ping", a.HandlePing)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", a.HandleCreateUser)
		r.Get("/{id}", a.HandleGetUser)
		r.Put("/{id}", a.HandleUpdateUser)
		r.Delete("/{id}", a.HandleDeleteUser)
	})

	r.Route("/todos", func(r chi.Router) {
		r.Post("/", a.HandleCreateTodo)
		r.Get("/{id}", a.HandleGetTodo)
		r.Put("/{id}", a.HandleUpdateTodo)
		r.Delete("/{id}", a.HandleDeleteTodo)
	})

	return r
}
