package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pribylovaa/directory-service/internal/auth"
	"github.com/pribylovaa/directory-service/internal/http/handlers"
	"github.com/pribylovaa/directory-service/internal/http/middleware"
	"github.com/pribylovaa/directory-service/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// Metrics — реестр для HTTP-метрик; nil отключает их сбор.
	Metrics prometheus.Registerer
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, am *auth.Manager, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Metrics != nil {
		root.Use(middleware.Metrics(opts.Metrics))
	}
	root.Use(middleware.AuthBearer(am)) // валидируем Bearer токен и кладём callerID в контекст
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc, am)
	registerRoutes(root, h)

	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// Публичные роуты: регистрация и обмен учётных данных на токен.
	r.Post("/users/create", h.CreateUser)
	r.Post("/auth/token", h.Token)

	// Всё остальное требует аутентифицированного вызывающего.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth())

		pr.Get("/users/get/id/{id}", h.UserByID)
		pr.Get("/users/search", h.SearchUsers)
		pr.Put("/users/update/id/{id}", h.UpdateUser)
		pr.Delete("/users/delete/id/{id}", h.DeleteUser)
		pr.Post("/users/block/id/{id}", h.BlockUser)
		pr.Post("/users/unblock/id/{id}", h.UnblockUser)
	})
}
