// Package http реализует маршрутизацию HTTP-слоя сервера acm-catalog.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - CORS для браузерного фронтенда (cookie требуют credentials);
//   - логирование выполнения HTTP-запросов;
//   - проверку JWT access-токенов на защищённой группе маршрутов;
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/acm-uic/acm-catalog/internal/server/api"
	"github.com/acm-uic/acm-catalog/internal/server/middleware"
	"github.com/acm-uic/acm-catalog/internal/shared/logger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты аутентификации под префиксом /api/auth;
//   - публичное чтение каталога и защищённые JWT мутации под /api/catalog;
//   - middleware логирования и CORS для всех запросов.
func NewRouter(h *api.Handler, log *logger.HTTPLogger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(log))
	// cookie передаются только с AllowCredentials, поэтому wildcard origin запрещён
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		// Публичные пути
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout) // logout публичный: только чистит cookie
			// профиль текущего пользователя — за гейтом
			r.With(h.Verifier.AuthMiddleware()).Get("/me", h.Me)
		})

		r.Route("/catalog", func(r chi.Router) {
			// чтение каталога доступно без токена
			r.Get("/items", h.ListItems)
			r.Get("/items/{id}", h.GetItem)
			// мутации — только для аутентифицированных
			r.Group(func(r chi.Router) {
				r.Use(h.Verifier.AuthMiddleware())
				r.Post("/items", h.CreateItem)
				r.Put("/items/{id}", h.UpdateItem)
				r.Delete("/items/{id}", h.DeleteItem)
			})
		})
	})

	return r
}
