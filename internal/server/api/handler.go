// Package api реализует HTTP-слой сервера acm-catalog.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - транспорт токена через HTTP-only cookie и заголовок Authorization.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/acm-uic/acm-catalog/internal/server/config"
	"github.com/acm-uic/acm-catalog/internal/server/middleware"
	"github.com/acm-uic/acm-catalog/internal/server/models"
	"github.com/acm-uic/acm-catalog/internal/server/service"
	"github.com/acm-uic/acm-catalog/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: проверка JWT и middleware авторизации;
//   - cookie: параметры транспорта токена (имя, Secure, срок жизни).
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.TokenVerifier

	cookie    config.CookieConfig
	cookieTTL time.Duration
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — JWT-проверка и middleware авторизации,
// cfg — конфиг (нужны параметры cookie и срок жизни токена).
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.TokenVerifier, cfg *config.Config) *Handler {
	return &Handler{
		Svc:       svc,
		Log:       log,
		Verifier:  verifier,
		cookie:    cfg.Auth.Cookie,
		cookieTTL: cfg.Auth.AccessTTL,
	}
}

// UserDTO — публичная проекция пользователя, единственная форма,
// в которой пользователь уходит наружу. Хэша пароля здесь нет и быть не может.
type UserDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// toUserDTO собирает публичную проекцию из серверной модели.
func toUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse — успешный ответ без полезной нагрузки (например logout).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Message: err.Error(),
	})
}

// Вспомогательная функция вывода успешного JSON-ответа
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
