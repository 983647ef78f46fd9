// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/acm-uic/acm-catalog/internal/server/models"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userKey — ключ контекста, под которым хранится запись аутентифицированного пользователя.
const userKey ctxKey = "user"

// UserResolver резолвит userID из токена в запись пользователя.
//
// Реализуется repository.UsersRepository. Хэш пароля в возвращаемой
// записи не заполняется.
type UserResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// TokenVerifier инкапсулирует параметры проверки JWT access-токенов.
//
// Используется в HTTP middleware для:
//   - извлечения токена из cookie или заголовка Authorization
//   - проверки подписи и срока жизни токена
//   - резолва userID из claims.Subject в запись пользователя
type TokenVerifier struct {
	SigningKey string // симметричный ключ для подписи (HS256)
	CookieName string // имя cookie, в которой клиент передаёт токен
	Users      UserResolver
}

// NewTokenVerifier создаёт новый TokenVerifier с заданными параметрами.
func NewTokenVerifier(signingKey, cookieName string, users UserResolver) *TokenVerifier {
	return &TokenVerifier{SigningKey: signingKey, CookieName: cookieName, Users: users}
}

// UserFromContext извлекает запись аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - запись пользователя (без хэша пароля)
//   - false, если пользователь не аутентифицирован
func UserFromContext(ctx context.Context) (models.User, bool) {
	v := ctx.Value(userKey)
	u, ok := v.(models.User)
	return u, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки JWT access-токенов.
//
// Middleware:
//   - ищет токен сначала в cookie, затем в заголовке Authorization: Bearer <token>
//   - валидирует подпись и срок жизни токена
//   - извлекает userID из claims.Subject и резолвит его в запись пользователя
//   - сохраняет пользователя (без хэша пароля) в context.Context
//
// Одна попытка проверки на запрос, без ретраев. В случае любой ошибки
// возвращает HTTP 401 Unauthorized и не вызывает следующий обработчик.
func (v *TokenVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := v.ExtractToken(r)
			if tokenStr == "" {
				unauthorized(w, "Not authorized to access this route")
				return
			}

			claims := &jwt.RegisteredClaims{}

			parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
			_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(v.SigningKey), nil
			})

			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					unauthorized(w, "Not authorized, token expired")
					return
				}
				unauthorized(w, "Not authorized, token failed")
				return
			}

			userID, err := uuid.Parse(strings.TrimSpace(claims.Subject))
			if err != nil {
				unauthorized(w, "Not authorized, token failed")
				return
			}

			user, err := v.Users.GetByID(r.Context(), userID)
			if err != nil {
				// пользователь мог быть удалён после выпуска токена
				unauthorized(w, "User not found")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken достаёт токен из запроса.
//
// Порядок поиска:
//  1. cookie с именем v.CookieName;
//  2. заголовок Authorization: Bearer <token>.
//
// Возвращает пустую строку, если токена нет ни там, ни там.
func (v *TokenVerifier) ExtractToken(r *http.Request) string {
	if c, err := r.Cookie(v.CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	return ExtractBearer(r.Header.Get("Authorization"))
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// unauthorized пишет 401 в общем для API формате {"success":false,"message":...}.
func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success":false,"message":"` + msg + `"}`))
}
