// HTTP-хендлеры регистрации, логина, логаута и профиля текущего пользователя
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/acm-uic/acm-catalog/internal/server/middleware"
	serr "github.com/acm-uic/acm-catalog/internal/shared/errors"
)

// SignupRequest описывает тело запроса регистрации пользователя.
type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse описывает успешный ответ регистрации и входа.
//
// Токен возвращается и в теле, и в HTTP-only cookie: браузерные клиенты
// пользуются cookie, остальные — заголовком Authorization.
type AuthResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// MeResponse описывает ответ эндпоинта /api/auth/me.
type MeResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

// setAuthCookie кладёт токен в HTTP-only cookie.
//
// SameSite=Strict (защита от CSRF), Secure — по конфигу (в prod всегда).
// Срок жизни cookie совпадает со сроком жизни токена.
func (h *Handler) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(h.cookieTTL),
	})
}

// clearAuthCookie перезаписывает cookie заглушкой с истекшим сроком.
// Сам токен при этом остаётся валидным до естественного истечения.
func (h *Handler) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "none",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

// Signup обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна, токен в теле и в cookie;
//   - 400 Bad Request: неверный JSON, невалидные входные данные или email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Sign up
// @Description  Registers a new user, hashes the password and issues a 30-day token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup request"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} ErrorResponse "Invalid input or email already registered"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	res, err := h.Svc.Auth.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput),
			errors.Is(err, serr.ErrEmailInvalid),
			errors.Is(err, serr.ErrPasswordTooShort):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrAlreadyExists):
			// дубликат email — это 400, как и ошибка валидации
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Error("signup failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	h.setAuthCookie(w, res.Token)
	WriteJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Token:   res.Token,
		User:    toUserDTO(res.User),
	})
}

// Login обрабатывает вход пользователя и выдачу токена.
//
// Ответы:
//   - 200 OK: успешный вход, токен в теле и в cookie;
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 401 Unauthorized: неверные учётные данные (одно сообщение для
//     несуществующего email и неверного пароля);
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Log in
// @Description  Authenticates a user and issues a 30-day token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	res, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, err)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	h.setAuthCookie(w, res.Token)
	WriteJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Token:   res.Token,
		User:    toUserDTO(res.User),
	})
}

// Logout очищает cookie с токеном.
//
// Операция stateless: на сервере ничего не меняется, выданный токен
// продолжает действовать до истечения срока. Всегда отвечает 200,
// независимо от того, был ли клиент аутентифицирован.
//
// @Summary      Log out
// @Description  Clears the token cookie. Stateless: the issued token stays valid until expiry.
// @Tags         auth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearAuthCookie(w)
	WriteJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "User logged out successfully",
	})
}

// Me возвращает профиль текущего пользователя.
//
// Middleware уже проверил токен и положил пользователя в контекст;
// хендлер перечитывает запись по id и отдаёт публичную проекцию.
//
// Ответы:
//   - 200 OK: профиль пользователя;
//   - 401 Unauthorized: пользователь не аутентифицирован;
//   - 500 Internal Server Error: ошибка доступа к хранилищу.
//
// @Summary      Current user
// @Description  Returns the authenticated user's public profile.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} MeResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	current, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	user, err := h.Svc.Auth.GetUser(r.Context(), current.ID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
			return
		}
		h.Log.Logger.Sugar().Errorw(
			"get current user failed",
			"error", err,
			"user_id", current.ID.String(),
		)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, MeResponse{
		Success: true,
		User:    toUserDTO(user),
	})
}
