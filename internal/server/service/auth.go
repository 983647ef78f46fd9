package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/acm-uic/acm-catalog/internal/server/config"
	"github.com/acm-uic/acm-catalog/internal/server/crypto"
	"github.com/acm-uic/acm-catalog/internal/server/models"
	serr "github.com/acm-uic/acm-catalog/internal/shared/errors"
)

// emailRe — проверка формы email (как в валидации исходной модели пользователя).
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (signup)
//   - аутентификация (login)
//   - выпуск access токена с фиксированным сроком жизни
//   - выдача публичного профиля по id (me)
//
// Refresh-токенов и серверных сессий нет: токен — bearer-учётка,
// logout ничего не меняет на сервере.
type AuthService struct {
	users UsersRepo

	pass crypto.BcryptParams
	jwt  crypto.JWTConfig
}

// AuthResult — результат успешного signup/login: токен и созданная/найденная
// запись пользователя (без хэша пароля).
type AuthResult struct {
	Token string
	User  models.User
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.BcryptParams{
			Cost: cfg.Password.Bcrypt.Cost,
		},
		jwt: crypto.JWTConfig{
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// SignUp регистрирует нового пользователя и сразу выдаёт ему токен.
//
// Валидация:
//   - email обязателен и должен быть валидным (регистр не учитывается)
//   - пароль обязателен и длиной >= 6 символов
//   - name опционален
//
// Возвращает:
//   - токен и созданную запись пользователя
//   - ErrInvalidInput / ErrEmailInvalid / ErrPasswordTooShort при некорректных данных
//   - ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) SignUp(ctx context.Context, email, password string, name *string) (AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return AuthResult{}, serr.ErrInvalidInput
	}
	if !emailRe.MatchString(email) {
		return AuthResult{}, serr.ErrEmailInvalid
	}
	if len(password) < 6 {
		return AuthResult{}, serr.ErrPasswordTooShort
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			name = nil
		} else {
			name = &trimmed
		}
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}

	user, err := s.users.Create(ctx, email, hash, name)
	if err != nil {
		return AuthResult{}, err
	}

	token, err := crypto.NewAccessToken(user.ID.String(), s.jwt)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}

	return AuthResult{Token: token, User: user}, nil
}

// Login аутентифицирует пользователя и выдаёт токен.
//
// Поведение:
//   - не раскрывает факт существования email: и "нет такого пользователя",
//     и "не тот пароль" дают одну и ту же ErrInvalidCredentials
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return AuthResult{}, serr.ErrInvalidInput
	}
	// получаем юзера по email (вместе с хэшем)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return AuthResult{}, serr.ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}
	if !ok {
		return AuthResult{}, serr.ErrInvalidCredentials
	}
	// создаём новый access токен
	token, err := crypto.NewAccessToken(user.ID.String(), s.jwt)
	if err != nil {
		return AuthResult{}, serr.ErrInternal
	}

	// хэш наружу не отдаём
	user.PasswordHash = ""
	return AuthResult{Token: token, User: user}, nil
}

// GetUser возвращает публичный профиль пользователя по id.
//
// Используется эндпоинтом /api/auth/me: middleware уже проверил токен,
// но запись перечитывается из хранилища.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	return s.users.GetByID(ctx, id)
}
