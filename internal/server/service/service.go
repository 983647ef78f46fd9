// Package service содержит бизнес-логику приложения (acm-catalog).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/acm-uic/acm-catalog/internal/server/config"
	"github.com/acm-uic/acm-catalog/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Items ItemsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth    *AuthService
	Catalog *CatalogService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хэширования пароля и подписи токена).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.Users, cfg),
		Catalog: NewCatalogService(repos.Items),
	}
}

// UsersRepo — репозиторий пользователей (нужен для auth/signup/login/me).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string, name *string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// ItemsRepo — репозиторий каталога (pass-through CRUD).
type ItemsRepo interface {
	Create(ctx context.Context, name, description string, qty int) (models.Item, error)
	GetAll(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Item, error)
	Update(ctx context.Context, id uuid.UUID, name, description *string, qty *int) (models.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
