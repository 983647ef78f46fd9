package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/acm-uic/acm-catalog/internal/server/models"
	serr "github.com/acm-uic/acm-catalog/internal/shared/errors"
)

// CatalogService — тонкая прослойка над каталогом оборудования.
//
// Бизнес-логики здесь почти нет (pass-through persistence):
// сервис только валидирует вход и делегирует репозиторию.
type CatalogService struct {
	items ItemsRepo
}

// NewCatalogService создаёт CatalogService.
func NewCatalogService(items ItemsRepo) *CatalogService {
	return &CatalogService{items: items}
}

// Create создаёт позицию каталога.
//
// Ошибки:
//   - ErrItemNameEmpty — не задано название
//   - ErrItemQty — отрицательное количество
func (s *CatalogService) Create(ctx context.Context, name, description string, qty int) (models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Item{}, serr.ErrItemNameEmpty
	}
	if qty < 0 {
		return models.Item{}, serr.ErrItemQty
	}
	return s.items.Create(ctx, name, strings.TrimSpace(description), qty)
}

// List возвращает все позиции каталога.
func (s *CatalogService) List(ctx context.Context) ([]models.Item, error) {
	return s.items.GetAll(ctx)
}

// Get возвращает позицию каталога по id.
func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (models.Item, error) {
	return s.items.GetByID(ctx, id)
}

// Update частично обновляет позицию: nil-поля не трогаются.
//
// Ошибки:
//   - ErrItemNameEmpty / ErrItemQty при невалидных значениях
//   - ErrNotFound если позиции нет
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, name, description *string, qty *int) (models.Item, error) {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return models.Item{}, serr.ErrItemNameEmpty
		}
		name = &trimmed
	}
	if qty != nil && *qty < 0 {
		return models.Item{}, serr.ErrItemQty
	}
	return s.items.Update(ctx, id, name, description, qty)
}

// Delete удаляет позицию каталога.
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.items.Delete(ctx, id)
}
