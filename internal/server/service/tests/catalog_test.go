package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/acm-uic/acm-catalog/internal/server/models"
	"github.com/acm-uic/acm-catalog/internal/server/service"
	"github.com/acm-uic/acm-catalog/internal/server/service/mocks"
	serr "github.com/acm-uic/acm-catalog/internal/shared/errors"
	"github.com/acm-uic/acm-catalog/internal/shared/utils"
)

func newCatalogService(t *testing.T) (*service.CatalogService, *mocks.MockItemsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	items := mocks.NewMockItemsRepo(ctrl)
	return service.NewCatalogService(items), items
}

// Создание: имя и описание тримятся
func TestCatalogService_Create_OK(t *testing.T) {
	svc, items := newCatalogService(t)

	id := uuid.New()
	items.EXPECT().
		Create(gomock.Any(), "Oscilloscope", "Rigol DS1054Z", 3).
		Return(models.Item{ID: id, Name: "Oscilloscope", Description: "Rigol DS1054Z", Qty: 3}, nil)

	got, err := svc.Create(context.Background(), "  Oscilloscope ", " Rigol DS1054Z ", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != id {
		t.Fatalf("expected %v, got %v", id, got.ID)
	}
}

// Пустое имя
func TestCatalogService_Create_EmptyName(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.Create(context.Background(), "   ", "", 1)
	if !errors.Is(err, serr.ErrItemNameEmpty) {
		t.Fatalf("expected ErrItemNameEmpty, got %v", err)
	}
}

// Отрицательное количество
func TestCatalogService_Create_NegativeQty(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.Create(context.Background(), "Multimeter", "", -1)
	if !errors.Is(err, serr.ErrItemQty) {
		t.Fatalf("expected ErrItemQty, got %v", err)
	}
}

// Частичное обновление: nil-поля проходят как есть
func TestCatalogService_Update_Partial(t *testing.T) {
	svc, items := newCatalogService(t)

	id := uuid.New()
	items.EXPECT().
		Update(gomock.Any(), id, gomock.Nil(), gomock.Nil(), gomock.Any()).
		Return(models.Item{ID: id, Name: "Multimeter", Qty: 7}, nil)

	got, err := svc.Update(context.Background(), id, nil, nil, utils.IntPtr(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Qty != 7 {
		t.Fatalf("expected qty 7, got %d", got.Qty)
	}
}

// Обновление с пустым именем отклоняется до похода в репозиторий
func TestCatalogService_Update_EmptyName(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.Update(context.Background(), uuid.New(), utils.StrPtr("  "), nil, nil)
	if !errors.Is(err, serr.ErrItemNameEmpty) {
		t.Fatalf("expected ErrItemNameEmpty, got %v", err)
	}
}

// Обновление с отрицательным qty
func TestCatalogService_Update_NegativeQty(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.Update(context.Background(), uuid.New(), nil, nil, utils.IntPtr(-5))
	if !errors.Is(err, serr.ErrItemQty) {
		t.Fatalf("expected ErrItemQty, got %v", err)
	}
}

// List/Get/Delete — делегация репозиторию
func TestCatalogService_PassThrough(t *testing.T) {
	svc, items := newCatalogService(t)

	id := uuid.New()

	items.EXPECT().GetAll(gomock.Any()).Return([]models.Item{{ID: id}}, nil)
	items.EXPECT().GetByID(gomock.Any(), id).Return(models.Item{ID: id}, nil)
	items.EXPECT().Delete(gomock.Any(), id).Return(nil)

	list, err := svc.List(context.Background())
	if err != nil || len(list) != 1 {
		t.Fatalf("List: %v, %v", list, err)
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil || got.ID != id {
		t.Fatalf("Get: %v, %v", got, err)
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

// Удаление несуществующей позиции
func TestCatalogService_Delete_NotFound(t *testing.T) {
	svc, items := newCatalogService(t)

	id := uuid.New()
	items.EXPECT().Delete(gomock.Any(), id).Return(serr.ErrNotFound)

	err := svc.Delete(context.Background(), id)
	if !errors.Is(err, serr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
