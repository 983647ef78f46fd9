// HTTP-хендлеры каталога оборудования (pass-through CRUD)
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	serverModels "github.com/acm-uic/acm-catalog/internal/server/models"
	serr "github.com/acm-uic/acm-catalog/internal/shared/errors"
	"github.com/acm-uic/acm-catalog/internal/shared/models"
)

// toItemDTO собирает API-модель позиции из серверной модели.
func toItemDTO(it serverModels.Item) models.Item {
	return models.Item{
		ID:          it.ID.String(),
		Name:        it.Name,
		Description: it.Description,
		Qty:         it.Qty,
		UpdatedAt:   it.UpdatedAt,
		CreatedAt:   it.CreatedAt,
	}
}

// itemID парсит URL-параметр {id}; при ошибке пишет 400 и возвращает false.
func itemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return uuid.Nil, false
	}
	return id, true
}

// ListItems возвращает все позиции каталога.
//
// Эндпоинт публичный: каталог видят и неаутентифицированные посетители.
//
// @Summary      List catalog items
// @Description  Returns every item in the rental catalog, newest first.
// @Tags         catalog
// @Produce      json
// @Success      200 {object} models.ItemListResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/catalog/items [get]
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.Catalog.List(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		out = append(out, toItemDTO(it))
	}

	WriteJSON(w, http.StatusOK, models.ItemListResponse{
		Success: true,
		Items:   out,
	})
}

// GetItem возвращает одну позицию каталога по id.
//
// @Summary      Get catalog item
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Item ID (UUID)"
// @Success      200 {object} models.ItemResponse
// @Failure      400 {object} ErrorResponse "Bad item id"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/catalog/items/{id} [get]
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.Svc.Catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
			return
		}
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, models.ItemResponse{Success: true, Item: toItemDTO(item)})
}

// CreateItem создаёт новую позицию каталога.
//
// Требует аутентификацию (гейт уже пропустил запрос).
//
// @Summary      Create catalog item
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreateItemRequest true "New item"
// @Success      201 {object} models.ItemResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/catalog/items [post]
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	item, err := h.Svc.Catalog.Create(r.Context(), req.Name, req.Description, req.Qty)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrItemNameEmpty), errors.Is(err, serr.ErrItemQty):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Errorw("create item failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, models.ItemResponse{Success: true, Item: toItemDTO(item)})
}

// UpdateItem частично обновляет позицию каталога.
//
// Идентификатор передаётся в URL-параметре `{id}`, изменяемые поля — в теле
// (отсутствующие поля не трогаются).
//
// @Summary      Update catalog item
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Item ID (UUID)"
// @Param        request body models.UpdateItemRequest true "Fields to update"
// @Success      200 {object} models.ItemResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/catalog/items/{id} [put]
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var req models.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	item, err := h.Svc.Catalog.Update(r.Context(), id, req.Name, req.Description, req.Qty)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrItemNameEmpty), errors.Is(err, serr.ErrItemQty):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"update item failed",
				"error", err,
				"item_id", id.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.ItemResponse{Success: true, Item: toItemDTO(item)})
}

// DeleteItem удаляет позицию каталога по id.
//
// @Summary      Delete catalog item
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Item ID (UUID)"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse "Bad item id"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/catalog/items/{id} [delete]
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Catalog.Delete(r.Context(), id); err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
			return
		}
		h.Log.Logger.Sugar().Errorw(
			"delete item failed",
			"error", err,
			"item_id", id.String(),
		)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Item deleted"})
}
