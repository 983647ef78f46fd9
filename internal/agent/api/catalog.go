// Методы клиента для работы с каталогом оборудования.
//
// Чтение каталога не требует токена; создание, обновление и удаление
// позиций доступны только аутентифицированным пользователям.
package api

import (
	"github.com/acm-uic/acm-catalog/internal/shared/models"
)

// ListItems возвращает все позиции каталога (GET /api/catalog/items).
func (c *Client) ListItems() (models.ItemListResponse, error) {
	var resp models.ItemListResponse
	err := c.GetJSON("/api/catalog/items", &resp, "")
	return resp, err
}

// GetItem возвращает одну позицию каталога по id (GET /api/catalog/items/{id}).
func (c *Client) GetItem(id string) (models.ItemResponse, error) {
	var resp models.ItemResponse
	err := c.GetJSON("/api/catalog/items/"+id, &resp, "")
	return resp, err
}

// CreateItem создаёт новую позицию каталога (POST /api/catalog/items).
// Требует токен.
func (c *Client) CreateItem(req models.CreateItemRequest, token string) (models.ItemResponse, error) {
	var resp models.ItemResponse
	err := c.PostJSON("/api/catalog/items", req, &resp, token)
	return resp, err
}

// UpdateItem частично обновляет позицию каталога (PUT /api/catalog/items/{id}).
// Требует токен. Поля с nil не изменяются.
func (c *Client) UpdateItem(id string, req models.UpdateItemRequest, token string) (models.ItemResponse, error) {
	var resp models.ItemResponse
	err := c.PutJSON("/api/catalog/items/"+id, req, &resp, token)
	return resp, err
}

// DeleteItem удаляет позицию каталога (DELETE /api/catalog/items/{id}).
// Требует токен.
func (c *Client) DeleteItem(id, token string) (MessageResponse, error) {
	var resp MessageResponse
	err := c.DeleteJSON("/api/catalog/items/"+id, &resp, token)
	return resp, err
}
