package models

import "time"

// Item — плоская модель позиции каталога, используемая в HTTP API.
//
// Item хранит описание оборудования, доступного для аренды.
// Никакой бизнес-логики на сервере нет: API — это тонкий слой
// над хранилищем (pass-through persistence).
//
// Поля:
//   - ID: уникальный идентификатор позиции (UUID в виде строки)
//   - Name: название позиции (обязательное поле)
//   - Description: свободное описание
//   - Qty: количество доступных единиц
//   - UpdatedAt: время последнего изменения (серверное)
//   - CreatedAt: время создания (серверное)
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Qty         int       `json:"qty"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateItemRequest — запрос на создание новой позиции каталога.
//
// Используется в:
//   POST /api/catalog/items
//
// Name обязателен, Description и Qty опциональны (Qty по умолчанию 0).
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Qty         int    `json:"qty"`
}

// UpdateItemRequest — запрос на обновление позиции (partial update) по ID.
//
// Используется в:
//   PUT /api/catalog/items/{id}
//
// Поля — указатели, чтобы можно было передавать только изменяемые поля
// (omitempty работает корректно).
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Qty         *int    `json:"qty,omitempty"`
}

// ItemResponse — ответ сервера с одной позицией каталога.
//
// Формат:
//   {"success":true,"item":{...}}
type ItemResponse struct {
	Success bool `json:"success"`
	Item    Item `json:"item"`
}

// ItemListResponse — ответ эндпоинта получения всех позиций каталога.
//
// Используется в:
//   GET /api/catalog/items
type ItemListResponse struct {
	Success bool   `json:"success"`
	Items   []Item `json:"items"`
}
