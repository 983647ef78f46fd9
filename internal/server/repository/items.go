package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/acm-uic/acm-catalog/internal/server/models"
	serr "github.com/acm-uic/acm-catalog/internal/shared/errors"
)

// ItemsRepository реализует доступ к каталогу оборудования (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
type ItemsRepository struct {
	db *sql.DB
}

// NewItemsRepository создаёт новый экземпляр ItemsRepository.
func NewItemsRepository(db *sql.DB) *ItemsRepository {
	return &ItemsRepository{db: db}
}

// Create сохраняет новую позицию каталога.
//
// Возвращает созданную запись с серверными id/created_at/updated_at.
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *ItemsRepository) Create(ctx context.Context, name, description string, qty int) (models.Item, error) {
	var it models.Item

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO catalog_items (name, description, qty)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, qty, updated_at, created_at
	`,
		name, description, qty,
	).Scan(&it.ID, &it.Name, &it.Description, &it.Qty, &it.UpdatedAt, &it.CreatedAt)

	if err != nil {
		return models.Item{}, serr.ErrInternal
	}
	return it, nil
}

// GetAll возвращает все позиции каталога, новые первыми.
func (r *ItemsRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, qty, updated_at, created_at
		FROM catalog_items
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Qty, &it.UpdatedAt, &it.CreatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return items, nil
}

// GetByID возвращает одну позицию каталога.
//
// Ошибки:
//   - ErrNotFound — позиции с таким id нет
//   - ErrInternal — ошибка базы данных
func (r *ItemsRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Item, error) {
	var it models.Item

	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, qty, updated_at, created_at
		FROM catalog_items
		WHERE id = $1
	`, id).Scan(&it.ID, &it.Name, &it.Description, &it.Qty, &it.UpdatedAt, &it.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Item{}, serr.ErrNotFound
		}
		return models.Item{}, serr.ErrInternal
	}
	return it, nil
}

// Update выполняет частичное обновление позиции: меняются только поля,
// для которых передан ненулевой указатель. updated_at выставляет база.
//
// Ошибки:
//   - ErrNotFound — позиции с таким id нет
//   - ErrInternal — ошибка базы данных
func (r *ItemsRepository) Update(ctx context.Context, id uuid.UUID, name, description *string, qty *int) (models.Item, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}

	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}
	if name != nil {
		add("name", *name)
	}
	if description != nil {
		add("description", *description)
	}
	if qty != nil {
		add("qty", *qty)
	}

	var it models.Item
	err := r.db.QueryRowContext(ctx, `
		UPDATE catalog_items
		SET `+strings.Join(set, ", ")+`
		WHERE id = $1
		RETURNING id, name, description, qty, updated_at, created_at
	`, args...).Scan(&it.ID, &it.Name, &it.Description, &it.Qty, &it.UpdatedAt, &it.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Item{}, serr.ErrNotFound
		}
		return models.Item{}, serr.ErrInternal
	}
	return it, nil
}

// Delete удаляет позицию каталога по id.
//
// Ошибки:
//   - ErrNotFound — позиции с таким id нет
//   - ErrInternal — ошибка базы данных
func (r *ItemsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM catalog_items WHERE id = $1`, id)
	if err != nil {
		return serr.ErrInternal
	}
	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}
