package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/acm-uic/acm-catalog/internal/server/models"
	serr "github.com/acm-uic/acm-catalog/internal/shared/errors"
)

// UsersRepository реализует хранилище учётных данных (PostgreSQL).
//
// Уникальность email обеспечивается constraint-ом на уровне базы:
// email хранится уже приведённым к нижнему регистру.
type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create добавляет нового пользователя и возвращает созданную запись
// (без хэша пароля).
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string, name *string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash, name)
		 VALUES ($1,$2,$3)
		 RETURNING id, email, name, created_at`,
		email, passwordHash, name,
	).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return models.User{}, serr.ErrAlreadyExists
			}
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// GetByEmail возвращает пользователя по email ВМЕСТЕ с хэшем пароля.
// Используется только при логине.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, created_at FROM users WHERE email=$1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// GetByID возвращает пользователя по id БЕЗ хэша пароля.
// Используется middleware-гейтом и эндпоинтом /api/auth/me.
func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, name, created_at FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}
