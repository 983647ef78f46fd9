// Серверная модель пользователя
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — запись пользователя в хранилище учётных данных.
//
// PasswordHash заполняется только там, где он действительно нужен
// (проверка пароля при логине); наружу он не сериализуется никогда.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         *string
	CreatedAt    time.Time
}
