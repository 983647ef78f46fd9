package models

import (
	"time"

	"github.com/google/uuid"
)

// Item — серверная модель позиции каталога оборудования.
type Item struct {
	ID          uuid.UUID
	Name        string
	Description string
	Qty         int
	UpdatedAt   time.Time
	CreatedAt   time.Time
}
