package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedDocument is a chat conversation the user kept as a free-text document.
type SavedDocument struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
