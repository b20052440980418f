package model

import (
	"time"

	"github.com/google/uuid"
)

type SavedDocument struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;index"`
	Title     string    `gorm:"type:varchar(255)"`
	Content   string    `gorm:"type:text"` // Flattened conversation transcript
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SavedDocument) TableName() string {
	return "documents"
}
