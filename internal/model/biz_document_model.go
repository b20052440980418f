package model

import (
	"time"

	"github.com/google/uuid"
)

type BizDocument struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName   string    `gorm:"type:varchar(512);not null"`
	FilePath   string    `gorm:"type:text;not null"`
	FileSize   int64     `gorm:"not null"`
	MimeType   string    `gorm:"type:varchar(255)"`
	UploadedAt time.Time `gorm:"autoCreateTime"`
}

func (BizDocument) TableName() string {
	return "biz_documents"
}
