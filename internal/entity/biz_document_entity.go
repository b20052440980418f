package entity

import (
	"time"

	"github.com/google/uuid"
)

type BizDocument struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	FileName   string
	FilePath   string
	FileSize   int64
	MimeType   string
	UploadedAt time.Time
}
