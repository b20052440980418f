package model

import (
	"time"

	"github.com/google/uuid"
)

type AiResponse struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionId    uuid.UUID `gorm:"type:uuid;not null;index"`
	BotType      string    `gorm:"type:varchar(50);not null"`
	UserMessage  string    `gorm:"type:text;not null"`
	AiReply      string    `gorm:"type:text;not null"`
	IsSatisfied  *bool
	PdfGenerated bool      `gorm:"default:false"`
	PdfURL       string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AiResponse) TableName() string {
	return "ai_responses"
}
