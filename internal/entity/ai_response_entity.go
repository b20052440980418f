package entity

import (
	"time"

	"github.com/google/uuid"
)

// AiResponse is one persisted advisory turn: the user's message and the
// assistant's reply, tagged with the bot that produced it.
type AiResponse struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	SessionId    uuid.UUID
	BotType      string
	UserMessage  string
	AiReply      string
	IsSatisfied  *bool
	PdfGenerated bool
	PdfURL       string
	CreatedAt    time.Time
}
