package dto

import (
	"time"

	"github.com/google/uuid"
)

type DocumentResponse struct {
	Id         uuid.UUID `json:"id"`
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// SaveConversationRequest turns a chat session into a saved document. The
// title falls back to the session title when empty.
type SaveConversationRequest struct {
	SessionId uuid.UUID `json:"session_id"`
	Title     string    `json:"title"`
}

type SavedDocumentResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GeneratedDocumentResponse describes a bot-generated advisory document
// (registration guide or startup kit).
type GeneratedDocumentResponse struct {
	ResponseId uuid.UUID `json:"response_id"`
	SessionId  uuid.UUID `json:"session_id"`
	BotType    string    `json:"bot_type"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"created_at"`
}
