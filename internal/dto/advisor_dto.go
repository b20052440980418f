package dto

import (
	"time"

	"github.com/google/uuid"
)

// Advisory endpoints keep the product's camelCase wire format so the
// dashboard frontend works unchanged.

type HistoryMessageDTO struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Message     string              `json:"message" validate:"required"`
	SessionId   *uuid.UUID          `json:"sessionId,omitempty"`
	ChatHistory []HistoryMessageDTO `json:"chatHistory,omitempty" validate:"dive"`
}

type ChatResponse struct {
	Response          string     `json:"response"`
	SessionId         uuid.UUID  `json:"sessionId"`
	ResponseId        *uuid.UUID `json:"responseId,omitempty"`
	DocumentGenerated bool       `json:"documentGenerated,omitempty"`
	DocumentURL       string     `json:"documentUrl,omitempty"`
}

// DashboardChatResponse extends the plain chat shape with routing metadata
// from the orchestrator.
type DashboardChatResponse struct {
	Response       string     `json:"response"`
	SessionId      uuid.UUID  `json:"sessionId"`
	ResponseId     *uuid.UUID `json:"responseId,omitempty"`
	BotType        string     `json:"botType"`
	MissingDetails bool       `json:"missingDetails,omitempty"`
	SuggestedBot   string     `json:"suggestedBot,omitempty"`
	Routed         bool       `json:"routed,omitempty"`
}

type GenerateKitResponse struct {
	Kit         string     `json:"kit"`
	SessionId   uuid.UUID  `json:"sessionId"`
	ResponseId  *uuid.UUID `json:"responseId,omitempty"`
	DocumentURL string     `json:"kitUrl,omitempty"`
	FileName    string     `json:"fileName,omitempty"`
}

type SessionResponse struct {
	Id          uuid.UUID  `json:"id"`
	SessionType string     `json:"sessionType"`
	Title       string     `json:"title"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type ResponseHistoryItem struct {
	Id           uuid.UUID `json:"id"`
	SessionId    uuid.UUID `json:"sessionId"`
	BotType      string    `json:"botType"`
	UserMessage  string    `json:"userMessage"`
	AiReply      string    `json:"aiReply"`
	IsSatisfied  *bool     `json:"isSatisfied,omitempty"`
	PdfGenerated bool      `json:"pdfGenerated"`
	PdfURL       string    `json:"pdfUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ResponseFeedbackRequest struct {
	ResponseId  uuid.UUID `json:"responseId" validate:"required"`
	IsSatisfied bool      `json:"isSatisfied"`
}
