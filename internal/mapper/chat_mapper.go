package mapper

import (
	"time"

	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/model"

	"gorm.io/gorm"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatSession{
		Id:           s.Id,
		UserId:       s.UserId,
		SessionType:  s.SessionType,
		Title:        s.Title,
		PendingOffer: s.PendingOffer,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    s.DeletedAt.Valid,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.ChatSession{
		Id:           s.Id,
		UserId:       s.UserId,
		SessionType:  s.SessionType,
		Title:        s.Title,
		PendingOffer: s.PendingOffer,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

// Response Mappers

func (m *ChatMapper) AiResponseToEntity(r *model.AiResponse) *entity.AiResponse {
	if r == nil {
		return nil
	}

	return &entity.AiResponse{
		Id:           r.Id,
		UserId:       r.UserId,
		SessionId:    r.SessionId,
		BotType:      r.BotType,
		UserMessage:  r.UserMessage,
		AiReply:      r.AiReply,
		IsSatisfied:  r.IsSatisfied,
		PdfGenerated: r.PdfGenerated,
		PdfURL:       r.PdfURL,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *ChatMapper) AiResponseToModel(r *entity.AiResponse) *model.AiResponse {
	if r == nil {
		return nil
	}

	return &model.AiResponse{
		Id:           r.Id,
		UserId:       r.UserId,
		SessionId:    r.SessionId,
		BotType:      r.BotType,
		UserMessage:  r.UserMessage,
		AiReply:      r.AiReply,
		IsSatisfied:  r.IsSatisfied,
		PdfGenerated: r.PdfGenerated,
		PdfURL:       r.PdfURL,
		CreatedAt:    r.CreatedAt,
	}
}
