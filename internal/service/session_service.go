package service

import (
	"context"
	"errors"

	"startup-companion-be/internal/dto"
	"startup-companion-be/internal/pkg/logger"
	"startup-companion-be/internal/repository/specification"
	"startup-companion-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrResponseNotFound = errors.New("response not found")

type ISessionService interface {
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error)
	GetSessionHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ResponseHistoryItem, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
	SubmitFeedback(ctx context.Context, userId uuid.UUID, req *dto.ResponseFeedbackRequest) error
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *sessionService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserId: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = &dto.SessionResponse{
			Id:          session.Id,
			SessionType: session.SessionType,
			Title:       session.Title,
			CreatedAt:   session.CreatedAt,
			UpdatedAt:   session.UpdatedAt,
		}
	}
	return responses, nil
}

func (s *sessionService) GetSessionHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ResponseHistoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserId != userId {
		return nil, ErrSessionNotFound
	}

	records, err := uow.AiResponseRepository().FindAll(ctx,
		specification.Filter("session_id", sessionId),
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ResponseHistoryItem, len(records))
	for i, r := range records {
		items[i] = &dto.ResponseHistoryItem{
			Id:           r.Id,
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
	return items, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if session == nil || session.UserId != userId {
		return ErrSessionNotFound
	}

	return uow.ChatSessionRepository().Delete(ctx, sessionId)
}

func (s *sessionService) SubmitFeedback(ctx context.Context, userId uuid.UUID, req *dto.ResponseFeedbackRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.AiResponseRepository().FindOne(ctx, specification.ByID{ID: req.ResponseId})
	if err != nil {
		return err
	}
	if record == nil || record.UserId != userId {
		return ErrResponseNotFound
	}

	return uow.AiResponseRepository().SetSatisfaction(ctx, record.Id, req.IsSatisfied)
}
