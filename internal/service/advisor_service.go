package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"startup-companion-be/internal/advisor"
	"startup-companion-be/internal/advisor/htmldoc"
	"startup-companion-be/internal/constant"
	"startup-companion-be/internal/dto"
	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/pkg/logger"
	"startup-companion-be/internal/repository/specification"
	"startup-companion-be/internal/repository/unitofwork"
	"startup-companion-be/pkg/docstore"
	"startup-companion-be/pkg/llm"

	"github.com/google/uuid"
)

var (
	ErrUnknownAdvisor  = errors.New("unknown advisor domain")
	ErrSessionNotFound = errors.New("chat session not found")
)

// historyWindow caps how many prior turns are replayed to the model.
const historyWindow = 10

type IAdvisorService interface {
	SpecialistChat(ctx context.Context, userId uuid.UUID, domainKey string, req *dto.ChatRequest) (*dto.ChatResponse, error)
	DashboardChat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.DashboardChatResponse, error)
}

type advisorService struct {
	uowFactory unitofwork.RepositoryFactory
	llm        llm.LLMProvider
	store      docstore.Store
	profiles   *ProfileLoader
	logger     logger.ILogger
}

func NewAdvisorService(uowFactory unitofwork.RepositoryFactory, provider llm.LLMProvider, store docstore.Store, profiles *ProfileLoader, log logger.ILogger) IAdvisorService {
	return &advisorService{
		uowFactory: uowFactory,
		llm:        provider,
		store:      store,
		profiles:   profiles,
		logger:     log,
	}
}

// resolveSession loads and ownership-checks an existing session, or creates a
// fresh one of the given type when no session id is supplied.
func (s *advisorService) resolveSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, sessionId *uuid.UUID, sessionType, title string) (*entity.ChatSession, error) {
	if sessionId != nil {
		session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: *sessionId})
		if err != nil {
			return nil, err
		}
		if session == nil || session.UserId != userId {
			return nil, ErrSessionNotFound
		}
		return session, nil
	}

	session := &entity.ChatSession{
		Id:          uuid.New(),
		UserId:      userId,
		SessionType: sessionType,
		Title:       title,
		CreatedAt:   time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func buildMessages(systemPrompt, businessContext string, history []dto.HistoryMessageDTO, userMessage string) []llm.Message {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	system := systemPrompt
	if businessContext != "" {
		system += "\n\n" + businessContext
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: constant.ChatRoleSystem, Content: system})
	for _, h := range history {
		messages = append(messages, llm.Message{Role: h.Role, Content: h.Content})
	}
	messages = append(messages, llm.Message{Role: constant.ChatRoleUser, Content: userMessage})
	return messages
}

func (s *advisorService) persistTurn(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, session *entity.ChatSession, botType, userMessage, reply string) (*entity.AiResponse, error) {
	record := &entity.AiResponse{
		Id:          uuid.New(),
		UserId:      userId,
		SessionId:   session.Id,
		BotType:     botType,
		UserMessage: userMessage,
		AiReply:     reply,
		CreatedAt:   time.Now(),
	}
	if err := uow.AiResponseRepository().Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *advisorService) SpecialistChat(ctx context.Context, userId uuid.UUID, domainKey string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	domain, ok := advisor.ByKey(domainKey)
	if !ok {
		return nil, ErrUnknownAdvisor
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := s.profiles.Load(ctx, userId)
	if err != nil {
		return nil, err
	}

	session, err := s.resolveSession(ctx, uow, userId, req.SessionId, domain.SessionType, domain.SessionTitle)
	if err != nil {
		return nil, err
	}

	messages := buildMessages(domain.SystemPrompt, advisor.RenderContext(domain, profile), req.ChatHistory, req.Message)

	reply, err := s.llm.Chat(ctx, messages, llm.WithMaxTokens(domain.MaxTokens))
	if err != nil {
		s.logger.Error("advisor", "llm call failed", map[string]interface{}{
			"domain": domain.Key,
			"error":  err.Error(),
		})
		return &dto.ChatResponse{Response: constant.ApologyReply, SessionId: session.Id}, nil
	}

	resp := &dto.ChatResponse{SessionId: session.Id}

	// Document generation rides along with the reply; its failure never
	// fails the chat turn.
	if domain.Key == advisor.DomainRegistration && advisor.WantsDocument(req.Message) {
		if url, docErr := s.generateRegistrationGuide(ctx, userId, profile); docErr != nil {
			s.logger.Warn("advisor", "registration guide generation failed", map[string]interface{}{
				"user_id": userId.String(),
				"error":   docErr.Error(),
			})
		} else {
			reply += constant.RegistrationDocConfirmation
			resp.DocumentGenerated = true
			resp.DocumentURL = url
		}
	}

	record, err := s.persistTurn(ctx, uow, userId, session, domain.BotType, req.Message, reply)
	if err != nil {
		return nil, err
	}
	if resp.DocumentGenerated {
		if err := uow.AiResponseRepository().MarkPdfGenerated(ctx, record.Id, resp.DocumentURL); err != nil {
			return nil, err
		}
	}

	resp.Response = reply
	resp.ResponseId = &record.Id
	return resp, nil
}

func (s *advisorService) generateRegistrationGuide(ctx context.Context, userId uuid.UUID, profile *entity.BusinessProfile) (string, error) {
	doc, err := htmldoc.RegistrationGuide(profile)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("%s/registration-guide-%d.html", userId.String(), time.Now().Unix())
	if err := s.store.Upload(ctx, docstore.BucketAiResponseDocs, path, strings.NewReader(string(doc))); err != nil {
		return "", err
	}
	return s.store.PublicURL(docstore.BucketAiResponseDocs, path), nil
}

func (s *advisorService) DashboardChat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.DashboardChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := s.profiles.Load(ctx, userId)
	if err != nil {
		return nil, err
	}

	session, err := s.resolveSession(ctx, uow, userId, req.SessionId, constant.SessionTypeMainDashboard, "General Business Consultation")
	if err != nil {
		return nil, err
	}

	// An open handoff offer takes precedence over fresh classification. The
	// session record is authoritative; raw history is the fallback for
	// callers that resend history without a session state.
	pending, hasPending := advisor.ByKey(session.PendingOffer)
	if !hasPending {
		if last, found := lastAssistantTurn(req.ChatHistory); found {
			pending, hasPending = advisor.DetectOffer(last)
		}
	}

	if hasPending {
		if err := uow.ChatSessionRepository().SetPendingOffer(ctx, session.Id, ""); err != nil {
			return nil, err
		}
		session.PendingOffer = ""

		if advisor.IsAffirmative(req.Message) {
			return s.routeToSpecialist(ctx, uow, userId, profile, session, pending, req)
		}
		// Declined: fall through and handle the message normally.
	}

	missing := advisor.MissingCriticalDetails(profile)

	messages := buildMessages(constant.MainDashboardSystemPrompt, advisor.DashboardContext(profile), req.ChatHistory, req.Message)

	reply, err := s.llm.Chat(ctx, messages, llm.WithMaxTokens(800))
	if err != nil {
		s.logger.Error("advisor", "llm call failed", map[string]interface{}{
			"domain": "main_dashboard",
			"error":  err.Error(),
		})
		return &dto.DashboardChatResponse{
			Response:  constant.ApologyReply,
			SessionId: session.Id,
			BotType:   constant.BotTypeMainDashboard,
		}, nil
	}

	resp := &dto.DashboardChatResponse{
		SessionId:      session.Id,
		BotType:        constant.BotTypeMainDashboard,
		MissingDetails: missing,
	}

	if domain, matched := advisor.Classify(req.Message); matched {
		if !strings.Contains(reply, constant.OfferMarkerPhrase) {
			reply = reply + "\n\n" + advisor.OfferSentence(domain)
		}
		if err := uow.ChatSessionRepository().SetPendingOffer(ctx, session.Id, domain.Key); err != nil {
			return nil, err
		}
		resp.SuggestedBot = domain.Key
	}

	record, err := s.persistTurn(ctx, uow, userId, session, constant.BotTypeMainDashboard, req.Message, reply)
	if err != nil {
		return nil, err
	}

	resp.Response = reply
	resp.ResponseId = &record.Id
	return resp, nil
}

// routeToSpecialist runs an accepted handoff as a specialist turn inside the
// dashboard session. The specialist sees only the current message and profile,
// not the dashboard history.
func (s *advisorService) routeToSpecialist(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, profile *entity.BusinessProfile, session *entity.ChatSession, domain advisor.Domain, req *dto.ChatRequest) (*dto.DashboardChatResponse, error) {
	messages := buildMessages(domain.SystemPrompt, advisor.RenderContext(domain, profile), nil, req.Message)

	reply, err := s.llm.Chat(ctx, messages, llm.WithMaxTokens(domain.MaxTokens))
	if err != nil {
		s.logger.Error("advisor", "llm call failed", map[string]interface{}{
			"domain": domain.Key,
			"error":  err.Error(),
		})
		return &dto.DashboardChatResponse{
			Response:  constant.ApologyReply,
			SessionId: session.Id,
			BotType:   domain.BotType,
		}, nil
	}

	record, err := s.persistTurn(ctx, uow, userId, session, domain.BotType, req.Message, reply)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardChatResponse{
		Response:     reply,
		SessionId:    session.Id,
		ResponseId:   &record.Id,
		BotType:      domain.BotType,
		SuggestedBot: domain.Key,
		Routed:       true,
	}, nil
}

func lastAssistantTurn(history []dto.HistoryMessageDTO) (string, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == constant.ChatRoleAssistant {
			return history[i].Content, true
		}
	}
	return "", false
}
