package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"startup-companion-be/internal/advisor"
	"startup-companion-be/internal/advisor/htmldoc"
	"startup-companion-be/internal/config"
	"startup-companion-be/internal/constant"
	"startup-companion-be/internal/dto"
	"startup-companion-be/internal/entity"
	"startup-companion-be/internal/pkg/logger"
	"startup-companion-be/internal/repository/unitofwork"
	"startup-companion-be/pkg/docstore"
	"startup-companion-be/pkg/llm"

	"github.com/google/uuid"
)

var ErrProfileIncomplete = errors.New("complete your business profile before generating a startup kit")

// kitMaxTokens is generous because the kit is a full multi-section document.
const kitMaxTokens = 4000

type IKitService interface {
	Generate(ctx context.Context, userId uuid.UUID) (*dto.GenerateKitResponse, error)
}

type kitService struct {
	uowFactory unitofwork.RepositoryFactory
	llm        llm.LLMProvider
	store      docstore.Store
	profiles   *ProfileLoader
	logger     logger.ILogger
	aiCfg      config.AIConfig
}

func NewKitService(uowFactory unitofwork.RepositoryFactory, provider llm.LLMProvider, store docstore.Store, profiles *ProfileLoader, log logger.ILogger, aiCfg config.AIConfig) IKitService {
	return &kitService{
		uowFactory: uowFactory,
		llm:        provider,
		store:      store,
		profiles:   profiles,
		logger:     log,
		aiCfg:      aiCfg,
	}
}

func (s *kitService) Generate(ctx context.Context, userId uuid.UUID) (*dto.GenerateKitResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := s.profiles.Load(ctx, userId)
	if err != nil {
		return nil, err
	}
	if advisor.MissingCriticalDetails(profile) {
		return nil, ErrProfileIncomplete
	}

	messages := []llm.Message{
		{Role: constant.ChatRoleSystem, Content: constant.StartupKitSystemPrompt},
		{Role: constant.ChatRoleUser, Content: advisor.KitContext(profile)},
	}

	kit, err := s.llm.Chat(ctx, messages, llm.WithModel(s.aiCfg.KitModel), llm.WithMaxTokens(kitMaxTokens))
	if err != nil {
		s.logger.Error("kit", "startup kit generation failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("startup kit generation failed: %w", err)
	}

	session := &entity.ChatSession{
		Id:          uuid.New(),
		UserId:      userId,
		SessionType: constant.SessionTypeStartupKit,
		Title:       "Startup Kit Session",
		CreatedAt:   time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	satisfied := true
	record := &entity.AiResponse{
		Id:          uuid.New(),
		UserId:      userId,
		SessionId:   session.Id,
		BotType:     constant.BotTypeStartupKit,
		UserMessage: "Generate my personalized startup kit",
		AiReply:     kit,
		IsSatisfied: &satisfied,
		CreatedAt:   time.Now(),
	}
	if err := uow.AiResponseRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	resp := &dto.GenerateKitResponse{
		Kit:        kit,
		SessionId:  session.Id,
		ResponseId: &record.Id,
	}

	// The downloadable copy is best effort; the kit text is already saved.
	doc, docErr := htmldoc.StartupKit(profile, kit)
	if docErr == nil {
		fileName := fmt.Sprintf("startup-kit-%d.html", time.Now().Unix())
		path := fmt.Sprintf("%s/%s", userId.String(), fileName)
		if upErr := s.store.Upload(ctx, docstore.BucketAiResponseDocs, path, strings.NewReader(string(doc))); upErr == nil {
			url := s.store.PublicURL(docstore.BucketAiResponseDocs, path)
			if markErr := uow.AiResponseRepository().MarkPdfGenerated(ctx, record.Id, url); markErr == nil {
				resp.DocumentURL = url
				resp.FileName = fileName
			}
		} else {
			s.logger.Warn("kit", "kit document upload failed", map[string]interface{}{
				"user_id": userId.String(),
				"error":   upErr.Error(),
			})
		}
	}

	return resp, nil
}
