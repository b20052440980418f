package service

import (
	"context"
	"strings"

	"startup-companion-be/internal/config"
	"startup-companion-be/internal/constant"
	"startup-companion-be/internal/dto"
	"startup-companion-be/internal/pkg/logger"
	"startup-companion-be/pkg/llm"
)

// Token limits for the unauthenticated endpoints; kept tight since these run
// without an account.
const (
	refinerMaxTokens    = 150
	publicChatMaxTokens = 1024
)

type IPublicChatService interface {
	RefineIdea(ctx context.Context, req *dto.RefineIdeaRequest) (*dto.RefineIdeaResponse, error)
	Chat(ctx context.Context, req *dto.PublicChatRequest) (*dto.PublicChatResponse, error)
}

type publicChatService struct {
	llm    llm.LLMProvider
	logger logger.ILogger
	aiCfg  config.AIConfig
}

func NewPublicChatService(provider llm.LLMProvider, log logger.ILogger, aiCfg config.AIConfig) IPublicChatService {
	return &publicChatService{
		llm:    provider,
		logger: log,
		aiCfg:  aiCfg,
	}
}

func (s *publicChatService) RefineIdea(ctx context.Context, req *dto.RefineIdeaRequest) (*dto.RefineIdeaResponse, error) {
	messages := []llm.Message{
		{Role: constant.ChatRoleSystem, Content: constant.IdeaRefinerSystemPrompt},
		{Role: constant.ChatRoleUser, Content: req.Idea},
	}

	refined, err := s.llm.Chat(ctx, messages,
		llm.WithModel(s.aiCfg.PublicModel),
		llm.WithMaxTokens(refinerMaxTokens),
	)
	if err != nil {
		s.logger.Error("public", "idea refinement failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	return &dto.RefineIdeaResponse{RefinedIdea: strings.TrimSpace(refined)}, nil
}

func (s *publicChatService) Chat(ctx context.Context, req *dto.PublicChatRequest) (*dto.PublicChatResponse, error) {
	messages := buildMessages(constant.StartupChatSystemPrompt, "", req.ChatHistory, req.Message)

	reply, err := s.llm.Chat(ctx, messages,
		llm.WithModel(s.aiCfg.PublicModel),
		llm.WithMaxTokens(publicChatMaxTokens),
	)
	if err != nil {
		s.logger.Error("public", "public chat failed", map[string]interface{}{"error": err.Error()})
		return &dto.PublicChatResponse{Response: constant.ApologyReply}, nil
	}

	return &dto.PublicChatResponse{Response: reply}, nil
}
