package service

import (
	"context"
	"errors"
	"testing"

	"startup-companion-be/internal/config"
	"startup-companion-be/internal/constant"
	"startup-companion-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublicFixture(reply string, llmErr error) (IPublicChatService, *fakeLLM) {
	provider := &fakeLLM{reply: reply, err: llmErr}
	aiCfg := config.AIConfig{PublicModel: "openai/gpt-3.5-turbo"}
	svc := NewPublicChatService(provider, nopLogger{}, aiCfg)
	return svc, provider
}

func TestRefineIdeaUsesPublicModel(t *testing.T) {
	svc, provider := newPublicFixture("  A subscription chai service for offices.  ", nil)

	res, err := svc.RefineIdea(context.Background(), &dto.RefineIdeaRequest{Idea: "chai delivery thing"})
	require.NoError(t, err)
	assert.Equal(t, "A subscription chai service for offices.", res.RefinedIdea)

	require.Len(t, provider.calls, 1)
	assert.Equal(t, "openai/gpt-3.5-turbo", provider.calls[0].opts.Model)
	assert.Equal(t, refinerMaxTokens, provider.calls[0].opts.MaxTokens)
}

func TestRefineIdeaPropagatesError(t *testing.T) {
	svc, _ := newPublicFixture("", errors.New("gateway down"))

	_, err := svc.RefineIdea(context.Background(), &dto.RefineIdeaRequest{Idea: "anything"})
	assert.Error(t, err)
}

func TestPublicChatRepliesAndDegradesGracefully(t *testing.T) {
	svc, provider := newPublicFixture("Start by validating demand.", nil)

	res, err := svc.Chat(context.Background(), &dto.PublicChatRequest{Message: "How do I start?"})
	require.NoError(t, err)
	assert.Equal(t, "Start by validating demand.", res.Response)
	assert.Equal(t, publicChatMaxTokens, provider.calls[0].opts.MaxTokens)

	failing, _ := newPublicFixture("", errors.New("rate limited"))
	res, err = failing.Chat(context.Background(), &dto.PublicChatRequest{Message: "How do I start?"})
	require.NoError(t, err)
	assert.Equal(t, constant.ApologyReply, res.Response)
}
