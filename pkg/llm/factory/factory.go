package factory

import (
	"fmt"

	"startup-companion-be/internal/config"
	"startup-companion-be/pkg/llm"
	"startup-companion-be/pkg/llm/openrouter"
)

// NewLLMProvider builds the configured LLM backend. Only OpenRouter is wired
// today; the switch keeps the call sites stable if another gateway is added.
func NewLLMProvider(cfg config.AIConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "openrouter", "":
		return openrouter.NewOpenRouterProvider(
			cfg.APIKey,
			cfg.BaseURL,
			cfg.DefaultChat,
			cfg.Referer,
			cfg.AppTitle,
		), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
