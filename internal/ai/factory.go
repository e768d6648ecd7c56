package ai

import (
	"fmt"

	"github.com/harithravi/talklens/internal/ai/dashscope"
	"github.com/harithravi/talklens/internal/ai/openai"
	"github.com/harithravi/talklens/internal/config"
	"github.com/harithravi/talklens/pkg/models"
)

// NewProvider constructs the appropriate completion provider based on config.
// Called once at server startup.
func NewProvider(cfg config.AIConfig) (models.CompletionProvider, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewProvider(cfg.OpenAI), nil
	case "dashscope":
		return dashscope.NewProvider(cfg.DashScope), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q: must be one of openai, dashscope", cfg.Provider)
	}
}
