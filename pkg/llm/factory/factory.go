package factory

import (
	"fmt"

	"github.com/charley4805/project-pretzel/pkg/llm"
	"github.com/charley4805/project-pretzel/pkg/llm/ollama"
	"github.com/charley4805/project-pretzel/pkg/llm/openai"
)

// Config carries the provider selection plus backend credentials.
type Config struct {
	Provider string // "openai" or "ollama"
	Model    string
	BaseURL  string // ollama base URL or OpenAI-compatible endpoint
	APIKey   string // required for openai
}

func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
