package synthesizer

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/interfaces"
)

// NewSynthesizer creates the synthesizer implementation selected by
// configuration.
func NewSynthesizer(cfg *common.Config, logger arbor.ILogger) (interfaces.Synthesizer, error) {
	provider := cfg.LLM.DefaultProvider
	if provider == "" {
		provider = common.LLMProviderGemini
	}

	logger.Info().Str("provider", string(provider)).Msg("Initializing synthesizer")

	switch provider {
	case common.LLMProviderGemini:
		return NewGeminiSynthesizer(&cfg.Gemini, logger)
	case common.LLMProviderClaude:
		return NewClaudeSynthesizer(&cfg.Claude, logger)
	default:
		return nil, fmt.Errorf("unsupported LLM provider '%s': must be 'gemini' or 'claude'", provider)
	}
}
