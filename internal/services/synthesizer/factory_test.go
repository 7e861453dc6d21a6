package synthesizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/common"
)

func TestNewSynthesizer_UnsupportedProvider(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.LLM.DefaultProvider = "llama"

	_, err := NewSynthesizer(cfg, arbor.NewLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestNewSynthesizer_MissingGeminiKey(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.LLM.DefaultProvider = common.LLMProviderGemini
	cfg.Gemini.APIKey = ""

	_, err := NewSynthesizer(cfg, arbor.NewLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestNewSynthesizer_MissingClaudeKey(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.LLM.DefaultProvider = common.LLMProviderClaude
	cfg.Claude.APIKey = ""

	_, err := NewSynthesizer(cfg, arbor.NewLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestNewClaudeSynthesizer_InvalidTimeout(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Claude.APIKey = "sk-test"
	cfg.Claude.Timeout = "soon"

	_, err := NewClaudeSynthesizer(&cfg.Claude, arbor.NewLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}
