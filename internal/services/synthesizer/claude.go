package synthesizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/models"
)

// claudeJSONInstruction is appended to the system prompt. Claude has no
// structured-output mode equivalent to Gemini's response schema, so the
// shape is enforced by instruction and checked at parse time.
const claudeJSONInstruction = `

Respond with a single JSON object of the form {"report": "...", "sentiment": "..."} and nothing else.`

// ClaudeSynthesizer implements the Synthesizer interface using the
// Anthropic API.
type ClaudeSynthesizer struct {
	config    *common.ClaudeConfig
	logger    arbor.ILogger
	client    *anthropic.Client
	timeout   time.Duration
	maxTokens int
}

// NewClaudeSynthesizer creates a Claude-backed synthesizer.
func NewClaudeSynthesizer(config *common.ClaudeConfig, logger arbor.ILogger) (*ClaudeSynthesizer, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required (set ANTHROPIC_API_KEY or claude.api_key in config)")
	}

	if config.Model == "" {
		config.Model = "claude-haiku-3-5-20241022"
	}

	timeout, err := time.ParseDuration(config.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout duration '%s': %w", config.Timeout, err)
	}

	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 8192
	}

	client := anthropic.NewClient(option.WithAPIKey(config.APIKey))

	logger.Info().
		Str("model", config.Model).
		Int("max_tokens", maxTokens).
		Dur("timeout", timeout).
		Msg("Claude synthesizer initialized")

	return &ClaudeSynthesizer{
		config:    config,
		logger:    logger,
		client:    &client,
		timeout:   timeout,
		maxTokens: maxTokens,
	}, nil
}

// Provider returns the backing provider name.
func (s *ClaudeSynthesizer) Provider() string {
	return string(common.LLMProviderClaude)
}

// Synthesize issues one message call over the corpus and decodes the
// report/sentiment pair.
func (s *ClaudeSynthesizer) Synthesize(ctx context.Context, corpus string) (*models.ReportSentimentPair, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	messages := buildMessages(corpus)

	claudeMessages := make([]anthropic.MessageParam, 0, len(messages))
	var systemText string
	for _, msg := range messages {
		if msg.Role == "system" {
			systemText = msg.Content
			continue
		}
		claudeMessages = append(claudeMessages, anthropic.NewUserMessage(
			anthropic.NewTextBlock(msg.Content),
		))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.config.Model),
		MaxTokens: int64(s.maxTokens),
		Messages:  claudeMessages,
	}
	if s.config.Temperature > 0 {
		params.Temperature = anthropic.Float(float64(s.config.Temperature))
	}
	if systemText != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: systemText + claudeJSONInstruction},
		}
	}

	start := time.Now()
	resp, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("Claude synthesis failed: %w", err)
	}

	var response strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			response.WriteString(block.Text)
		}
	}

	if response.Len() == 0 {
		return nil, fmt.Errorf("no response generated from synthesis model")
	}

	pair, err := parsePair(response.String())
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("model", s.config.Model).
		Int("corpus_length", len(corpus)).
		Int("report_length", len(pair.Report)).
		Int("sentiment_length", len(pair.Sentiment)).
		Dur("duration", time.Since(start)).
		Msg("Synthesis completed")

	return pair, nil
}
