package synthesizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"google.golang.org/genai"

	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/models"
)

// GeminiSynthesizer implements the Synthesizer interface using the
// Gemini API with structured JSON output.
type GeminiSynthesizer struct {
	config  *common.GeminiConfig
	logger  arbor.ILogger
	client  *genai.Client
	timeout time.Duration
}

// pairSchema constrains generation to the report/sentiment shape so the
// response decodes without repair.
var pairSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"report": {
			Type:        genai.TypeString,
			Description: "Markdown formatted investor report",
		},
		"sentiment": {
			Type:        genai.TypeString,
			Description: "Plain text sentences for sentiment analysis",
		},
	},
	Required: []string{"report", "sentiment"},
}

// NewGeminiSynthesizer creates a Gemini-backed synthesizer.
func NewGeminiSynthesizer(config *common.GeminiConfig, logger arbor.ILogger) (*GeminiSynthesizer, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or gemini.api_key in config)")
	}

	if config.Model == "" {
		config.Model = "gemini-2.0-flash"
	}

	timeout, err := time.ParseDuration(config.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout duration '%s': %w", config.Timeout, err)
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	logger.Info().
		Str("model", config.Model).
		Dur("timeout", timeout).
		Msg("Gemini synthesizer initialized")

	return &GeminiSynthesizer{
		config:  config,
		logger:  logger,
		client:  client,
		timeout: timeout,
	}, nil
}

// Provider returns the backing provider name.
func (s *GeminiSynthesizer) Provider() string {
	return string(common.LLMProviderGemini)
}

// Synthesize issues one structured generation call over the corpus and
// decodes the report/sentiment pair.
func (s *GeminiSynthesizer) Synthesize(ctx context.Context, corpus string) (*models.ReportSentimentPair, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	messages := buildMessages(corpus)

	contents := make([]*genai.Content, 0, len(messages))
	var systemText string
	for _, msg := range messages {
		if msg.Role == "system" {
			systemText = msg.Content
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
		})
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(s.config.Temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   pairSchema,
	}
	if systemText != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(systemText, genai.RoleUser)
	}

	start := time.Now()
	resp, err := s.client.Models.GenerateContent(ctx, s.config.Model, contents, genConfig)
	if err != nil {
		return nil, fmt.Errorf("Gemini synthesis failed: %w", err)
	}

	var response strings.Builder
	if resp != nil && len(resp.Candidates) > 0 {
		for _, candidate := range resp.Candidates {
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					response.WriteString(part.Text)
				}
			}
			if response.Len() > 0 {
				break
			}
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
