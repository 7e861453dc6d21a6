// Package scorer submits text to the remote sentiment scoring backend
// and relays its response without interpretation.
package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/models"
)

// DefaultTimeout is the default HTTP timeout for scoring calls.
const DefaultTimeout = 60 * time.Second

// APIError represents a non-success response from the scoring backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sentiment API error: %s (status: %d)", e.Message, e.StatusCode)
}

// Service is an HTTP client for the sentiment scoring endpoint. The
// backend's response schema is treated as opaque and passed through to
// callers byte for byte.
type Service struct {
	endpoint   string
	httpClient *http.Client
	logger     arbor.ILogger
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ServiceOption {
	return func(s *Service) {
		s.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) ServiceOption {
	return func(s *Service) {
		s.httpClient.Timeout = timeout
	}
}

// NewService creates a scoring client for the given endpoint URL.
func NewService(endpoint string, opts ...ServiceOption) *Service {
	s := &Service{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type scoreRequest struct {
	Text string `json:"text"`
}

// Score submits text to the backend and returns its JSON response
// verbatim. One call, no retry; the text is sent whole.
func (s *Service) Score(ctx context.Context, text string) (models.SentimentScore, error) {
	payload, err := json.Marshal(scoreRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if s.logger != nil {
		s.logger.Debug().
			Int("text_length", len(text)).
			Msg("Sentiment scoring request")
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	score, err := models.ParseSentimentScore(body)
	if err != nil {
		return nil, fmt.Errorf("invalid scoring response: %w", err)
	}

	if s.logger != nil {
		s.logger.Debug().
			Int("response_length", len(body)).
			Dur("duration", time.Since(start)).
			Msg("Sentiment scoring completed")
	}

	return score, nil
}
