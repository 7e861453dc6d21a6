package interfaces

import (
	"context"

	"github.com/ternarybob/sentio/internal/models"
)

// Message represents a single message in a model conversation
type Message struct {
	// Role identifies the message sender: "user", "assistant", or "system"
	Role string

	// Content contains the text content of the message
	Content string
}

// Synthesizer produces the investor report and the sentiment-ready text
// from a scraped corpus in a single model call, so both outputs are
// grounded in the same context window.
type Synthesizer interface {
	// Synthesize issues exactly one model request. An empty corpus is
	// passed through unchanged; the model may return a low-content pair.
	Synthesize(ctx context.Context, corpus string) (*models.ReportSentimentPair, error)

	// Provider returns the backing provider name for logs and health output.
	Provider() string
}
