package interfaces

import (
	"context"

	"github.com/ternarybob/sentio/internal/models"
)

// Scorer submits plain text to the sentiment scoring backend and returns
// its response verbatim. No retry, no batching, no truncation.
type Scorer interface {
	Score(ctx context.Context, text string) (models.SentimentScore, error)
}
