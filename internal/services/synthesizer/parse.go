package synthesizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ternarybob/sentio/internal/models"
)

// parsePair decodes a model response into a report/sentiment pair.
// Models sometimes wrap JSON in markdown fences even when told not to,
// so fences are stripped before decoding.
func parsePair(raw string) (*models.ReportSentimentPair, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	var pair models.ReportSentimentPair
	if err := json.Unmarshal([]byte(cleaned), &pair); err != nil {
		return nil, fmt.Errorf("failed to parse model response as report/sentiment pair: %w", err)
	}

	return &pair, nil
}
