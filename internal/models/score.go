package models

import (
	"encoding/json"
	"fmt"
)

// SentimentScore is the scoring backend's response, passed through to the
// caller without interpretation. The payload is validated to be well-formed
// JSON before passthrough so a broken upstream body never reaches a client.
type SentimentScore json.RawMessage

// ParseSentimentScore validates and wraps a raw scoring response body.
func ParseSentimentScore(body []byte) (SentimentScore, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("sentiment backend returned invalid JSON (%d bytes)", len(body))
	}
	score := make(SentimentScore, len(body))
	copy(score, body)
	return score, nil
}

// MarshalJSON emits the stored payload verbatim.
func (s SentimentScore) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return s, nil
}

// UnmarshalJSON stores the payload verbatim.
func (s *SentimentScore) UnmarshalJSON(data []byte) error {
	*s = append((*s)[0:0], data...)
	return nil
}
