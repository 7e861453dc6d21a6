package models

// IndustryResult is the response payload of the industry sentiment flow.
type IndustryResult struct {
	Sentiments SentimentScore `json:"sentiments"`
}

// MarketResult is the response payload of the market sentiment flow.
// Report may be the placeholder when synthesis failed; Sentiment and
// Sources are always populated on success. PartialFailures counts the
// URLs whose scrape was skipped.
type MarketResult struct {
	Report          string         `json:"report"`
	Sentiment       SentimentScore `json:"sentiment"`
	Sources         []Source       `json:"sources"`
	PartialFailures int            `json:"partialFailures,omitempty"`
}
