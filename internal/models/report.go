package models

// PlaceholderReport is returned when synthesis failed or produced an
// empty report. Sentiment and sources are still delivered.
const PlaceholderReport = "No report generated."

// ReportSentimentPair is the structured output of a single synthesis
// call: a markdown investor report and a plain-text rephrasing of the
// most sentiment-relevant sentences.
type ReportSentimentPair struct {
	Report    string `json:"report"`
	Sentiment string `json:"sentiment"`
}
