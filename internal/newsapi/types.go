// Package newsapi provides a client for the NewsAPI "everything" search.
// This package centralizes all news backend interactions for the application.
package newsapi

import (
	"errors"
	"fmt"
)

// ErrNoArticles is returned when the backend succeeds but yields zero
// articles. Modeled as an error because downstream stages have nothing
// meaningful to do with an empty result.
var ErrNoArticles = errors.New("no articles found for the given query")

// APIError represents a non-success response from the news backend.
// Message carries the backend body verbatim.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("news API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// searchResponse is the backend's wire shape; only the fields the
// pipeline consumes are decoded.
type searchResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	} `json:"articles"`
}
