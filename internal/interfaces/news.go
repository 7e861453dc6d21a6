package interfaces

import (
	"context"

	"github.com/ternarybob/sentio/internal/models"
)

// FetchOptions parameterizes a news search request.
type FetchOptions struct {
	// Window is the inclusive publication date range.
	Window models.DateWindow

	// PageSize is the number of results per page.
	PageSize int

	// Page is the 1-based page number.
	Page int

	// SearchInTitle restricts matches to the article title.
	SearchInTitle bool
}

// NewsService retrieves candidate articles from a news search backend.
// Results are sorted by popularity: widely-covered stories are preferred
// over exhaustive recency.
type NewsService interface {
	// Fetch returns one page of articles matching the boolean query.
	// Returns newsapi.ErrNoArticles when the backend succeeds with an
	// empty result, and a *newsapi.APIError for non-success statuses.
	Fetch(ctx context.Context, query string, opts FetchOptions) ([]models.ArticleRef, error)
}
