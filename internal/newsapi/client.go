package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/interfaces"
	"github.com/ternarybob/sentio/internal/models"
)

const (
	// DefaultBaseURL is the base URL for the NewsAPI v2 API.
	DefaultBaseURL = "https://newsapi.org/v2"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// sortByPopularity surfaces widely-covered stories over exhaustive
	// ones. Fixed: not relevance, not recency.
	sortByPopularity = "popularity"
)

// Client is a NewsAPI client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     arbor.ILogger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new NewsAPI client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch returns one page of articles matching the boolean query within
// the date window. One outbound call per invocation; no retry here.
func (c *Client) Fetch(ctx context.Context, query string, opts interfaces.FetchOptions) ([]models.ArticleRef, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("from", opts.Window.FromDate())
	params.Set("to", opts.Window.ToDate())
	if opts.SearchInTitle {
		params.Set("searchIn", "title")
	}
	params.Set("sortBy", sortByPopularity)
	params.Set("pageSize", strconv.Itoa(opts.PageSize))
	params.Set("page", strconv.Itoa(opts.Page))
	params.Set("apiKey", c.apiKey)

	const endpoint = "/everything"
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("query", query).
			Str("from", opts.Window.FromDate()).
			Str("to", opts.Window.ToDate()).
			Int("page_size", opts.PageSize).
			Bool("title_only", opts.SearchInTitle).
			Msg("News API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   endpoint,
		}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Articles) == 0 {
		return nil, ErrNoArticles
	}

	articles := make([]models.ArticleRef, 0, len(result.Articles))
	for _, a := range result.Articles {
		articles = append(articles, models.ArticleRef{
			URL:   a.URL,
			Title: a.Title,
		})
	}

	if c.logger != nil {
		c.logger.Debug().
			Int("count", len(articles)).
			Int("total_results", result.TotalResults).
			Msg("News API response")
	}

	return articles, nil
}
