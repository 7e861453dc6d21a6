package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/ternarybob/arbor"
)

// ArticleStrategy fetches a page directly and extracts its readable body
// locally. It is the default strategy: no external scrape service, no
// per-page cost.
type ArticleStrategy struct {
	httpClient  *http.Client
	userAgent   string
	maxBodySize int64
	logger      arbor.ILogger
}

// NewArticleStrategy creates a local extraction strategy.
func NewArticleStrategy(timeout time.Duration, userAgent string, maxBodySize int64, logger arbor.ILogger) *ArticleStrategy {
	return &ArticleStrategy{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent:   userAgent,
		maxBodySize: maxBodySize,
		logger:      logger,
	}
}

// Name identifies the strategy in logs.
func (s *ArticleStrategy) Name() string {
	return "article"
}

// Extract fetches pageURL and returns its main textual content. It tries
// readability extraction first, then falls back to a whole-document
// markdown conversion for pages readability cannot segment.
func (s *ArticleStrategy) Extract(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse page URL: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(string(body)), parsed)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		if s.logger != nil {
			s.logger.Debug().
				Str("url", pageURL).
				Str("title", article.Title).
				Int("length", len(article.TextContent)).
				Msg("Readability extraction succeeded")
		}
		return strings.TrimSpace(article.TextContent), nil
	}

	// Readability failed or produced nothing; convert the stripped
	// document instead.
	markdown, convErr := s.convertToMarkdown(string(body), pageURL)
	if convErr != nil {
		return "", fmt.Errorf("readability and markdown extraction both failed: %w", convErr)
	}
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("no textual content extracted from %s", pageURL)
	}

	if s.logger != nil {
		s.logger.Debug().
			Str("url", pageURL).
			Int("length", len(markdown)).
			Msg("Markdown fallback extraction succeeded")
	}

	return strings.TrimSpace(markdown), nil
}

// convertToMarkdown strips non-content elements then converts the
// remaining document to markdown.
func (s *ArticleStrategy) convertToMarkdown(html string, pageURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, nav, footer, aside, header, form, iframe").Remove()

	content := doc.Find("main, article, .content, #content, body").First()
	if content.Length() == 0 {
		content = doc.Selection
	}

	inner, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize content: %w", err)
	}

	mdConverter := md.NewConverter(pageURL, true, nil)
	markdown, err := mdConverter.ConvertString(inner)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}

	return markdown, nil
}
