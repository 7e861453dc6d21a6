package scraper

import (
	"context"
	"fmt"
	"strings"
)

// markdownBackend is the remote renderer the markdown strategy delegates
// to. Satisfied by *firecrawl.Client.
type markdownBackend interface {
	Scrape(ctx context.Context, url string) (string, error)
}

// MarkdownStrategy extracts page content through a remote scrape API
// that handles rendering and anti-bot measures. Used when local fetching
// is not good enough for the sites in play.
type MarkdownStrategy struct {
	backend markdownBackend
}

// NewMarkdownStrategy creates a remote markdown strategy.
func NewMarkdownStrategy(backend markdownBackend) *MarkdownStrategy {
	return &MarkdownStrategy{backend: backend}
}

// Name identifies the strategy in logs.
func (s *MarkdownStrategy) Name() string {
	return "markdown"
}

// Extract scrapes one URL through the backend.
func (s *MarkdownStrategy) Extract(ctx context.Context, url string) (string, error) {
	markdown, err := s.backend.Scrape(ctx, url)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("no textual content extracted from %s", url)
	}
	return strings.TrimSpace(markdown), nil
}
