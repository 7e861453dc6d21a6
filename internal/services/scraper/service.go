// Package scraper turns lists of article URLs into a single text corpus.
// Extraction runs through a pluggable strategy; failures are isolated
// per URL so one dead link never sinks a batch.
package scraper

import (
	"context"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/interfaces"
)

// Service fans URLs out to a bounded pool of workers and assembles the
// successful extractions into a corpus in input order.
type Service struct {
	strategy    interfaces.ScrapeStrategy
	concurrency int
	logger      arbor.ILogger
}

// NewService creates a scrape service. Concurrency values below 1 are
// clamped to 1.
func NewService(strategy interfaces.ScrapeStrategy, concurrency int, logger arbor.ILogger) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		strategy:    strategy,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Scrape processes every URL concurrently and returns the per-URL
// outcomes plus the joined corpus. It never returns an error; the worst
// case is a result whose corpus is empty.
func (s *Service) Scrape(ctx context.Context, urls []string) interfaces.ScrapeResult {
	outcomes := make([]interfaces.ScrapeOutcome, len(urls))

	type job struct {
		index int
		url   string
	}

	jobs := make(chan job)
	var wg sync.WaitGroup

	for w := 0; w < s.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				text, err := s.strategy.Extract(ctx, j.url)
				outcomes[j.index] = interfaces.ScrapeOutcome{
					URL:  j.url,
					Text: text,
					Err:  err,
				}
				if err != nil && s.logger != nil {
					s.logger.Warn().
						Str("url", j.url).
						Str("strategy", s.strategy.Name()).
						Err(err).
						Msg("Scrape failed for URL, skipping")
				}
			}
		}()
	}

	for i, u := range urls {
		jobs <- job{index: i, url: u}
	}
	close(jobs)
	wg.Wait()

	parts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err == nil && o.Text != "" {
			parts = append(parts, o.Text)
		}
	}

	result := interfaces.ScrapeResult{
		Corpus:   strings.Join(parts, "\n"),
		Outcomes: outcomes,
	}

	if s.logger != nil {
		s.logger.Info().
			Int("urls", len(urls)).
			Int("failed", result.Failed()).
			Int("corpus_length", len(result.Corpus)).
			Str("strategy", s.strategy.Name()).
			Msg("Scrape batch completed")
	}

	return result
}
