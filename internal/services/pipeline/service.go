// Package pipeline composes news retrieval, scraping, synthesis, and
// scoring into the two supported sentiment flows.
package pipeline

import (
	"context"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/industry"
	"github.com/ternarybob/sentio/internal/interfaces"
	"github.com/ternarybob/sentio/internal/models"
)

// Service implements the PipelineService interface.
type Service struct {
	config      *common.Config
	clock       common.Clock
	news        interfaces.NewsService
	scraper     interfaces.ScrapeService
	synthesizer interfaces.Synthesizer
	scorer      interfaces.Scorer
	logger      arbor.ILogger
}

// NewService wires the pipeline stages together. A nil clock defaults to
// the system clock.
func NewService(
	config *common.Config,
	clock common.Clock,
	news interfaces.NewsService,
	scraper interfaces.ScrapeService,
	synthesizer interfaces.Synthesizer,
	scorer interfaces.Scorer,
	logger arbor.ILogger,
) *Service {
	if clock == nil {
		clock = common.SystemClock{}
	}
	return &Service{
		config:      config,
		clock:       clock,
		news:        news,
		scraper:     scraper,
		synthesizer: synthesizer,
		scorer:      scorer,
		logger:      logger,
	}
}

// IndustrySentiment scores the current news sentiment for a cataloged
// industry: catalog lookup, one week of popular articles, titles joined
// into one text, one scoring call.
func (s *Service) IndustrySentiment(ctx context.Context, name string) (*models.IndustryResult, error) {
	query, ok := industry.Lookup(name)
	if !ok {
		s.logger.Warn().Str("industry", strings.TrimSpace(name)).Msg("Industry not in catalog")
		return nil, ErrInvalidIndustry
	}

	if s.config.News.APIKey == "" {
		return nil, &ConfigError{Setting: "NEWS_API_KEY"}
	}

	window := models.NewDateWindow(s.clock.Now(), s.config.News.WindowDays)

	articles, err := s.news.Fetch(ctx, query.Expression, interfaces.FetchOptions{
		Window:   window,
		PageSize: s.config.News.IndustryPages,
		Page:     1,
	})
	if err != nil {
		return nil, err
	}

	text := strings.Join(models.Titles(articles), "\n")

	score, err := s.scorer.Score(ctx, text)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("industry", strings.TrimSpace(name)).
		Int("articles", len(articles)).
		Msg("Industry sentiment completed")

	return &models.IndustryResult{Sentiments: score}, nil
}

// MarketSentiment analyzes free-text market queries: a focused page of
// title-matched articles, scraped into a corpus, synthesized into a
// report plus sentiment text, then scored. Synthesis failure degrades
// the report to a placeholder and falls back to scoring the joined
// titles; it never aborts the request.
func (s *Service) MarketSentiment(ctx context.Context, query string) (*models.MarketResult, error) {
	if s.config.News.APIKey == "" {
		return nil, &ConfigError{Setting: "NEWS_API_KEY"}
	}

	trimmed := strings.TrimSpace(query)
	window := models.NewDateWindow(s.clock.Now(), s.config.News.WindowDays)

	articles, err := s.news.Fetch(ctx, trimmed, interfaces.FetchOptions{
		Window:        window,
		PageSize:      s.config.News.MarketPages,
		Page:          1,
		SearchInTitle: true,
	})
	if err != nil {
		return nil, err
	}

	sources := models.Sources(articles)
	sentimentText := strings.Join(models.Titles(articles), "\n")

	scrape := s.scraper.Scrape(ctx, models.URLs(articles))

	report := models.PlaceholderReport
	pair, synthErr := s.synthesizer.Synthesize(ctx, scrape.Corpus)
	if synthErr != nil {
		synthErr = &SynthesisError{Provider: s.synthesizer.Provider(), Err: synthErr}
		s.logger.Warn().Err(synthErr).Msg("Synthesis failed, falling back to article titles")
	} else {
		if pair.Sentiment != "" {
			sentimentText = pair.Sentiment
		}
		if pair.Report != "" {
			report = pair.Report
		}
	}

	score, err := s.scorer.Score(ctx, sentimentText)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("query", trimmed).
		Int("articles", len(articles)).
		Int("scrape_failures", scrape.Failed()).
		Bool("synthesized", synthErr == nil).
		Msg("Market sentiment completed")

	return &models.MarketResult{
		Report:          report,
		Sentiment:       score,
		Sources:         sources,
		PartialFailures: scrape.Failed(),
	}, nil
}
