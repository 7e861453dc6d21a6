// Package app wires configuration, clients, services, and handlers into
// a runnable application.
package app

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/firecrawl"
	"github.com/ternarybob/sentio/internal/handlers"
	"github.com/ternarybob/sentio/internal/interfaces"
	"github.com/ternarybob/sentio/internal/newsapi"
	"github.com/ternarybob/sentio/internal/services/pipeline"
	"github.com/ternarybob/sentio/internal/services/scorer"
	"github.com/ternarybob/sentio/internal/services/scraper"
	"github.com/ternarybob/sentio/internal/services/synthesizer"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Pipeline stages
	NewsService     interfaces.NewsService
	ScrapeService   interfaces.ScrapeService
	Synthesizer     interfaces.Synthesizer
	Scorer          interfaces.Scorer
	PipelineService interfaces.PipelineService

	// HTTP handlers
	SentimentHandler *handlers.SentimentHandler
	APIHandler       *handlers.APIHandler
}

// New builds the application from configuration. Construction fails
// fast on unusable settings (bad provider, missing synthesis key); a
// missing news key is tolerated here and reported per request.
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	newsOpts := []newsapi.ClientOption{
		newsapi.WithLogger(logger),
		newsapi.WithTimeout(cfg.News.RequestTimeout),
	}
	if cfg.News.BaseURL != "" {
		newsOpts = append(newsOpts, newsapi.WithBaseURL(cfg.News.BaseURL))
	}
	newsClient := newsapi.NewClient(cfg.News.APIKey, newsOpts...)

	strategy, err := newScrapeStrategy(cfg, logger)
	if err != nil {
		return nil, err
	}
	scrapeService := scraper.NewService(strategy, cfg.Scraper.Concurrency, logger)

	synthService, err := synthesizer.NewSynthesizer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize synthesizer: %w", err)
	}

	scoreService := scorer.NewService(cfg.Sentiment.URL,
		scorer.WithLogger(logger),
		scorer.WithTimeout(cfg.Sentiment.RequestTimeout),
	)

	pipelineService := pipeline.NewService(
		cfg,
		common.SystemClock{},
		newsClient,
		scrapeService,
		synthService,
		scoreService,
		logger,
	)

	app := &App{
		Config:           cfg,
		Logger:           logger,
		NewsService:      newsClient,
		ScrapeService:    scrapeService,
		Synthesizer:      synthService,
		Scorer:           scoreService,
		PipelineService:  pipelineService,
		SentimentHandler: handlers.NewSentimentHandler(pipelineService, logger),
		APIHandler:       handlers.NewAPIHandler(),
	}

	logger.Info().
		Str("scrape_strategy", strategy.Name()).
		Str("llm_provider", synthService.Provider()).
		Int("scrape_concurrency", cfg.Scraper.Concurrency).
		Msg("Application initialized")

	return app, nil
}

// newScrapeStrategy selects the extraction strategy from configuration.
func newScrapeStrategy(cfg *common.Config, logger arbor.ILogger) (interfaces.ScrapeStrategy, error) {
	switch cfg.Scraper.Strategy {
	case "", "article":
		return scraper.NewArticleStrategy(
			cfg.Scraper.RequestTimeout,
			cfg.Scraper.UserAgent,
			int64(cfg.Scraper.MaxBodySize),
			logger,
		), nil

	case "firecrawl":
		if cfg.Firecrawl.APIKey == "" {
			return nil, fmt.Errorf("Firecrawl API key is required for the firecrawl scrape strategy (set FIRECRAWL_API_KEY or firecrawl.api_key in config)")
		}
		opts := []firecrawl.ClientOption{
			firecrawl.WithLogger(logger),
			firecrawl.WithTimeout(cfg.Firecrawl.RequestTimeout),
		}
		if cfg.Firecrawl.BaseURL != "" {
			opts = append(opts, firecrawl.WithBaseURL(cfg.Firecrawl.BaseURL))
		}
		return scraper.NewMarkdownStrategy(firecrawl.NewClient(cfg.Firecrawl.APIKey, opts...)), nil

	default:
		return nil, fmt.Errorf("unsupported scrape strategy '%s': must be 'article' or 'firecrawl'", cfg.Scraper.Strategy)
	}
}
