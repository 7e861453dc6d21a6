package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 8001, cfg.Server.Port)
	assert.Equal(t, 7, cfg.News.WindowDays)
	assert.Equal(t, 100, cfg.News.IndustryPages)
	assert.Equal(t, 5, cfg.News.MarketPages)
	assert.Equal(t, "article", cfg.Scraper.Strategy)
	assert.Equal(t, LLMProviderGemini, cfg.LLM.DefaultProvider)
	assert.NotEmpty(t, cfg.Sentiment.URL)
}

func TestLoadFromFile_MissingFileIsError(t *testing.T) {
	_, err := LoadFromFile("does-not-exist.toml")
	assert.Error(t, err)
}

func TestLoadFromFile_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, 8001, cfg.Server.Port)
}

func TestLoadFromFile_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentio.toml")
	content := `
environment = "production"

[server]
port = 9090

[news]
window_days = 3

[scraper]
strategy = "firecrawl"
concurrency = 8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.News.WindowDays)
	assert.Equal(t, "firecrawl", cfg.Scraper.Strategy)
	assert.Equal(t, 8, cfg.Scraper.Concurrency)
	assert.True(t, cfg.IsProduction())

	// Untouched settings keep defaults
	assert.Equal(t, 100, cfg.News.IndustryPages)
}

func TestLoadFromFile_EnvOverridesFile(t *testing.T) {
	t.Setenv("SENTIO_SERVER_PORT", "7777")
	t.Setenv("NEWS_API_KEY", "legacy-key")
	t.Setenv("SENTIO_NEWS_WINDOW_DAYS", "14")

	cfg, err := LoadFromFile("")
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "legacy-key", cfg.News.APIKey)
	assert.Equal(t, 14, cfg.News.WindowDays)
}

func TestLoadFromFile_PrefixedKeyWinsOverLegacy(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "legacy-key")
	t.Setenv("SENTIO_NEWS_API_KEY", "prefixed-key")

	cfg, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, "prefixed-key", cfg.News.APIKey)
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 9999, "0.0.0.0")
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	// Zero values leave config untouched
	ApplyFlagOverrides(cfg, 0, "")
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestScraperTimeoutFromEnv(t *testing.T) {
	t.Setenv("SENTIO_SCRAPER_REQUEST_TIMEOUT", "45s")

	cfg, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.Scraper.RequestTimeout)
}
