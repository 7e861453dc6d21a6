package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStrategy maps URLs to canned results.
type stubStrategy struct {
	mu      sync.Mutex
	results map[string]string
	errs    map[string]error
	delay   time.Duration
	active  int32
	peak    int32
}

func (s *stubStrategy) Name() string { return "stub" }

func (s *stubStrategy) Extract(ctx context.Context, url string) (string, error) {
	n := atomic.AddInt32(&s.active, 1)
	defer atomic.AddInt32(&s.active, -1)
	s.mu.Lock()
	if n > s.peak {
		s.peak = n
	}
	s.mu.Unlock()

	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if err, ok := s.errs[url]; ok {
		return "", err
	}
	return s.results[url], nil
}

func TestScrape_PreservesInputOrder(t *testing.T) {
	strategy := &stubStrategy{
		results: map[string]string{
			"https://a.example": "alpha",
			"https://b.example": "beta",
			"https://c.example": "gamma",
		},
		delay: 5 * time.Millisecond,
	}

	svc := NewService(strategy, 3, nil)
	result := svc.Scrape(context.Background(), []string{
		"https://a.example", "https://b.example", "https://c.example",
	})

	assert.Equal(t, "alpha\nbeta\ngamma", result.Corpus)
	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, "https://b.example", result.Outcomes[1].URL)
	assert.Equal(t, 0, result.Failed())
}

func TestScrape_PartialFailureIsAbsorbed(t *testing.T) {
	strategy := &stubStrategy{
		results: map[string]string{
			"https://a.example": "alpha",
			"https://c.example": "gamma",
		},
		errs: map[string]error{
			"https://b.example": errors.New("connection refused"),
		},
	}

	svc := NewService(strategy, 2, nil)
	result := svc.Scrape(context.Background(), []string{
		"https://a.example", "https://b.example", "https://c.example",
	})

	assert.Equal(t, "alpha\ngamma", result.Corpus)
	assert.Equal(t, 1, result.Failed())
	assert.Error(t, result.Outcomes[1].Err)
	assert.NoError(t, result.Outcomes[0].Err)
}

func TestScrape_AllFailuresYieldEmptyCorpus(t *testing.T) {
	strategy := &stubStrategy{
		errs: map[string]error{
			"https://a.example": errors.New("timeout"),
			"https://b.example": errors.New("403"),
		},
	}

	svc := NewService(strategy, 2, nil)
	result := svc.Scrape(context.Background(), []string{
		"https://a.example", "https://b.example",
	})

	assert.Empty(t, result.Corpus)
	assert.Equal(t, 2, result.Failed())
}

func TestScrape_ConcurrencyIsBounded(t *testing.T) {
	results := make(map[string]string)
	urls := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		u := fmt.Sprintf("https://site%d.example", i)
		urls = append(urls, u)
		results[u] = "text"
	}
	strategy := &stubStrategy{results: results, delay: 10 * time.Millisecond}

	svc := NewService(strategy, 3, nil)
	svc.Scrape(context.Background(), urls)

	strategy.mu.Lock()
	peak := strategy.peak
	strategy.mu.Unlock()
	assert.LessOrEqual(t, peak, int32(3))
}

func TestScrape_NoURLs(t *testing.T) {
	svc := NewService(&stubStrategy{}, 2, nil)
	result := svc.Scrape(context.Background(), nil)
	assert.Empty(t, result.Corpus)
	assert.Empty(t, result.Outcomes)
}

func TestArticleStrategy_ExtractsReadableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Chip Demand Surges</title></head><body>
			<nav>Home | About</nav>
			<article>
				<h1>Chip Demand Surges</h1>
				<p>Semiconductor manufacturers reported record orders this quarter,
				driven by sustained demand for AI accelerators and automotive chips.</p>
				<p>Analysts expect capacity to remain tight through next year as
				fabrication plants run at full utilization.</p>
			</article>
			<footer>Copyright</footer>
		</body></html>`))
	}))
	defer srv.Close()

	strategy := NewArticleStrategy(5*time.Second, "sentio-test", 1<<20, nil)
	text, err := strategy.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "record orders")
	assert.Contains(t, text, "full utilization")
}

func TestArticleStrategy_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	strategy := NewArticleStrategy(5*time.Second, "sentio-test", 1<<20, nil)
	_, err := strategy.Extract(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

type stubBackend struct {
	markdown string
	err      error
}

func (b *stubBackend) Scrape(ctx context.Context, url string) (string, error) {
	return b.markdown, b.err
}

func TestMarkdownStrategy(t *testing.T) {
	strategy := NewMarkdownStrategy(&stubBackend{markdown: "# Title\n\nBody"})
	text, err := strategy.Extract(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nBody", text)

	strategy = NewMarkdownStrategy(&stubBackend{markdown: "   "})
	_, err = strategy.Extract(context.Background(), "https://example.com")
	assert.Error(t, err)

	strategy = NewMarkdownStrategy(&stubBackend{err: errors.New("backend down")})
	_, err = strategy.Extract(context.Background(), "https://example.com")
	assert.Error(t, err)
}
