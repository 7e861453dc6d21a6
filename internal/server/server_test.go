package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/app"
	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/handlers"
	"github.com/ternarybob/sentio/internal/models"
)

type stubPipeline struct{}

func (stubPipeline) IndustrySentiment(ctx context.Context, name string) (*models.IndustryResult, error) {
	return &models.IndustryResult{Sentiments: models.SentimentScore(`{"label":"POSITIVE"}`)}, nil
}

func (stubPipeline) MarketSentiment(ctx context.Context, query string) (*models.MarketResult, error) {
	return &models.MarketResult{
		Report:    "# r",
		Sentiment: models.SentimentScore(`{}`),
	}, nil
}

func testServer(t *testing.T) http.Handler {
	t.Helper()
	logger := arbor.NewLogger()
	application := &app.App{
		Config:           common.NewDefaultConfig(),
		Logger:           logger,
		SentimentHandler: handlers.NewSentimentHandler(stubPipeline{}, logger),
		APIHandler:       handlers.NewAPIHandler(),
	}
	s := New(application)
	return s.withMiddleware(s.router)
}

func TestRoutes_IndustrySentiment(t *testing.T) {
	h := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/startup/sentiment", strings.NewReader(`{"text":"Artificial Intelligence"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sentiments")
}

func TestRoutes_MarketSentiment(t *testing.T) {
	h := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/market/sentiment", strings.NewReader(`{"text":"semiconductors"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "report")
}

func TestRoutes_Health(t *testing.T) {
	h := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestRoutes_Version(t *testing.T) {
	h := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "version")
}

func TestRoutes_UnknownAPIPathIs404(t *testing.T) {
	h := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	h := testServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/market/sentiment", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := arbor.NewLogger()
	application := &app.App{
		Config: common.NewDefaultConfig(),
		Logger: logger,
	}
	s := &Server{app: application}

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.recoveryMiddleware(panicking).ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
