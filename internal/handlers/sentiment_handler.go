package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/industry"
	"github.com/ternarybob/sentio/internal/interfaces"
	"github.com/ternarybob/sentio/internal/newsapi"
	"github.com/ternarybob/sentio/internal/services/pipeline"
	"github.com/ternarybob/sentio/internal/services/scorer"
)

// SentimentRequest is the shared request body for both sentiment
// endpoints: an industry name for one, a free-text query for the other.
type SentimentRequest struct {
	Text string `json:"text" validate:"required"`
}

// SentimentHandler handles sentiment analysis HTTP requests
type SentimentHandler struct {
	pipeline interfaces.PipelineService
	validate *validator.Validate
	logger   arbor.ILogger
}

// NewSentimentHandler creates a new sentiment handler with dependencies
func NewSentimentHandler(pipelineService interfaces.PipelineService, logger arbor.ILogger) *SentimentHandler {
	return &SentimentHandler{
		pipeline: pipelineService,
		validate: validator.New(),
		logger:   logger,
	}
}

// decodeRequest parses and validates the request body. Returns false
// after writing the error response when the body is unusable.
func (h *SentimentHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (SentimentRequest, bool) {
	var req SentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body: expected JSON with a 'text' field")
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, "The 'text' field is required")
		return req, false
	}
	return req, true
}

// IndustrySentimentHandler handles POST /startup/sentiment requests
func (h *SentimentHandler) IndustrySentimentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	if h.logger != nil {
		h.logger.Info().
			Str("industry", req.Text).
			Msg("Industry sentiment request received")
	}

	result, err := h.pipeline.IndustrySentiment(r.Context(), req.Text)
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// MarketSentimentHandler handles POST /market/sentiment requests
func (h *SentimentHandler) MarketSentimentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	if h.logger != nil {
		h.logger.Info().
			Str("query", req.Text).
			Msg("Market sentiment request received")
	}

	result, err := h.pipeline.MarketSentiment(r.Context(), req.Text)
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// IndustriesHandler handles GET /startup/industries requests, listing
// the industry names the catalog accepts.
func (h *SentimentHandler) IndustriesHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"industries": industry.Names(),
	})
}

// writePipelineError maps pipeline failures onto HTTP status codes. The
// client-facing messages follow the upstream format so callers see what
// the backends reported.
func (h *SentimentHandler) writePipelineError(w http.ResponseWriter, err error) {
	var newsErr *newsapi.APIError
	var scoreErr *scorer.APIError
	var cfgErr *pipeline.ConfigError

	switch {
	case errors.Is(err, pipeline.ErrInvalidIndustry):
		WriteError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, newsapi.ErrNoArticles):
		WriteError(w, http.StatusNotFound, "No articles found for the given query.")

	case errors.As(err, &newsErr):
		WriteError(w, http.StatusBadGateway,
			fmt.Sprintf("Failed to fetch news: %d - %s", newsErr.StatusCode, newsErr.Message))

	case errors.As(err, &scoreErr):
		WriteError(w, http.StatusBadGateway,
			fmt.Sprintf("Failed to analyze sentiment: %d - %s", scoreErr.StatusCode, scoreErr.Message))

	case errors.As(err, &cfgErr):
		WriteError(w, http.StatusInternalServerError, cfgErr.Error())

	default:
		if h.logger != nil {
			h.logger.Error().Err(err).Msg("Sentiment pipeline failed")
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
