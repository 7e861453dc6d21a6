package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Sentiment analysis routes
	mux.HandleFunc("/startup/sentiment", s.app.SentimentHandler.IndustrySentimentHandler) // POST - cataloged industry
	mux.HandleFunc("/startup/industries", s.app.SentimentHandler.IndustriesHandler)       // GET - accepted industry names
	mux.HandleFunc("/market/sentiment", s.app.SentimentHandler.MarketSentimentHandler)    // POST - free-text market query

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
