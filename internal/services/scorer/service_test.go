package scorer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_PassesResponseThroughVerbatim(t *testing.T) {
	backendResponse := `{"label":"POSITIVE","confidence":0.9731,"extra":{"model":"distilbert"}}`
	var gotBody scoreRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(backendResponse))
	}))
	defer srv.Close()

	svc := NewService(srv.URL)
	score, err := svc.Score(context.Background(), "Markets rallied today.")
	require.NoError(t, err)
	assert.Equal(t, "Markets rallied today.", gotBody.Text)

	// The backend schema is opaque; bytes must survive untouched.
	assert.JSONEq(t, backendResponse, string(score))
}

func TestScore_ArrayResponseIsAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"label":"NEGATIVE","score":0.6}]`))
	}))
	defer srv.Close()

	svc := NewService(srv.URL)
	score, err := svc.Score(context.Background(), "text")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"label":"NEGATIVE","score":0.6}]`, string(score))
}

func TestScore_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("model loading"))
	}))
	defer srv.Close()

	svc := NewService(srv.URL)
	_, err := svc.Score(context.Background(), "text")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "model loading")
}

func TestScore_NonJSONBodyIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	svc := NewService(srv.URL)
	_, err := svc.Score(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scoring response")
}
