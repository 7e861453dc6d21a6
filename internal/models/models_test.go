package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateWindow_SevenDays(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 45, 12, 0, time.UTC)
	w := NewDateWindow(now, 7)

	assert.Equal(t, "2025-03-03", w.FromDate())
	assert.Equal(t, "2025-03-10", w.ToDate())
	assert.Equal(t, 7, w.Days())
	assert.True(t, w.From.Before(w.To))
}

func TestNewDateWindow_DropsTimeOfDay(t *testing.T) {
	morning := NewDateWindow(time.Date(2025, 3, 10, 0, 0, 1, 0, time.UTC), 7)
	evening := NewDateWindow(time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC), 7)
	assert.Equal(t, morning, evening)
}

func TestNewDateWindow_CrossesMonthBoundary(t *testing.T) {
	w := NewDateWindow(time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC), 7)
	assert.Equal(t, "2025-02-23", w.FromDate())
}

func TestSource_MarshalsAsPair(t *testing.T) {
	s := Source{URL: "https://example.com/a", Title: "Chips rally"}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["https://example.com/a","Chips rally"]`, string(data))

	var decoded Source
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)
}

func TestSource_RejectsWrongShape(t *testing.T) {
	var s Source
	err := json.Unmarshal([]byte(`{"url":"u","title":"t"}`), &s)
	assert.Error(t, err)
}

func TestArticleHelpers_PreserveOrder(t *testing.T) {
	articles := []ArticleRef{
		{URL: "https://a", Title: "first"},
		{URL: "https://b", Title: "second"},
	}

	assert.Equal(t, []string{"first", "second"}, Titles(articles))
	assert.Equal(t, []string{"https://a", "https://b"}, URLs(articles))

	sources := Sources(articles)
	require.Len(t, sources, 2)
	assert.Equal(t, Source{URL: "https://b", Title: "second"}, sources[1])
}

func TestParseSentimentScore(t *testing.T) {
	score, err := ParseSentimentScore([]byte(`{"label":"POSITIVE","score":0.93}`))
	require.NoError(t, err)

	data, err := json.Marshal(score)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"POSITIVE","score":0.93}`, string(data))

	_, err = ParseSentimentScore([]byte(`{"label":`))
	assert.Error(t, err)
}

func TestMarketResult_Serialization(t *testing.T) {
	result := MarketResult{
		Report:    "# Report",
		Sentiment: SentimentScore(`{"label":"NEUTRAL"}`),
		Sources: []Source{
			{URL: "https://a", Title: "t1"},
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"report": "# Report",
		"sentiment": {"label":"NEUTRAL"},
		"sources": [["https://a","t1"]]
	}`, string(data))
}

func TestMarketResult_PartialFailuresOmittedWhenZero(t *testing.T) {
	result := MarketResult{
		Report:    PlaceholderReport,
		Sentiment: SentimentScore(`{}`),
	}
	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "partialFailures")
}
