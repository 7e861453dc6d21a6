package interfaces

import (
	"context"

	"github.com/ternarybob/sentio/internal/models"
)

// PipelineService composes the retrieval-and-synthesis stages into the
// two supported request flows.
type PipelineService interface {
	// IndustrySentiment validates the industry name against the catalog,
	// fetches one week of popular articles, and scores the joined titles.
	IndustrySentiment(ctx context.Context, name string) (*models.IndustryResult, error)

	// MarketSentiment fetches a focused page of title-matched articles,
	// scrapes them into a corpus, synthesizes a report plus sentiment
	// text, and scores the best available sentiment input. Synthesis
	// failure degrades the report; it never aborts the flow.
	MarketSentiment(ctx context.Context, query string) (*models.MarketResult, error)
}
