package interfaces

import "context"

// ScrapeOutcome records the result of scraping a single URL. Failures are
// captured per item rather than raised, so a scrape over N URLs never
// fails as a whole.
type ScrapeOutcome struct {
	URL  string
	Text string
	Err  error
}

// ScrapeResult aggregates the per-URL outcomes of one scrape call.
type ScrapeResult struct {
	// Corpus is the concatenated text of all succeeding URLs in input
	// order, newline separated. Empty when every URL failed.
	Corpus string

	// Outcomes holds the per-URL results in input order.
	Outcomes []ScrapeOutcome
}

// Failed counts the URLs whose extraction failed.
func (r ScrapeResult) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// ScrapeStrategy extracts analyzable text from one URL.
type ScrapeStrategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Extract fetches the URL and returns its textual content.
	Extract(ctx context.Context, url string) (string, error)
}

// ScrapeService turns a list of article URLs into a text corpus.
type ScrapeService interface {
	// Scrape processes every URL with per-URL fault isolation. It never
	// returns an error; the worst case is an empty corpus.
	Scrape(ctx context.Context, urls []string) ScrapeResult
}
