package models

// ArticleRef is a single article returned by the news search backend.
// Request-scoped; only the fields the pipeline consumes are retained.
type ArticleRef struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Source is the (url, title) pair returned to the caller as provenance
// for a market sentiment report. Serialized as a two-element array to
// match the established response shape.
type Source struct {
	URL   string
	Title string
}

// MarshalJSON encodes the source as ["url", "title"].
func (s Source) MarshalJSON() ([]byte, error) {
	return marshalPair(s.URL, s.Title)
}

// UnmarshalJSON decodes the ["url", "title"] array form.
func (s *Source) UnmarshalJSON(data []byte) error {
	url, title, err := unmarshalPair(data)
	if err != nil {
		return err
	}
	s.URL = url
	s.Title = title
	return nil
}

// Titles extracts the titles from a list of articles in return order.
func Titles(articles []ArticleRef) []string {
	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		titles = append(titles, a.Title)
	}
	return titles
}

// URLs extracts the URLs from a list of articles in return order.
func URLs(articles []ArticleRef) []string {
	urls := make([]string, 0, len(articles))
	for _, a := range articles {
		urls = append(urls, a.URL)
	}
	return urls
}

// Sources builds the (url, title) source list from a list of articles.
func Sources(articles []ArticleRef) []Source {
	sources := make([]Source, 0, len(articles))
	for _, a := range articles {
		sources = append(sources, Source{URL: a.URL, Title: a.Title})
	}
	return sources
}
