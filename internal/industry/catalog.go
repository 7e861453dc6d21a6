// Package industry holds the static catalog mapping user-facing industry
// names to the boolean search expressions used against the news backend.
package industry

import "strings"

// Query is one catalog entry: a display name and the OR/AND keyword
// expression expanded from it. Immutable after process start.
type Query struct {
	Name       string
	Expression string
}

// catalog is the full industry table. Every entry carries a non-empty
// expression; names are matched exactly as stored.
var catalog = map[string]string{
	"Artificial Intelligence":        `"artificial intelligence" OR AI OR "machine learning" OR "deep learning"`,
	"Healthcare & Biotechnology":     `healthcare OR biotechnology OR biotech OR pharma OR "clinical trials"`,
	"IT & Cybersecurity":             `"information technology" OR IT OR cybersecurity OR "security breach" OR "data leak"`,
	"Renewable Energy":               `"renewable energy" OR solar OR wind OR hydroelectric OR geothermal`,
	"Online Retail & E-Commerce":     `"online retail" OR e-commerce OR ecommerce OR "digital marketplace" OR "online shopping"`,
	"Financial Services & Fintech":   `"financial services" OR fintech OR "digital banking" OR "payment processing" OR "financial technology"`,
	"Communications Services":        `"communications services" OR telecom OR streaming OR broadcasting OR "media services"`,
	"Automotive & Electric Vehicles": `automotive OR "electric vehicles" OR EV OR "auto manufacturing" OR mobility`,
	"Manufacturing & Industrial":     `manufacturing OR "industrial production" OR "factory output" OR "industrial automation"`,
	"Construction & Property":        `construction OR "real estate" OR property OR "housing market" OR infrastructure`,
}

// Lookup resolves an industry name to its search expression. The input is
// trimmed of surrounding whitespace; beyond that the name must match
// exactly as stored. Absence is not an error.
func Lookup(name string) (Query, bool) {
	trimmed := strings.TrimSpace(name)
	expression, ok := catalog[trimmed]
	if !ok {
		return Query{}, false
	}
	return Query{Name: trimmed, Expression: expression}, true
}

// Names returns every catalog industry name. Order is unspecified.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}

// Size returns the number of catalog entries.
func Size() int {
	return len(catalog)
}
