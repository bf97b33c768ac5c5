// Package search implements the catalog search and facet filter pipeline.
//
// Search is a simulated relevance step: query words are widened into whole
// categories through a keyword table and otherwise matched as substrings of
// each entry's text fields. Nothing is scored and results keep catalog order.
package search

import (
	"math"
	"math/rand"
	"slices"
	"strings"

	"github.com/joshhuu/data-navigator-ai/internal/models"
)

// FallbackSize is the number of leading catalog entries returned when a
// query matches nothing.
const FallbackSize = 5

// LoadingSteps are the labels a client shows while the search "thinks".
var LoadingSteps = []string{"Analyzing Intent", "Filtering Datasets", "Ranking Results"}

// Search returns the entries of catalog relevant to query.
func Search(catalog []models.Dataset, keywords *KeywordTable, query string) []models.Dataset {
	if strings.TrimSpace(query) == "" {
		return slices.Clone(catalog)
	}

	words := strings.Fields(strings.ToLower(query))
	matched := keywords.Match(words)

	results := []models.Dataset{}
	for _, ds := range catalog {
		if _, ok := matched[ds.Category]; ok {
			results = append(results, ds)
			continue
		}
		text := searchableText(ds)
		for _, w := range words {
			if strings.Contains(text, w) {
				results = append(results, ds)
				break
			}
		}
	}

	if len(results) > 0 {
		return results
	}
	return slices.Clone(catalog[:min(FallbackSize, len(catalog))])
}

func searchableText(ds models.Dataset) string {
	parts := make([]string, 0, 3+len(ds.Industries)+len(ds.Geography))
	parts = append(parts, ds.Name, ds.Description, ds.Category)
	parts = append(parts, ds.Industries...)
	parts = append(parts, ds.Geography...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Filter keeps the entries satisfying every facet of sel, in input order.
func Filter(entries []models.Dataset, sel models.FilterSelection) []models.Dataset {
	out := make([]models.Dataset, 0, len(entries))
	for _, ds := range entries {
		if Matches(ds, sel) {
			out = append(out, ds)
		}
	}
	return out
}

// Matches reports whether ds satisfies sel: any-of within a facet, all facets
// together, and a minimum compliance score.
func Matches(ds models.Dataset, sel models.FilterSelection) bool {
	if len(sel.Industries) > 0 && !overlaps(sel.Industries, ds.Industries) {
		return false
	}
	if len(sel.Geography) > 0 && !overlaps(sel.Geography, ds.Geography) {
		return false
	}
	if len(sel.Category) > 0 && !slices.Contains(sel.Category, ds.Category) {
		return false
	}
	return ds.ComplianceScore >= sel.Compliance
}

func overlaps(selected, tags []string) bool {
	for _, s := range selected {
		if slices.Contains(tags, s) {
			return true
		}
	}
	return false
}

// Confidence returns a simulated match confidence between 80 and 98, with
// one decimal place.
func Confidence(r *rand.Rand) float64 {
	return math.Round((r.Float64()*18+80)*10) / 10
}
