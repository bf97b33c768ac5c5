// Package analytics derives summary statistics and chart series from a list
// of catalog datasets. Every function recomputes from scratch; nothing is cached.
package analytics

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/joshhuu/data-navigator-ai/internal/models"
)

const (
	topIndustries = 10
	topRecords    = 10

	historicalDecay = 0.85
	monthlyGrowth   = 1.08
)

var trendMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// IndustryShare is one bucket of the industry distribution.
type IndustryShare struct {
	Industry   string `json:"industry"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type GeographyShare struct {
	Geography  string `json:"geography"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type RecordAccuracy struct {
	Name       string  `json:"name"`
	Records    int64   `json:"records"`
	Accuracy   float64 `json:"accuracy"`
	RecordsMil int64   `json:"recordsMil"`
}

type TrendPoint struct {
	Month     string `json:"month"`
	Records   int64  `json:"records"`
	Projected int64  `json:"projected"`
}

type Summary struct {
	IndustryDistribution  []IndustryShare  `json:"industryDistribution"`
	GeographyDistribution []GeographyShare `json:"geographyDistribution"`
	RecordAccuracyData    []RecordAccuracy `json:"recordAccuracyData"`
	GrowthTrend           []TrendPoint     `json:"growthTrend"`
	TotalRecords          int64            `json:"totalRecords"`
	AvgAccuracy           float64          `json:"avgAccuracy"`
	TotalDatasets         int              `json:"totalDatasets"`
}

type bucket struct {
	tag        string
	count      int
	percentage int
}

// countTags tallies tag occurrences in first-seen order, sorted by count
// descending. Percentages are relative to the total number of occurrences.
func countTags(datasets []models.Dataset, tags func(models.Dataset) []string) []bucket {
	var buckets []bucket
	index := map[string]int{}
	total := 0
	for _, ds := range datasets {
		for _, tag := range tags(ds) {
			total++
			if i, ok := index[tag]; ok {
				buckets[i].count++
				continue
			}
			index[tag] = len(buckets)
			buckets = append(buckets, bucket{tag: tag, count: 1})
		}
	}

	for i := range buckets {
		buckets[i].percentage = percentage(buckets[i].count, total)
	}
	slices.SortStableFunc(buckets, func(a, b bucket) int {
		return cmp.Compare(b.count, a.count)
	})
	return buckets
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// IndustryDistribution returns the ten most frequent industry tags.
func IndustryDistribution(datasets []models.Dataset) []IndustryShare {
	buckets := countTags(datasets, func(ds models.Dataset) []string { return ds.Industries })
	if len(buckets) > topIndustries {
		buckets = buckets[:topIndustries]
	}
	out := make([]IndustryShare, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, IndustryShare{Industry: b.tag, Count: b.count, Percentage: b.percentage})
	}
	return out
}

// GeographyDistribution returns every geography tag by frequency.
func GeographyDistribution(datasets []models.Dataset) []GeographyShare {
	buckets := countTags(datasets, func(ds models.Dataset) []string { return ds.Geography })
	out := make([]GeographyShare, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, GeographyShare{Geography: b.tag, Count: b.count, Percentage: b.percentage})
	}
	return out
}

// RecordAccuracyData returns the ten largest datasets by record count.
func RecordAccuracyData(datasets []models.Dataset) []RecordAccuracy {
	out := make([]RecordAccuracy, 0, len(datasets))
	for _, ds := range datasets {
		out = append(out, RecordAccuracy{
			Name:       ShortName(ds.Name, 3),
			Records:    ds.Records,
			Accuracy:   ds.Accuracy,
			RecordsMil: int64(math.Round(float64(ds.Records) / 1_000_000)),
		})
	}
	slices.SortStableFunc(out, func(a, b RecordAccuracy) int {
		return cmp.Compare(b.Records, a.Records)
	})
	if len(out) > topRecords {
		out = out[:topRecords]
	}
	return out
}

// ShortName keeps the first n words of name.
func ShortName(name string, n int) string {
	words := strings.Fields(name)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// GrowthTrend builds a six-month illustrative series from the current total:
// a decaying backfill ending at the total and an 8% monthly projection
// starting from it. It is not a forecast.
func GrowthTrend(datasets []models.Dataset) []TrendPoint {
	total := float64(TotalRecords(datasets))
	out := make([]TrendPoint, 0, len(trendMonths))
	for i, month := range trendMonths {
		out = append(out, TrendPoint{
			Month:     month,
			Records:   int64(math.Round(total * math.Pow(historicalDecay, float64(len(trendMonths)-1-i)))),
			Projected: int64(math.Round(total * math.Pow(monthlyGrowth, float64(i)))),
		})
	}
	return out
}

// TotalRecords sums the record counts of datasets.
func TotalRecords(datasets []models.Dataset) int64 {
	var total int64
	for _, ds := range datasets {
		total += ds.Records
	}
	return total
}

// AverageAccuracy is the mean accuracy rounded to one decimal, or 0 for no datasets.
func AverageAccuracy(datasets []models.Dataset) float64 {
	if len(datasets) == 0 {
		return 0
	}
	var sum float64
	for _, ds := range datasets {
		sum += ds.Accuracy
	}
	return math.Round(sum/float64(len(datasets))*10) / 10
}

// Summarize computes every aggregate shown on the analytics panel for datasets.
func Summarize(datasets []models.Dataset) Summary {
	return Summary{
		IndustryDistribution:  IndustryDistribution(datasets),
		GeographyDistribution: GeographyDistribution(datasets),
		RecordAccuracyData:    RecordAccuracyData(datasets),
		GrowthTrend:           GrowthTrend(datasets),
		TotalRecords:          TotalRecords(datasets),
		AvgAccuracy:           AverageAccuracy(datasets),
		TotalDatasets:         len(datasets),
	}
}
