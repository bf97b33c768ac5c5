package analytics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshhuu/data-navigator-ai/internal/models"
)

var ErrCompareArity = errors.New("comparison needs 2 or 3 datasets")

const maxIndustryComparison = 8

type MetricRow struct {
	Label   string   `json:"label"`
	Values  []string `json:"values"`
	Winners []int    `json:"winners"`
}

type Comparison struct {
	DatasetIDs []string    `json:"datasetIds"`
	Names      []string    `json:"names"`
	Rows       []MetricRow `json:"rows"`
}

type metric struct {
	label          string
	display        func(models.Dataset) string
	score          func(models.Dataset) float64
	higherIsBetter bool
}

var metrics = []metric{
	{
		label:          "Records",
		display:        func(ds models.Dataset) string { return FormatNumber(ds.Records) },
		score:          func(ds models.Dataset) float64 { return float64(ds.Records) },
		higherIsBetter: true,
	},
	{
		label:          "Accuracy",
		display:        func(ds models.Dataset) string { return strconv.FormatFloat(ds.Accuracy, 'f', -1, 64) + "%" },
		score:          func(ds models.Dataset) float64 { return ds.Accuracy },
		higherIsBetter: true,
	},
	{
		label:   "Coverage",
		display: func(ds models.Dataset) string { return strings.Join(ds.Geography, ", ") },
	},
	{
		label:          "Compliance Score",
		display:        func(ds models.Dataset) string { return strconv.Itoa(ds.ComplianceScore) },
		score:          func(ds models.Dataset) float64 { return float64(ds.ComplianceScore) },
		higherIsBetter: true,
	},
	{
		label:   "Price Tier",
		display: func(ds models.Dataset) string { return string(ds.PriceTier) },
		score:   func(ds models.Dataset) float64 { return float64(ds.PriceTier.Rank()) },
	},
	{
		label:          "Columns",
		display:        func(ds models.Dataset) string { return strconv.Itoa(len(ds.Columns)) },
		score:          func(ds models.Dataset) float64 { return float64(len(ds.Columns)) },
		higherIsBetter: true,
	},
	{
		label:          "Industries",
		display:        func(ds models.Dataset) string { return strconv.Itoa(len(ds.Industries)) },
		score:          func(ds models.Dataset) float64 { return float64(len(ds.Industries)) },
		higherIsBetter: true,
	},
}

// Compare lines up two or three datasets metric by metric. Winners holds the
// indexes of every dataset tied for the best value; Coverage has none.
func Compare(datasets ...models.Dataset) (*Comparison, error) {
	if len(datasets) < 2 || len(datasets) > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrCompareArity, len(datasets))
	}

	c := &Comparison{}
	for _, ds := range datasets {
		c.DatasetIDs = append(c.DatasetIDs, ds.ID)
		c.Names = append(c.Names, ds.Name)
	}

	for _, m := range metrics {
		row := MetricRow{Label: m.label, Winners: []int{}}
		for _, ds := range datasets {
			row.Values = append(row.Values, m.display(ds))
		}
		if m.score != nil {
			row.Winners = winners(datasets, m.score, m.higherIsBetter)
		}
		c.Rows = append(c.Rows, row)
	}
	return c, nil
}

func winners(datasets []models.Dataset, score func(models.Dataset) float64, higherIsBetter bool) []int {
	best := score(datasets[0])
	for _, ds := range datasets[1:] {
		v := score(ds)
		if (higherIsBetter && v > best) || (!higherIsBetter && v < best) {
			best = v
		}
	}
	out := []int{}
	for i, ds := range datasets {
		if score(ds) == best {
			out = append(out, i)
		}
	}
	return out
}

type TagComparison struct {
	Tag string `json:"tag"`
	A   int    `json:"datasetA"`
	B   int    `json:"datasetB"`
}

type DistributionComparison struct {
	Industries  []TagComparison `json:"industries"`
	Geographies []TagComparison `json:"geographies"`
}

// CompareDistributions merges the industry and geography buckets of two
// datasets. Tags appear in a's order followed by tags only b has; industries
// are limited to the first eight.
func CompareDistributions(a, b models.Dataset) DistributionComparison {
	var out DistributionComparison

	ia := IndustryDistribution([]models.Dataset{a})
	ib := IndustryDistribution([]models.Dataset{b})
	out.Industries = mergeShares(
		industryCounts(ia), industryCounts(ib),
	)
	if len(out.Industries) > maxIndustryComparison {
		out.Industries = out.Industries[:maxIndustryComparison]
	}

	ga := GeographyDistribution([]models.Dataset{a})
	gb := GeographyDistribution([]models.Dataset{b})
	out.Geographies = mergeShares(geographyCounts(ga), geographyCounts(gb))
	return out
}

type tagCount struct {
	tag   string
	count int
}

func industryCounts(shares []IndustryShare) []tagCount {
	out := make([]tagCount, 0, len(shares))
	for _, s := range shares {
		out = append(out, tagCount{s.Industry, s.Count})
	}
	return out
}

func geographyCounts(shares []GeographyShare) []tagCount {
	out := make([]tagCount, 0, len(shares))
	for _, s := range shares {
		out = append(out, tagCount{s.Geography, s.Count})
	}
	return out
}

func mergeShares(a, b []tagCount) []TagComparison {
	out := []TagComparison{}
	index := map[string]int{}
	for _, t := range a {
		index[t.tag] = len(out)
		out = append(out, TagComparison{Tag: t.tag, A: t.count})
	}
	for _, t := range b {
		if i, ok := index[t.tag]; ok {
			out[i].B = t.count
			continue
		}
		index[t.tag] = len(out)
		out = append(out, TagComparison{Tag: t.tag, B: t.count})
	}
	return out
}
