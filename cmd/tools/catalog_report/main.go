package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joshhuu/data-navigator-ai/internal/analytics"
	"github.com/joshhuu/data-navigator-ai/internal/catalog"
	"github.com/joshhuu/data-navigator-ai/internal/models"
	"github.com/joshhuu/data-navigator-ai/internal/search"
)

type categoryResult struct {
	Category      string  `json:"category"`
	Datasets      int     `json:"datasets"`
	TotalRecords  int64   `json:"total_records"`
	RecordsLabel  string  `json:"records_label"`
	AvgAccuracy   float64 `json:"avg_accuracy"`
	MinCompliance int     `json:"min_compliance"`
}

type output struct {
	Source     string            `json:"source"`
	Categories []categoryResult  `json:"categories"`
	Summary    analytics.Summary `json:"summary"`
}

func main() {
	source := flag.String("source", "", "Catalog source: empty for the embedded fixture, a YAML path, or s3://bucket/key")
	outPath := flag.String("out", "", "Write the report to this file instead of stdout")
	flag.Parse()

	ctx := context.Background()
	cat, err := catalog.Load(ctx, *source)
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}

	result := output{
		Source:     *source,
		Categories: []categoryResult{},
		Summary:    analytics.Summarize(cat.Datasets),
	}
	if result.Source == "" {
		result.Source = "embedded"
	}

	for _, c := range cat.Categories {
		entries := search.Filter(cat.Datasets, models.FilterSelection{Category: []string{c.ID}})
		r := categoryResult{
			Category:     c.ID,
			Datasets:     len(entries),
			TotalRecords: analytics.TotalRecords(entries),
			AvgAccuracy:  analytics.AverageAccuracy(entries),
		}
		r.RecordsLabel = analytics.FormatNumber(r.TotalRecords)
		for i, ds := range entries {
			if i == 0 || ds.ComplianceScore < r.MinCompliance {
				r.MinCompliance = ds.ComplianceScore
			}
		}
		result.Categories = append(result.Categories, r)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}

	if *outPath == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*outPath, append(data, '\n'), 0o644); err != nil {
		log.Fatalf("write report: %v", err)
	}
	log.Printf("Report written to %s", *outPath)
}
