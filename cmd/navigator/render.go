package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/joshhuu/data-navigator-ai/internal/analytics"
	"github.com/joshhuu/data-navigator-ai/internal/models"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	return t
}

func renderDatasets(out io.Writer, datasets []models.Dataset) {
	t := newTable(out)
	t.AppendHeader(table.Row{"ID", "Name", "Category", "Records", "Accuracy", "Compliance", "Tier"})
	for _, ds := range datasets {
		t.AppendRow(table.Row{
			ds.ID, ds.Name, ds.Category, analytics.FormatNumber(ds.Records),
			fmt.Sprintf("%.1f%%", ds.Accuracy), ds.ComplianceScore, ds.PriceTier,
		})
	}
	t.Render()
}

func renderDetail(out io.Writer, ds models.Dataset) {
	t := newTable(out)
	t.SetTitle(ds.Name)
	t.AppendRows([]table.Row{
		{"ID", ds.ID},
		{"Description", ds.Description},
		{"Category", ds.Category},
		{"Records", analytics.FormatNumber(ds.Records)},
		{"Accuracy", fmt.Sprintf("%.1f%%", ds.Accuracy)},
		{"Compliance", ds.ComplianceScore},
		{"Columns", strings.Join(ds.Columns, ", ")},
		{"Industries", strings.Join(ds.Industries, ", ")},
		{"Geography", strings.Join(ds.Geography, ", ")},
		{"Price Tier", ds.PriceTier},
		{"Trending", ds.Trending},
	})
	t.Render()
}

// renderSample prints sample rows using the dataset's column order. Keys
// missing from the column list are appended in sorted order.
func renderSample(out io.Writer, ds models.Dataset) {
	if len(ds.SampleData) == 0 {
		return
	}

	cols := slices.Clone(ds.Columns)
	var extra []string
	for _, row := range ds.SampleData {
		for k := range row {
			if !slices.Contains(cols, k) && !slices.Contains(extra, k) {
				extra = append(extra, k)
			}
		}
	}
	slices.Sort(extra)
	cols = append(cols, extra...)

	t := newTable(out)
	t.SetTitle("Sample data")
	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	t.AppendHeader(header)
	for _, row := range ds.SampleData {
		r := make(table.Row, len(cols))
		for i, c := range cols {
			r[i] = row[c]
		}
		t.AppendRow(r)
	}
	t.Render()
}

func renderSummary(out io.Writer, s analytics.Summary) {
	fmt.Fprintf(out, "Datasets: %d  Records: %s  Avg accuracy: %.1f%%\n",
		s.TotalDatasets, analytics.FormatCompact(s.TotalRecords), s.AvgAccuracy)

	t := newTable(out)
	t.SetTitle("Industries")
	t.AppendHeader(table.Row{"Industry", "Count", "%"})
	for _, b := range s.IndustryDistribution {
		t.AppendRow(table.Row{b.Industry, b.Count, b.Percentage})
	}
	t.Render()

	t = newTable(out)
	t.SetTitle("Geography")
	t.AppendHeader(table.Row{"Region", "Count", "%"})
	for _, b := range s.GeographyDistribution {
		t.AppendRow(table.Row{b.Geography, b.Count, b.Percentage})
	}
	t.Render()

	t = newTable(out)
	t.SetTitle("Growth")
	t.AppendHeader(table.Row{"Month", "Records", "Projected"})
	for _, p := range s.GrowthTrend {
		t.AppendRow(table.Row{p.Month, analytics.FormatCompact(p.Records), analytics.FormatCompact(p.Projected)})
	}
	t.Render()
}

func renderComparison(out io.Writer, cmp *analytics.Comparison) {
	t := newTable(out)
	header := table.Row{"Metric"}
	for _, name := range cmp.Names {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for _, row := range cmp.Rows {
		r := table.Row{row.Label}
		for i, v := range row.Values {
			if slices.Contains(row.Winners, i) {
				v += " *"
			}
			r = append(r, v)
		}
		t.AppendRow(r)
	}
	t.Render()
}

func renderUseCases(out io.Writer, useCases []models.UseCase) {
	t := newTable(out)
	t.AppendHeader(table.Row{"ID", "Name", "Datasets"})
	for _, uc := range useCases {
		t.AppendRow(table.Row{uc.ID, uc.Name, strings.Join(uc.DatasetIDs, ", ")})
	}
	t.Render()
}
