package analytics

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/joshhuu/data-navigator-ai/internal/models"
)

func compareFixtures() (models.Dataset, models.Dataset, models.Dataset) {
	a := models.Dataset{
		ID: "a", Name: "Alpha", Records: 2_000_000, Accuracy: 91.5, ComplianceScore: 90,
		PriceTier: models.PriceTierEnterprise, Columns: []string{"x", "y"},
		Industries: []string{"Retail", "Finance"}, Geography: []string{"United States", "Canada"},
	}
	b := models.Dataset{
		ID: "b", Name: "Beta", Records: 500_000, Accuracy: 97, ComplianceScore: 90,
		PriceTier: models.PriceTierStarter, Columns: []string{"x", "y", "z"},
		Industries: []string{"Finance"}, Geography: []string{"Global"},
	}
	c := models.Dataset{
		ID: "c", Name: "Gamma", Records: 10_000, Accuracy: 80, ComplianceScore: 70,
		PriceTier: models.PriceTierStarter, Columns: []string{"x"},
		Industries: []string{"Retail"}, Geography: []string{"Canada"},
	}
	return a, b, c
}

func row(t *testing.T, c *Comparison, label string) MetricRow {
	t.Helper()
	for _, r := range c.Rows {
		if r.Label == label {
			return r
		}
	}
	t.Fatalf("row %q missing", label)
	return MetricRow{}
}

func TestCompareArity(t *testing.T) {
	a, b, c := compareFixtures()
	if _, err := Compare(a); !errors.Is(err, ErrCompareArity) {
		t.Fatalf("one dataset: err = %v", err)
	}
	if _, err := Compare(a, b, c, a); !errors.Is(err, ErrCompareArity) {
		t.Fatalf("four datasets: err = %v", err)
	}
}

func TestCompareWinners(t *testing.T) {
	a, b, c := compareFixtures()
	cmpResult, err := Compare(a, b, c)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	tests := []struct {
		label   string
		values  []string
		winners []int
	}{
		{"Records", []string{"2M", "500K", "10K"}, []int{0}},
		{"Accuracy", []string{"91.5%", "97%", "80%"}, []int{1}},
		{"Coverage", []string{"United States, Canada", "Global", "Canada"}, []int{}},
		{"Compliance Score", []string{"90", "90", "70"}, []int{0, 1}},
		{"Price Tier", []string{"Enterprise", "Starter", "Starter"}, []int{1, 2}},
		{"Columns", []string{"2", "3", "1"}, []int{1}},
		{"Industries", []string{"2", "1", "1"}, []int{0}},
	}
	for _, tt := range tests {
		r := row(t, cmpResult, tt.label)
		if diff := cmp.Diff(tt.values, r.Values); diff != "" {
			t.Errorf("%s values mismatch (-want +got):\n%s", tt.label, diff)
		}
		if diff := cmp.Diff(tt.winners, r.Winners); diff != "" {
			t.Errorf("%s winners mismatch (-want +got):\n%s", tt.label, diff)
		}
	}

	if diff := cmp.Diff([]string{"a", "b", "c"}, cmpResult.DatasetIDs); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareDistributions(t *testing.T) {
	a, b, _ := compareFixtures()
	got := CompareDistributions(a, b)

	wantIndustries := []TagComparison{
		{Tag: "Retail", A: 1},
		{Tag: "Finance", A: 1, B: 1},
	}
	if diff := cmp.Diff(wantIndustries, got.Industries); diff != "" {
		t.Errorf("industries mismatch (-want +got):\n%s", diff)
	}

	wantGeos := []TagComparison{
		{Tag: "United States", A: 1},
		{Tag: "Canada", A: 1},
		{Tag: "Global", B: 1},
	}
	if diff := cmp.Diff(wantGeos, got.Geographies); diff != "" {
		t.Errorf("geographies mismatch (-want +got):\n%s", diff)
	}
}
