package analytics

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/joshhuu/data-navigator-ai/internal/models"
)

func scenario() []models.Dataset {
	return []models.Dataset{
		{ID: "ds-1", Name: "Provider Directory", Category: "healthcare", Industries: []string{"Health"}, Geography: []string{"US"}, Records: 1_000_000, Accuracy: 95, ComplianceScore: 90},
		{ID: "ds-2", Name: "Consumer Addresses", Category: "postal", Industries: []string{"Retail"}, Geography: []string{"EU"}, Records: 500_000, Accuracy: 88, ComplianceScore: 80},
	}
}

func TestSummarizeScenario(t *testing.T) {
	s := Summarize(scenario())
	if s.TotalRecords != 1_500_000 {
		t.Errorf("TotalRecords = %d", s.TotalRecords)
	}
	if s.AvgAccuracy != 91.5 {
		t.Errorf("AvgAccuracy = %v", s.AvgAccuracy)
	}
	if s.TotalDatasets != 2 {
		t.Errorf("TotalDatasets = %d", s.TotalDatasets)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.AvgAccuracy != 0 || s.TotalRecords != 0 || s.TotalDatasets != 0 {
		t.Fatalf("unexpected empty summary: %+v", s)
	}
	if s.IndustryDistribution == nil || s.GeographyDistribution == nil || s.RecordAccuracyData == nil {
		t.Fatalf("empty summary must use empty, non-nil series")
	}
	if len(s.GrowthTrend) != 6 {
		t.Fatalf("growth trend must have 6 points, got %d", len(s.GrowthTrend))
	}
	for _, p := range s.GrowthTrend {
		if p.Records != 0 || p.Projected != 0 {
			t.Fatalf("expected zero trend, got %+v", p)
		}
	}
}

func TestAverageAccuracyRounding(t *testing.T) {
	ds := []models.Dataset{{Accuracy: 90.26}, {Accuracy: 90.0}, {Accuracy: 90.0}}
	if got := AverageAccuracy(ds); got != 90.1 {
		t.Fatalf("AverageAccuracy = %v, want 90.1", got)
	}
}

func TestIndustryDistributionCountsTagOccurrences(t *testing.T) {
	ds := []models.Dataset{
		{Industries: []string{"Retail", "Finance"}},
		{Industries: []string{"Finance", "Healthcare", "Retail"}},
		{Industries: []string{"Finance"}},
	}
	got := IndustryDistribution(ds)
	want := []IndustryShare{
		{Industry: "Finance", Count: 3, Percentage: 50},
		{Industry: "Retail", Count: 2, Percentage: 33},
		{Industry: "Healthcare", Count: 1, Percentage: 17},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	sum := 0
	for _, b := range got {
		sum += b.Count
	}
	if sum != 6 {
		t.Fatalf("counts sum to %d, want the 6 tag occurrences", sum)
	}
}

func TestDistributionTiesKeepFirstOccurrence(t *testing.T) {
	ds := []models.Dataset{
		{Geography: []string{"Canada", "Global"}},
		{Geography: []string{"Asia Pacific"}},
	}
	got := GeographyDistribution(ds)
	want := []GeographyShare{
		{Geography: "Canada", Count: 1, Percentage: 33},
		{Geography: "Global", Count: 1, Percentage: 33},
		{Geography: "Asia Pacific", Count: 1, Percentage: 33},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func manyTags(n int) []models.Dataset {
	ds := make([]models.Dataset, 0, n)
	for i := 0; i < n; i++ {
		tag := fmt.Sprintf("tag-%02d", i)
		ds = append(ds, models.Dataset{
			Name:       fmt.Sprintf("Dataset Number %d Extra Words", i),
			Records:    int64(i+1) * 1_000_000,
			Industries: []string{tag},
			Geography:  []string{tag},
		})
	}
	return ds
}

func TestDistributionTruncation(t *testing.T) {
	ds := manyTags(14)
	if got := IndustryDistribution(ds); len(got) != 10 {
		t.Fatalf("industry distribution should keep 10 buckets, got %d", len(got))
	}
	if got := GeographyDistribution(ds); len(got) != 14 {
		t.Fatalf("geography distribution should not truncate, got %d", len(got))
	}
}

func TestRecordAccuracyData(t *testing.T) {
	ds := manyTags(12)
	got := RecordAccuracyData(ds)
	if len(got) != 10 {
		t.Fatalf("expected top 10, got %d", len(got))
	}
	if got[0].Records != 12_000_000 || got[9].Records != 3_000_000 {
		t.Fatalf("unexpected order: first %d, last %d", got[0].Records, got[9].Records)
	}
	if got[0].Name != "Dataset Number 11" {
		t.Fatalf("name not shortened: %q", got[0].Name)
	}
	if got[0].RecordsMil != 12 {
		t.Fatalf("RecordsMil = %d", got[0].RecordsMil)
	}

	small := RecordAccuracyData([]models.Dataset{{Name: "Tiny", Records: 499_999}, {Name: "Half", Records: 1_500_000}})
	if small[0].RecordsMil != 2 || small[1].RecordsMil != 0 {
		t.Fatalf("unexpected rounding: %+v", small)
	}
}

func TestGrowthTrend(t *testing.T) {
	got := GrowthTrend([]models.Dataset{{Records: 600_000}, {Records: 400_000}})

	months := []string{}
	for _, p := range got {
		months = append(months, p.Month)
	}
	if diff := cmp.Diff([]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, months); diff != "" {
		t.Fatalf("months mismatch (-want +got):\n%s", diff)
	}

	if got[5].Records != 1_000_000 || got[0].Projected != 1_000_000 {
		t.Fatalf("trend must pivot on the current total: %+v", got)
	}
	if got[0].Records != 443_705 {
		t.Errorf("Jan backfill = %d, want 443705", got[0].Records)
	}
	if got[5].Projected != 1_469_328 {
		t.Errorf("Jun projection = %d, want 1469328", got[5].Projected)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Records <= got[i-1].Records || got[i].Projected <= got[i-1].Projected {
			t.Fatalf("trend must increase monotonically at %s", got[i].Month)
		}
	}
}

func TestShortName(t *testing.T) {
	if got := ShortName("B2B Email Decision Makers", 3); got != "B2B Email Decision" {
		t.Fatalf("ShortName = %q", got)
	}
	if got := ShortName("Short", 3); got != "Short" {
		t.Fatalf("ShortName = %q", got)
	}
}
