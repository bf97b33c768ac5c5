package models

import "strings"

// PriceTier is the licensing level of a dataset. Tiers are ordered
// Free < Starter < Professional < Enterprise.
type PriceTier string

const (
	PriceTierFree         PriceTier = "Free"
	PriceTierStarter      PriceTier = "Starter"
	PriceTierProfessional PriceTier = "Professional"
	PriceTierEnterprise   PriceTier = "Enterprise"
)

var priceTierRank = map[PriceTier]int{
	PriceTierFree:         1,
	PriceTierStarter:      2,
	PriceTierProfessional: 3,
	PriceTierEnterprise:   4,
}

// Rank returns the tier's position in the ordering, or 0 for an unknown tier.
func (t PriceTier) Rank() int {
	return priceTierRank[t]
}

// Valid reports whether t is one of the known tiers.
func (t PriceTier) Valid() bool {
	return t.Rank() > 0
}

// ParsePriceTier matches s case-insensitively against the known tiers.
func ParsePriceTier(s string) (PriceTier, bool) {
	s = strings.TrimSpace(s)
	for tier := range priceTierRank {
		if strings.EqualFold(string(tier), s) {
			return tier, true
		}
	}
	return "", false
}

// Dataset is one listed data product. Values are read-only once loaded.
type Dataset struct {
	ID              string           `json:"id" yaml:"id"`
	Name            string           `json:"name" yaml:"name"`
	Description     string           `json:"description" yaml:"description"`
	Category        string           `json:"category" yaml:"category"`
	Records         int64            `json:"records" yaml:"records"`
	Accuracy        float64          `json:"accuracy" yaml:"accuracy"`
	ComplianceScore int              `json:"complianceScore" yaml:"compliance_score"`
	Columns         []string         `json:"columns" yaml:"columns"`
	Industries      []string         `json:"industries" yaml:"industries"`
	Geography       []string         `json:"geography" yaml:"geography"`
	PriceTier       PriceTier        `json:"priceTier" yaml:"price_tier"`
	Trending        bool             `json:"trending" yaml:"trending"`
	SampleData      []map[string]any `json:"sampleData" yaml:"sample_data"`
}

// FilterSelection is the set of facet constraints applied to a result list.
// Empty slices impose no constraint; Compliance is a minimum score.
type FilterSelection struct {
	Industries []string `json:"industries"`
	Geography  []string `json:"geography"`
	Category   []string `json:"category"`
	Compliance int      `json:"compliance"`
}

// IsZero reports whether the selection constrains nothing.
func (f FilterSelection) IsZero() bool {
	return len(f.Industries) == 0 && len(f.Geography) == 0 && len(f.Category) == 0 && f.Compliance <= 0
}

// Category describes one entry of the category vocabulary.
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// UseCase maps a business scenario to recommended datasets.
type UseCase struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	DatasetIDs  []string `json:"datasetIds" yaml:"dataset_ids"`
	Reasoning   string   `json:"reasoning" yaml:"reasoning"`
}

type FAQItem struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}
