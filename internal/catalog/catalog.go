package catalog

import (
	"context"
	"slices"

	"github.com/joshhuu/data-navigator-ai/internal/models"
)

// Repository lists every dataset in the catalog. Implementations must return
// the same entries, in the same order, on every call.
type Repository interface {
	ListAll(ctx context.Context) ([]models.Dataset, error)
}

// Catalog is an immutable snapshot of the listings together with the facet
// vocabulary, use-case recommendations and compliance FAQ shown alongside them.
type Catalog struct {
	Datasets    []models.Dataset  `yaml:"datasets"`
	Categories  []models.Category `yaml:"categories"`
	Industries  []string          `yaml:"industries"`
	Geographies []string          `yaml:"geographies"`
	UseCases    []models.UseCase  `yaml:"use_cases"`
	FAQ         []models.FAQItem  `yaml:"faq"`

	byID map[string]int
}

func (c *Catalog) index() {
	c.byID = make(map[string]int, len(c.Datasets))
	for i, ds := range c.Datasets {
		c.byID[ds.ID] = i
	}
}

// ListAll returns a copy of the dataset list in fixture order.
func (c *Catalog) ListAll(ctx context.Context) ([]models.Dataset, error) {
	return slices.Clone(c.Datasets), nil
}

// ByID returns the dataset with the given id.
func (c *Catalog) ByID(id string) (models.Dataset, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Dataset{}, false
	}
	return c.Datasets[i], true
}

// Lookup resolves ids in order, skipping unknown ones.
func (c *Catalog) Lookup(ids []string) []models.Dataset {
	out := make([]models.Dataset, 0, len(ids))
	for _, id := range ids {
		if ds, ok := c.ByID(id); ok {
			out = append(out, ds)
		}
	}
	return out
}

// Trending returns the datasets flagged as trending, in catalog order.
func (c *Catalog) Trending() []models.Dataset {
	out := []models.Dataset{}
	for _, ds := range c.Datasets {
		if ds.Trending {
			out = append(out, ds)
		}
	}
	return out
}

// Related returns up to n other datasets sharing ds's category.
func (c *Catalog) Related(ds models.Dataset, n int) []models.Dataset {
	out := []models.Dataset{}
	for _, other := range c.Datasets {
		if len(out) >= n {
			break
		}
		if other.Category == ds.Category && other.ID != ds.ID {
			out = append(out, other)
		}
	}
	return out
}

// CategoryCounts returns the number of datasets per category id. Every
// vocabulary category is present, even with a zero count.
func (c *Catalog) CategoryCounts() map[string]int {
	counts := make(map[string]int, len(c.Categories))
	for _, cat := range c.Categories {
		counts[cat.ID] = 0
	}
	for _, ds := range c.Datasets {
		counts[ds.Category]++
	}
	return counts
}

// UseCase returns the use case with the given id and its recommended datasets.
func (c *Catalog) UseCase(id string) (models.UseCase, []models.Dataset, bool) {
	for _, uc := range c.UseCases {
		if uc.ID == id {
			return uc, c.Lookup(uc.DatasetIDs), true
		}
	}
	return models.UseCase{}, nil, false
}

// StaticRepository serves a fixed list of datasets from memory.
type StaticRepository struct {
	datasets []models.Dataset
}

func NewStaticRepository(datasets []models.Dataset) *StaticRepository {
	return &StaticRepository{datasets: slices.Clone(datasets)}
}

func (r *StaticRepository) ListAll(ctx context.Context) ([]models.Dataset, error) {
	return slices.Clone(r.datasets), nil
}

// FromRepository builds a snapshot whose datasets come from repo while the
// vocabulary, use cases and FAQ are taken from base.
func FromRepository(ctx context.Context, repo Repository, base *Catalog) (*Catalog, error) {
	datasets, err := repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	c := &Catalog{
		Datasets:    datasets,
		Categories:  base.Categories,
		Industries:  base.Industries,
		Geographies: base.Geographies,
		UseCases:    base.UseCases,
		FAQ:         base.FAQ,
	}
	if err := prepare(c); err != nil {
		return nil, err
	}
	return c, nil
}
