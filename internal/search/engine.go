package search

import (
	"github.com/joshhuu/data-navigator-ai/internal/models"
)

// Engine binds a catalog snapshot to a keyword table.
type Engine struct {
	catalog  []models.Dataset
	keywords *KeywordTable
}

// NewEngine returns an engine over catalog. The slice is not copied and must
// not be modified afterwards.
func NewEngine(catalog []models.Dataset, keywords *KeywordTable) *Engine {
	return &Engine{catalog: catalog, keywords: keywords}
}

// Search runs Search against the engine's catalog and keyword table.
func (e *Engine) Search(query string) []models.Dataset {
	return Search(e.catalog, e.keywords, query)
}

// Run searches for query and narrows the result with sel.
func (e *Engine) Run(query string, sel models.FilterSelection) []models.Dataset {
	return Filter(e.Search(query), sel)
}
