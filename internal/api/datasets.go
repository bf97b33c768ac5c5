package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/joshhuu/data-navigator-ai/internal/analytics"
	"github.com/joshhuu/data-navigator-ai/internal/models"
	"github.com/joshhuu/data-navigator-ai/internal/search"
)

const relatedLimit = 3

type searchResponse struct {
	Datasets   []models.Dataset       `json:"datasets"`
	Total      int                    `json:"total"`
	Query      string                 `json:"query"`
	Selection  models.FilterSelection `json:"selection"`
	Steps      []string               `json:"steps"`
	Confidence float64                `json:"confidence"`
}

type analyticsResponse struct {
	analytics.Summary
	TotalRecordsFormatted string `json:"totalRecordsFormatted"`
}

type compareResponse struct {
	*analytics.Comparison
	Distributions *analytics.DistributionComparison `json:"distributions,omitempty"`
}

// parseSelection reads the facet query parameters. An unparseable
// compliance value is an error; values are clamped to 0..100.
func parseSelection(c echo.Context) (models.FilterSelection, error) {
	sel := models.FilterSelection{
		Industries: splitCSV(c.QueryParam("industries")),
		Geography:  splitCSV(c.QueryParam("geography")),
		Category:   splitCSV(c.QueryParam("category")),
	}
	if v := strings.TrimSpace(c.QueryParam("compliance")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return sel, errors.New("compliance must be an integer")
		}
		sel.Compliance = min(max(n, 0), 100)
	}
	return sel, nil
}

func (s *Server) handleSearchDatasets(c echo.Context) error {
	sel, err := parseSelection(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	q := c.QueryParam("q")

	results := s.Engine.Run(q, sel)
	return c.JSON(http.StatusOK, searchResponse{
		Datasets:   results,
		Total:      len(results),
		Query:      q,
		Selection:  sel,
		Steps:      search.LoadingSteps,
		Confidence: s.confidence(),
	})
}

func (s *Server) handleTrending(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Catalog.Trending())
}

func (s *Server) handleGetDataset(c echo.Context) error {
	ds, ok := s.Catalog.ByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"dataset": ds,
		"related": s.Catalog.Related(ds, relatedLimit),
	})
}

func (s *Server) handleFacets(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"categories":     s.Catalog.Categories,
		"industries":     s.Catalog.Industries,
		"geographies":    s.Catalog.Geographies,
		"categoryCounts": s.Catalog.CategoryCounts(),
	})
}

// handleAnalytics summarises the datasets named by ids, or else the current
// search result for q and the facet parameters.
func (s *Server) handleAnalytics(c echo.Context) error {
	var entries []models.Dataset
	if ids := splitCSV(c.QueryParam("ids")); len(ids) > 0 {
		entries = s.Catalog.Lookup(ids)
	} else {
		sel, err := parseSelection(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		entries = s.Engine.Run(c.QueryParam("q"), sel)
	}

	summary := analytics.Summarize(entries)
	return c.JSON(http.StatusOK, analyticsResponse{
		Summary:               summary,
		TotalRecordsFormatted: analytics.FormatCompact(summary.TotalRecords),
	})
}

func (s *Server) handleCompare(c echo.Context) error {
	ids := splitCSV(c.QueryParam("ids"))
	datasets := make([]models.Dataset, 0, len(ids))
	for _, id := range ids {
		ds, ok := s.Catalog.ByID(id)
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown dataset: " + id})
		}
		datasets = append(datasets, ds)
	}
	return s.respondComparison(c, datasets)
}

func (s *Server) respondComparison(c echo.Context, datasets []models.Dataset) error {
	cmp, err := analytics.Compare(datasets...)
	if errors.Is(err, analytics.ErrCompareArity) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	resp := compareResponse{Comparison: cmp}
	if len(datasets) == 2 {
		dist := analytics.CompareDistributions(datasets[0], datasets[1])
		resp.Distributions = &dist
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleListUseCases(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Catalog.UseCases)
}

func (s *Server) handleGetUseCase(c echo.Context) error {
	uc, datasets, ok := s.Catalog.UseCase(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"useCase":  uc,
		"datasets": datasets,
	})
}

func (s *Server) handleFAQ(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Catalog.FAQ)
}
