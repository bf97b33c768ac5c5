package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshhuu/data-navigator-ai/internal/catalog"
	"github.com/joshhuu/data-navigator-ai/internal/models"
	"github.com/joshhuu/data-navigator-ai/internal/search"
)

type options struct {
	source       string
	keywordsFile string
}

// env is the loaded catalog and search engine shared by every subcommand.
type env struct {
	catalog *catalog.Catalog
	engine  *search.Engine
}

func (o *options) load(ctx context.Context) (*env, error) {
	cat, err := catalog.Load(ctx, o.source)
	if err != nil {
		return nil, err
	}

	var kw *search.KeywordTable
	if o.keywordsFile != "" {
		kw, err = search.LoadKeywords(o.keywordsFile)
	} else {
		kw, err = search.DefaultKeywords()
	}
	if err != nil {
		return nil, err
	}

	return &env{catalog: cat, engine: search.NewEngine(cat.Datasets, kw)}, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{
		source:       os.Getenv("CATALOG_SOURCE"),
		keywordsFile: os.Getenv("KEYWORDS_FILE"),
	}

	root := &cobra.Command{
		Use:   "navigator",
		Short: "Browse the data catalog from the terminal",
		Long: `navigator searches, filters and compares the datasets in the catalog.

The catalog defaults to the embedded fixture. Use --source for a YAML file
or an s3://bucket/key object.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.source, "source", opts.source, "catalog source (YAML path or s3://bucket/key)")
	root.PersistentFlags().StringVar(&opts.keywordsFile, "keywords", opts.keywordsFile, "keyword table YAML file")

	root.AddCommand(
		newSearchCmd(opts),
		newShowCmd(opts),
		newSummaryCmd(opts),
		newCompareCmd(opts),
		newUseCaseCmd(opts),
	)
	return root
}

// filterFlags binds the facet flags shared by search and summary.
type filterFlags struct {
	industries []string
	geography  []string
	category   []string
	compliance int
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.industries, "industry", nil, "keep datasets tagged with any of these industries")
	cmd.Flags().StringSliceVar(&f.geography, "geography", nil, "keep datasets covering any of these regions")
	cmd.Flags().StringSliceVar(&f.category, "category", nil, "keep datasets in any of these categories")
	cmd.Flags().IntVar(&f.compliance, "compliance", 0, "minimum compliance score (0-100)")
}

func (f *filterFlags) selection() models.FilterSelection {
	return models.FilterSelection{
		Industries: f.industries,
		Geography:  f.geography,
		Category:   f.category,
		Compliance: min(max(f.compliance, 0), 100),
	}
}

func queryFromArgs(args []string) string {
	return strings.Join(args, " ")
}
