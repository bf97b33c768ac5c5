package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshhuu/data-navigator-ai/internal/analytics"
	"github.com/joshhuu/data-navigator-ai/internal/models"
	"github.com/joshhuu/data-navigator-ai/internal/search"
)

func newSearchCmd(opts *options) *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the catalog and apply facet filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			results := e.engine.Run(queryFromArgs(args), f.selection())

			out := cmd.OutOrStdout()
			r := rand.New(rand.NewSource(time.Now().UnixNano()))
			fmt.Fprintf(out, "%d datasets (confidence %.1f%%)\n", len(results), search.Confidence(r))
			renderDatasets(out, results)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <dataset-id>",
		Short: "Show one dataset with sample rows and related datasets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			ds, ok := e.catalog.ByID(args[0])
			if !ok {
				return fmt.Errorf("dataset %q not found", args[0])
			}

			out := cmd.OutOrStdout()
			renderDetail(out, ds)
			renderSample(out, ds)
			if related := e.catalog.Related(ds, 3); len(related) > 0 {
				fmt.Fprintln(out, "Related datasets:")
				renderDatasets(out, related)
			}
			return nil
		},
	}
}

func newSummaryCmd(opts *options) *cobra.Command {
	var f filterFlags
	cmd := &cobra.Command{
		Use:   "summary [query...]",
		Short: "Aggregate analytics over the search result",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			results := e.engine.Run(queryFromArgs(args), f.selection())
			renderSummary(cmd.OutOrStdout(), analytics.Summarize(results))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <id> <id> [id]",
		Short: "Compare two or three datasets side by side",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			datasets := make([]models.Dataset, 0, len(args))
			for _, id := range args {
				ds, ok := e.catalog.ByID(id)
				if !ok {
					return fmt.Errorf("dataset %q not found", id)
				}
				datasets = append(datasets, ds)
			}

			cmp, err := analytics.Compare(datasets...)
			if err != nil {
				return err
			}
			renderComparison(cmd.OutOrStdout(), cmp)
			return nil
		},
	}
}

func newUseCaseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "use-case [id]",
		Short: "List use cases, or show the datasets recommended for one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				renderUseCases(out, e.catalog.UseCases)
				return nil
			}

			uc, datasets, ok := e.catalog.UseCase(args[0])
			if !ok {
				return fmt.Errorf("use case %q not found", args[0])
			}
			fmt.Fprintf(out, "%s\n%s\n\n%s\n", uc.Name, uc.Description, uc.Reasoning)
			renderDatasets(out, datasets)
			return nil
		},
	}
}
