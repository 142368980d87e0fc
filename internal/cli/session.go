package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/listpager/internal/config"
	"github.com/rshade/listpager/internal/dataset"
	"github.com/rshade/listpager/internal/pager"
)

// DatasetFlags are the per-command overrides of the pagination and dataset
// config sections.
type DatasetFlags struct {
	PageSize int
	Path     string
	Kind     string
	Count    int
}

// register adds the dataset flags to cmd.
func (f *DatasetFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.PageSize, "page-size", 0, "rows per page (overrides pagination.page_size)")
	cmd.Flags().StringVar(&f.Path, "dataset", "", "YAML or JSON dataset file (overrides dataset.path)")
	cmd.Flags().StringVar(&f.Kind, "kind", "", "sample dataset kind: employees or items (overrides dataset.kind)")
	cmd.Flags().IntVar(&f.Count, "count", 0, "number of sample records (overrides dataset.count)")
}

// apply returns a copy of cfg with the explicitly set flags applied and
// validated.
func (f *DatasetFlags) apply(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	out := *cfg
	flags := cmd.Flags()
	if flags.Changed("page-size") {
		out.Pagination.PageSize = f.PageSize
	}
	if flags.Changed("dataset") {
		out.Dataset.Path = f.Path
	}
	if flags.Changed("kind") {
		out.Dataset.Kind = f.Kind
		// Asking for a sample kind means the sample generator, not a file.
		if !flags.Changed("dataset") {
			out.Dataset.Path = ""
		}
	}
	if flags.Changed("count") {
		out.Dataset.Count = f.Count
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// openPager loads the configured dataset and builds a pager over it.
func openPager(cfg *config.Config) (*pager.Pager[dataset.Record], dataset.Set, error) {
	set, err := dataset.Open(cfg.DatasetSource())
	if err != nil {
		return nil, dataset.Set{}, fmt.Errorf("opening dataset: %w", err)
	}
	p, err := pager.New(cfg.PagerConfig(), set.Records)
	if err != nil {
		return nil, dataset.Set{}, fmt.Errorf("creating pager: %w", err)
	}
	return p, set, nil
}

// titleFor names the list being shown.
func titleFor(cfg *config.Config, set dataset.Set) string {
	if cfg.Dataset.Path != "" {
		return cfg.Dataset.Path
	}
	switch set.Kind {
	case dataset.KindItems:
		return "Items"
	default:
		return "Employees"
	}
}
