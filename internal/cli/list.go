package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/rshade/listpager/internal/config"
	"github.com/rshade/listpager/internal/logging"
	"github.com/rshade/listpager/internal/pager"
	"github.com/rshade/listpager/internal/render"
)

// Output formats for the list command.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// ErrUnsupportedOutput is returned for an unknown --output value.
var ErrUnsupportedOutput = errors.New("unsupported output format")

func newListCmd(s *session) *cobra.Command {
	var (
		page   string
		output string
		flags  DatasetFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the dataset",
		Long: `Prints a single page of the dataset followed by the navigation controls.

The page is taken from --page exactly as it would be read from a URL: missing,
non-numeric and out-of-range values are clamped to a valid page.`,
		Example: `  # First page of the sample employees
  listpager list

  # Page 7, ten rows per page
  listpager list --page 7 --page-size 10

  # A page of a dataset file as JSON
  listpager list --dataset items.json --page 2 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.apply(cmd, s.cfg)
			if err != nil {
				return err
			}
			return runList(cmd, cfg, page, output)
		},
	}

	cmd.Flags().StringVar(&page, "page", "", "page to show (clamped to the available pages)")
	cmd.Flags().StringVarP(&output, "output", "o", OutputTable, "output format: table or json")
	flags.register(cmd)

	return cmd
}

func runList(cmd *cobra.Command, cfg *config.Config, page, output string) error {
	if output != OutputTable && output != OutputJSON {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnsupportedOutput, output, OutputTable, OutputJSON)
	}

	p, set, err := openPager(cfg)
	if err != nil {
		return err
	}

	u := &url.URL{Path: "/"}
	if cmd.Flags().Changed("page") {
		u = pager.WithPage(u, page)
	}

	log := logging.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	if output == OutputJSON {
		view := p.Evaluate(u)
		log.Debug().Int("page", view.State.CurrentPage).Int("total_pages", view.State.TotalPages).
			Msg("rendering page as JSON")
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(view); encErr != nil {
			return fmt.Errorf("encoding page: %w", encErr)
		}
		return nil
	}

	styled := render.IsWriterTerminal(out)
	view, err := p.Render(u, render.NewTextSink(out, set.Headers(), styled))
	if err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	log.Debug().Int("page", view.State.CurrentPage).Int("total_pages", view.State.TotalPages).
		Bool("styled", styled).Msg("rendered page")

	caption := render.Caption(view.State)
	if styled {
		caption = render.CaptionStyle.Render(caption)
	}
	_, err = fmt.Fprintln(out, caption)
	return err
}
