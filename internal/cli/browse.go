package cli

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/listpager/internal/pager"
	"github.com/rshade/listpager/internal/tui"
)

// ErrNotTerminal is returned when browse is run without a terminal.
var ErrNotTerminal = errors.New("browse needs an interactive terminal; use list instead")

func newBrowseCmd(s *session) *cobra.Command {
	var (
		page  string
		flags DatasetFlags
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through the dataset interactively",
		Long: `Opens an interactive pager. Use ←/→ for the previous and next page,
home/end to jump, tab to move between the page buttons and enter to press one.
Type a page number and press enter to go straight to it. b and f step back
and forward through the pages you have visited.`,
		Example: `  # Browse the sample employees starting at page 5
  listpager browse --page 5

  # Browse a dataset file
  listpager browse --dataset items.yaml --page-size 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}
			cfg, err := flags.apply(cmd, s.cfg)
			if err != nil {
				return err
			}

			p, set, err := openPager(cfg)
			if err != nil {
				return err
			}

			start := &url.URL{Path: "/"}
			if cmd.Flags().Changed("page") {
				start = pager.WithPage(start, page)
			}

			m, err := tui.New(cmd.Context(), p, set.Headers(), start)
			if err != nil {
				return err
			}
			m.SetTitle(titleFor(cfg, set))

			prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err = prog.Run(); err != nil {
				return fmt.Errorf("running browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&page, "page", "", "page to open first (clamped to the available pages)")
	flags.register(cmd)

	return cmd
}
