package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file, .env and environment overrides.
func NewConfigShowCmd(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Example: `  # Show configuration as YAML
  listpager config show

  # Show configuration as JSON
  listpager config show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch output {
			case "yaml":
				data, err := s.cfg.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case OutputJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(s.cfg); err != nil {
					return fmt.Errorf("encoding config: %w", err)
				}
				return nil
			default:
				return fmt.Errorf("%w: %q (want yaml or json)", ErrUnsupportedOutput, output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")

	return cmd
}
