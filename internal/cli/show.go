package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-runcfg/pkg/orchestrator"
	"github.com/goliatone/go-runcfg/pkg/report"
)

// NewShowCmd prints a text summary of a parsed configuration.
func NewShowCmd() *cobra.Command {
	var baseDir string

	cmd := &cobra.Command{
		Use:   "show <config>",
		Short: "Parse a run configuration and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := parseSource(args[0])
			if src == nil {
				return fmt.Errorf("invalid source: %q", args[0])
			}

			gen := orchestrator.New(orchestrator.WithBaseDir(baseDir))
			outcome, err := gen.Run(cmd.Context(), orchestrator.Request{
				Source:    src,
				Normalize: true,
			})
			if err != nil {
				return err
			}

			renderer, err := report.New()
			if err != nil {
				return err
			}
			out, err := renderer.Render(outcome.Config, report.FormatText)
			if err != nil {
				return err
			}
			cmd.Print(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&baseDir, "base-dir", "", "directory to anchor relative paths")

	return cmd
}
