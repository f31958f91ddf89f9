package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-runcfg/pkg/orchestrator"
	"github.com/goliatone/go-runcfg/pkg/report"
)

// NewReportCmd renders an HTML or text run summary.
func NewReportCmd() *cobra.Command {
	var (
		format  string
		output  string
		baseDir string
	)

	cmd := &cobra.Command{
		Use:   "report <config>",
		Short: "Render a run summary report",
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
			out, err := renderer.Render(outcome.Config, report.Format(format))
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, out, 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				cmd.Printf("report written to %s\n", output)
				return nil
			}
			cmd.Print(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(report.FormatHTML), "output format: html or text")
	cmd.Flags().StringVar(&output, "output", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&baseDir, "base-dir", "", "directory to anchor relative paths")

	return cmd
}
