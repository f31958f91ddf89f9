package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-runcfg/pkg/orchestrator"
	"github.com/goliatone/go-runcfg/pkg/sampleconfig"
)

// NewLintCmd validates a configuration document and prints every issue.
func NewLintCmd() *cobra.Command {
	var (
		strict   bool
		noSchema bool
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "lint <config>",
		Short: "Validate a run configuration and report every issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := parseSource(args[0])
			if src == nil {
				return fmt.Errorf("invalid source: %q", args[0])
			}

			gen := orchestrator.New(
				orchestrator.WithSchemaValidation(!noSchema),
				orchestrator.WithLoaderOptions(
					sampleconfig.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
				),
			)
			result, err := gen.Lint(cmd.Context(), orchestrator.Request{
				Source: src,
				Strict: strict,
			})
			if err != nil {
				return err
			}

			if jsonOut {
				payload, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(payload))
			} else {
				for _, issue := range result.Issues {
					if issue.Line > 0 {
						cmd.Printf("%s: %s (line %d)\n", issue.Path, issue.Message, issue.Line)
					} else {
						cmd.Printf("%s: %s\n", issue.Path, issue.Message)
					}
				}
			}

			if !result.Valid {
				return fmt.Errorf("%d issue(s) found", len(result.Issues))
			}
			if !jsonOut {
				cmd.Println("configuration is valid")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "apply downstream processing rules")
	cmd.Flags().BoolVar(&noSchema, "no-schema", false, "skip the schema validation pass")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output issues as JSON")

	return cmd
}
