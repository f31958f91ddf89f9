// Package cli assembles the runcfg command tree.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-runcfg/pkg/sampleconfig"
)

// NewRootCmd builds the runcfg root command with every subcommand attached.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "runcfg",
		Short:         "Load, validate, and inspect pipeline run configurations",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewLintCmd(),
		NewShowCmd(),
		NewReportCmd(),
		NewInitCmd(),
		NewSVValidateCmd(),
	)

	return root
}

// parseSource maps a CLI argument onto a document source: URLs load over
// HTTP, everything else is a file path.
func parseSource(raw string) sampleconfig.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return sampleconfig.SourceFromURL(path)
	}
	return sampleconfig.SourceFromFile(path)
}
