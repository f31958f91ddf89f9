package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-runcfg/pkg/report"
	"github.com/goliatone/go-runcfg/pkg/svtruth"
)

// NewSVValidateCmd scores structural-variant calls against truth sets.
func NewSVValidateCmd() *cobra.Command {
	var (
		ensemble  string
		truth     map[string]string
		callBeds  map[string]string
		callers   []string
		ploidy    int
		noReports bool
	)

	cmd := &cobra.Command{
		Use:   "sv-validate",
		Short: "Evaluate structural-variant calls against truth regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ensemble == "" {
				return fmt.Errorf("--ensemble is required")
			}
			if len(truth) == 0 {
				return fmt.Errorf("at least one --truth SVTYPE=path is required")
			}

			if len(callers) == 0 {
				callers = append(callers, svtruth.EnsembleCaller)
				for caller := range callBeds {
					callers = append(callers, caller)
				}
				sort.Strings(callers[1:])
			}

			summary, df, err := svtruth.EvaluateToFiles(svtruth.Options{
				Callers:   callers,
				TruthSets: truth,
				Ensemble:  ensemble,
				CallBeds:  callBeds,
				Ploidy:    ploidy,
			})
			if err != nil {
				return err
			}

			slog.Info("sv validation complete", "summary", summary, "df", df)
			cmd.Printf("summary: %s\n", summary)
			cmd.Printf("long-form: %s\n", df)

			if noReports {
				return nil
			}
			paths, err := writeEvaluationReports(df)
			if err != nil {
				return err
			}
			for _, path := range paths {
				cmd.Printf("report: %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ensemble, "ensemble", "", "combined ensemble call BED")
	cmd.Flags().StringToStringVar(&truth, "truth", nil, "truth sets as SVTYPE=path pairs")
	cmd.Flags().StringToStringVar(&callBeds, "call-bed", nil, "per-caller call BEDs as caller=path pairs")
	cmd.Flags().StringSliceVar(&callers, "caller", nil, "callers to score (defaults to sv-ensemble plus every --call-bed)")
	cmd.Flags().IntVar(&ploidy, "ploidy", 2, "sample ploidy for CNV event classification")
	cmd.Flags().BoolVar(&noReports, "no-reports", false, "skip the per-event-type HTML summaries")

	return cmd
}

// writeEvaluationReports renders one HTML summary per event type next to the
// long-form table, named <df base>-<svtype>.html.
func writeEvaluationReports(dfFile string) ([]string, error) {
	rows, err := svtruth.ReadLongCSV(dfFile)
	if err != nil {
		return nil, err
	}

	renderer, err := report.New()
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(dfFile, filepath.Ext(dfFile))
	var paths []string
	for _, svtype := range svtruth.SVTypes(rows) {
		out, err := renderer.RenderEvaluation(rows, svtype, report.FormatHTML)
		if err != nil {
			return nil, err
		}
		path := fmt.Sprintf("%s-%s.html", base, svtype)
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return nil, fmt.Errorf("write evaluation report: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
