package validation

import (
	"fmt"

	"github.com/goliatone/go-runcfg/pkg/model"
)

// knownAnalyses lists the pipeline-type tags downstream stages understand.
var knownAnalyses = map[string]bool{
	"variant":      true,
	"variant2":     true,
	"RNA-seq":      true,
	"smallRNA-seq": true,
	"scRNA-seq":    true,
	"chip-seq":     true,
	"wgbs-seq":     true,
}

// ValidateStrict applies the opt-in rules downstream processing relies on but
// the format itself leaves open: one or two read files per sample (single or
// paired end), a recognised analysis tag, and a genome build.
func ValidateStrict(cfg model.RunConfig) Result {
	result := Result{Valid: true}

	if len(cfg.Details) == 0 {
		result.add("details", 0, "must contain at least one sample entry")
	}

	for i, entry := range cfg.Details {
		path := fmt.Sprintf("details[%d]", i)
		if n := len(entry.Files); n < 1 || n > 2 {
			result.add(path+".files", 0,
				fmt.Sprintf("expected 1 (single-end) or 2 (paired-end) read files, got %d", n))
		}
		if !knownAnalyses[entry.Analysis] {
			result.add(path+".analysis", 0, fmt.Sprintf("unknown pipeline type %q", entry.Analysis))
		}
		if entry.GenomeBuild == "" {
			result.add(path+".genome_build", 0, "genome build is required for processing")
		}
	}

	return result
}
