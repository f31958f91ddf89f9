// Package svtruth scores structural-variant call sets against known truth
// regions. The combined ensemble BED is compared per caller, per SV type, and
// per event-size stratum; any overlap between a merged call and a merged
// truth region counts as a match.
package svtruth

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EnsembleCaller names the combined call set evaluated alongside the
// individual callers.
const EnsembleCaller = "sv-ensemble"

// SizeRange is one event-size stratum, half-open.
type SizeRange struct {
	Min, Max int
}

func (r SizeRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

func (r SizeRange) contains(size int) bool {
	return size >= r.Min && size < r.Max
}

// EventSizes are the size strata used when comparing calls against truth
// sets.
var EventSizes = []SizeRange{
	{1, 450}, {450, 2000}, {2000, 4000}, {4000, 20000}, {20000, 60000},
	{60000, 1000000},
}

// Stat is one evaluation metric: a percentage plus its display label.
type Stat struct {
	Label string
	Value float64
}

func statFor(matches, total int) Stat {
	if total <= 0 {
		return Stat{}
	}
	value := float64(matches) / float64(total) * 100.0
	return Stat{
		Label: fmt.Sprintf("%.1f%% (%d / %d)", value, matches, total),
		Value: value,
	}
}

// Metrics pairs the two evaluation outcomes for one caller/svtype/size cell.
type Metrics struct {
	Sensitivity Stat
	Precision   Stat
}

// CNVToEvent converts a copy-number call name to an event name: fewer copies
// than the sample ploidy is a deletion, more is a duplication.
func CNVToEvent(name string, ploidy int) string {
	if !strings.HasPrefix(name, "cnv") {
		return name
	}
	first := strings.SplitN(name, "_", 2)[0]
	max := -1
	for _, part := range strings.Split(strings.ReplaceAll(first, "cnv", ""), ";") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return name
		}
		if n > max {
			max = n
		}
	}
	switch {
	case max < ploidy:
		return "DEL"
	case max > ploidy:
		return "DUP"
	default:
		return name
	}
}

// CallersByEvent retrieves the callers with calls for each event type from
// the combined ensemble features. The name column holds comma-separated
// "event_caller" entries.
func CallersByEvent(ensemble []Interval, ploidy int) map[string]map[string]bool {
	out := make(map[string]map[string]bool)
	for _, iv := range ensemble {
		if iv.Name == "" {
			continue
		}
		for _, entry := range strings.Split(iv.Name, ",") {
			parts := strings.SplitN(entry, "_", 2)
			if len(parts) != 2 {
				continue
			}
			event := CNVToEvent(parts[0], ploidy)
			if out[event] == nil {
				out[event] = make(map[string]bool)
			}
			out[event][parts[1]] = true
		}
	}
	return out
}

// whamEventAliases widens wham comparisons: its unknown-type calls count as
// deletions.
var whamEventAliases = map[string]map[string]bool{
	"DEL": {"DEL": true, "UKN": true},
	"DUP": {"DUP": true},
	"INV": {"INV": true},
}

func whamMatches(name, svtype string) bool {
	parts := strings.Split(name, "_")
	if len(parts) < 2 || parts[1] != "wham" {
		return false
	}
	allowed, ok := whamEventAliases[svtype]
	return ok && allowed[parts[0]]
}

func cnvMatches(name, svtype string, ploidy int) bool {
	return CNVToEvent(name, ploidy) == svtype
}

func isBreakend(name string) bool {
	return strings.HasPrefix(name, "BND")
}

// featureMatches applies the caller/svtype name rules to one comma-separated
// feature name column.
func featureMatches(nameColumn, caller, svtype string, ploidy int) bool {
	for _, name := range strings.Split(nameColumn, ",") {
		typeOK := strings.HasPrefix(name, svtype) ||
			cnvMatches(name, svtype, ploidy) ||
			whamMatches(name, svtype) ||
			isBreakend(name)
		if typeOK && (caller == EnsembleCaller || strings.HasSuffix(name, caller)) {
			return true
		}
	}
	return false
}

// EvaluateOne scores one caller for one SV type and size stratum. Both sides
// are size-filtered and merged; a merged call matching any truth region
// counts toward sensitivity (over truth regions) and precision (over calls).
func EvaluateOne(caller, svtype string, size SizeRange, calls, truth []Interval, ploidy int) Metrics {
	var callFiltered []Interval
	for _, iv := range calls {
		if size.contains(iv.Size()) && featureMatches(iv.Name, caller, svtype, ploidy) {
			callFiltered = append(callFiltered, iv)
		}
	}
	var truthFiltered []Interval
	for _, iv := range truth {
		if size.contains(iv.Size()) {
			truthFiltered = append(truthFiltered, iv)
		}
	}

	mergedCalls := mergeIntervals(callFiltered)
	mergedTruth := mergeIntervals(truthFiltered)

	var hits []Interval
	for _, iv := range mergedCalls {
		if overlapsAny(iv, mergedTruth) {
			hits = append(hits, iv)
		}
	}
	matches := len(mergeIntervals(hits))

	return Metrics{
		Sensitivity: statFor(matches, len(mergedTruth)),
		Precision:   statFor(matches, len(mergedCalls)),
	}
}

// Row is one evaluation cell in the summary.
type Row struct {
	SVType  string
	Size    SizeRange
	Caller  string
	Metrics Metrics
}

// Options configures a multi-caller evaluation.
type Options struct {
	// Callers to evaluate; EnsembleCaller is scored even without its own BED.
	Callers []string

	// TruthSets maps SV type (DEL, DUP, INV, INS) to truth-region BED paths.
	TruthSets map[string]string

	// Ensemble is the combined call BED; its name column carries
	// "event_caller" entries.
	Ensemble string

	// CallBeds maps individual callers to their call BEDs. Callers without an
	// entry fall back to the ensemble features.
	CallBeds map[string]string

	// Ploidy drives CNV event classification. Zero defaults to diploid.
	Ploidy int
}

// Evaluate scores every configured caller against every truth set, split by
// event size. Callers with no calls for an SV type are skipped, except the
// ensemble which is always reported.
func Evaluate(opts Options) ([]Row, error) {
	ploidy := opts.Ploidy
	if ploidy == 0 {
		ploidy = 2
	}

	ensemble, err := LoadBED(opts.Ensemble)
	if err != nil {
		return nil, err
	}
	totalCallers := CallersByEvent(ensemble, ploidy)

	callSets := map[string][]Interval{EnsembleCaller: ensemble}
	for caller, path := range opts.CallBeds {
		ivs, err := LoadBED(path)
		if err != nil {
			return nil, fmt.Errorf("svtruth: caller %s: %w", caller, err)
		}
		callSets[caller] = ivs
	}

	svtypes := make([]string, 0, len(opts.TruthSets))
	for svtype := range opts.TruthSets {
		svtypes = append(svtypes, svtype)
	}
	sort.Strings(svtypes)

	var rows []Row
	for _, svtype := range svtypes {
		truth, err := LoadBED(opts.TruthSets[svtype])
		if err != nil {
			return nil, fmt.Errorf("svtruth: truth set %s: %w", svtype, err)
		}
		for _, size := range EventSizes {
			for _, caller := range opts.Callers {
				if caller != EnsembleCaller && !totalCallers[svtype][caller] {
					continue
				}
				calls, ok := callSets[caller]
				if !ok {
					calls = ensemble
				}
				rows = append(rows, Row{
					SVType:  svtype,
					Size:    size,
					Caller:  caller,
					Metrics: EvaluateOne(caller, svtype, size, calls, truth, ploidy),
				})
			}
		}
	}
	return rows, nil
}
