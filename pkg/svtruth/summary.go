package svtruth

import "sort"

// SVTypes returns the distinct event types present in rows, sorted.
func SVTypes(rows []Row) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		if !seen[row.SVType] {
			seen[row.SVType] = true
			out = append(out, row.SVType)
		}
	}
	sort.Strings(out)
	return out
}

// SizesWithCalls returns the size strata worth reporting for an event type:
// those where at least one caller produced a sensitivity stat. Strata with no
// truth regions and no calls are dropped from summaries.
func SizesWithCalls(rows []Row, svtype string) []SizeRange {
	var out []SizeRange
	for _, size := range EventSizes {
		for _, row := range rows {
			if row.SVType == svtype && row.Size == size && row.Metrics.Sensitivity.Label != "" {
				out = append(out, size)
				break
			}
		}
	}
	return out
}

// CallerOrder returns the callers reported for an event type, sorted with the
// ensemble set last so summaries end on the combined result.
func CallerOrder(rows []Row, svtype string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		if row.SVType == svtype && !seen[row.Caller] {
			seen[row.Caller] = true
			out = append(out, row.Caller)
		}
	}
	sort.Strings(out)
	for i, caller := range out {
		if caller == EnsembleCaller {
			out = append(append(out[:i], out[i+1:]...), EnsembleCaller)
			break
		}
	}
	return out
}

// CellFor retrieves the metrics for one svtype/size/caller combination.
func CellFor(rows []Row, svtype string, size SizeRange, caller string) (Metrics, bool) {
	for _, row := range rows {
		if row.SVType == svtype && row.Size == size && row.Caller == caller {
			return row.Metrics, true
		}
	}
	return Metrics{}, false
}
