package report

import (
	"bytes"
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-runcfg/pkg/svtruth"
)

// svTypeTitles maps event-type tags to their display names.
var svTypeTitles = map[string]string{
	"DEL": "Deletions",
	"DUP": "Duplications",
	"INV": "Inversions",
	"INS": "Insertions",
}

// RenderEvaluation produces a per-event-type summary of structural-variant
// validation metrics, stratified by event size with the ensemble listed last.
func (r *Renderer) RenderEvaluation(rows []svtruth.Row, svtype string, format Format) ([]byte, error) {
	if r == nil || r.set == nil {
		return nil, fmt.Errorf("report: renderer is nil")
	}

	var name string
	switch format {
	case FormatHTML:
		name = "evaluation.html.tpl"
	case FormatText:
		name = "evaluation.txt.tpl"
	default:
		return nil, fmt.Errorf("report: unsupported format %q", format)
	}

	tmpl, err := r.template(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(evaluationContext(rows, svtype), &buf); err != nil {
		return nil, fmt.Errorf("report: execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

func evaluationContext(rows []svtruth.Row, svtype string) pongo2.Context {
	title := svTypeTitles[svtype]
	if title == "" {
		title = svtype
	}

	callers := svtruth.CallerOrder(rows, svtype)

	var sizes []map[string]any
	for _, size := range svtruth.SizesWithCalls(rows, svtype) {
		var cells []map[string]any
		for _, caller := range callers {
			metrics, ok := svtruth.CellFor(rows, svtype, size, caller)
			if !ok {
				continue
			}
			cells = append(cells, map[string]any{
				"caller":            caller,
				"sensitivity":       statLabel(metrics.Sensitivity),
				"sensitivity_width": statWidth(metrics.Sensitivity),
				"precision":         statLabel(metrics.Precision),
				"precision_width":   statWidth(metrics.Precision),
			})
		}
		sizes = append(sizes, map[string]any{
			"label":   fmt.Sprintf("%d to %dbp", size.Min, size.Max),
			"callers": cells,
		})
	}

	return pongo2.Context{
		"svtype": svtype,
		"title":  title,
		"sizes":  sizes,
	}
}

// statLabel falls back to "0%" for strata a caller had no data in, matching
// the summary CSV consumers.
func statLabel(s svtruth.Stat) string {
	if s.Label == "" {
		return "0%"
	}
	return s.Label
}

// statWidth renders the metric as a bar width percentage, floored at a sliver
// so empty bars stay visible.
func statWidth(s svtruth.Stat) string {
	value := s.Value
	if value < 1 {
		value = 1
	}
	return fmt.Sprintf("%.1f", value)
}
