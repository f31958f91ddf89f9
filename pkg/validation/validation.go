// Package validation checks run-configuration documents at three levels: a
// structural pass over the YAML node tree (required keys, scalar types,
// non-negative numerics), a schema pass backed by kin-openapi, and an opt-in
// strict pass over the typed model for rules downstream stages care about but
// the format itself does not mandate.
package validation

// Issue represents a validation error with the dotted key path of the
// offending node and, when known, its source line.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

func (r *Result) add(path string, line int, message string) {
	r.Valid = false
	r.Issues = append(r.Issues, Issue{Path: path, Line: line, Message: message})
}

// Merge combines results; the output is valid only when every input is.
func Merge(results ...Result) Result {
	out := Result{Valid: true}
	for _, r := range results {
		if !r.Valid {
			out.Valid = false
		}
		out.Issues = append(out.Issues, r.Issues...)
	}
	return out
}
