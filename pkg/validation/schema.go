package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

var (
	schemaOnce sync.Once
	docSchema  *openapi3.Schema
)

// ValidateSchema checks the document against the run-configuration schema
// using kin-openapi. It covers the same invariants as the structural pass from
// the schema side, which keeps the two honest about each other, and gives
// downstream tooling a machine-readable contract to reuse.
func ValidateSchema(raw []byte) Result {
	result := Result{Valid: true}

	var decoded any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		result.add("", 0, fmt.Sprintf("invalid YAML: %v", err))
		return result
	}
	if decoded == nil {
		result.add("", 0, "document is empty")
		return result
	}

	value, err := jsonRoundTrip(decoded)
	if err != nil {
		result.add("", 0, fmt.Sprintf("convert document: %v", err))
		return result
	}

	if err := documentSchema().VisitJSON(value, openapi3.MultiErrors()); err != nil {
		for _, issue := range schemaIssues(err) {
			result.add(issue.Path, 0, issue.Message)
		}
		if result.Valid {
			result.add("", 0, err.Error())
		}
	}

	return result
}

func documentSchema() *openapi3.Schema {
	schemaOnce.Do(func() {
		upload := openapi3.NewObjectSchema().
			WithProperty("dir", openapi3.NewStringSchema()).
			WithProperty("method", openapi3.NewStringSchema())
		upload.Required = []string{"dir"}

		metadata := openapi3.NewObjectSchema()
		metadata.Nullable = true

		entry := openapi3.NewObjectSchema().
			WithProperty("analysis", openapi3.NewStringSchema()).
			WithProperty("algorithm", algorithmSchema()).
			WithProperty("files", stringArraySchema()).
			WithProperty("lane", nonNegIntSchema()).
			WithProperty("description", nullableString()).
			WithProperty("genome_build", nullableString()).
			WithProperty("metadata", metadata)
		entry.Required = []string{"analysis", "algorithm", "files"}

		details := openapi3.NewArraySchema()
		details.Items = openapi3.NewSchemaRef("", entry)

		root := openapi3.NewObjectSchema().
			WithProperty("fc_date", nullableString()).
			WithProperty("fc_name", nullableString()).
			WithProperty("upload", upload).
			WithProperty("resources", openapi3.NewObjectSchema()).
			WithProperty("details", details)
		root.Required = []string{"upload", "resources", "details"}

		docSchema = root
	})
	return docSchema
}

// algorithmSchema types only the invariant-bearing known options. Unknown
// keys stay open via the default additionalProperties behaviour so the option
// set remains extensible. Every option is nullable: an explicit null counts as
// absent, matching the structural pass.
func algorithmSchema() *openapi3.Schema {
	alg := openapi3.NewObjectSchema()
	for _, key := range []string{"mark_duplicates", "recalibrate", "realign", "mixup_check", "remove_lcr"} {
		alg = alg.WithProperty(key, nullableBool())
	}
	for _, key := range []string{"coverage_depth_max", "ploidy", "min_allele_fraction", "align_split_size"} {
		alg = alg.WithProperty(key, nonNegIntSchema())
	}
	for _, key := range []string{"adapters", "disambiguate", "svcaller", "tools_on", "tools_off"} {
		alg = alg.WithProperty(key, stringArraySchema())
	}
	return alg
}

func stringArraySchema() *openapi3.Schema {
	arr := openapi3.NewArraySchema()
	arr.Items = openapi3.NewSchemaRef("", openapi3.NewStringSchema())
	arr.Nullable = true
	return arr
}

func nonNegIntSchema() *openapi3.Schema {
	s := openapi3.NewIntegerSchema().WithMin(0)
	s.Nullable = true
	return s
}

func nullableBool() *openapi3.Schema {
	s := openapi3.NewBoolSchema()
	s.Nullable = true
	return s
}

func nullableString() *openapi3.Schema {
	s := openapi3.NewStringSchema()
	s.Nullable = true
	return s
}

func schemaIssues(err error) []Issue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var out []Issue
		for _, item := range multi {
			out = append(out, schemaIssues(item)...)
		}
		return out
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return []Issue{{
			Path:    pointerToPath(schemaErr.JSONPointer()),
			Message: strings.TrimSpace(schemaErr.Reason),
		}}
	}
	return []Issue{{Message: err.Error()}}
}

func pointerToPath(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			b.WriteString("[" + segment + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(segment)
	}
	return b.String()
}

// jsonRoundTrip converts YAML-decoded values into their JSON-typed shape
// (float64 numbers, map[string]any) that kin-openapi expects.
func jsonRoundTrip(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
