// Package parser implements sampleconfig.Parser over yaml.v3. The structural
// validation pass runs before decoding so malformed documents fail with a
// ConfigError naming the offending key path instead of a bare YAML error.
package parser

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-runcfg/pkg/model"
	"github.com/goliatone/go-runcfg/pkg/sampleconfig"
	"github.com/goliatone/go-runcfg/pkg/validation"
)

// Parser implements sampleconfig.Parser.
type Parser struct {
	options sampleconfig.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ sampleconfig.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options sampleconfig.ParserOptions) sampleconfig.Parser {
	return &Parser{options: options}
}

// Parse decodes a Document into the typed run-configuration model. Sequence
// order in details, files, and list-valued algorithm options follows the
// literal source order; unknown algorithm keys are retained unless the parser
// was configured to drop them.
func (p *Parser) Parse(ctx context.Context, doc sampleconfig.Document) (model.RunConfig, error) {
	if err := ctx.Err(); err != nil {
		return model.RunConfig{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return model.RunConfig{}, errors.New("sampleconfig parser: document payload is empty")
	}

	if result := validation.Validate(raw); !result.Valid {
		issue := result.Issues[0]
		return model.RunConfig{}, sampleconfig.NewConfigError(issue.Path, "%s", issue.Message)
	}

	var cfg model.RunConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return model.RunConfig{}, fmt.Errorf("sampleconfig parser: decode document: %w", err)
	}

	if !p.options.KeepUnknownOptions {
		for i := range cfg.Details {
			cfg.Details[i].Algorithm.Extra = nil
		}
	}

	model.ResolvePaths(&cfg, p.options.BaseDir)

	return cfg, nil
}
