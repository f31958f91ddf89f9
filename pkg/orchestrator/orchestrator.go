// Package orchestrator wires the loader, parser, and validation passes into a
// single front door. Missing dependencies are initialised with the built-in
// implementations so callers can start with one constructor call.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-runcfg/internal/sampleconfig/loader"
	internalParser "github.com/goliatone/go-runcfg/internal/sampleconfig/parser"
	"github.com/goliatone/go-runcfg/pkg/model"
	"github.com/goliatone/go-runcfg/pkg/sampleconfig"
	"github.com/goliatone/go-runcfg/pkg/validation"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader sampleconfig.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithLoaderOptions configures the built-in loader. Ignored when WithLoader
// supplies a custom implementation.
func WithLoaderOptions(options ...sampleconfig.LoaderOption) Option {
	return func(o *Orchestrator) {
		o.loaderOptions = sampleconfig.NewLoaderOptions(options...)
	}
}

// WithParser injects a custom parser.
func WithParser(parser sampleconfig.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithBaseDir anchors relative paths found in loaded documents.
func WithBaseDir(dir string) Option {
	return func(o *Orchestrator) {
		o.baseDir = dir
	}
}

// WithSchemaValidation toggles the kin-openapi schema pass. Enabled by
// default.
func WithSchemaValidation(enabled bool) Option {
	return func(o *Orchestrator) {
		o.skipSchema = !enabled
	}
}

// Orchestrator coordinates the full pipeline from document source to a
// validated, normalized run configuration.
type Orchestrator struct {
	loader          sampleconfig.Loader
	loaderOptions   sampleconfig.LoaderOptions
	parser          sampleconfig.Parser
	baseDir         string
	skipSchema      bool
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs for one load-and-validate run.
type Request struct {
	// Source identifies where the document lives. Optional when Document is
	// supplied.
	Source sampleconfig.Source

	// Document allows callers to bypass the loader when they already have a
	// payload.
	Document *sampleconfig.Document

	// Strict enables the opt-in downstream rules (file cardinality, known
	// analysis tags, genome build presence).
	Strict bool

	// Normalize fills documented defaults, resolves paths against the
	// configured base directory, and stamps a run identifier.
	Normalize bool
}

// Outcome carries the parsed configuration together with every validation
// issue collected along the way.
type Outcome struct {
	Config     model.RunConfig
	Validation validation.Result
}

// Run executes the loader → validation → parser sequence. When validation
// fails the returned error wraps the first issue as a ConfigError and the
// Outcome still carries the full issue list for reporting.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Outcome, error) {
	if ctx == nil {
		return Outcome{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return Outcome{}, err
	}
	raw := doc.Raw()

	result := validation.Validate(raw)
	if !o.skipSchema {
		result = validation.Merge(result, validation.ValidateSchema(raw))
	}
	if !result.Valid {
		return Outcome{Validation: result}, configErr(result)
	}

	cfg, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return Outcome{Validation: result}, fmt.Errorf("orchestrator: parse document: %w", err)
	}

	if req.Strict {
		result = validation.Merge(result, validation.ValidateStrict(cfg))
		if !result.Valid {
			return Outcome{Config: cfg, Validation: result}, configErr(result)
		}
	}

	if req.Normalize {
		// Paths were already anchored at parse time; Normalize only fills
		// defaults and stamps the run identifier here.
		model.Normalize(&cfg, model.NormalizeOptions{})
	}

	return Outcome{Config: cfg, Validation: result}, nil
}

// Lint runs every validation pass without failing fast, returning the full
// issue list. Strict issues are included when the document parses.
func (o *Orchestrator) Lint(ctx context.Context, req Request) (validation.Result, error) {
	if ctx == nil {
		return validation.Result{}, errors.New("orchestrator: context is required")
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return validation.Result{}, err
	}
	raw := doc.Raw()

	result := validation.Validate(raw)
	if !o.skipSchema {
		result = validation.Merge(result, validation.ValidateSchema(raw))
	}

	if req.Strict {
		if cfg, err := o.parser.Parse(ctx, doc); err == nil {
			result = validation.Merge(result, validation.ValidateStrict(cfg))
		}
	}

	return result, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (sampleconfig.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return sampleconfig.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return sampleconfig.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}
	if o.loader == nil {
		o.loader = internalLoader.New(o.loaderOptions)
	}
	if o.parser == nil {
		o.parser = internalParser.New(sampleconfig.NewParserOptions(
			sampleconfig.WithBaseDir(o.baseDir),
		))
	}
	o.defaultsApplied = true
}

func configErr(result validation.Result) error {
	issue := result.Issues[0]
	return fmt.Errorf("orchestrator: invalid configuration: %w",
		sampleconfig.NewConfigError(issue.Path, "%s", issue.Message))
}
