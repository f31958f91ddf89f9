// Package runcfg loads, validates, and round-trips the YAML run-configuration
// documents a variant-calling pipeline consumes. The root package re-exports
// the common types and offers one-call helpers; advanced callers wire the
// pkg/orchestrator stages themselves.
package runcfg

import (
	"context"

	"github.com/goliatone/go-runcfg/pkg/model"
	"github.com/goliatone/go-runcfg/pkg/orchestrator"
	"github.com/goliatone/go-runcfg/pkg/sampleconfig"
	"github.com/goliatone/go-runcfg/pkg/validation"
)

// Source identifies where a configuration document lives.
type Source = sampleconfig.Source

// Document wraps a raw configuration payload and its origin.
type Document = sampleconfig.Document

// ConfigError reports a structural problem naming the offending key path.
type ConfigError = sampleconfig.ConfigError

// RunConfig is the typed run-configuration record.
type RunConfig = model.RunConfig

// Result carries validation issues.
type Result = validation.Result

// SourceFromFile builds a file-backed Source.
func SourceFromFile(path string) Source { return sampleconfig.SourceFromFile(path) }

// SourceFromURL builds an HTTP-backed Source.
func SourceFromURL(raw string) Source { return sampleconfig.SourceFromURL(raw) }

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Load fetches, validates, parses, and normalizes a run configuration. It is
// the simplest entry point for callers that just want the typed record.
func Load(ctx context.Context, src Source, options ...orchestrator.Option) (RunConfig, error) {
	gen := orchestrator.New(options...)
	outcome, err := gen.Run(ctx, orchestrator.Request{
		Source:    src,
		Normalize: true,
	})
	if err != nil {
		return RunConfig{}, err
	}
	return outcome.Config, nil
}

// LoadFile is Load for an on-disk document.
func LoadFile(ctx context.Context, path string, options ...orchestrator.Option) (RunConfig, error) {
	return Load(ctx, SourceFromFile(path), options...)
}

// Lint runs every validation pass and returns the full issue list without
// failing on the first problem.
func Lint(ctx context.Context, src Source, strict bool, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Lint(ctx, orchestrator.Request{Source: src, Strict: strict})
}
