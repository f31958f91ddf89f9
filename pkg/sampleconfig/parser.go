package sampleconfig

import (
	"context"

	"github.com/goliatone/go-runcfg/pkg/model"
)

// Parser decodes a Document into the typed run-configuration model that
// downstream packages consume.
type Parser interface {
	Parse(ctx context.Context, doc Document) (model.RunConfig, error)
}

// ParserOptions exposes parsing toggles.
type ParserOptions struct {
	// BaseDir anchors relative paths found in the document (upload directory,
	// scratch directories, input files). Empty leaves paths untouched; the
	// parser never checks that resolved paths exist.
	BaseDir string

	// KeepUnknownOptions controls whether unrecognised algorithm keys are
	// retained on the model. Defaults to true: the option set is extensible and
	// unknown keys must survive round-trips.
	KeepUnknownOptions bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithBaseDir anchors relative path resolution at dir.
func WithBaseDir(dir string) ParserOption {
	return func(opts *ParserOptions) {
		opts.BaseDir = dir
	}
}

// WithUnknownOptions toggles retention of unrecognised algorithm keys.
func WithUnknownOptions(keep bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.KeepUnknownOptions = keep
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/sampleconfig should call this
// helper to remain consistent.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		KeepUnknownOptions: true,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
