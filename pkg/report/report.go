// Package report renders human-readable summaries of a run configuration.
// The renderer is backed by a pongo2 template set, matching the go-template
// engine contract, and sanitizes free-text fields before HTML emission.
package report

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-runcfg/pkg/model"
)

//go:embed templates
var embeddedTemplates embed.FS

// Format selects the output flavour.
type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templates fs.FS
}

// WithTemplates overrides the embedded summary templates.
func WithTemplates(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithGoTemplateOptions exists for compatibility with callers configuring the
// shared go-template engine and is currently a no-op.
func WithGoTemplateOptions(_ ...gotemplatepkg.Option) Option {
	return func(*config) {}
}

// Renderer produces run summaries from parsed configurations.
type Renderer struct {
	mu sync.RWMutex

	set   *pongo2.TemplateSet
	cache map[string]*pongo2.Template
}

// New constructs a Renderer using the provided configuration options.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	templates := cfg.templates
	if templates == nil {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("report: embedded templates: %w", err)
		}
		templates = sub
	}

	return &Renderer{
		set:   pongo2.NewSet("runcfg-report", pongo2.NewFSLoader(templates)),
		cache: make(map[string]*pongo2.Template),
	}, nil
}

// Render produces the run summary in the requested format.
func (r *Renderer) Render(cfg model.RunConfig, format Format) ([]byte, error) {
	if r == nil || r.set == nil {
		return nil, errors.New("report: renderer is nil")
	}

	var name string
	switch format {
	case FormatHTML:
		name = "summary.html.tpl"
	case FormatText:
		name = "summary.txt.tpl"
	default:
		return nil, fmt.Errorf("report: unsupported format %q", format)
	}

	tmpl, err := r.template(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(summaryContext(cfg, format), &buf); err != nil {
		return nil, fmt.Errorf("report: execute template %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}

	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("report: load template %q: %w", name, err)
	}
	r.cache[name] = tmpl
	return tmpl, nil
}

// summaryContext flattens the configuration into template data. Free-text
// fields pass through the HTML sanitizer when rendering HTML so descriptions
// pasted from lab notes cannot smuggle markup into the report.
func summaryContext(cfg model.RunConfig, format Format) pongo2.Context {
	clean := func(s string) string { return s }
	if format == FormatHTML {
		clean = sanitizeText
	}

	samples := make([]map[string]any, 0, len(cfg.Details))
	for _, entry := range cfg.Details {
		samples = append(samples, map[string]any{
			"description":   clean(entry.Description),
			"analysis":      clean(entry.Analysis),
			"genome_build":  clean(entry.GenomeBuild),
			"batch":         clean(entry.Metadata.Batch),
			"lane":          entry.Lane,
			"files":         entry.Files,
			"aligner":       clean(entry.Algorithm.Aligner),
			"variantcaller": clean(entry.Algorithm.VariantCaller),
			"svcallers":     entry.Algorithm.SVCaller,
		})
	}

	batches := make([]string, 0, len(cfg.Batches()))
	for name := range cfg.Batches() {
		batches = append(batches, clean(name))
	}

	return pongo2.Context{
		"run_id":     cfg.RunID,
		"upload_dir": cfg.Upload.Dir,
		"tmp_dir":    cfg.Resources.TmpDir(),
		"samples":    samples,
		"batches":    strings.Join(batches, ", "),
	}
}
