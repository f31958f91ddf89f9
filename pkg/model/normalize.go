package model

import (
	"path/filepath"

	"github.com/google/uuid"
)

// NormalizeOptions configures post-parse normalization.
type NormalizeOptions struct {
	// BaseDir anchors relative paths. Empty leaves every path exactly as
	// written so round-trips stay byte-faithful.
	BaseDir string

	// NewID overrides run-identifier generation. Nil uses a random UUID.
	NewID func() string
}

// Normalize resolves the path-valued fields, fills documented defaults for
// optional algorithm options, and stamps a run identifier. Paths are anchored
// without any existence checks; whether inputs are present is a downstream
// concern.
func Normalize(cfg *RunConfig, opts NormalizeOptions) {
	if cfg == nil {
		return
	}

	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	if cfg.RunID == "" {
		cfg.RunID = newID()
	}

	ResolvePaths(cfg, opts.BaseDir)

	for i := range cfg.Details {
		cfg.Details[i].Algorithm.ApplyDefaults()
	}
}

// ResolvePaths anchors every relative path-valued field at baseDir. An empty
// baseDir is a no-op.
func ResolvePaths(cfg *RunConfig, baseDir string) {
	if cfg == nil || baseDir == "" {
		return
	}

	cfg.Upload.Dir = resolvePath(cfg.Upload.Dir, baseDir)
	for name, res := range cfg.Resources {
		res.Dir = resolvePath(res.Dir, baseDir)
		cfg.Resources[name] = res
	}

	for i := range cfg.Details {
		entry := &cfg.Details[i]
		for j, file := range entry.Files {
			entry.Files[j] = resolvePath(file, baseDir)
		}
		alg := &entry.Algorithm
		alg.VariantRegions = resolvePath(alg.VariantRegions, baseDir)
		alg.SVRegions = resolvePath(alg.SVRegions, baseDir)
		alg.Validate = resolvePath(alg.Validate, baseDir)
		alg.ValidateRegions = resolvePath(alg.ValidateRegions, baseDir)
		alg.ExcludeRegions = resolvePath(alg.ExcludeRegions, baseDir)
		for svtype, truth := range alg.SVValidate {
			alg.SVValidate[svtype] = resolvePath(truth, baseDir)
		}
	}
}

func resolvePath(path, base string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
