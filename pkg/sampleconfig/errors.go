package sampleconfig

import (
	"errors"
	"fmt"
)

// ConfigError reports a structural problem in a run-configuration document.
// Path names the offending key using dotted segments with sequence indexes,
// e.g. "details[0].algorithm.ploidy".
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return "sampleconfig: " + e.Reason
	}
	return fmt.Sprintf("sampleconfig: %s: %s", e.Path, e.Reason)
}

// NewConfigError builds a ConfigError for the given key path.
func NewConfigError(path, format string, args ...any) *ConfigError {
	return &ConfigError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err wraps a ConfigError and returns it.
func IsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
