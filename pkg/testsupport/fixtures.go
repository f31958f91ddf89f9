// Package testsupport holds helpers shared by the package test suites.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-runcfg/pkg/sampleconfig"
)

// LoadDocument reads a fixture and builds a Document using a file source.
func LoadDocument(t *testing.T, path string) sampleconfig.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (sampleconfig.Document, error) {
	if path == "" {
		return sampleconfig.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return sampleconfig.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := sampleconfig.NewDocument(sampleconfig.SourceFromFile(path), data)
	if err != nil {
		return sampleconfig.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// WriteTempConfig writes a document payload into a temporary file and returns
// its path.
func WriteTempConfig(t *testing.T, payload string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "run_config.yaml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

// Diff returns a diff string if the values differ.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
