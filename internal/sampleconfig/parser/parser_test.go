package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-runcfg/internal/sampleconfig/parser"
	"github.com/goliatone/go-runcfg/pkg/sampleconfig"
	"github.com/goliatone/go-runcfg/pkg/testsupport"
)

func TestParse_Fixture(t *testing.T) {
	p := parser.New(sampleconfig.NewParserOptions())
	doc := testsupport.LoadDocument(t, "testdata/run_config.yaml")

	cfg, err := p.Parse(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	if cfg.Upload.Dir != "/final/results" {
		t.Fatalf("upload dir mismatch: %s", cfg.Upload.Dir)
	}
	if got := cfg.Resources.TmpDir(); got != "/scratch/tmp" {
		t.Fatalf("tmp dir mismatch: %s", got)
	}
	if len(cfg.Details) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(cfg.Details))
	}

	entry := cfg.Details[0]
	if entry.Lane != 7 {
		t.Fatalf("lane mismatch: %d", entry.Lane)
	}
	if len(entry.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(entry.Files))
	}
	if !strings.HasSuffix(entry.Files[0], "_1_fastq.txt") || !strings.HasSuffix(entry.Files[1], "_2_fastq.txt") {
		t.Fatalf("files out of order: %v", entry.Files)
	}
	if entry.Metadata.Batch != "Batch1" {
		t.Fatalf("batch mismatch: %s", entry.Metadata.Batch)
	}
	if entry.Metadata.Sex != "female" {
		t.Fatalf("metadata sex mismatch: %s", entry.Metadata.Sex)
	}
	if entry.GenomeBuild != "GRCh37" {
		t.Fatalf("genome build mismatch: %s", entry.GenomeBuild)
	}
}

func TestParse_AlgorithmOptions(t *testing.T) {
	p := parser.New(sampleconfig.NewParserOptions())
	doc := testsupport.LoadDocument(t, "testdata/run_config.yaml")

	cfg, err := p.Parse(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	alg := cfg.Details[0].Algorithm

	if alg.MarkDuplicates == nil || !*alg.MarkDuplicates {
		t.Fatalf("mark_duplicates should be explicit true: %#v", alg.MarkDuplicates)
	}
	if alg.Recalibrate == nil || *alg.Recalibrate {
		t.Fatalf("recalibrate should be explicit false: %#v", alg.Recalibrate)
	}
	if alg.Ploidy == nil || *alg.Ploidy != 2 {
		t.Fatalf("ploidy mismatch: %#v", alg.Ploidy)
	}
	if want := []string{"lumpy", "manta", "cnvkit"}; testsupport.Diff(want, alg.SVCaller) != "" {
		t.Fatalf("svcaller order mismatch: %v", alg.SVCaller)
	}
	if want := []string{"qualimap", "svplots"}; testsupport.Diff(want, alg.ToolsOn) != "" {
		t.Fatalf("tools_on order mismatch: %v", alg.ToolsOn)
	}
	if alg.SVValidate["DEL"] != "/data/truth/DEL.bed" {
		t.Fatalf("svvalidate mismatch: %v", alg.SVValidate)
	}
	if got, ok := alg.Extra["custom_knob"]; !ok || got != 42 {
		t.Fatalf("unknown option not retained: %#v", alg.Extra)
	}
}

func TestParse_MissingDetails(t *testing.T) {
	p := parser.New(sampleconfig.NewParserOptions())
	doc := sampleconfig.MustNewDocument(
		sampleconfig.SourceFromFS("broken.yaml"),
		[]byte("upload:\n  dir: /out\nresources: {}\n"),
	)

	_, err := p.Parse(testsupport.Context(), doc)
	if err == nil {
		t.Fatalf("expected error for missing details")
	}
	var ce *sampleconfig.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
	if ce.Path != "details" {
		t.Fatalf("expected path details, got %q", ce.Path)
	}
}

func TestParse_StringBooleanRejected(t *testing.T) {
	p := parser.New(sampleconfig.NewParserOptions())
	doc := sampleconfig.MustNewDocument(
		sampleconfig.SourceFromFS("broken.yaml"),
		[]byte(`upload:
  dir: /out
resources: {}
details:
  - analysis: variant2
    algorithm:
      mark_duplicates: "true"
    files: []
`),
	)

	_, err := p.Parse(testsupport.Context(), doc)
	var ce *sampleconfig.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if ce.Path != "details[0].algorithm.mark_duplicates" {
		t.Fatalf("unexpected path: %q", ce.Path)
	}
}

func TestParse_EmptyFilesAccepted(t *testing.T) {
	p := parser.New(sampleconfig.NewParserOptions())
	doc := sampleconfig.MustNewDocument(
		sampleconfig.SourceFromFS("minimal.yaml"),
		[]byte(`upload:
  dir: /out
resources: {}
details:
  - analysis: variant2
    algorithm:
      aligner: bwa
    files: []
`),
	)

	cfg, err := p.Parse(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("zero files should parse: %v", err)
	}
	if len(cfg.Details[0].Files) != 0 {
		t.Fatalf("expected no files, got %v", cfg.Details[0].Files)
	}
}

func TestParse_BaseDirResolution(t *testing.T) {
	p := parser.New(sampleconfig.NewParserOptions(
		sampleconfig.WithBaseDir("/work/project"),
	))
	doc := sampleconfig.MustNewDocument(
		sampleconfig.SourceFromFS("relative.yaml"),
		[]byte(`upload:
  dir: /out
resources: {}
details:
  - analysis: variant2
    algorithm:
      aligner: bwa
    files:
      - reads/s1_1_fastq.txt
`),
	)

	cfg, err := p.Parse(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := cfg.Details[0].Files[0]; got != "/work/project/reads/s1_1_fastq.txt" {
		t.Fatalf("relative path not anchored: %s", got)
	}
}

func TestParse_DropUnknownOptions(t *testing.T) {
	p := parser.New(sampleconfig.NewParserOptions(
		sampleconfig.WithUnknownOptions(false),
	))
	doc := testsupport.LoadDocument(t, "testdata/run_config.yaml")

	cfg, err := p.Parse(testsupport.Context(), doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cfg.Details[0].Algorithm.Extra) != 0 {
		t.Fatalf("extras should be dropped: %#v", cfg.Details[0].Algorithm.Extra)
	}
}
