package orchestrator_test

import (
	"testing"

	"github.com/goliatone/go-runcfg/pkg/orchestrator"
	"github.com/goliatone/go-runcfg/pkg/sampleconfig"
	"github.com/goliatone/go-runcfg/pkg/testsupport"
)

const sampleDoc = `upload:
  dir: /final/results
resources:
  tmp:
    dir: /scratch/tmp
details:
  - analysis: variant2
    algorithm:
      aligner: bwa
      variantcaller: gatk-haplotype
    description: Sample 1
    metadata:
      batch: Batch1
    genome_build: GRCh37
    files:
      - /data/reads/sample1_1_fastq.txt
      - /data/reads/sample1_2_fastq.txt
    lane: 7
`

func document(t *testing.T, payload string) *sampleconfig.Document {
	t.Helper()
	doc := sampleconfig.MustNewDocument(sampleconfig.SourceFromFS("config.yaml"), []byte(payload))
	return &doc
}

func TestRun_Document(t *testing.T) {
	o := orchestrator.New()

	outcome, err := o.Run(testsupport.Context(), orchestrator.Request{
		Document: document(t, sampleDoc),
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !outcome.Validation.Valid {
		t.Fatalf("expected valid outcome: %v", outcome.Validation.Issues)
	}
	if outcome.Config.Upload.Dir != "/final/results" {
		t.Fatalf("config not populated: %+v", outcome.Config)
	}
	if outcome.Config.Details[0].Lane != 7 {
		t.Fatalf("lane mismatch: %d", outcome.Config.Details[0].Lane)
	}
}

func TestRun_FromFile(t *testing.T) {
	path := testsupport.WriteTempConfig(t, sampleDoc)
	o := orchestrator.New()

	outcome, err := o.Run(testsupport.Context(), orchestrator.Request{
		Source: sampleconfig.SourceFromFile(path),
	})
	if err != nil {
		t.Fatalf("run from file: %v", err)
	}
	if len(outcome.Config.Details) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(outcome.Config.Details))
	}
}

func TestRun_InvalidDocument(t *testing.T) {
	o := orchestrator.New()

	outcome, err := o.Run(testsupport.Context(), orchestrator.Request{
		Document: document(t, "upload:\n  dir: /out\nresources: {}\n"),
	})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if _, ok := sampleconfig.IsConfigError(err); !ok {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if outcome.Validation.Valid || len(outcome.Validation.Issues) == 0 {
		t.Fatalf("outcome should carry the issue list: %+v", outcome.Validation)
	}
}

func TestRun_Strict(t *testing.T) {
	doc := `upload:
  dir: /final
resources: {}
details:
  - analysis: mystery-seq
    algorithm:
      aligner: bwa
    genome_build: GRCh37
    files:
      - s1_1_fastq.txt
`
	o := orchestrator.New()

	// Structurally fine, so the permissive run succeeds.
	if _, err := o.Run(testsupport.Context(), orchestrator.Request{
		Document: document(t, doc),
	}); err != nil {
		t.Fatalf("permissive run: %v", err)
	}

	outcome, err := o.Run(testsupport.Context(), orchestrator.Request{
		Document: document(t, doc),
		Strict:   true,
	})
	if err == nil {
		t.Fatalf("strict run should reject unknown analysis")
	}
	ce, ok := sampleconfig.IsConfigError(err)
	if !ok {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if ce.Path != "details[0].analysis" {
		t.Fatalf("unexpected issue path: %q", ce.Path)
	}
	if outcome.Config.Details[0].Analysis != "mystery-seq" {
		t.Fatalf("strict failures should still return the parsed config")
	}
}

func TestRun_Normalize(t *testing.T) {
	o := orchestrator.New()

	outcome, err := o.Run(testsupport.Context(), orchestrator.Request{
		Document:  document(t, sampleDoc),
		Normalize: true,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Config.RunID == "" {
		t.Fatalf("normalize should stamp a run identifier")
	}
	alg := outcome.Config.Details[0].Algorithm
	if alg.Platform == "" || alg.Ploidy == nil {
		t.Fatalf("normalize should fill defaults: %+v", alg)
	}
}

func TestRun_RequiresSourceOrDocument(t *testing.T) {
	o := orchestrator.New()

	if _, err := o.Run(testsupport.Context(), orchestrator.Request{}); err == nil {
		t.Fatalf("expected error without source or document")
	}
}

func TestLint_CollectsEveryIssue(t *testing.T) {
	doc := `upload: {}
resources: {}
details:
  - analysis: variant2
    algorithm:
      ploidy: -1
    files: []
`
	o := orchestrator.New()

	result, err := o.Lint(testsupport.Context(), orchestrator.Request{
		Document: document(t, doc),
	})
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected issues")
	}
	if len(result.Issues) < 2 {
		t.Fatalf("lint should not stop at the first issue: %v", result.Issues)
	}
}

func TestLint_SchemaToggle(t *testing.T) {
	o := orchestrator.New(orchestrator.WithSchemaValidation(false))

	result, err := o.Lint(testsupport.Context(), orchestrator.Request{
		Document: document(t, sampleDoc),
	})
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid result: %v", result.Issues)
	}
}
