package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-runcfg/pkg/sampleconfig"
	"github.com/goliatone/go-runcfg/pkg/testsupport"
)

func TestParseSource(t *testing.T) {
	if src := parseSource("configs/run.yaml"); src.Kind() != sampleconfig.SourceKindFile {
		t.Fatalf("plain path should map to a file source, got %s", src.Kind())
	}
	if src := parseSource("https://config.example/run.yaml"); src.Kind() != sampleconfig.SourceKindURL {
		t.Fatalf("https should map to a url source, got %s", src.Kind())
	}
	if src := parseSource("  "); src != nil {
		t.Fatalf("blank argument should map to nil, got %v", src)
	}
}

func TestValidateLane(t *testing.T) {
	if err := validateLane("7"); err != nil {
		t.Fatalf("lane 7 should validate: %v", err)
	}
	if err := validateLane("-1"); err == nil {
		t.Fatalf("negative lane should fail")
	}
	if err := validateLane("seven"); err == nil {
		t.Fatalf("non-numeric lane should fail")
	}
	if err := validateLane(7); err == nil {
		t.Fatalf("non-string answers should fail")
	}
}

const validDoc = `upload:
  dir: /final/results
resources:
  tmp:
    dir: /scratch/tmp
details:
  - analysis: variant2
    algorithm:
      aligner: bwa
    description: Sample 1
    genome_build: GRCh37
    files:
      - /data/reads/sample1_1_fastq.txt
      - /data/reads/sample1_2_fastq.txt
    lane: 7
`

func TestLintCmd_ValidDocument(t *testing.T) {
	path := testsupport.WriteTempConfig(t, validDoc)

	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"lint", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("lint: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "configuration is valid") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestLintCmd_InvalidDocument(t *testing.T) {
	path := testsupport.WriteTempConfig(t, "upload: {}\nresources: {}\ndetails: []\n")

	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"lint", path})

	err := root.Execute()
	if err == nil {
		t.Fatalf("expected lint failure")
	}
	if !strings.Contains(err.Error(), "issue(s) found") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "upload.dir") {
		t.Fatalf("issues not printed:\n%s", out.String())
	}
}

func TestSVValidateCmd_WritesReports(t *testing.T) {
	dir := t.TempDir()
	ensemble := filepath.Join(dir, "batch1-ensemble.bed")
	if err := os.WriteFile(ensemble, []byte("chr1\t100\t540\tDEL_lumpy\n"), 0o644); err != nil {
		t.Fatalf("write ensemble: %v", err)
	}
	truthBed := filepath.Join(dir, "truth-DEL.bed")
	if err := os.WriteFile(truthBed, []byte("chr1\t100\t500\n"), 0o644); err != nil {
		t.Fatalf("write truth: %v", err)
	}

	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"sv-validate", "--ensemble", ensemble, "--truth", "DEL=" + truthBed})

	if err := root.Execute(); err != nil {
		t.Fatalf("sv-validate: %v\n%s", err, out.String())
	}

	reportFile := filepath.Join(dir, "batch1-ensemble-validate-df-DEL.html")
	payload, err := os.ReadFile(reportFile)
	if err != nil {
		t.Fatalf("evaluation report not written: %v", err)
	}
	if !strings.Contains(string(payload), "Deletions") {
		t.Fatalf("report missing event title:\n%s", payload)
	}
	if !strings.Contains(out.String(), reportFile) {
		t.Fatalf("report path not printed:\n%s", out.String())
	}
}

func TestShowCmd(t *testing.T) {
	path := testsupport.WriteTempConfig(t, validDoc)

	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"show", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("show: %v\n%s", err, out.String())
	}
	text := out.String()
	if !strings.Contains(text, "Sample 1") || !strings.Contains(text, "Upload: /final/results") {
		t.Fatalf("summary missing sample data:\n%s", text)
	}
}
