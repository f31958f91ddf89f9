package loader_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-runcfg/internal/sampleconfig/loader"
	"github.com/goliatone/go-runcfg/pkg/sampleconfig"
	"github.com/goliatone/go-runcfg/pkg/testsupport"
)

const payload = "upload:\n  dir: /out\nresources: {}\ndetails: []\n"

func TestLoad_File(t *testing.T) {
	path := testsupport.WriteTempConfig(t, payload)
	l := loader.New(sampleconfig.NewLoaderOptions())

	doc, err := l.Load(testsupport.Context(), sampleconfig.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("payload mismatch:\n%s", doc.Raw())
	}
	if doc.Source().Kind() != sampleconfig.SourceKindFile {
		t.Fatalf("source kind: %s", doc.Source().Kind())
	}
}

func TestLoad_FileMissing(t *testing.T) {
	l := loader.New(sampleconfig.NewLoaderOptions())

	if _, err := l.Load(testsupport.Context(), sampleconfig.SourceFromFile("does/not/exist.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_FS(t *testing.T) {
	files := fstest.MapFS{
		"configs/run.yaml": &fstest.MapFile{Data: []byte(payload)},
	}
	l := loader.New(sampleconfig.NewLoaderOptions(
		sampleconfig.WithFileSystem(files),
	))

	doc, err := l.Load(testsupport.Context(), sampleconfig.SourceFromFS("configs/run.yaml"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("payload mismatch:\n%s", doc.Raw())
	}
}

func TestLoad_FSWithoutFilesystem(t *testing.T) {
	l := loader.New(sampleconfig.NewLoaderOptions())

	_, err := l.Load(testsupport.Context(), sampleconfig.SourceFromFS("run.yaml"))
	if err == nil || !strings.Contains(err.Error(), "fs is nil") {
		t.Fatalf("expected nil fs error, got %v", err)
	}
}

func TestLoad_HTTPDisabledByDefault(t *testing.T) {
	l := loader.New(sampleconfig.NewLoaderOptions())

	_, err := l.Load(testsupport.Context(), sampleconfig.SourceFromURL("http://config.example/run.yaml"))
	if err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected disabled http error, got %v", err)
	}
}

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	l := loader.New(sampleconfig.NewLoaderOptions(
		sampleconfig.WithHTTPClient(srv.Client()),
	))

	doc, err := l.Load(testsupport.Context(), sampleconfig.SourceFromURL(srv.URL+"/run.yaml"))
	if err != nil {
		t.Fatalf("load http: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("payload mismatch:\n%s", doc.Raw())
	}
}

func TestLoad_HTTPFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	l := loader.New(sampleconfig.NewLoaderOptions(
		sampleconfig.WithHTTPFallback(5 * time.Second),
	))

	doc, err := l.Load(testsupport.Context(), sampleconfig.SourceFromURL(srv.URL+"/run.yaml"))
	if err != nil {
		t.Fatalf("load with fallback client: %v", err)
	}
	if string(doc.Raw()) != payload {
		t.Fatalf("payload mismatch:\n%s", doc.Raw())
	}
}

func TestLoad_HTTPFallbackTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	l := loader.New(sampleconfig.NewLoaderOptions(
		sampleconfig.WithHTTPFallback(50 * time.Millisecond),
	))

	if _, err := l.Load(testsupport.Context(), sampleconfig.SourceFromURL(srv.URL+"/slow.yaml")); err == nil {
		t.Fatalf("expected timeout error for a stalled server")
	}
}

func TestLoad_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	l := loader.New(sampleconfig.NewLoaderOptions(
		sampleconfig.WithHTTPClient(srv.Client()),
	))

	_, err := l.Load(testsupport.Context(), sampleconfig.SourceFromURL(srv.URL+"/missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLoad_NilSource(t *testing.T) {
	l := loader.New(sampleconfig.NewLoaderOptions())

	if _, err := l.Load(testsupport.Context(), nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}
