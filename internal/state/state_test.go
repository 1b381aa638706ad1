package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Paintersrp/sidoc/internal/config"
)

const testCatalog = `documents:
  - id: 7
    title: Incident Review
    author: Ops
    modified: "2025-09-01"
    status: Published
`

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
}

// replaceCatalog swaps the file in by rename so the watcher never sees a
// half-written catalog.
func replaceCatalog(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	writeCatalog(t, tmp, content)
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("failed to replace catalog: %v", err)
	}
}

func TestNewStateUsesBundledCatalog(t *testing.T) {
	cfg := config.Default()
	s, err := newState(t.TempDir(), cfg, "")
	if err != nil {
		t.Fatalf("newState returned error: %v", err)
	}
	defer s.Close()

	if s.Watcher != nil {
		t.Fatalf("expected no watcher for the bundled catalog")
	}
	if got := len(s.Catalog.List(cfg.SortField())); got != 6 {
		t.Fatalf("expected 6 bundled documents, got %d", got)
	}
}

func TestNewStateOverrideLoadsFileAndWatches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeCatalog(t, path, testCatalog)

	s, err := newState(dir, config.Default(), path)
	if err != nil {
		t.Fatalf("newState returned error: %v", err)
	}
	defer s.Close()

	doc, err := s.Catalog.Get(7)
	if err != nil {
		t.Fatalf("expected document 7, got error: %v", err)
	}
	if doc.Title != "Incident Review" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if s.Watcher == nil {
		t.Fatalf("expected a watcher for a catalog file")
	}
}

func TestNewStateMissingCatalog(t *testing.T) {
	dir := t.TempDir()
	if _, err := newState(dir, config.Default(), filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}

func TestWatcherReloadsCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeCatalog(t, path, testCatalog)

	s, err := newState(dir, config.Default(), path)
	if err != nil {
		t.Fatalf("newState returned error: %v", err)
	}
	defer s.Close()

	msgs := make(chan interface{}, 1)
	go func() { msgs <- s.Watcher.Start()() }()

	writeCatalog(t, filepath.Join(dir, "notes.txt"), "ignored")
	replaceCatalog(t, path, testCatalog+`  - id: 8
    title: Postmortem Template
    status: Draft
`)

	select {
	case msg := <-msgs:
		changed, ok := msg.(CatalogChangedMsg)
		if !ok {
			t.Fatalf("expected CatalogChangedMsg, got %T (%v)", msg, msg)
		}
		if filepath.Base(changed.Path) != "catalog.yaml" {
			t.Fatalf("unexpected path %q", changed.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for catalog change")
	}

	if _, err := s.Catalog.Get(8); err != nil {
		t.Fatalf("expected reloaded document 8: %v", err)
	}
}

func TestWatcherReportsReloadError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeCatalog(t, path, testCatalog)

	s, err := newState(dir, config.Default(), path)
	if err != nil {
		t.Fatalf("newState returned error: %v", err)
	}
	defer s.Close()

	msgs := make(chan interface{}, 1)
	go func() { msgs <- s.Watcher.Start()() }()

	replaceCatalog(t, path, "documents: [")

	select {
	case msg := <-msgs:
		if _, ok := msg.(CatalogWatcherErrMsg); !ok {
			t.Fatalf("expected CatalogWatcherErrMsg, got %T", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload error")
	}

	if _, err := s.Catalog.Get(7); err != nil {
		t.Fatalf("expected previous catalog to survive: %v", err)
	}
}

func TestWatcherCloseStopsStart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	writeCatalog(t, path, testCatalog)

	w, err := NewCatalogWatcher(path)
	if err != nil {
		t.Fatalf("NewCatalogWatcher returned error: %v", err)
	}

	closed := 0
	w.OnClose(func() { closed++ })

	done := make(chan interface{}, 1)
	go func() { done <- w.Start()() }()

	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	_ = w.Close()

	select {
	case msg := <-done:
		if msg != nil {
			t.Fatalf("expected nil message after close, got %T", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Start did not return after Close")
	}
	if closed != 1 {
		t.Fatalf("expected OnClose once, got %d", closed)
	}
}

func TestNilWatcher(t *testing.T) {
	var w *CatalogWatcher
	if w.Start() != nil {
		t.Fatalf("expected nil command from nil watcher")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("expected nil error from nil watcher, got %v", err)
	}
}

func TestUseCatalogSwapsAndKeepsOldOnFailure(t *testing.T) {
	dir := t.TempDir()
	s, err := newState(dir, config.Default(), "")
	if err != nil {
		t.Fatalf("newState returned error: %v", err)
	}
	defer s.Close()

	bundled := s.Catalog
	if err := s.UseCatalog(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
	if s.Catalog != bundled {
		t.Fatalf("expected bundled catalog to stay loaded after a failed swap")
	}

	path := filepath.Join(dir, "catalog.yaml")
	writeCatalog(t, path, testCatalog)
	if err := s.UseCatalog(path); err != nil {
		t.Fatalf("UseCatalog returned error: %v", err)
	}
	if _, err := s.Catalog.Get(7); err != nil {
		t.Fatalf("expected document 7 after swap: %v", err)
	}
	if s.Watcher == nil || s.Watcher.Path() != path {
		t.Fatalf("expected watcher on %s", path)
	}
}

func TestUseCatalogClosesPreviousWatcher(t *testing.T) {
	dir := t.TempDir()
	s, err := newState(dir, config.Default(), "")
	if err != nil {
		t.Fatalf("newState returned error: %v", err)
	}
	defer s.Close()

	obs, logs := observer.New(zap.DebugLevel)
	s.Logger = zap.New(obs)

	path := filepath.Join(dir, "catalog.yaml")
	writeCatalog(t, path, testCatalog)
	if err := s.UseCatalog(path); err != nil {
		t.Fatalf("UseCatalog returned error: %v", err)
	}
	if err := s.UseCatalog(""); err != nil {
		t.Fatalf("UseCatalog returned error: %v", err)
	}

	if s.Watcher != nil || s.CatalogPath != "" {
		t.Fatalf("expected bundled catalog without a watcher, got %q", s.CatalogPath)
	}
	if logs.FilterMessage("stopped watching").Len() != 1 {
		t.Fatalf("expected the old watcher to report its shutdown once, got %v", logs.All())
	}
}
