package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zoom.yaml")
	other := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(path, []byte("initial_zoom: 4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Files next to the watched one are ignored
	if err := os.WriteFile(other, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	time.Sleep(200 * time.Millisecond)
	if w.Poll() {
		t.Fatalf("unrelated file reported as a change")
	}

	if err := os.WriteFile(path, []byte("initial_zoom: 6\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for !w.Poll() {
		if time.Now().After(deadline) {
			t.Fatalf("no change reported for %s", path)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "zoom.yaml"))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestWatcherWaitsForWritesToSettle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zoom.yaml")
	if err := os.WriteFile(path, []byte("initial_zoom: 4\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Editors often truncate and then write
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if w.Poll() {
		t.Fatalf("change reported before writes settled")
	}
	if err := os.WriteFile(path, []byte("initial_zoom: 6\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !w.Poll() {
		if time.Now().After(deadline) {
			t.Fatalf("no change reported for %s", path)
		}
		time.Sleep(10 * time.Millisecond)
	}
	z, err := LoadZoomFile(path, DefaultZoom())
	if err != nil || z.InitialZoom != 6 {
		t.Fatalf("LoadZoomFile = %d, %v; want the final write", z.InitialZoom, err)
	}

	time.Sleep(3 * watchDebounce)
	if w.Poll() {
		t.Fatalf("one burst of writes reported more than once")
	}
}
