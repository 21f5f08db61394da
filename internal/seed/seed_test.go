package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rtgeorge/resourceboard/internal/catalog"
	"github.com/rtgeorge/resourceboard/internal/db"
)

func newTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return catalog.NewStore(d)
}

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing seed file: %v", err)
	}
}

const sampleSeed = `
- id: ws-001
  category: free-downloads
  title: Practice Worksheet
  excerpt: Twenty problems with answers.
  permalink: /resource/practice-worksheet/
  download_url: /files/practice.pdf
  published: 2024-03-01T00:00:00Z
- category: video
  title: Intro Lecture
  video_url: https://youtu.be/abcdef12345
  published: 2024-04-01T00:00:00Z
`

func TestRunImports(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()
	writeSeedFile(t, dir, "batch.yml", sampleSeed)

	n, err := Run(context.Background(), store, filepath.Join(dir, "*.yml"), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if n != 2 {
		t.Errorf("imported = %d, want 2", n)
	}

	records, total, err := store.List(context.Background(), catalog.QuerySpec{
		Category: catalog.SlugFreeDownloads, OrderBy: "date", Order: "DESC", PageSize: 10, Page: 1,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("free-downloads total = %d, want 1", total)
	}
	if records[0].ID != "ws-001" || records[0].DownloadURL != "/files/practice.pdf" {
		t.Errorf("record = %+v", records[0])
	}

	// The record without an id got a generated one.
	records, _, err = store.List(context.Background(), catalog.QuerySpec{
		Category: catalog.SlugVideo, OrderBy: "date", Order: "DESC", PageSize: 10, Page: 1,
	})
	if err != nil {
		t.Fatalf("List videos failed: %v", err)
	}
	if len(records) != 1 || records[0].ID == "" {
		t.Errorf("video record missing generated id: %+v", records)
	}
}

func TestRunImportIsRepeatable(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()
	writeSeedFile(t, dir, "batch.yml", sampleSeed)
	pattern := filepath.Join(dir, "*.yml")
	if _, err := Run(context.Background(), store, pattern, nil); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := Run(context.Background(), store, pattern, nil); err != nil {
		t.Fatalf("second run: %v", err)
	}

	// Records with stable ids are upserted, not duplicated.
	_, total, err := store.List(context.Background(), catalog.QuerySpec{
		Category: catalog.SlugFreeDownloads, OrderBy: "date", Order: "DESC", PageSize: 10, Page: 1,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("free-downloads total after re-run = %d, want 1", total)
	}
}

func TestRunRejectsUnknownCategory(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()
	writeSeedFile(t, dir, "bad.yml", "- category: podcast\n  title: Nope\n")

	_, err := Run(context.Background(), store, filepath.Join(dir, "*.yml"), nil)
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
	if !strings.Contains(err.Error(), "podcast") {
		t.Errorf("error should name the bad category: %v", err)
	}
}

func TestRunNoMatches(t *testing.T) {
	store := newTestStore(t)
	if _, err := Run(context.Background(), store, filepath.Join(t.TempDir(), "*.yml"), nil); err == nil {
		t.Fatal("expected error when no files match")
	}
}
