package filesystem

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"projdex/internal/domain"
)

func TestSaveIndex_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	projects := []domain.Project{
		{Name: "alpha", Path: "/p/tools/alpha", Category: "tools", Status: domain.StatusActive, Tags: []string{"go"}},
		{Name: "beta", Path: "/p/tools/beta", Category: "tools", Status: domain.StatusUnknown, Tags: []string{}},
	}

	if err := SaveIndex(path, projects); err != nil {
		t.Fatalf("SaveIndex: %v", err)
	}

	loaded, err := LoadIndex(path)
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Name != "alpha" || loaded[1].Status != domain.StatusUnknown {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestSaveIndex_Deterministic(t *testing.T) {
	dir := t.TempDir()
	projects := []domain.Project{
		{Name: "alpha", Path: "/p/a", Category: "tools", Status: domain.StatusActive, Tags: []string{"go", "cli"}},
	}

	first := filepath.Join(dir, "one.json")
	second := filepath.Join(dir, "two.json")
	if err := SaveIndex(first, projects); err != nil {
		t.Fatal(err)
	}
	if err := SaveIndex(second, projects); err != nil {
		t.Fatal(err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Error("identical input should serialize to identical bytes")
	}
}

func TestSaveIndex_EmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	if err := SaveIndex(path, nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty index should serialize as [], got %q", data)
	}
}

func TestSaveIndex_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")
	if err := SaveIndex(path, []domain.Project{{Name: "a", Path: "/a", Category: "c", Status: domain.StatusUnknown, Tags: []string{}}}); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "index.json" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestSaveIndex_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := SaveIndex(path, nil); err != nil {
		t.Fatalf("SaveIndex over existing file: %v", err)
	}
	if _, err := LoadIndex(path); err != nil {
		t.Errorf("index should be replaced with valid JSON: %v", err)
	}
}

func TestLoadIndex_Missing(t *testing.T) {
	if _, err := LoadIndex(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing index")
	}
}
