package sqlite

import (
	"path/filepath"
	"reflect"
	"testing"

	"projdex/internal/domain"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	idx := NewIndex()
	if err := idx.Open(filepath.Join(t.TempDir(), "projects_index.json")); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func testProjects() []domain.Project {
	return []domain.Project{
		{Name: "alpha", Path: "/p/tools/alpha", Category: "tools", Status: domain.StatusActive, Tags: []string{"go", "cli"}},
		{Name: "beta", Path: "/p/tools/beta", Category: "tools", Status: domain.StatusUnknown, Tags: []string{}},
		{Name: "site", Path: "/p/web/site", Category: "web", Status: domain.StatusArchived, Tags: []string{"js"}},
	}
}

func TestRebuildAndSearch(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Rebuild(testProjects()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"by name", "alpha", []string{"alpha"}},
		{"by category", "web", []string{"site"}},
		{"by tag", "cli", []string{"alpha"}},
		{"by substring", "tool", []string{"alpha", "beta"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := idx.Search(tt.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			var names []string
			for _, p := range results {
				names = append(names, p.Name)
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, names, tt.want)
			}
		})
	}
}

func TestRebuild_ReplacesContents(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Rebuild(testProjects()); err != nil {
		t.Fatal(err)
	}
	if err := idx.Rebuild([]domain.Project{
		{Name: "only", Path: "/p/x/only", Category: "x", Status: domain.StatusUnknown, Tags: []string{}},
	}); err != nil {
		t.Fatal(err)
	}

	if results, _ := idx.Search("alpha"); len(results) != 0 {
		t.Errorf("old contents survived rebuild: %v", results)
	}
	if results, _ := idx.Search("only"); len(results) != 1 {
		t.Errorf("new contents missing: %v", results)
	}
}

func TestGet(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Rebuild(testProjects()); err != nil {
		t.Fatal(err)
	}

	p, err := idx.Get("alpha")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p == nil || p.Category != "tools" || p.Status != domain.StatusActive {
		t.Errorf("Get(alpha) = %+v", p)
	}
	if !reflect.DeepEqual(p.Tags, []string{"go", "cli"}) {
		t.Errorf("tag order not preserved: %v", p.Tags)
	}

	missing, err := idx.Get("nope")
	if err != nil {
		t.Fatalf("Get(missing): %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing project, got %+v", missing)
	}
}

func TestCategoriesAndCounts(t *testing.T) {
	idx := openTestIndex(t)
	if err := idx.Rebuild(testProjects()); err != nil {
		t.Fatal(err)
	}

	cats, err := idx.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 2 || cats[0].Category != "tools" || cats[0].Count != 2 || cats[1].Category != "web" {
		t.Errorf("Categories = %v", cats)
	}

	statuses, err := idx.StatusCounts()
	if err != nil {
		t.Fatalf("StatusCounts: %v", err)
	}
	if statuses[domain.StatusActive] != 1 || statuses[domain.StatusArchived] != 1 || statuses[domain.StatusUnknown] != 1 {
		t.Errorf("StatusCounts = %v", statuses)
	}

	tags, err := idx.TagCounts(10)
	if err != nil {
		t.Fatalf("TagCounts: %v", err)
	}
	if len(tags) != 3 {
		t.Errorf("TagCounts = %v", tags)
	}
}

func TestNeedsRebuild(t *testing.T) {
	idx := openTestIndex(t)
	projects := testProjects()

	if !idx.NeedsRebuild(projects) {
		t.Error("fresh mirror should need a rebuild")
	}
	if err := idx.Rebuild(projects); err != nil {
		t.Fatal(err)
	}
	if idx.NeedsRebuild(projects) {
		t.Error("mirror should be current after rebuild")
	}

	projects[0].Tags = append(projects[0].Tags, "extra")
	if !idx.NeedsRebuild(projects) {
		t.Error("content change should require a rebuild")
	}
}
