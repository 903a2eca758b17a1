package domain

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "comma separated with punctuation",
			raw:  "Rust, CLI, *Tool*.",
			want: []string{"rust", "cli", "tool"},
		},
		{
			name: "newlines and commas mixed",
			raw:  "go, http\nindexer, json",
			want: []string{"go", "http", "indexer", "json"},
		},
		{
			name: "empty tokens dropped",
			raw:  "go,, ,cli",
			want: []string{"go", "cli"},
		},
		{
			name: "brackets and colons stripped",
			raw:  "[web]: (api), {infra}",
			want: []string{"web", "api", "infra"},
		},
		{
			name: "token of only punctuation dropped",
			raw:  "go, ***, cli",
			want: []string{"go", "cli"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			raw:  "  \n  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTags(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseTags_NoForbiddenCharacters(t *testing.T) {
	tags := ParseTags("a*b, c:d.e, (f)[g]{h}")
	for _, tag := range tags {
		for _, r := range tag {
			switch r {
			case '*', ':', '.', '(', ')', '[', ']', '{', '}':
				t.Errorf("tag %q contains forbidden character %q", tag, r)
			}
		}
	}
}

func TestSortProjects(t *testing.T) {
	projects := []Project{
		{Name: "zeta", Category: "web"},
		{Name: "beta", Category: "tools"},
		{Name: "alpha", Category: "tools"},
		{Name: "gamma", Category: "cli"},
	}

	SortProjects(projects)

	wantOrder := []string{"gamma", "alpha", "beta", "zeta"}
	for i, name := range wantOrder {
		if projects[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, projects[i].Name, name)
		}
	}

	// Sort law: category first, then name.
	for i := 1; i < len(projects); i++ {
		a, b := projects[i-1], projects[i]
		if a.Category > b.Category {
			t.Errorf("category order violated: %s after %s", a.Category, b.Category)
		}
		if a.Category == b.Category && a.Name > b.Name {
			t.Errorf("name order violated within %s: %s after %s", a.Category, a.Name, b.Name)
		}
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		path string
		root string
		want string
	}{
		{
			name: "depth two uses parent folder",
			path: "/projects/tools/alpha",
			root: "/projects",
			want: "tools",
		},
		{
			name: "depth three uses top folder",
			path: "/projects/work/clients/acme",
			root: "/projects",
			want: "work",
		},
		{
			name: "directly under root",
			path: "/projects/alpha",
			root: "/projects",
			want: Uncategorized,
		},
		{
			name: "path is root",
			path: "/projects",
			root: "/projects",
			want: Uncategorized,
		},
		{
			name: "path outside root",
			path: "/other/alpha",
			root: "/projects",
			want: Uncategorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.path, tt.root); got != tt.want {
				t.Errorf("Categorize(%q, %q) = %q, want %q", tt.path, tt.root, got, tt.want)
			}
		})
	}
}
