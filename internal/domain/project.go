package domain

import (
	"sort"
	"strings"
)

// Status describes the version-control state of a project.
type Status string

const (
	// StatusActive means the project is a working git repository.
	StatusActive Status = "active"
	// StatusArchived means the project carries an archive marker file.
	StatusArchived Status = "archived"
	// StatusUnknown means the project is not under version control or
	// its state could not be determined.
	StatusUnknown Status = "unknown"
)

// Project is one indexed project directory. Projects are immutable
// once built; the index is recreated wholesale on every run.
type Project struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Category string   `json:"category"`
	Status   Status   `json:"status"`
	Tags     []string `json:"tags"`
}

// SortProjects orders projects by (category, name) ascending. The
// ordering is total, so repeated runs over unchanged input serialize
// identically.
func SortProjects(projects []Project) {
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].Category != projects[j].Category {
			return projects[i].Category < projects[j].Category
		}
		return projects[i].Name < projects[j].Name
	})
}

// tagCutset is stripped from every tag token.
const tagCutset = "*:.()[]{}"

// ParseTags normalizes raw model output into tags: split on newlines,
// then commas, trim, lowercase, strip punctuation, drop empties.
func ParseTags(raw string) []string {
	var tags []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		for _, token := range strings.Split(line, ",") {
			tag := strings.ToLower(strings.TrimSpace(token))
			tag = strings.Map(func(r rune) rune {
				if strings.ContainsRune(tagCutset, r) {
					return -1
				}
				return r
			}, tag)
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
