package domain

import (
	"path/filepath"
	"strings"
)

// Uncategorized is the sentinel category for projects that sit
// directly under the scan root.
const Uncategorized = "uncategorized"

// Categorize derives a project's category from its position in the
// tree: the first path segment below root. Pure function, no I/O.
func Categorize(path, root string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return Uncategorized
	}
	segments := strings.Split(filepath.ToSlash(rel), "/")
	if len(segments) < 2 {
		// Directly under root, no organizational folder above it.
		return Uncategorized
	}
	return segments[0]
}
