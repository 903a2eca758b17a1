package ports

import "projdex/internal/domain"

// CategoryCount pairs a category with the number of projects in it.
type CategoryCount struct {
	Category string
	Count    int
}

// ProjectIndex is a queryable mirror of the most recently persisted
// index. The JSON index file remains the source of truth; the mirror
// is rebuilt from it wholesale.
type ProjectIndex interface {
	// Lifecycle
	Open(indexPath string) error
	Close() error

	// NeedsRebuild reports whether the mirror is missing, stale, or
	// from an older schema.
	NeedsRebuild(projects []domain.Project) bool

	// Rebuild replaces the mirror contents in a single transaction.
	Rebuild(projects []domain.Project) error

	// Queries
	Search(query string) ([]domain.Project, error)
	Get(name string) (*domain.Project, error)
	Categories() ([]CategoryCount, error)
	StatusCounts() (map[domain.Status]int, error)
	TagCounts(limit int) ([]domain.TagCount, error)
}
