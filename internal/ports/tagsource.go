package ports

import "context"

// TagSource produces descriptive tags for a project. Implementations
// own network details and timeouts; callers treat a failure as "no
// tags" and keep going.
type TagSource interface {
	// GenerateTags returns normalized lowercase tags for the project,
	// possibly empty.
	GenerateTags(ctx context.Context, name, path string) ([]string, error)

	// IsAvailable reports whether the tag service can be reached.
	IsAvailable(ctx context.Context) bool
}
