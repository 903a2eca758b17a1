package ports

import (
	"context"

	"projdex/internal/domain"
)

// StatusProvider determines the version-control status of a project
// directory.
type StatusProvider interface {
	// Detect never fails: any error while querying the repository maps
	// to domain.StatusUnknown.
	Detect(ctx context.Context, path string) domain.Status

	// IsAvailable reports whether the underlying status tool exists.
	IsAvailable() bool
}
