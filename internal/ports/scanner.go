package ports

// ScanOptions bound the discovery walk.
type ScanOptions struct {
	// MinDepth and MaxDepth are inclusive depth bounds relative to the
	// scan root (root = depth 0).
	MinDepth int
	MaxDepth int
	// Exclude lists directory base names pruned together with their
	// subtrees. Hidden directories are always pruned.
	Exclude []string
}

// ProjectScanner enumerates candidate project directories under a root.
type ProjectScanner interface {
	// Scan calls visit for every candidate directory whose depth lies
	// within the configured bounds. Per-entry I/O errors are skipped;
	// a non-nil error from visit aborts the walk.
	Scan(root string, opts ScanOptions, visit func(path string) error) error
}
