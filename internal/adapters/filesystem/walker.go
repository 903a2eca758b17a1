package filesystem

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"projdex/internal/ports"
)

// DefaultExcludes lists directory names pruned by default: VCS
// internals, dependency trees, build artifacts, tool caches.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	"__pycache__",
	"target",
	".idea",
	".vscode",
	".env",
	".mypy_cache",
	"venv",
	".gradio",
	"__MACOSX",
	"build",
	"dist",
	".next",
	".cache",
	".pytest_cache",
	".tox",
	".eggs",
	"coverage",
	"htmlcov",
	".DS_Store",
}

// Walker implements ports.ProjectScanner over the local filesystem.
// Symbolic links are not followed, so link cycles cannot loop the walk.
type Walker struct {
	logger *log.Logger
}

var _ ports.ProjectScanner = (*Walker)(nil)

// NewWalker creates a walker. A nil logger falls back to the default.
func NewWalker(logger *log.Logger) *Walker {
	if logger == nil {
		logger = log.Default()
	}
	return &Walker{logger: logger}
}

// Scan walks root and calls visit for every directory whose depth lies
// in [opts.MinDepth, opts.MaxDepth]. Excluded and hidden directories
// are pruned together with their subtrees. Per-entry I/O errors are
// logged and skipped; they never abort the walk.
func (w *Walker) Scan(root string, opts ports.ScanOptions, visit func(path string) error) error {
	root = filepath.Clean(root)

	excluded := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		if name = strings.TrimSpace(name); name != "" {
			excluded[name] = struct{}{}
		}
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("skipping unreadable entry", "path", path, "err", err)
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}

		base := d.Name()
		if _, bad := excluded[base]; bad || strings.HasPrefix(base, ".") {
			return filepath.SkipDir
		}

		depth := relativeDepth(root, path)
		if depth >= opts.MinDepth && depth <= opts.MaxDepth {
			if err := visit(path); err != nil {
				return err
			}
		}
		if depth >= opts.MaxDepth {
			return filepath.SkipDir
		}
		return nil
	})
}

// relativeDepth counts path segments below root; root itself is 0.
func relativeDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}
