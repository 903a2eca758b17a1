// Package git detects project status by shelling out to the git CLI.
package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"projdex/internal/domain"
	"projdex/internal/ports"
)

// DefaultTimeout bounds a single status query so a broken repository
// cannot hang the whole run.
const DefaultTimeout = 5 * time.Second

// archiveMarkers are checked at the project root; any of them marks
// an otherwise valid repository as archived.
var archiveMarkers = []string{"ARCHIVED", "ARCHIVED.md", ".archived"}

// Detector implements ports.StatusProvider by invoking `git status`
// and interpreting only its exit code.
type Detector struct {
	timeout time.Duration
}

var _ ports.StatusProvider = (*Detector)(nil)

// Option configures the Detector.
type Option func(*Detector)

// WithTimeout overrides the status query timeout.
func WithTimeout(d time.Duration) Option {
	return func(det *Detector) {
		det.timeout = d
	}
}

// NewDetector creates a status detector.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect classifies path as active, archived, or unknown. It never
// returns an error: spawn failures, non-zero exits, and timeouts all
// map to unknown.
func (d *Detector) Detect(ctx context.Context, path string) domain.Status {
	// Git plumbing directories are never projects themselves.
	if insideGitDir(path) {
		return domain.StatusUnknown
	}

	if _, err := os.Stat(filepath.Join(path, ".git")); err != nil {
		return domain.StatusUnknown
	}

	for _, marker := range archiveMarkers {
		if _, err := os.Stat(filepath.Join(path, marker)); err == nil {
			return domain.StatusArchived
		}
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "status")
	cmd.Dir = path
	if err := cmd.Run(); err != nil {
		return domain.StatusUnknown
	}
	return domain.StatusActive
}

// IsAvailable reports whether a git binary is on PATH.
func (d *Detector) IsAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func insideGitDir(path string) bool {
	slashed := filepath.ToSlash(filepath.Clean(path))
	return filepath.Base(slashed) == ".git" || strings.Contains(slashed, "/.git/")
}
