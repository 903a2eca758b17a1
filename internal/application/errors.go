package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for whole-run failures. Per-project failures
// (filesystem, subprocess, enrichment) are swallowed with fallbacks
// and never surface here.
var (
	ErrInvalidRoot  = errors.New("invalid projects root")
	ErrInvalidDepth = errors.New("invalid depth bounds")
)

// ValidationError reports an invalid configuration value. Err carries
// the matching sentinel so callers can still test with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
