package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"projdex/internal/application"
	"projdex/internal/ports"
)

// GenerateTagsCommand produces tags for a single project directory,
// outside of a full index run.
type GenerateTagsCommand struct {
	source ports.TagSource
	Dir    string
	// Output, when set, receives the comma-joined tags as a file.
	Output string
}

// NewGenerateTagsCommand creates a one-off tag generation.
func NewGenerateTagsCommand(source ports.TagSource, dir string) *GenerateTagsCommand {
	return &GenerateTagsCommand{source: source, Dir: dir}
}

// Execute generates normalized tags for the directory and writes them
// to Output when one is configured.
func (c *GenerateTagsCommand) Execute(ctx context.Context) ([]string, error) {
	info, err := os.Stat(c.Dir)
	if err != nil || !info.IsDir() {
		return nil, &application.ValidationError{
			Field:   "project-dir",
			Message: c.Dir + " is not a directory",
			Err:     application.ErrInvalidRoot,
		}
	}

	tags, err := c.source.GenerateTags(ctx, filepath.Base(c.Dir), c.Dir)
	if err != nil {
		return nil, err
	}

	if c.Output != "" {
		data := strings.Join(tags, ", ") + "\n"
		if err := os.WriteFile(c.Output, []byte(data), 0644); err != nil {
			return nil, err
		}
	}
	return tags, nil
}
