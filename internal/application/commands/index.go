package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"projdex/internal/application"
	"projdex/internal/domain"
	"projdex/internal/ports"
)

// IndexConfig holds everything BuildIndexCommand needs. No hidden
// statics: the CLI layer builds one of these and hands it over.
type IndexConfig struct {
	Root        string
	OutputPath  string
	MinDepth    int
	MaxDepth    int
	Exclude     []string
	Enrichment  bool
	DefaultTags []string
}

// PersistFunc writes the sorted index to its output path. A failure
// here is fatal for the run.
type PersistFunc func(path string, projects []domain.Project) error

// BuildIndexCommand runs the full discovery pipeline: walk, classify,
// detect status, enrich, sort, persist.
type BuildIndexCommand struct {
	config  IndexConfig
	scanner ports.ProjectScanner
	status  ports.StatusProvider
	tags    ports.TagSource
	persist PersistFunc
	logger  *log.Logger

	// Progress is invoked once per discovered candidate, before its
	// enrichment completes. Purely observational.
	Progress func(name string)
}

// NewBuildIndexCommand creates the orchestrator. tags may be nil when
// enrichment is disabled.
func NewBuildIndexCommand(
	config IndexConfig,
	scanner ports.ProjectScanner,
	status ports.StatusProvider,
	tags ports.TagSource,
	persist PersistFunc,
	logger *log.Logger,
) *BuildIndexCommand {
	if logger == nil {
		logger = log.Default()
	}
	return &BuildIndexCommand{
		config:  config,
		scanner: scanner,
		status:  status,
		tags:    tags,
		persist: persist,
		logger:  logger,
	}
}

// Execute scans the configured root and persists the sorted index.
// Configuration errors abort before any traversal; per-project
// failures are logged and degraded, never fatal.
func (c *BuildIndexCommand) Execute(ctx context.Context) ([]domain.Project, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	c.logger.Info("indexing projects", "root", c.config.Root)

	var projects []domain.Project
	opts := ports.ScanOptions{
		MinDepth: c.config.MinDepth,
		MaxDepth: c.config.MaxDepth,
		Exclude:  c.config.Exclude,
	}

	err := c.scanner.Scan(c.config.Root, opts, func(path string) error {
		name := filepath.Base(path)
		if name == "" || name == "." || name == string(filepath.Separator) {
			return nil
		}
		if c.Progress != nil {
			c.Progress(name)
		}
		projects = append(projects, c.buildProject(ctx, name, path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", c.config.Root, err)
	}

	domain.SortProjects(projects)

	if err := c.persist(c.config.OutputPath, projects); err != nil {
		return nil, err
	}

	c.logger.Info("index written", "path", c.config.OutputPath, "projects", len(projects))
	return projects, nil
}

func (c *BuildIndexCommand) buildProject(ctx context.Context, name, path string) domain.Project {
	project := domain.Project{
		Name:     name,
		Path:     path,
		Category: domain.Categorize(path, c.config.Root),
		Status:   c.status.Detect(ctx, path),
		Tags:     []string{},
	}

	if c.config.Enrichment && c.tags != nil {
		tags, err := c.tags.GenerateTags(ctx, name, path)
		if err != nil {
			c.logger.Warn("tag generation failed", "project", name, "err", err)
		} else {
			project.Tags = tags
		}
	}
	if len(project.Tags) == 0 && len(c.config.DefaultTags) > 0 {
		project.Tags = append([]string(nil), c.config.DefaultTags...)
	}
	return project
}

func (c *BuildIndexCommand) validate() error {
	info, err := os.Stat(c.config.Root)
	if err != nil || !info.IsDir() {
		return &application.ValidationError{
			Field:   "root",
			Message: c.config.Root + " is not a directory",
			Err:     application.ErrInvalidRoot,
		}
	}
	if c.config.MinDepth < 1 || c.config.MinDepth > c.config.MaxDepth {
		return &application.ValidationError{
			Field:   "depth",
			Message: fmt.Sprintf("min %d, max %d", c.config.MinDepth, c.config.MaxDepth),
			Err:     application.ErrInvalidDepth,
		}
	}
	return nil
}
