package commands

import (
	"context"

	"projdex/internal/domain"
)

// StatsCommand aggregates statistics over a loaded index.
type StatsCommand struct {
	projects []domain.Project
}

// NewStatsCommand creates a stats computation over loaded projects.
func NewStatsCommand(projects []domain.Project) *StatsCommand {
	return &StatsCommand{projects: projects}
}

// Execute computes totals, status, category, and tag counts.
func (c *StatsCommand) Execute(ctx context.Context) (domain.Stats, error) {
	return domain.ComputeStats(c.projects), nil
}
