package commands

import (
	"context"
	"sort"
	"strings"

	"projdex/internal/domain"
)

// SearchResult wraps a project with a relevance score.
type SearchResult struct {
	domain.Project
	Score int
}

// SearchCommand fuzzy-searches a loaded index.
type SearchCommand struct {
	projects []domain.Project
	Query    string
	// TagsOnly and CategoryOnly restrict which fields are matched.
	TagsOnly     bool
	CategoryOnly bool
}

// NewSearchCommand creates a search over already-loaded projects.
func NewSearchCommand(projects []domain.Project, query string) *SearchCommand {
	return &SearchCommand{
		projects: projects,
		Query:    query,
	}
}

// Execute returns matching projects, best score first.
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	scored := make([]SearchResult, 0, len(c.projects))
	for _, p := range c.projects {
		if best := c.score(p); best > 0 {
			scored = append(scored, SearchResult{Project: p, Score: best})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

func (c *SearchCommand) score(p domain.Project) int {
	best := 0
	if !c.TagsOnly {
		if s := FuzzyScore(p.Category, c.Query); s > best {
			best = s
		}
	}
	if !c.TagsOnly && !c.CategoryOnly {
		if s := FuzzyScore(p.Name, c.Query); s > best {
			best = s
		}
	}
	if !c.CategoryOnly {
		for _, tag := range p.Tags {
			if s := FuzzyScore(tag, c.Query); s > best {
				best = s
			}
		}
	}
	return best
}

// FuzzyScore calculates how well target matches query. Exact
// substring matches dominate; otherwise query characters must appear
// in order, with bonuses for consecutive runs and word boundaries.
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '-' || target[i-1] == '_' || target[i-1] == '/') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}
