package domain

import "sort"

// Stats summarizes an index.
type Stats struct {
	Total      int
	Active     int
	Archived   int
	Unknown    int
	ByCategory map[string]int
	TotalTags  int
	TagCounts  map[string]int
}

// ComputeStats aggregates status, category, and tag counts.
func ComputeStats(projects []Project) Stats {
	stats := Stats{
		ByCategory: make(map[string]int),
		TagCounts:  make(map[string]int),
	}
	for _, p := range projects {
		stats.Total++
		switch p.Status {
		case StatusActive:
			stats.Active++
		case StatusArchived:
			stats.Archived++
		default:
			stats.Unknown++
		}
		stats.ByCategory[p.Category]++
		stats.TotalTags += len(p.Tags)
		for _, tag := range p.Tags {
			stats.TagCounts[tag]++
		}
	}
	return stats
}

// TagCount pairs a tag with its number of occurrences.
type TagCount struct {
	Tag   string
	Count int
}

// TopTags returns the n most frequent tags, count descending, ties
// broken by tag name so the order is deterministic.
func (s Stats) TopTags(n int) []TagCount {
	counts := make([]TagCount, 0, len(s.TagCounts))
	for tag, count := range s.TagCounts {
		counts = append(counts, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Tag < counts[j].Tag
	})
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
