package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"projdex/internal/application/commands"
)

var statsDetailed bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := loadProjects()
		if err != nil {
			return err
		}

		stats, err := commands.NewStatsCommand(projects).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Projects: %d\n", stats.Total)
		fmt.Printf("  active:   %d\n", stats.Active)
		fmt.Printf("  archived: %d\n", stats.Archived)
		fmt.Printf("  unknown:  %d\n", stats.Unknown)
		fmt.Printf("Tags: %d total, %d distinct\n", stats.TotalTags, len(stats.TagCounts))

		if !statsDetailed {
			return nil
		}

		categories := make([]string, 0, len(stats.ByCategory))
		for c := range stats.ByCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		fmt.Println("\nBy category:")
		for _, c := range categories {
			fmt.Printf("  %-20s %d\n", c, stats.ByCategory[c])
		}

		if top := stats.TopTags(10); len(top) > 0 {
			fmt.Println("\nTop tags:")
			for _, tc := range top {
				fmt.Printf("  %-20s %d\n", tc.Tag, tc.Count)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsDetailed, "detailed", false, "break down by category and tag")
	rootCmd.AddCommand(statsCmd)
}
