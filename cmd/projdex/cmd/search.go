package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"projdex/internal/application/commands"
)

var (
	searchTagsOnly     bool
	searchCategoryOnly bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the index by name, category, or tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := loadProjects()
		if err != nil {
			return err
		}

		search := commands.NewSearchCommand(projects, args[0])
		search.TagsOnly = searchTagsOnly
		search.CategoryOnly = searchCategoryOnly

		results, err := search.Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No matches.")
			return nil
		}

		for _, r := range results {
			line := fmt.Sprintf("[%s] %s/%s", r.Status, r.Category, r.Name)
			if len(r.Tags) > 0 {
				line += "  (" + strings.Join(r.Tags, ", ") + ")"
			}
			fmt.Println(line)
			fmt.Printf("    %s\n", r.Path)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVarP(&searchTagsOnly, "tags-only", "t", false, "match tags only")
	searchCmd.Flags().BoolVarP(&searchCategoryOnly, "category-only", "c", false, "match categories only")
	rootCmd.AddCommand(searchCmd)
}
