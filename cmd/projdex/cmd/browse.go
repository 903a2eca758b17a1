package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"projdex/internal/adapters/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the index interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := loadProjects()
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Println("The index is empty.")
			return nil
		}

		program := tea.NewProgram(tui.NewBrowser(projects), tea.WithAltScreen())
		_, err = program.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
