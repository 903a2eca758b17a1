package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"projdex/internal/adapters/filesystem"
	"projdex/internal/config"
	"projdex/internal/domain"
)

var (
	indexPath string
	verbose   bool
	logger    *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "projdex",
	Short: "Index and explore your local project directories",
	Long: `projdex scans a directory tree for projects, detects their git
status, optionally asks a local Ollama model for descriptive tags, and
writes everything to a sorted JSON index.

The index can then be searched, summarized, or browsed interactively.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
		})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&indexPath, "index", "i", config.IndexFile(), "path to the index file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadProjects reads the index file the subcommands operate on.
func loadProjects() ([]domain.Project, error) {
	projects, err := filesystem.LoadIndex(config.ExpandHome(indexPath))
	if err != nil {
		return nil, fmt.Errorf("loading index %s: %w (run 'projdex index' first)", indexPath, err)
	}
	return projects, nil
}
