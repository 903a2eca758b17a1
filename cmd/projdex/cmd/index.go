package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"projdex/internal/adapters/filesystem"
	"projdex/internal/adapters/git"
	"projdex/internal/adapters/ollama"
	"projdex/internal/adapters/sqlite"
	"projdex/internal/application/commands"
	"projdex/internal/config"
	"projdex/internal/domain"
	"projdex/internal/ports"
)

var (
	indexRoot    string
	minDepth     int
	maxDepth     int
	extraExclude []string
	withOllama   bool
	ollamaURL    string
	ollamaModel  string
	defaultTags  []string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Scan the projects root and rebuild the index",
	Long: `Walks the projects root, classifies every directory in the configured
depth range as a project, detects git status, optionally generates tags
via Ollama, and writes the sorted index as JSON.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVarP(&indexRoot, "root", "d", config.Root(), "projects root to scan")
	indexCmd.Flags().IntVarP(&minDepth, "min-depth", "m", 3, "minimum directory depth to index")
	indexCmd.Flags().IntVarP(&maxDepth, "max-depth", "x", 3, "maximum directory depth to index")
	indexCmd.Flags().StringSliceVarP(&extraExclude, "exclude", "e", nil, "additional directory names to exclude")
	indexCmd.Flags().BoolVarP(&withOllama, "ollama", "o", false, "generate tags with a local Ollama model")
	indexCmd.Flags().StringVar(&ollamaURL, "ollama-url", config.OllamaURL(), "Ollama endpoint")
	indexCmd.Flags().StringVar(&ollamaModel, "model", config.Model(), "Ollama model for tag generation")
	indexCmd.Flags().StringSliceVar(&defaultTags, "default-tags", nil, "tags for projects with no generated tags")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := commands.IndexConfig{
		Root:        config.ExpandHome(indexRoot),
		OutputPath:  config.ExpandHome(indexPath),
		MinDepth:    minDepth,
		MaxDepth:    maxDepth,
		Exclude:     append(append([]string(nil), filesystem.DefaultExcludes...), extraExclude...),
		Enrichment:  withOllama,
		DefaultTags: defaultTags,
	}

	detector := git.NewDetector()
	if !detector.IsAvailable() {
		logger.Warn("git not found in PATH, all projects will have unknown status")
	}

	var tags ports.TagSource
	if withOllama {
		client := ollama.NewClient(ollama.WithBaseURL(ollamaURL))
		tagger := ollama.NewTagger(client, ollama.WithModel(ollamaModel))
		if !tagger.IsAvailable(ctx) {
			logger.Warn("Ollama is not reachable, continuing without tags", "url", ollamaURL)
		} else {
			tags = tagger
		}
	}

	build := commands.NewBuildIndexCommand(
		cfg,
		filesystem.NewWalker(logger),
		detector,
		tags,
		filesystem.SaveIndex,
		logger,
	)
	build.Progress = func(name string) {
		fmt.Printf("  indexing %s\n", name)
	}

	projects, err := build.Execute(ctx)
	if err != nil {
		return err
	}

	refreshMirror(projects)

	stats := domain.ComputeStats(projects)
	fmt.Printf("\nIndexed %d projects (%d active, %d archived, %d unknown) -> %s\n",
		stats.Total, stats.Active, stats.Archived, stats.Unknown, indexPath)
	return nil
}

// refreshMirror updates the SQLite mirror used by the MCP server. The
// JSON index is the source of truth, so mirror failures only warn.
func refreshMirror(projects []domain.Project) {
	mirror := sqlite.NewIndex()
	if err := mirror.Open(config.ExpandHome(indexPath)); err != nil {
		logger.Warn("mirror unavailable", "err", err)
		return
	}
	defer mirror.Close()

	if err := mirror.Rebuild(projects); err != nil {
		logger.Warn("mirror rebuild failed", "err", err)
	}
}
