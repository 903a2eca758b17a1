package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"projdex/internal/adapters/ollama"
	"projdex/internal/application/commands"
	"projdex/internal/config"
)

var (
	tagsProjectDir string
	tagsOutput     string
	tagsOllamaURL  string
	tagsModel      string
)

var generateTagsCmd = &cobra.Command{
	Use:   "generate-tags",
	Short: "Generate tags for a single project directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client := ollama.NewClient(ollama.WithBaseURL(tagsOllamaURL))
		tagger := ollama.NewTagger(client, ollama.WithModel(tagsModel))
		if !tagger.IsAvailable(ctx) {
			return fmt.Errorf("Ollama is not reachable at %s", tagsOllamaURL)
		}

		generate := commands.NewGenerateTagsCommand(tagger, config.ExpandHome(tagsProjectDir))
		generate.Output = config.ExpandHome(tagsOutput)

		tags, err := generate.Execute(ctx)
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			fmt.Println("No tags generated.")
			return nil
		}
		fmt.Println(strings.Join(tags, ", "))
		if generate.Output != "" {
			fmt.Printf("Written to %s\n", generate.Output)
		}
		return nil
	},
}

func init() {
	generateTagsCmd.Flags().StringVarP(&tagsProjectDir, "project-dir", "d", "", "project directory to tag")
	generateTagsCmd.Flags().StringVarP(&tagsOutput, "output", "o", "", "write the generated tags to this file")
	generateTagsCmd.Flags().StringVar(&tagsOllamaURL, "ollama-url", config.OllamaURL(), "Ollama endpoint")
	generateTagsCmd.Flags().StringVar(&tagsModel, "model", config.Model(), "Ollama model")
	generateTagsCmd.MarkFlagRequired("project-dir")
	rootCmd.AddCommand(generateTagsCmd)
}
