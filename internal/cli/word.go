package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "word",
		Short: "Word generation commands",
	}

	cmd.AddCommand(newWordGenerateCmd())

	return cmd
}

func newWordGenerateCmd() *cobra.Command {
	var (
		category   string
		difficulty string
		chatModel  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a word and hint for a round",
		RunE: func(cmd *cobra.Command, args []string) error {
			if category == "" {
				return fmt.Errorf("--category is required")
			}

			req := map[string]string{
				"source":     "ai",
				"category":   category,
				"difficulty": difficulty,
			}
			if chatModel != "" {
				req["model"] = chatModel
			}

			var result WordPair
			if err := client.Post("/api/v1/words/generate", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Word category, e.g. animals (required)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "Difficulty: easy, medium, hard")
	cmd.Flags().StringVar(&chatModel, "model", "", "Provider model override")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
