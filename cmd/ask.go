package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SAIRAALMAS88/AI-FYP/internal/insight"
	"github.com/SAIRAALMAS88/AI-FYP/internal/utils"
)

var askShowPrompt bool

var askCmd = &cobra.Command{
	Use:   "ask <file> <question...>",
	Short: "Ask a natural-language question about a dataset",
	Long: `Ask composes a question-answering prompt grounded in the dataset's context
(shape, column types, sample rows) and returns the LLM's answer. The AI is
instructed to say so when the dataset cannot answer the question.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}

		question := strings.Join(args[1:], " ")
		prompt, err := insight.Compose(insight.Qa, insight.FromTable(t), question)
		if err != nil {
			return err
		}
		if askShowPrompt {
			fmt.Println(prompt)
			return nil
		}
		debugf("prompt: %d chars, ~%d tokens", len(prompt), utils.CountTokens(prompt))

		answer, err := newAIClient().Complete(cmd.Context(), prompt)
		if err != nil {
			return err
		}
		if answer == "" {
			fmt.Println("No response from AI.")
			return nil
		}
		fmt.Printf("\n%s\n", answer)
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askShowPrompt, "show-prompt", false, "print the composed prompt instead of calling the AI")
	rootCmd.AddCommand(askCmd)
}
