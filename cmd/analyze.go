package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SAIRAALMAS88/AI-FYP/internal/document"
	"github.com/SAIRAALMAS88/AI-FYP/internal/format"
	"github.com/SAIRAALMAS88/AI-FYP/internal/insight"
	"github.com/SAIRAALMAS88/AI-FYP/internal/utils"
)

var analyzeShowPrompt bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Generate an AI analysis of a dataset or document",
	Long: `Analyze detects the file format, normalizes the content, and asks the LLM
for either an exploratory data analysis summary (CSV/XLSX) or a document
analysis (PDF).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, data, err := readUpload(args[0])
		if err != nil {
			return err
		}
		kind, err := format.Detect(name, data)
		if err != nil {
			return err
		}

		var (
			prompt string
			header string
		)
		if kind.Tabular() {
			t, err := parseTable(name, data, kind)
			if err != nil {
				return err
			}
			successf("Loaded %s (%d rows, %d columns)", name, t.Rows(), t.Cols())
			prompt, err = insight.Compose(insight.EdaSummary, insight.FromTable(t), "")
			if err != nil {
				return err
			}
			header = "AI-Generated EDA Summary"
		} else {
			doc, err := document.ExtractPDF(name, data)
			if err != nil {
				return err
			}
			successf("Extracted %d characters from %s", doc.OriginalLen, name)
			prompt, err = insight.Compose(insight.DocumentAnalysis, insight.FromDocument(doc), "")
			if err != nil {
				return err
			}
			header = "Document Analysis"
		}

		if analyzeShowPrompt {
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
		fmt.Printf("\n%s\n\n%s\n", header, answer)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeShowPrompt, "show-prompt", false, "print the composed prompt instead of calling the AI")
	rootCmd.AddCommand(analyzeCmd)
}
