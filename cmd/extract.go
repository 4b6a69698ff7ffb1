package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SAIRAALMAS88/AI-FYP/internal/document"
	"github.com/SAIRAALMAS88/AI-FYP/internal/format"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract and preview the text content of a PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, data, err := readUpload(args[0])
		if err != nil {
			return err
		}
		kind, err := format.Detect(name, data)
		if err != nil {
			return err
		}
		if kind != format.PDF {
			return fmt.Errorf("extract requires a PDF file, got %s", kind)
		}
		doc, err := document.ExtractPDF(name, data)
		if err != nil {
			return err
		}
		successf("Extracted %d characters from %s", doc.OriginalLen, name)
		fmt.Println(doc.Display())
		if doc.OriginalLen > document.DisplayCap {
			fmt.Printf("\n(showing first %d of %d characters)\n", document.DisplayCap, doc.OriginalLen)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
