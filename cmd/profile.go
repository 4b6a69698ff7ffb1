package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/SAIRAALMAS88/AI-FYP/internal/profile"
	"github.com/SAIRAALMAS88/AI-FYP/internal/utils"
)

var profileOut string

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Generate an HTML profiling report for a dataset",
	Long: `Profile computes per-column statistics (missing values, uniques, numeric
min/max/mean/std, top categorical values) and writes a standalone HTML report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}

		rep := profile.Build(t)
		// Render to a temp file first; it is always removed, the output copy
		// is made from it.
		tmpPath, cleanup, err := rep.WriteTemp()
		if err != nil {
			return err
		}
		defer cleanup()

		html, err := os.ReadFile(tmpPath)
		if err != nil {
			return err
		}
		if err := utils.SafeWriteFile(profileOut, html); err != nil {
			return err
		}
		successf("Profiled %s (%d rows, %d columns), report written to %s", rep.Name, rep.Rows, rep.Cols, profileOut)
		return nil
	},
}

func init() {
	profileCmd.Flags().StringVarP(&profileOut, "output", "o", "data_profile.html", "output HTML path")
	rootCmd.AddCommand(profileCmd)
}
