package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SAIRAALMAS88/AI-FYP/internal/viz"
)

var (
	chartKind  string
	chartX     string
	chartY     string
	chartColor string
	chartFacet string
	chartOut   string
)

var chartCmd = &cobra.Command{
	Use:   "chart <file>",
	Short: "Render a chart of a dataset to an HTML file",
	Long: `Chart validates the requested chart against the dataset's columns and
renders it as a self-contained HTML file. Scatter and line charts require a
numeric y column; histogram, bar, and box charts aggregate when y is omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}

		ck, err := viz.ParseChartKind(chartKind)
		if err != nil {
			return err
		}
		spec, err := viz.BuildSpec(t, ck, chartX, chartY, chartColor, chartFacet)
		if err != nil {
			return err
		}
		if err := viz.RenderFile(chartOut, spec, t); err != nil {
			return err
		}
		successf("Chart written to %s", chartOut)
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVar(&chartKind, "kind", "", "chart kind: histogram, box, scatter, bar, line")
	chartCmd.Flags().StringVar(&chartX, "x", "", "x-axis column")
	chartCmd.Flags().StringVar(&chartY, "y", "none", "y-axis column (numeric; optional for histogram/bar/box)")
	chartCmd.Flags().StringVar(&chartColor, "color", "none", "column to group series by")
	chartCmd.Flags().StringVar(&chartFacet, "facet", "none", "column to split into panels by")
	chartCmd.Flags().StringVarP(&chartOut, "output", "o", "chart.html", "output HTML path")
	_ = chartCmd.MarkFlagRequired("kind")
	_ = chartCmd.MarkFlagRequired("x")
	rootCmd.AddCommand(chartCmd)
}
