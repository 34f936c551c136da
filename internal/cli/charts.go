package cli

import (
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-agrigen/internal/analysis"
	"github.com/pgEdge/pgedge-agrigen/internal/chart"
	"github.com/pgEdge/pgedge-agrigen/internal/logging"
)

var chartsDir string

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Write the analytics bar charts as PNG files",
	Long: `Write two PNG charts for the current selection: the top states by market
value and the average yield index per crop.`,
	RunE: runCharts,
}

func init() {
	addFilterFlags(chartsCmd)
	chartsCmd.Flags().StringVar(&chartsDir, "dir", "",
		"output directory (default: the configured export dir)")
}

func runCharts(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateFilter(); err != nil {
		return err
	}
	if chartsDir != "" {
		cfg.Export.Dir = chartsDir
	}

	records := currentFilter().Apply(newSession().Records())

	top, err := chart.TopStates(analysis.TopStatesByValue(records, analysis.TopStatesLimit), chart.DefaultSize)
	if err != nil {
		return err
	}
	yields, err := chart.YieldByCrop(analysis.MeanYieldByCrop(records), chart.DefaultSize)
	if err != nil {
		return err
	}

	for name, body := range map[string][]byte{chart.TopStatesFile: top, chart.YieldFile: yields} {
		dest, err := writeOutput(cmd.OutOrStdout(), "", name, body)
		if err != nil {
			return err
		}
		logging.Info().Str("output", dest).Msg("Chart written")
	}
	return nil
}
