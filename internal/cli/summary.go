package cli

import (
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
	"github.com/pgEdge/pgedge-agrigen/internal/analysis"
)

var summaryTop int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the executive summary for the filtered rows",
	Long: `Print total production, total market value, the top crop and the
highest-value states for the current selection.`,
	RunE: runSummary,
}

var tickerCmd = &cobra.Command{
	Use:   "ticker",
	Short: "Print the commodity ticker",
	Run: func(cmd *cobra.Command, args []string) {
		for _, e := range agri.Ticker() {
			cmd.Println(e.String())
		}
	},
}

func init() {
	addFilterFlags(summaryCmd)
	summaryCmd.Flags().IntVar(&summaryTop, "top", analysis.TopStatesLimit,
		"number of states to list by market value")
}

func runSummary(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateFilter(); err != nil {
		return err
	}

	f := currentFilter()
	records := f.Apply(newSession().Records())
	sum := analysis.Summarize(f, records)
	view := analysis.ViewFor(f, records)

	cmd.Println(sum.Title)
	cmd.Println()
	cmd.Printf("  Rows:             %d\n", sum.Rows)
	cmd.Printf("  Total production: %s\n", analysis.FormatBigNumber(sum.ProductionMT))
	cmd.Printf("  Market value:     $%s\n", analysis.FormatBigNumber(sum.MarketValueUSD))
	cmd.Printf("  Top crop:         %s\n", sum.TopCrop)
	cmd.Printf("  Map view:         %.4f, %.4f (zoom %d, pitch %d)\n",
		view.Latitude, view.Longitude, view.Zoom, view.Pitch)

	top := analysis.TopStatesByValue(records, summaryTop)
	if len(top) > 0 {
		cmd.Println()
		cmd.Println("Top states by market value:")
		for i, s := range top {
			cmd.Printf("  %2d. %-16s $%s\n", i+1, s.State, analysis.FormatBigNumber(s.MarketValueUSD))
		}
	}

	yields := analysis.MeanYieldByCrop(records)
	if len(yields) > 0 {
		cmd.Println()
		cmd.Println("Average yield index by crop:")
		for _, y := range yields {
			cmd.Printf("  %-10s %.3f\n", y.Crop, y.YieldIndex)
		}
	}
	return nil
}
