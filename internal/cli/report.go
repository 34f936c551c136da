package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
	"github.com/pgEdge/pgedge-agrigen/internal/export"
	"github.com/pgEdge/pgedge-agrigen/internal/logging"
	"github.com/pgEdge/pgedge-agrigen/internal/report"
)

var (
	reportInput        string
	reportOutput       string
	reportTitle        string
	reportRepeatHeader bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the filtered rows as a paginated PDF report",
	Long: `Render records as a PDF table with a running title header and page
number footer. Records come from a freshly generated table, or from a CSV
file previously written by 'generate --format csv'.

Example:
  pgedge-agrigen report --crop Corn --output corn.pdf`,
	RunE: runReport,
}

func init() {
	addFilterFlags(reportCmd)
	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "",
		"read records from this CSV file instead of generating them")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "",
		`output file ("-" for stdout, default: <export dir>/`+report.FileName+`)`)
	reportCmd.Flags().StringVar(&reportTitle, "title", "",
		"page header title")
	reportCmd.Flags().BoolVar(&reportRepeatHeader, "repeat-header", false,
		"repeat the column header row on every page")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportTitle != "" {
		cfg.Report.Title = reportTitle
	}
	if reportRepeatHeader {
		cfg.Report.RepeatHeader = true
	}

	var records []agri.Record
	if reportInput != "" {
		f, err := os.Open(reportInput)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()

		records, err = export.ReadCSV(f)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", reportInput, err)
		}
	} else {
		if err := cfg.ValidateFilter(); err != nil {
			return err
		}
		records = newSession().Records()
	}
	records = currentFilter().Apply(records)

	body, err := report.NewRenderer(reportOptions()).Render(records)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	dest, err := writeOutput(cmd.OutOrStdout(), reportOutput, report.FileName, body)
	if err != nil {
		return err
	}

	logging.Info().
		Int("rows", len(records)).
		Str("output", dest).
		Msg("Report written")
	return nil
}
