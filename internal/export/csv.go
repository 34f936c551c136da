package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
)

// CSVFileName is the download name for filtered CSV exports.
const CSVFileName = "usa_agri_filtered_2025.csv"

// CSV writes records as comma-separated UTF-8 with a header row.
type CSV struct{}

func (CSV) Name() string        { return "csv" }
func (CSV) ContentType() string { return "text/csv" }
func (CSV) FileName() string    { return CSVFileName }

// Export implements Exporter.
func (c CSV) Export(records []agri.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes the header row and one line per record.
func WriteCSV(w io.Writer, records []agri.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(agri.Columns()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.State,
			r.Crop,
			formatFloat(r.Latitude),
			formatFloat(r.Longitude),
			formatFloat(r.ProductionMT),
			formatFloat(r.MarketValueUSD),
			formatFloat(r.YieldIndex),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a file produced by WriteCSV. Columns are matched by
// header name, so their order may differ.
func ReadCSV(r io.Reader) ([]agri.Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, col := range agri.Columns() {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("csv is missing column %q", col)
		}
	}

	var records []agri.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		var rec agri.Record
		rec.State = row[idx[agri.ColState]]
		rec.Crop = row[idx[agri.ColCrop]]
		fields := []struct {
			col string
			dst *float64
		}{
			{agri.ColLatitude, &rec.Latitude},
			{agri.ColLongitude, &rec.Longitude},
			{agri.ColProductionMT, &rec.ProductionMT},
			{agri.ColMarketValueUSD, &rec.MarketValueUSD},
			{agri.ColYieldIndex, &rec.YieldIndex},
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(row[idx[f.col]], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid %s: %w", line, f.col, err)
			}
			*f.dst = v
		}
		records = append(records, rec)
	}
	return records, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
