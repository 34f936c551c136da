package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
)

// XLSXFileName is the download name for filtered workbook exports.
const XLSXFileName = "usa_agri_filtered_2025.xlsx"

// SheetName is the worksheet holding the records.
const SheetName = "Records"

// XLSX writes records into a single-sheet workbook with numeric cells.
type XLSX struct{}

func (XLSX) Name() string { return "xlsx" }
func (XLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (XLSX) FileName() string { return XLSXFileName }

// Export implements Exporter.
func (XLSX) Export(records []agri.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, 0, len(agri.Columns()))
	for _, col := range agri.Columns() {
		header = append(header, col)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "G", 18); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			r.State, r.Crop, r.Latitude, r.Longitude,
			r.ProductionMT, r.MarketValueUSD, r.YieldIndex,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
