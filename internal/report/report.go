//-------------------------------------------------------------------------
//
// pgEdge Agriculture Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package report renders filtered records as a paginated PDF table.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"codeberg.org/go-pdf/fpdf"
	"github.com/jonboulle/clockwork"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
	"github.com/pgEdge/pgedge-agrigen/internal/logging"
)

// DefaultTitle is the running header text.
const DefaultTitle = "USA Agriculture 2025 - Production Report (Values in Millions)"

// FileName is the download name for filtered reports.
const FileName = "usa_agri_report_filtered_2025.pdf"

// ErrMalformedRecord is returned when a record lacks a required field.
var ErrMalformedRecord = errors.New("malformed record")

// Table geometry in millimetres.
const (
	colWidth  = 45.0
	rowHeight = 10.0
	fontName  = "Arial"
)

var columns = []string{agri.ColState, agri.ColCrop, agri.ColProductionMT, agri.ColMarketValueUSD}

// PageFunc draws onto the current page. It is invoked by the pagination
// engine, so it runs again for every page the table flows onto.
type PageFunc func(pdf *fpdf.Fpdf)

// Options configures a Renderer. Zero values select the defaults.
type Options struct {
	// Title is drawn by the default page header.
	Title string

	// OnPageStart runs at the top of every page.
	OnPageStart PageFunc

	// OnPageEnd runs at the bottom of every page.
	OnPageEnd PageFunc

	// RepeatHeader redraws the column header row after each automatic
	// page break. Off by default: the table header appears only on the
	// first page.
	RepeatHeader bool

	// Clock stamps the document creation date.
	Clock clockwork.Clock
}

// Renderer turns records into PDF bytes.
type Renderer struct {
	opts Options
}

// NewRenderer creates a Renderer, filling unset options with defaults.
func NewRenderer(opts Options) *Renderer {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.OnPageStart == nil {
		opts.OnPageStart = TitleHeader(opts.Title)
	}
	if opts.OnPageEnd == nil {
		opts.OnPageEnd = PageNumberFooter
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Renderer{opts: opts}
}

// TitleHeader returns a page header that centers title in bold 14pt
// followed by a 10mm gap.
func TitleHeader(title string) PageFunc {
	return func(pdf *fpdf.Fpdf) {
		pdf.SetFont(fontName, "B", 14)
		pdf.CellFormat(0, 10, title, "0", 1, "C", false, 0, "")
		pdf.Ln(10)
	}
}

// PageNumberFooter writes "Page N" centered 15mm above the bottom edge.
func PageNumberFooter(pdf *fpdf.Fpdf) {
	pdf.SetY(-15)
	pdf.SetFont(fontName, "I", 8)
	pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "0", 0, "C", false, 0, "")
}

// Render validates records and returns the finished document.
func (r *Renderer) Render(records []agri.Record) ([]byte, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(r.opts.Clock.Now())
	pdf.SetCatalogSort(true)
	pdf.SetTitle(r.opts.Title, false)
	pdf.SetCreator("pgedge-agrigen", false)

	pdf.SetHeaderFunc(func() {
		r.opts.OnPageStart(pdf)
		if r.opts.RepeatHeader && pdf.PageNo() > 1 {
			pdf.SetFont(fontName, "", 10)
			drawColumnHeader(pdf)
		}
	})
	pdf.SetFooterFunc(func() {
		r.opts.OnPageEnd(pdf)
	})

	pdf.AddPage()
	pdf.SetFont(fontName, "", 10)
	drawColumnHeader(pdf)

	for _, rec := range records {
		pdf.CellFormat(colWidth, rowHeight, rec.State, "1", 0, "", false, 0, "")
		pdf.CellFormat(colWidth, rowHeight, rec.Crop, "1", 0, "", false, 0, "")
		pdf.CellFormat(colWidth, rowHeight, fmt.Sprintf("%.2f", rec.ProductionMT), "1", 0, "", false, 0, "")
		pdf.CellFormat(colWidth, rowHeight, fmt.Sprintf("$%.2f", rec.MarketValueUSD), "1", 0, "", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	logging.Debug().
		Int("rows", len(records)).
		Int("pages", pdf.PageCount()).
		Int("bytes", buf.Len()).
		Msg("Rendered report")

	return buf.Bytes(), nil
}

func drawColumnHeader(pdf *fpdf.Fpdf) {
	pdf.SetFillColor(200, 220, 255)
	for _, col := range columns {
		pdf.CellFormat(colWidth, rowHeight, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFillColor(255, 255, 255)
}

// Validate checks that every record carries the fields the table prints.
func Validate(records []agri.Record) error {
	for i, rec := range records {
		switch {
		case rec.State == "":
			return fmt.Errorf("row %d: missing state: %w", i, ErrMalformedRecord)
		case rec.Crop == "":
			return fmt.Errorf("row %d: missing crop: %w", i, ErrMalformedRecord)
		case !finite(rec.ProductionMT):
			return fmt.Errorf("row %d: production is not a number: %w", i, ErrMalformedRecord)
		case !finite(rec.MarketValueUSD):
			return fmt.Errorf("row %d: market value is not a number: %w", i, ErrMalformedRecord)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
