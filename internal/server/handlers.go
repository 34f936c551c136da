package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
	"github.com/pgEdge/pgedge-agrigen/internal/analysis"
	"github.com/pgEdge/pgedge-agrigen/internal/chart"
	"github.com/pgEdge/pgedge-agrigen/internal/export"
)

type summaryResponse struct {
	analysis.Summary
	Production  string        `json:"production_display"`
	MarketValue string        `json:"market_value_display"`
	View        analysis.View `json:"view"`
}

type tickerItem struct {
	agri.TickerEntry
	Up      bool   `json:"up"`
	Display string `json:"display"`
}

func (s *Server) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// filtered binds the crop/state query parameters and applies them to the
// session table.
func (s *Server) filtered(c *gin.Context) (analysis.Filter, []agri.Record, bool) {
	var f analysis.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return f, nil, false
	}
	return f, f.Apply(s.session.Records()), true
}

func (s *Server) getRecords(c *gin.Context) {
	f, records, ok := s.filtered(c)
	if !ok {
		return
	}
	s.metrics.RecordsServed.Add(float64(len(records)))
	c.JSON(http.StatusOK, gin.H{
		"snapshot": s.session.Snapshot(),
		"filter":   f,
		"rows":     len(records),
		"records":  records,
	})
}

func (s *Server) getSummary(c *gin.Context) {
	f, records, ok := s.filtered(c)
	if !ok {
		return
	}
	sum := analysis.Summarize(f, records)
	c.JSON(http.StatusOK, summaryResponse{
		Summary:     sum,
		Production:  analysis.FormatBigNumber(sum.ProductionMT),
		MarketValue: analysis.FormatBigNumber(sum.MarketValueUSD),
		View:        analysis.ViewFor(f, records),
	})
}

func (s *Server) getMap(c *gin.Context) {
	f, records, ok := s.filtered(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"view":   analysis.ViewFor(f, records),
		"points": analysis.MapPoints(records),
	})
}

func (s *Server) getAnalytics(c *gin.Context) {
	_, records, ok := s.filtered(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"top_states":    analysis.TopStatesByValue(records, analysis.TopStatesLimit),
		"yield_by_crop": analysis.MeanYieldByCrop(records),
	})
}

func (s *Server) getChart(c *gin.Context) {
	_, records, ok := s.filtered(c)
	if !ok {
		return
	}

	var (
		png []byte
		err error
	)
	switch c.Param("name") {
	case chart.TopStatesFile:
		png, err = chart.TopStates(analysis.TopStatesByValue(records, analysis.TopStatesLimit), chart.DefaultSize)
	case chart.YieldFile:
		png, err = chart.YieldByCrop(analysis.MeanYieldByCrop(records), chart.DefaultSize)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown chart"})
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("Chart rendering failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) getTicker(c *gin.Context) {
	entries := agri.Ticker()
	items := make([]tickerItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, tickerItem{TickerEntry: e, Up: e.Up(), Display: e.String()})
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) getOptions(c *gin.Context) {
	records := s.session.Records()
	c.JSON(http.StatusOK, gin.H{
		"crops":  analysis.CropOptions(records),
		"states": analysis.StateOptions(records),
	})
}

func (s *Server) exporter(format string) (export.Exporter, error) {
	if format == s.pdf.Name() {
		return s.pdf, nil
	}
	return export.Get(format)
}

func (s *Server) getExport(c *gin.Context) {
	format := c.Param("format")
	e, err := s.exporter(format)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	_, records, ok := s.filtered(c)
	if !ok {
		return
	}

	body, err := e.Export(records)
	if err != nil {
		s.metrics.Exports.WithLabelValues(format, "error").Inc()
		s.log.Error().Err(err).Str("format", format).Msg("Export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.metrics.Exports.WithLabelValues(format, "success").Inc()

	c.Header("Content-Disposition", `attachment; filename="`+e.FileName()+`"`)
	c.Data(http.StatusOK, e.ContentType(), body)
}

func (s *Server) getAsset(c *gin.Context) {
	body, ok := s.loadAsset(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true, "animation": body})
}
