package export

import (
	"github.com/pgEdge/pgedge-agrigen/internal/agri"
	"github.com/pgEdge/pgedge-agrigen/internal/report"
)

// PDF renders records through report.Renderer.
type PDF struct {
	renderer *report.Renderer
}

// NewPDF wraps renderer; nil selects a renderer with default options.
func NewPDF(renderer *report.Renderer) *PDF {
	if renderer == nil {
		renderer = report.NewRenderer(report.Options{})
	}
	return &PDF{renderer: renderer}
}

func (p *PDF) Name() string        { return "pdf" }
func (p *PDF) ContentType() string { return "application/pdf" }
func (p *PDF) FileName() string    { return report.FileName }

// Export implements Exporter.
func (p *PDF) Export(records []agri.Record) ([]byte, error) {
	return p.renderer.Render(records)
}
