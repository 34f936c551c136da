// Package export serializes record sets into downloadable formats.
package export

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pgEdge/pgedge-agrigen/internal/agri"
)

// Exporter serializes a record set into one file format.
type Exporter interface {
	// Name returns the format name used on the command line and in URLs.
	Name() string

	// ContentType returns the MIME type of the output.
	ContentType() string

	// FileName returns the download file name for filtered exports.
	FileName() string

	// Export serializes records in input order.
	Export(records []agri.Record) ([]byte, error)
}

var (
	registry = make(map[string]Exporter)
	mu       sync.RWMutex
)

// Register adds an exporter, replacing any exporter with the same name.
func Register(e Exporter) {
	mu.Lock()
	defer mu.Unlock()
	registry[e.Name()] = e
}

// Get retrieves an exporter by name.
func Get(name string) (Exporter, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown export format: %s", name)
	}
	return e, nil
}

// List returns all registered format names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(CSV{})
	Register(XLSX{})
	Register(NewPDF(nil))
}
