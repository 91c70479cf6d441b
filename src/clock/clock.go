// Package clock renders residue clock diagrams: concentric rings, one per normalized value,
// each split into a colored share and a white remainder, with the residue name (and id) in
// the middle.
//
// The drawing surface is injected through a plot.Provider and acquired once per diagram, so
// a Renderer holds no drawing state and may be used from several goroutines.
package clock

import (
	"bytes"
	"fmt"
	"time"

	"github.com/iafilius/ClockDiagram/src/logging"
	"github.com/iafilius/ClockDiagram/src/plot"
)

// Renderer turns requests into encoded diagrams.
type Renderer struct {
	provider plot.Provider
}

// NewRenderer returns a Renderer drawing on surfaces from provider. A nil provider selects
// the SVG surface.
func NewRenderer(provider plot.Provider) *Renderer {
	if provider == nil {
		provider = plot.SVG()
	}
	return &Renderer{provider: provider}
}

var defaultRenderer = NewRenderer(nil)

// CreateClockDiagram renders an SVG clock diagram for one residue. resID may be empty.
// The returned buffer is ready to be read from the start.
//
//	buf, err := clock.CreateClockDiagram("GLY", "932", []float64{0.3, 0.5, 0.6})
//	if err != nil { ... }
//	os.WriteFile("GLY_932.svg", buf.Bytes(), 0o644)
func CreateClockDiagram(resName, resID string, values []float64) (*bytes.Buffer, error) {
	return defaultRenderer.Render(Request{ResName: resName, ResID: resID, Values: values})
}

// Render validates req and draws it. Validation happens before a surface is created; on
// error no buffer is returned.
func (r *Renderer) Render(req Request) (*bytes.Buffer, error) {
	defer logging.TimeTrack(time.Now(), "clock diagram "+req.ResName)

	layout, err := BuildLayout(req)
	if err != nil {
		return nil, err
	}
	surface, err := r.provider(layout.Canvas)
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	debug := logging.Enabled(logging.LevelDebug)
	for _, ring := range layout.Rings {
		if debug {
			logging.Debugf("ring %d: fraction=%.3f radius=%.2f width=%.2f color=%s",
				ring.Index, ring.Fraction, ring.Radius, ring.Width, ring.Color)
		}
		for _, s := range ring.Sectors() {
			surface.Sector(s)
		}
	}
	surface.Text(layout.Label)

	buf := &bytes.Buffer{}
	if err := surface.Save(buf); err != nil {
		return nil, fmt.Errorf("encode diagram: %w", err)
	}
	return buf, nil
}
