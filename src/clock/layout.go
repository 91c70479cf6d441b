package clock

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/ClockDiagram/src/plot"
)

const (
	// Side is the edge of the square figure in inches.
	Side = 2.25
	// DPI is the output resolution hint.
	DPI = 300
	// MaxValues is the largest number of rings a diagram can hold.
	MaxValues = 5
	// FontSize of the center label in points.
	FontSize = 25

	baseRadius = 0.9
	// margin around the outermost ring, as a fraction of its radius.
	margin = 0.05
)

// Request is the input of one diagram.
type Request struct {
	ResName string
	ResID   string // optional; "" means no second label line
	Values  []float64
}

// Ring is one concentric layer. Index 0 is the innermost ring.
type Ring struct {
	Index      int
	Fraction   float64
	Complement float64
	Radius     float64
	Width      float64
	Color      drawing.Color
}

// Sectors returns the filled and the complementary wedge, both starting at 12 o'clock and
// running clockwise.
func (r Ring) Sectors() [2]plot.Sector {
	filled := -360 * r.Fraction
	return [2]plot.Sector{
		{Ring: r.Index, Radius: r.Radius, Width: r.Width, StartAngle: 90, Sweep: filled, Fill: r.Color},
		{Ring: r.Index, Radius: r.Radius, Width: r.Width, StartAngle: 90 + filled, Sweep: -360 * r.Complement, Fill: drawing.ColorWhite},
	}
}

// Layout is everything needed to draw a diagram, computed before any surface exists.
type Layout struct {
	Canvas plot.Canvas
	Rings  []Ring
	Label  plot.Text
}

// Validate checks a value list. Count errors win over range errors, so a list longer than
// MaxValues always reports ErrTooManyValues.
func Validate(values []float64) error {
	if len(values) == 0 {
		return ErrNoValues
	}
	if len(values) > MaxValues {
		return ErrTooManyValues
	}
	for i, v := range values {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return &ValueError{Index: i, Value: v, Err: ErrInvalidValue}
		}
	}
	return nil
}

// RingWidth is the donut thickness shared by every ring of an n-ring diagram.
func RingWidth(n int) float64 {
	if n <= 2 {
		return 0.3
	}
	return 0.2
}

// RingRadius is the outer radius of ring i.
func RingRadius(i int, width float64) float64 {
	return baseRadius + width*float64(i+1)
}

// Rings derives one ring per value. values must already be valid.
func Rings(values []float64) []Ring {
	width := RingWidth(len(values))
	colors := RingColors(len(values))
	rings := make([]Ring, len(values))
	for i, v := range values {
		rings[i] = Ring{
			Index:      i,
			Fraction:   v,
			Complement: 1 - v,
			Radius:     RingRadius(i, width),
			Width:      width,
			Color:      colors[i],
		}
	}
	return rings
}

// LabelFor places the residue name, and the residue id on a second line when given.
func LabelFor(resName, resID string) plot.Text {
	t := plot.Text{
		Lines:    []string{resName},
		Y:        -Side/2 + 0.9,
		FontSize: FontSize,
		Bold:     true,
		Color:    drawing.ColorBlack,
	}
	if resID != "" {
		t.Lines = append(t.Lines, resID)
		t.Y = -Side/2 + 0.67
	}
	return t
}

// BuildLayout validates req and computes the full diagram geometry.
func BuildLayout(req Request) (Layout, error) {
	if err := Validate(req.Values); err != nil {
		return Layout{}, err
	}
	rings := Rings(req.Values)
	outer := rings[len(rings)-1].Radius
	return Layout{
		Canvas: plot.Canvas{
			Side:        Side,
			DPI:         DPI,
			Extent:      outer * (1 + margin),
			Transparent: true,
		},
		Rings: rings,
		Label: LabelFor(req.ResName, req.ResID),
	}, nil
}
