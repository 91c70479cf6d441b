// Package plot holds the drawing surfaces a clock diagram is rendered onto.
//
// A Surface is acquired per diagram from a Provider, receives sectors and text in data
// coordinates (origin at the canvas center, y up) and serializes itself on Save. Surfaces
// are never shared between diagrams, so independent renders can run concurrently.
package plot

import (
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Canvas describes the physical figure a surface draws onto.
type Canvas struct {
	// Side is the edge length of the square figure in inches.
	Side float64
	// DPI is the resolution used for pixel coordinates and font scaling.
	DPI float64
	// Extent is the half-width of the visible data range; data point (Extent, 0) lands on the right edge.
	Extent float64
	// Transparent leaves the background unpainted.
	Transparent bool
}

// Pixels returns the edge length of the canvas in device pixels at c.DPI.
func (c Canvas) Pixels() int { return int(math.Round(c.Side * c.DPI)) }

// Points returns the edge length in typographic points (1/72 in).
func (c Canvas) Points() float64 { return c.Side * 72 }

// Scale returns device pixels per data unit.
func (c Canvas) Scale() float64 {
	if c.Extent <= 0 {
		return 0
	}
	return float64(c.Pixels()) / (2 * c.Extent)
}

// ToPixel maps a data coordinate to device pixels (y grows downwards).
func (c Canvas) ToPixel(x, y float64) (float64, float64) {
	half := float64(c.Pixels()) / 2
	s := c.Scale()
	return half + x*s, half - y*s
}

// FontPixels converts a font size in points to device pixels.
func (c Canvas) FontPixels(points float64) float64 { return points * c.DPI / 72 }

// Sector is one wedge of a ring. Angles are in degrees, counter-clockwise from 3 o'clock;
// a negative Sweep runs clockwise.
type Sector struct {
	Ring       int
	Radius     float64
	Width      float64
	StartAngle float64
	Sweep      float64
	Fill       drawing.Color
}

// Inner returns the inner radius of the sector, never below zero.
func (s Sector) Inner() float64 { return math.Max(0, s.Radius-s.Width) }

// Empty reports whether the sector covers no area.
func (s Sector) Empty() bool { return s.Sweep == 0 || s.Radius <= 0 }

// Text is a horizontally centered block of lines. Y is the baseline of the last line.
type Text struct {
	Lines    []string
	X, Y     float64
	FontSize float64 // points
	Bold     bool
	Color    drawing.Color
}

// Surface is the drawing capability a diagram is rendered with.
type Surface interface {
	Sector(s Sector)
	Text(t Text)
	Save(w io.Writer) error
}

// Provider creates a fresh Surface for one figure.
type Provider func(c Canvas) (Surface, error)

const lineSpacing = 1.2

// baselines returns the pixel baseline of every line of t, last line at t.Y.
func baselines(c Canvas, t Text) []float64 {
	_, y := c.ToPixel(t.X, t.Y)
	step := c.FontPixels(t.FontSize) * lineSpacing
	out := make([]float64, len(t.Lines))
	for i := range t.Lines {
		out[i] = y - float64(len(t.Lines)-1-i)*step
	}
	return out
}

// polar returns the pixel position at radius r (data units) and angle deg.
func polar(c Canvas, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return c.ToPixel(r*math.Cos(rad), r*math.Sin(rad))
}
