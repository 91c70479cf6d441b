package plot

import (
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// innerEdgeStep is the angular resolution (degrees) of the sampled inner edge of a sector.
const innerEdgeStep = 2.0

// Chart returns a Provider that draws through a go-chart renderer, e.g. chart.PNG for
// raster output or chart.SVG for go-chart's own vector writer.
func Chart(rp chart.RendererProvider) Provider {
	return func(c Canvas) (Surface, error) {
		px := c.Pixels()
		if px <= 0 || c.Extent <= 0 {
			return nil, fmt.Errorf("invalid canvas side=%v dpi=%v extent=%v", c.Side, c.DPI, c.Extent)
		}
		r, err := rp(px, px)
		if err != nil {
			return nil, fmt.Errorf("create chart renderer: %w", err)
		}
		r.SetDPI(c.DPI)
		if !c.Transparent {
			r.SetFillColor(drawing.ColorWhite)
			r.MoveTo(0, 0)
			r.LineTo(px, 0)
			r.LineTo(px, px)
			r.LineTo(0, px)
			r.Close()
			r.Fill()
		}
		return &chartSurface{canvas: c, r: r}, nil
	}
}

type chartSurface struct {
	canvas Canvas
	r      chart.Renderer
	err    error
}

// Sector fills the wedge as one polygon: outer edge through ArcTo, inner edge sampled
// backwards. go-chart angles run clockwise from 3 o'clock in radians.
func (s *chartSurface) Sector(sec Sector) {
	if sec.Empty() {
		return
	}
	start := -sec.StartAngle
	delta := -sec.Sweep
	if delta < 0 {
		start += delta
		delta = -delta
	}
	cxf, cyf := s.canvas.ToPixel(0, 0)
	cx, cy := int(math.Round(cxf)), int(math.Round(cyf))
	ro := sec.Radius * s.canvas.Scale()
	ri := sec.Inner() * s.canvas.Scale()

	s.r.ResetStyle()
	s.r.SetFillColor(sec.Fill)
	s.r.SetStrokeColor(drawing.ColorTransparent)
	s.r.SetStrokeWidth(0)

	s.r.MoveTo(px(cxf, ro, start, math.Cos), px(cyf, ro, start, math.Sin))
	// go-chart's vector arc degenerates when start and end coincide, so full turns are chunked.
	chunks := int(math.Ceil(delta / 90))
	for i := 0; i < chunks; i++ {
		from := start + delta*float64(i)/float64(chunks)
		s.r.ArcTo(cx, cy, ro, ro, degToRad(from), degToRad(delta/float64(chunks)))
	}
	if ri <= 0 {
		s.r.LineTo(cx, cy)
	} else {
		steps := int(math.Ceil(delta / innerEdgeStep))
		for i := steps; i >= 0; i-- {
			a := start + delta*float64(i)/float64(steps)
			s.r.LineTo(px(cxf, ri, a, math.Cos), px(cyf, ri, a, math.Sin))
		}
	}
	s.r.Close()
	s.r.Fill()
}

func (s *chartSurface) Text(t Text) {
	f, err := chart.GetDefaultFont()
	if err != nil {
		s.err = fmt.Errorf("load font: %w", err)
		return
	}
	s.r.ResetStyle()
	s.r.SetFont(f)
	s.r.SetFontSize(t.FontSize)
	s.r.SetFontColor(t.Color)
	x, _ := s.canvas.ToPixel(t.X, t.Y)
	for i, y := range baselines(s.canvas, t) {
		box := s.r.MeasureText(t.Lines[i])
		s.r.Text(t.Lines[i], int(math.Round(x))-box.Width()/2, int(math.Round(y)))
	}
}

func (s *chartSurface) Save(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return s.r.Save(w)
}

func px(center, radius, deg float64, trig func(float64) float64) int {
	return int(math.Round(center + radius*trig(degToRad(deg))))
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
