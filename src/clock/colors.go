package clock

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// viridisStops are samples of the matplotlib viridis table, dark to light, at every ninth
// and every eighth of the scale. Ring colors of 1 to 5 ring diagrams fall exactly on a stop.
var viridisStops = []struct {
	pos float64
	hex string
}{
	{0, "#440154"},
	{1.0 / 9, "#482878"},
	{1.0 / 8, "#472d7b"},
	{2.0 / 9, "#3e4a89"},
	{2.0 / 8, "#3b528b"},
	{3.0 / 9, "#31688e"},
	{3.0 / 8, "#2c728e"},
	{4.0 / 9, "#26828e"},
	{4.0 / 8, "#21918c"},
	{5.0 / 9, "#1f9e89"},
	{5.0 / 8, "#28ae80"},
	{6.0 / 9, "#35b779"},
	{6.0 / 8, "#5ec962"},
	{7.0 / 9, "#6ece58"},
	{7.0 / 8, "#addc30"},
	{8.0 / 9, "#b5de2b"},
	{1, "#fde725"},
}

var viridis = mustStops()

func mustStops() []colorful.Color {
	out := make([]colorful.Color, len(viridisStops))
	for i, s := range viridisStops {
		c, err := colorful.Hex(s.hex)
		if err != nil {
			panic("clock: bad color stop " + s.hex)
		}
		out[i] = c
	}
	return out
}

// Sample returns the color at position t of the reversed viridis scale: t=0 is the light
// yellow end, t=1 the dark purple end. t is clamped to [0,1]; NaN maps to 0.
func Sample(t float64) drawing.Color {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	pos := 1 - t
	for i := 1; i < len(viridisStops); i++ {
		lo, hi := viridisStops[i-1].pos, viridisStops[i].pos
		if pos <= hi {
			return toDrawing(viridis[i-1].BlendRgb(viridis[i], (pos-lo)/(hi-lo)))
		}
	}
	return toDrawing(viridis[len(viridis)-1])
}

// RingColors samples n colors at linspace(0, 1, n) of the reversed scale; index 0 is the
// innermost ring. A single ring gets the start of the scale.
func RingColors(n int) []drawing.Color {
	if n <= 0 {
		return nil
	}
	out := make([]drawing.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = Sample(t)
	}
	return out
}

func toDrawing(c colorful.Color) drawing.Color {
	r, g, b := c.Clamped().RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}
