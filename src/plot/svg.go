package plot

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DefaultCreator is written into the SVG metadata.
const DefaultCreator = "ClockDiagram (https://github.com/iafilius/ClockDiagram)"

const (
	dateTag    = "<dc:date>"
	dateLayout = "2006-01-02T15:04:05.000000"
)

// Every line here is stable between renders except the dc:date one.
const metadataFmt = ` <metadata>
  <rdf:RDF xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:cc="http://creativecommons.org/ns#" xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
   <cc:Work>
    <dc:type rdf:resource="http://purl.org/dc/dcmitype/StillImage"/>
    ` + dateTag + `%s</dc:date>
    <dc:format>image/svg+xml</dc:format>
    <dc:creator>
     <cc:Agent>
      <dc:title>%s</dc:title>
     </cc:Agent>
    </dc:creator>
    <dc:description>resolution %d dpi</dc:description>
   </cc:Work>
  </rdf:RDF>
 </metadata>
`

// SVGOption customizes the SVG surface.
type SVGOption func(*svgSurface)

// WithClock sets the time source for the metadata date. Tests pin it to get stable output.
func WithClock(now func() time.Time) SVGOption {
	return func(s *svgSurface) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCreator overrides the creator recorded in the metadata.
func WithCreator(creator string) SVGOption {
	return func(s *svgSurface) { s.creator = creator }
}

// SVG returns a Provider producing vector surfaces. The document is sized in points
// (Side*72) and uses a viewBox of Side*DPI user units, so the DPI travels with the file.
func SVG(opts ...SVGOption) Provider {
	return func(c Canvas) (Surface, error) {
		if c.Pixels() <= 0 || c.Extent <= 0 {
			return nil, fmt.Errorf("invalid canvas side=%v dpi=%v extent=%v", c.Side, c.DPI, c.Extent)
		}
		s := &svgSurface{canvas: c, now: time.Now, creator: DefaultCreator}
		for _, o := range opts {
			o(s)
		}
		return s, nil
	}
}

type svgSurface struct {
	canvas  Canvas
	now     func() time.Time
	creator string
	sectors []Sector
	texts   []Text
}

func (s *svgSurface) Sector(sec Sector) { s.sectors = append(s.sectors, sec) }

func (s *svgSurface) Text(t Text) { s.texts = append(s.texts, t) }

func (s *svgSurface) Save(w io.Writer) error {
	ew := &errWriter{w: w}
	doc := svg.New(ew)
	px := s.canvas.Pixels()
	pt := int(math.Round(s.canvas.Points()))

	doc.Startunit(pt, pt, "pt", fmt.Sprintf(`viewBox="0 0 %d %d"`, px, px), `version="1.1"`)
	fmt.Fprintf(ew, metadataFmt, s.now().Format(dateLayout), html.EscapeString(s.creator), int(math.Round(s.canvas.DPI)))
	if title := s.title(); title != "" {
		doc.Title(title)
	}
	if !s.canvas.Transparent {
		doc.Rect(0, 0, px, px, "fill:#ffffff;stroke:none")
	}

	ring := -1
	for _, sec := range s.sectors {
		if sec.Ring != ring {
			if ring >= 0 {
				doc.Gend()
			}
			ring = sec.Ring
			doc.Group(fmt.Sprintf(`id="ring_%d"`, ring), `class="ring"`)
		}
		if sec.Empty() {
			continue
		}
		doc.Path(sectorPath(s.canvas, sec), `class="sector"`, fillStyle(sec.Fill))
	}
	if ring >= 0 {
		doc.Gend()
	}

	for i, t := range s.texts {
		id := "label"
		if i > 0 {
			id = fmt.Sprintf("label_%d", i)
		}
		doc.Gid(id)
		x, _ := s.canvas.ToPixel(t.X, t.Y)
		style := textStyle(s.canvas, t)
		for j, y := range baselines(s.canvas, t) {
			doc.Text(int(math.Round(x)), int(math.Round(y)), t.Lines[j], style)
		}
		doc.Gend()
	}
	doc.End()
	return ew.err
}

func (s *svgSurface) title() string {
	var parts []string
	for _, t := range s.texts {
		parts = append(parts, t.Lines...)
	}
	return strings.Join(parts, " ")
}

// sectorPath builds an annular wedge. Arcs are split into chunks of at most 90 degrees so
// full circles and the large-arc ambiguity never come up.
func sectorPath(c Canvas, s Sector) string {
	steps := int(math.Ceil(math.Abs(s.Sweep) / 90))
	if steps < 1 {
		steps = 1
	}
	step := s.Sweep / float64(steps)
	sweepFlag := 0
	if s.Sweep < 0 {
		sweepFlag = 1
	}
	ro := s.Radius * c.Scale()
	ri := s.Inner() * c.Scale()

	var b strings.Builder
	x, y := polar(c, s.Radius, s.StartAngle)
	fmt.Fprintf(&b, "M %s %s", num(x), num(y))
	for i := 1; i <= steps; i++ {
		x, y = polar(c, s.Radius, s.StartAngle+step*float64(i))
		fmt.Fprintf(&b, " A %s %s 0 0 %d %s %s", num(ro), num(ro), sweepFlag, num(x), num(y))
	}
	if ri <= 0 {
		cx, cy := c.ToPixel(0, 0)
		fmt.Fprintf(&b, " L %s %s Z", num(cx), num(cy))
		return b.String()
	}
	x, y = polar(c, s.Inner(), s.StartAngle+step*float64(steps))
	fmt.Fprintf(&b, " L %s %s", num(x), num(y))
	for i := steps - 1; i >= 0; i-- {
		x, y = polar(c, s.Inner(), s.StartAngle+step*float64(i))
		fmt.Fprintf(&b, " A %s %s 0 0 %d %s %s", num(ri), num(ri), 1-sweepFlag, num(x), num(y))
	}
	b.WriteString(" Z")
	return b.String()
}

func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if s == "-0.000" {
		return "0.000"
	}
	return s
}

func colorHex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func fillStyle(c drawing.Color) string {
	st := "fill:" + colorHex(c) + ";stroke:none"
	if c.A < 255 {
		st += ";fill-opacity:" + strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
	}
	return st
}

func textStyle(c Canvas, t Text) string {
	st := "text-anchor:middle;font-family:DejaVu Sans,Arial,sans-serif;font-size:" +
		strconv.FormatFloat(c.FontPixels(t.FontSize), 'f', 2, 64) + "px;fill:" + colorHex(t.Color)
	if t.Bold {
		st += ";font-weight:bold"
	}
	return st
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// FindDateLine returns the index of the metadata date line, or -1.
func FindDateLine(lines []string) int {
	for i, l := range lines {
		if strings.Contains(l, dateTag) {
			return i
		}
	}
	return -1
}

// StripDateLine removes the generation timestamp line so two renders can be compared byte for byte.
func StripDateLine(doc string) string {
	lines := strings.SplitAfter(doc, "\n")
	if i := FindDateLine(lines); i >= 0 {
		lines = append(lines[:i], lines[i+1:]...)
	}
	return strings.Join(lines, "")
}
