package plot

import (
	"fmt"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Format is an output encoding for a diagram.
type Format string

const (
	// FormatSVG is the native vector output with metadata and exact sector geometry.
	FormatSVG Format = "svg"
	// FormatPNG rasterizes through go-chart.
	FormatPNG Format = "png"
)

// ParseFormat converts a user supplied name (or file extension) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "svg", "":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unknown format: %s (must be svg or png)", s)
	}
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string { return "." + string(f) }

// ProviderFor returns the surface provider that produces f.
func ProviderFor(f Format, opts ...SVGOption) (Provider, error) {
	switch f {
	case FormatSVG:
		return SVG(opts...), nil
	case FormatPNG:
		return Chart(chart.PNG), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
}

// AvailableFormats lists every Format ProviderFor accepts.
func AvailableFormats() []Format { return []Format{FormatSVG, FormatPNG} }
