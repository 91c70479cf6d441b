package plot

import "testing"

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"svg":  FormatSVG,
		"SVG":  FormatSVG,
		".svg": FormatSVG,
		"":     FormatSVG,
		"png":  FormatPNG,
		" PNG": FormatPNG,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Errorf("expected error for pdf")
	}
}

func TestProviderFor(t *testing.T) {
	for _, f := range AvailableFormats() {
		p, err := ProviderFor(f)
		if err != nil || p == nil {
			t.Fatalf("ProviderFor(%s) = %v, %v", f, p, err)
		}
		if _, err := p(ringCanvas()); err != nil {
			t.Fatalf("%s surface: %v", f, err)
		}
	}
	if _, err := ProviderFor(Format("gif")); err == nil {
		t.Fatalf("expected error for gif")
	}
	if FormatPNG.Extension() != ".png" {
		t.Fatalf("extension = %s", FormatPNG.Extension())
	}
}
