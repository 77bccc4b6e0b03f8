package surface

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestANSIFirstFrameIsFull(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf, 3, 2, termenv.TrueColor, black)
	a.DrawGlyph(1, 0, 'X', green)
	if err := a.Present(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[1;1H") {
		t.Errorf("frame does not start at home: %q", out)
	}
	if got := strings.Count(out, "X"); got != 1 {
		t.Errorf("glyph written %d times: %q", got, out)
	}
	if !strings.Contains(out, "38;2;0;255;0") {
		t.Errorf("missing true-color foreground: %q", out)
	}
	if !strings.Contains(out, "48;2;0;0;0") {
		t.Errorf("missing background: %q", out)
	}
	if !strings.Contains(out, "\x1b[2;1H") {
		t.Errorf("second row not positioned: %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Errorf("frame does not reset attributes: %q", out)
	}
}

func TestANSIDeltaWritesOnlyChanges(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf, 5, 3, termenv.TrueColor, black)
	if err := a.Present(); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	if err := a.Present(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unchanged frame wrote %q", buf.String())
	}

	a.DrawGlyph(3, 2, 'Y', white)
	if err := a.Present(); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[3;4H\x1b[38;2;255;255;255;48;2;0;0;0mY\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("delta frame = %q, want %q", got, want)
	}
}

func TestANSIResizeForcesFullFrame(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf, 2, 2, termenv.TrueColor, black)
	if err := a.Present(); err != nil {
		t.Fatal(err)
	}
	if err := a.Resize(3, 1); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := a.Present(); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), " "); got != 3 {
		t.Errorf("full frame after resize wrote %d cells: %q", got, buf.String())
	}
}

func TestANSIAsciiProfileHasNoColors(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf, 2, 1, termenv.Ascii, black)
	a.DrawGlyph(0, 0, '1', green)
	if err := a.Present(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "38;") || strings.Contains(buf.String(), "48;") {
		t.Errorf("ascii profile wrote colors: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "1 ") {
		t.Errorf("glyphs missing: %q", buf.String())
	}
}

func TestANSIWideGlyphCoversNextCell(t *testing.T) {
	var buf bytes.Buffer
	a := NewANSI(&buf, 4, 1, termenv.Ascii, black)
	a.DrawGlyph(0, 0, '書', green)
	if err := a.Present(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.Contains(got, "書  ") || strings.Count(got, " ") != 2 {
		t.Errorf("wide glyph frame = %q", got)
	}
}
