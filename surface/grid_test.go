package surface

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"digital_rain/rain"
)

var (
	black = rain.Color{}
	green = rain.Color{R: 0, G: 255, B: 0}
	white = rain.Color{R: 255, G: 255, B: 255}
)

func TestNewGridFilledWithBackground(t *testing.T) {
	g := NewGrid(4, 3, green)
	if w, h, _ := g.Size(); w != 4 || h != 3 {
		t.Fatalf("Size() = %dx%d, want 4x3", w, h)
	}
	for y := range 3 {
		for x := range 4 {
			c := g.At(x, y)
			if c.Glyph != 0 || rain.FromColorful(c.Bg) != green {
				t.Errorf("cell (%d,%d) = %+v", x, y, c)
			}
		}
	}
}

func TestDrawGlyphClips(t *testing.T) {
	g := NewGrid(3, 3, black)
	g.DrawGlyph(-1, 0, 'x', white)
	g.DrawGlyph(0, 3, 'x', white)
	g.DrawGlyph(3, 0, 'x', white)
	g.DrawGlyph(1, 1, 'y', white)
	for y := range 3 {
		for x := range 3 {
			want := rune(0)
			if x == 1 && y == 1 {
				want = 'y'
			}
			if got := g.At(x, y).Glyph; got != want {
				t.Errorf("cell (%d,%d) glyph = %q, want %q", x, y, got, want)
			}
		}
	}
}

// TestFadeConverges fades a glyph without drawing anything new: its color
// must move monotonically toward the background, never away from it, and
// the glyph must eventually disappear.
func TestFadeConverges(t *testing.T) {
	g := NewGrid(2, 1, black)
	g.DrawGlyph(0, 0, 'Z', white)
	target := black.Colorful()

	prev := g.At(0, 0).Fg.DistanceRgb(target)
	cleared := false
	for i := range 200 {
		g.FillRect(0, 0, 2, 1, black, 0.1)
		c := g.At(0, 0)
		d := c.Fg.DistanceRgb(target)
		if d > prev {
			t.Fatalf("fade %d moved away from background: %v -> %v", i, prev, d)
		}
		prev = d
		if c.Glyph == 0 {
			cleared = true
			break
		}
	}
	if !cleared {
		t.Fatal("glyph never faded out")
	}
	if got := rain.FromColorful(g.At(0, 0).Fg); got != black {
		t.Errorf("faded color = %v, want %v", got, black)
	}
	if got := g.At(1, 0); got.Glyph != 0 || rain.FromColorful(got.Bg) != black {
		t.Errorf("untouched cell changed: %+v", got)
	}
}

func TestFadeFullOpacityClears(t *testing.T) {
	g := NewGrid(3, 2, black)
	g.DrawGlyph(2, 1, 'Q', green)
	g.FillRect(0, 0, 3, 2, black, 1)
	if c := g.At(2, 1); c.Glyph != 0 {
		t.Errorf("glyph survived an opaque fill: %+v", c)
	}
}

func TestFillRectClips(t *testing.T) {
	g := NewGrid(3, 3, black)
	g.FillRect(1, 1, 10, 10, white, 1)
	for y := range 3 {
		for x := range 3 {
			want := black
			if x >= 1 && y >= 1 {
				want = white
			}
			if got := rain.FromColorful(g.At(x, y).Bg); got != want {
				t.Errorf("cell (%d,%d) bg = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestGridResizeKeepsOverlap(t *testing.T) {
	g := NewGrid(4, 4, black)
	g.DrawGlyph(0, 0, 'a', white)
	g.DrawGlyph(1, 2, 'b', white)
	g.DrawGlyph(3, 3, 'c', white)
	if err := g.Resize(2, 5); err != nil {
		t.Fatal(err)
	}
	var got []rune
	for y := range 5 {
		for x := range 2 {
			if r := g.At(x, y).Glyph; r != 0 {
				got = append(got, r)
			}
		}
	}
	if diff := cmp.Diff([]rune{'a', 'b'}, got); diff != "" {
		t.Errorf("glyphs after resize (-want +got):\n%s", diff)
	}
	if err := g.Resize(-1, 2); err == nil {
		t.Error("Resize(-1, 2) succeeded")
	}
}

func TestCellSize(t *testing.T) {
	tests := []struct {
		alphabet string
		width    int
	}{
		{"01", 1},
		{"ｱｲｳ", 1},
		{"書道日本", 2},
		{"ab書", 2},
		{"", 1},
	}
	for _, tt := range tests {
		w, h := CellSize([]rune(tt.alphabet))
		if w != tt.width || h != 1 {
			t.Errorf("CellSize(%q) = %dx%d, want %dx1", tt.alphabet, w, h, tt.width)
		}
	}
}
