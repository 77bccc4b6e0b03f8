package rain

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#00ff00", Color{0, 255, 0}},
		{"#FFBF00", Color{255, 191, 0}},
		{"#fff", Color{255, 255, 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "green", "#gggggg"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", bad)
		}
	}
}

func TestColorHex(t *testing.T) {
	c := Color{1, 128, 255}
	if got := c.Hex(); got != "#0180ff" {
		t.Errorf("Hex() = %q", got)
	}
	back, err := ParseColor(c.Hex())
	if err != nil || back != c {
		t.Errorf("ParseColor(Hex()) = %v, %v", back, err)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a, b := Color{0, 255, 0}, Color{0, 0, 0}
	if got := a.Blend(b, 0); got != a {
		t.Errorf("Blend(t=0) = %v, want %v", got, a)
	}
	if got := a.Blend(b, 1); got != b {
		t.Errorf("Blend(t=1) = %v, want %v", got, b)
	}
	mid := a.Blend(b, 0.5)
	if mid.G <= b.G || mid.G >= a.G {
		t.Errorf("Blend(t=0.5).G = %d, want strictly between", mid.G)
	}
}

func TestBrightenAndDim(t *testing.T) {
	green := Color{0, 200, 0}
	if got := green.Brighten(1); got != (Color{255, 255, 255}) {
		t.Errorf("Brighten(1) = %v", got)
	}
	if got := green.Dim(0.5); got != (Color{0, 100, 0}) {
		t.Errorf("Dim(0.5) = %v", got)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{255, 0, 128}.RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
}
