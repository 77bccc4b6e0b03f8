package rain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGlyphSourceEmptyAlphabet(t *testing.T) {
	_, err := NewGlyphSource(nil, &fixedRandom{})
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("NewGlyphSource(nil) = %v, want *ConfigError", err)
	}
}

func TestGlyphSourceFollowsRandom(t *testing.T) {
	src, err := NewGlyphSource([]rune("abc"), &fixedRandom{ints: []int{2, 0, 1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	var got []rune
	for range 4 {
		got = append(got, src.Next())
	}
	if string(got) != "cabb" {
		t.Errorf("Next() sequence = %q, want %q", string(got), "cabb")
	}
}

func TestGlyphSourceCoversAlphabet(t *testing.T) {
	alphabet := []rune("01ｱ")
	src, err := NewGlyphSource(alphabet, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	seen := map[rune]int{}
	for range 3000 {
		g := src.Next()
		if !contains(alphabet, g) {
			t.Fatalf("Next() = %q, not in alphabet", g)
		}
		seen[g]++
	}
	for _, r := range alphabet {
		if seen[r] < 800 {
			t.Errorf("glyph %q drawn %d times of 3000, want roughly uniform", r, seen[r])
		}
	}
}
