package surface

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"

	"digital_rain/rain"
)

// Raster is a pixel surface backed by a gg context. Glyphs are drawn with
// Go Mono at the glyph height.
type Raster struct {
	dc         *gg.Context
	source     *text.FontSource
	face       text.Face
	background rain.Color
	err        error
}

// NewRaster creates a width×height raster filled with the background.
func NewRaster(width, height, glyphHeight int, background rain.Color) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid raster size %dx%d", rain.ErrSurfaceUnavailable, width, height)
	}
	if glyphHeight <= 0 {
		return nil, fmt.Errorf("invalid glyph height %d", glyphHeight)
	}
	source, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	face := source.Face(float64(glyphHeight))

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(background))
	dc.SetFont(face)
	return &Raster{dc: dc, source: source, face: face, background: background}, nil
}

// CellSize returns the glyph size in pixels: the advance of one Go Mono
// glyph by the face size.
func (r *Raster) CellSize() (width, height int) {
	return int(math.Ceil(r.face.Advance("M"))), int(math.Ceil(r.face.Size()))
}

// Size returns the raster size in pixels.
func (r *Raster) Size() (width, height int, err error) {
	return r.dc.Width(), r.dc.Height(), nil
}

// FillRect blends c over the rectangle at the given opacity.
func (r *Raster) FillRect(x, y, width, height int, c rain.Color, opacity float64) {
	r.dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, opacity)
	r.dc.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	if err := r.dc.Fill(); err != nil && r.err == nil {
		r.err = fmt.Errorf("failed to fill rectangle: %w", err)
	}
}

// DrawGlyph draws g with its top-left corner at (x, y).
func (r *Raster) DrawGlyph(x, y int, g rune, c rain.Color) {
	r.dc.SetColor(c)
	r.dc.DrawString(string(g), float64(x), float64(y)+r.face.Metrics().Ascent)
}

// Present reports the first drawing error since the last frame.
func (r *Raster) Present() error {
	err := r.err
	r.err = nil
	return err
}

// Resize reallocates the raster. The new image starts as background.
func (r *Raster) Resize(width, height int) error {
	if width == r.dc.Width() && height == r.dc.Height() {
		return nil
	}
	if err := r.dc.Resize(width, height); err != nil {
		return err
	}
	r.dc.ClearWithColor(gg.FromColor(r.background))
	return nil
}

// Image returns the current frame.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the current frame to a PNG file.
func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

// EncodePNG writes the current frame as PNG to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the context and the font.
func (r *Raster) Close() error {
	if err := r.dc.Close(); err != nil {
		return err
	}
	return r.source.Close()
}
