package recording

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RasterBackend renders recordings into an *image.RGBA.
//
// All geometry goes through golang.org/x/image/draw transforms with
// nearest-neighbor sampling, so integer-aligned rectangles at integer scale
// factors land on exact pixel boundaries.
//
// Text uses a fixed bitmap face; it is drawn at unit size and then scaled by
// the current transform like any other image.
type RasterBackend struct {
	img       *image.RGBA
	transform Matrix
	stack     []Matrix
	face      font.Face
}

// Ensure RasterBackend implements ImageBackend.
var _ ImageBackend = (*RasterBackend)(nil)

// NewRasterBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewRasterBackend() *RasterBackend {
	return &RasterBackend{
		transform: Identity(),
		face:      basicfont.Face7x13,
	}
}

// Begin allocates a transparent canvas of the given size.
func (b *RasterBackend) Begin(width, height int) error {
	b.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	b.transform = Identity()
	b.stack = b.stack[:0]
	return nil
}

// End finalizes the rendering.
func (b *RasterBackend) End() error {
	return nil
}

// Save saves the current transform onto a stack.
func (b *RasterBackend) Save() {
	b.stack = append(b.stack, b.transform)
}

// Restore restores the transform from the stack.
func (b *RasterBackend) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.transform = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// SetTransform sets the current transformation matrix.
func (b *RasterBackend) SetTransform(m Matrix) {
	b.transform = m
}

// Clear replaces every pixel with c.
func (b *RasterBackend) Clear(c color.Color) {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect fills rect with c, blending over the canvas.
func (b *RasterBackend) FillRect(rect Rect, c color.Color) {
	if rect.IsEmpty() || c == nil {
		return
	}
	// Map the unit square onto rect so the uniform source has a finite
	// source rectangle.
	m := b.transform.
		Multiply(Translate(rect.MinX, rect.MinY)).
		Multiply(Scale(rect.Width(), rect.Height()))
	xdraw.NearestNeighbor.Transform(b.img, m.Aff3(), image.NewUniform(c), image.Rect(0, 0, 1, 1), draw.Over, nil)
}

// DrawImage draws img with its top-left corner at (x, y).
func (b *RasterBackend) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	m := b.transform.Multiply(Translate(x-float64(bounds.Min.X), y-float64(bounds.Min.Y)))
	xdraw.NearestNeighbor.Transform(b.img, m.Aff3(), img, bounds, draw.Over, nil)
}

// DrawText draws s with its baseline origin at (x, y).
func (b *RasterBackend) DrawText(s string, x, y float64, c color.Color) {
	if s == "" || c == nil {
		return
	}
	glyphs, ascent := renderText(b.face, s, c)
	if glyphs == nil {
		return
	}
	m := b.transform.Multiply(Translate(x, y-float64(ascent)))
	xdraw.NearestNeighbor.Transform(b.img, m.Aff3(), glyphs, glyphs.Bounds(), draw.Over, nil)
}

// renderText draws s into a tightly sized image at unit scale and returns
// it with the ascent used as the baseline.
func renderText(face font.Face, s string, c color.Color) (*image.RGBA, int) {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	width := font.MeasureString(face, s).Ceil()
	if width <= 0 || height <= 0 {
		return nil, 0
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)
	return img, ascent
}

// TextAdvance returns the width of s in the recorder's text face.
func TextAdvance(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// Image returns the rendered image.
func (b *RasterBackend) Image() *image.RGBA {
	return b.img
}
