package drawer

import (
	"image"
	"math"
)

// Rect is the rectangle a Commit was asked to cover, in logical units.
//
// HasWidth and HasHeight are false when the caller left that dimension to
// default to the content size. Rect is comparable, so two commits can be
// checked for the same geometry with ==.
type Rect struct {
	X, Y          int
	Width, Height int

	HasWidth, HasHeight bool
}

// resolve returns the effective rectangle: missing dimensions default to the
// content size, then both are clamped so the rectangle never extends past
// the surface and never goes negative.
func (r Rect) resolve(contentW, contentH, surfaceW, surfaceH int) image.Rectangle {
	w := contentW
	if r.HasWidth {
		w = r.Width
	}
	h := contentH
	if r.HasHeight {
		h = r.Height
	}
	w = max(min(w, surfaceW-r.X), 0)
	h = max(min(h, surfaceH-r.Y), 0)
	return image.Rect(r.X, r.Y, r.X+w, r.Y+h)
}

// DamageRect is a changed area in device pixels: the effective rectangle
// with every field multiplied by the scale factor.
type DamageRect struct {
	X, Y, Width, Height float64
}

// scaleRect multiplies each field of the logical rectangle r by scale.
func scaleRect(r image.Rectangle, scale float64) DamageRect {
	return DamageRect{
		X:      float64(r.Min.X) * scale,
		Y:      float64(r.Min.Y) * scale,
		Width:  float64(r.Dx()) * scale,
		Height: float64(r.Dy()) * scale,
	}
}

// IsEmpty reports whether the rectangle covers no area.
func (d DamageRect) IsEmpty() bool {
	return !(d.Width > 0) || !(d.Height > 0)
}

// Bounds returns the smallest pixel rectangle covering d. For integral
// values it is exactly d.
func (d DamageRect) Bounds() image.Rectangle {
	if d.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(d.X)), int(math.Floor(d.Y)),
		int(math.Ceil(d.X+d.Width)), int(math.Ceil(d.Y+d.Height)),
	)
}
