package recording

import (
	"image"
	"image/color"
)

// Backend receives the commands of a Recording during Playback.
//
// A Backend manages its own state stack for Save/Restore operations. The
// transform passed to SetTransform is absolute, already composed with any
// base transform the Recording was played back with.
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	Begin(width, height int) error

	// End finalizes the rendering.
	End() error

	// Save saves the current transform onto a stack.
	Save()

	// Restore restores the transform from the stack.
	// If the stack is empty, this is a no-op.
	Restore()

	// SetTransform sets the current transformation matrix.
	SetTransform(m Matrix)

	// Clear replaces every pixel with c.
	Clear(c color.Color)

	// FillRect fills rect, transformed by the current matrix, with c.
	FillRect(rect Rect, c color.Color)

	// DrawImage draws img with its top-left corner at (x, y) in user space.
	DrawImage(img image.Image, x, y float64)

	// DrawText draws s with its baseline origin at (x, y) in user space.
	DrawText(s string, x, y float64, c color.Color)
}

// ImageBackend is a Backend whose output is an RGBA image.
type ImageBackend interface {
	Backend

	// Image returns the rendered image. Only valid after End.
	Image() *image.RGBA
}
