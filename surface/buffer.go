// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"sync/atomic"
)

// nextHandle hands out buffer handles. Zero is never used.
var nextHandle atomic.Uint64

// Buffer is a CPU pixel buffer backing a window, sized in device pixels.
//
// Each buffer carries a handle that stays the same for its lifetime, so a
// scene node can tell a re-commit of the same buffer from a new one.
//
// Example:
//
//	buf := surface.NewBuffer(200, 40)
//	defer buf.Close()
//
//	buf.Clear(color.Black)
//	img := buf.Snapshot()
type Buffer struct {
	handle uint64
	img    *image.RGBA

	// closed tracks if Close has been called
	closed bool
}

// NewBuffer creates a buffer with the given device dimensions.
// Non-positive dimensions are clamped to 1.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return NewBufferFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewBufferFromImage wraps an existing image as a buffer.
// The buffer renders into the provided image directly.
func NewBufferFromImage(img *image.RGBA) *Buffer {
	return &Buffer{
		handle: nextHandle.Add(1),
		img:    img,
	}
}

// Handle returns the identity of the buffer.
func (b *Buffer) Handle() uint64 {
	return b.handle
}

// Width returns the buffer width in device pixels.
func (b *Buffer) Width() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dx()
}

// Height returns the buffer height in device pixels.
func (b *Buffer) Height() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dy()
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy. Returns nil after Close.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

// Clear fills the entire buffer with the given color.
func (b *Buffer) Clear(c color.Color) {
	if b.closed {
		return
	}
	draw.Draw(b.img, b.img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
}

// Snapshot returns a copy of the current buffer contents.
func (b *Buffer) Snapshot() *image.RGBA {
	if b.closed {
		return nil
	}
	result := image.NewRGBA(b.img.Bounds())
	draw.Draw(result, result.Bounds(), b.img, b.img.Bounds().Min, draw.Src)
	return result
}

// Closed reports whether Close has been called.
func (b *Buffer) Closed() bool {
	return b.closed
}

// Close releases the pixel memory. Close is idempotent.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.img = nil
	return nil
}
