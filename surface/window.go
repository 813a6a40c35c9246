// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"

	"github.com/gogpu/drawer/damage"
	"github.com/gogpu/drawer/scene"
)

// Window is an internal compositor window: a logical-size surface backed by
// a device-resolution Buffer and displayed through a scene.SceneBuffer.
//
// Width and Height are logical (unscaled) units. The backing buffer is
// allocated at ceil(size*scale) device pixels.
//
// Window is not safe for concurrent use. All calls, including Resize, must
// come from the goroutine that drives the compositor.
type Window struct {
	width  int
	height int
	scale  float64

	buffer *Buffer
	node   *scene.SceneBuffer

	closed bool
}

// NewWindow creates a window with the given logical size and scale factor.
// Negative dimensions are clamped to 0; a non-positive or NaN scale is
// treated as 1.
func NewWindow(width, height int, scale float64) *Window {
	w := &Window{
		scale: normalizeScale(scale),
		node:  scene.NewSceneBuffer(),
	}
	w.allocate(width, height)
	return w
}

func normalizeScale(scale float64) float64 {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return 1
	}
	return scale
}

// allocate replaces the backing buffer for a new logical size.
func (w *Window) allocate(width, height int) {
	w.width = max(width, 0)
	w.height = max(height, 0)
	if w.buffer != nil {
		_ = w.buffer.Close()
	}
	w.buffer = NewBuffer(DeviceSize(w.width, w.scale), DeviceSize(w.height, w.scale))
}

// DeviceSize converts a logical length to device pixels, rounding up so the
// device buffer always covers the logical extent.
func DeviceSize(logical int, scale float64) int {
	return int(math.Ceil(float64(logical) * scale))
}

// Width returns the logical width.
func (w *Window) Width() int {
	return w.width
}

// Height returns the logical height.
func (w *Window) Height() int {
	return w.height
}

// Scale returns the scale factor the buffer was allocated with.
func (w *Window) Scale() float64 {
	return w.scale
}

// Buffer returns the backing buffer. Returns nil after Close.
func (w *Window) Buffer() *Buffer {
	if w.closed {
		return nil
	}
	return w.buffer
}

// Node returns the scene node that displays this window.
func (w *Window) Node() *scene.SceneBuffer {
	return w.node
}

// Resize changes the logical size and reallocates the backing buffer.
// Existing content is discarded and the whole node is damaged on the next
// commit, since the new buffer has a new handle.
func (w *Window) Resize(width, height int) error {
	if w.closed {
		return ErrWindowClosed
	}
	w.allocate(width, height)
	return nil
}

// SetScale changes the scale factor and reallocates the backing buffer.
func (w *Window) SetScale(scale float64) error {
	if w.closed {
		return ErrWindowClosed
	}
	w.scale = normalizeScale(scale)
	w.allocate(w.width, w.height)
	return nil
}

// SetBufferWithDamage hands buf and the damaged region to the scene node.
// The region remains owned by the caller. Calls on a closed window are
// ignored.
func (w *Window) SetBufferWithDamage(buf *Buffer, region *damage.Region) {
	if w.closed || buf == nil || buf.Closed() {
		return
	}
	w.node.SetBufferWithDamage(buf, region)
}

// Close releases the backing buffer. Close is idempotent.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.buffer.Close()
}
