package scene

import (
	"image"
	"image/draw"

	"github.com/gogpu/drawer/damage"
)

// maxDirtyRects is the threshold after which the buffer switches to a full
// redraw. Past this many rectangles a single copy is cheaper.
const maxDirtyRects = 16

// Buffer is a client pixel buffer that can be attached to a SceneBuffer.
type Buffer interface {
	// Handle identifies the buffer for the lifetime of its owner.
	Handle() uint64

	// Image returns the device-resolution pixels of the buffer.
	Image() *image.RGBA
}

// SceneBuffer is the scene-graph node that displays a client buffer.
//
// Clients attach a buffer together with the region that changed since the
// previous attach. The node accumulates the damage until Present copies it to
// the output, so a frame only touches the pixels that actually changed.
//
// SceneBuffer is not safe for concurrent use; it lives on the compositor's
// rendering goroutine.
type SceneBuffer struct {
	buffer     Buffer
	dirtyRects []image.Rectangle
	fullRedraw bool

	// commits counts SetBufferWithDamage calls, frames counts Present calls
	// that had something to show.
	commits int
	frames  int
}

// NewSceneBuffer creates a scene buffer with no attached buffer.
func NewSceneBuffer() *SceneBuffer {
	return &SceneBuffer{
		dirtyRects: make([]image.Rectangle, 0, maxDirtyRects),
	}
}

// SetBufferWithDamage attaches buf and records the damaged area.
//
// The region is clipped to the buffer bounds in place and otherwise only
// read; the caller keeps ownership and may release it as soon as
// SetBufferWithDamage returns. Attaching a different buffer than the current
// one damages the whole node.
func (s *SceneBuffer) SetBufferWithDamage(buf Buffer, region *damage.Region) {
	if buf == nil {
		return
	}
	s.commits++
	if s.buffer == nil || s.buffer.Handle() != buf.Handle() {
		s.buffer = buf
		s.InvalidateAll()
		return
	}
	if region == nil {
		return
	}
	if img := buf.Image(); img != nil {
		region.Clip(img.Bounds())
	}
	for _, r := range region.Rects() {
		s.invalidate(r)
	}
}

// invalidate adds r to the dirty set, switching to full redraw when the set
// grows past maxDirtyRects.
func (s *SceneBuffer) invalidate(r image.Rectangle) {
	if s.fullRedraw || r.Empty() {
		return
	}
	s.dirtyRects = append(s.dirtyRects, r)
	if len(s.dirtyRects) > maxDirtyRects {
		s.fullRedraw = true
		s.dirtyRects = s.dirtyRects[:0]
	}
}

// InvalidateAll marks the entire buffer as needing presentation.
func (s *SceneBuffer) InvalidateAll() {
	s.fullRedraw = true
	s.dirtyRects = s.dirtyRects[:0]
}

// Buffer returns the attached buffer, or nil.
func (s *SceneBuffer) Buffer() Buffer {
	return s.buffer
}

// DirtyRects returns the accumulated damage.
// Returns nil when a full redraw is pending (check NeedsFullRedraw first).
// The returned slice must not be modified.
func (s *SceneBuffer) DirtyRects() []image.Rectangle {
	if s.fullRedraw {
		return nil
	}
	return s.dirtyRects
}

// NeedsFullRedraw reports whether the next Present copies the whole buffer.
func (s *SceneBuffer) NeedsFullRedraw() bool {
	return s.fullRedraw
}

// HasDamage reports whether Present would copy anything.
func (s *SceneBuffer) HasDamage() bool {
	return s.buffer != nil && (s.fullRedraw || len(s.dirtyRects) > 0)
}

// ClearDamage drops accumulated damage without presenting it.
func (s *SceneBuffer) ClearDamage() {
	s.dirtyRects = s.dirtyRects[:0]
	s.fullRedraw = false
}

// Present copies the damaged part of the attached buffer into dst at the
// same coordinates and clears the damage. It returns the number of
// rectangles copied.
func (s *SceneBuffer) Present(dst *image.RGBA) int {
	if dst == nil || !s.HasDamage() {
		return 0
	}
	src := s.buffer.Image()
	if src == nil {
		s.ClearDamage()
		return 0
	}

	n := 0
	if s.fullRedraw {
		draw.Draw(dst, src.Bounds(), src, src.Bounds().Min, draw.Src)
		n = 1
	} else {
		for _, r := range s.dirtyRects {
			r = r.Intersect(src.Bounds())
			if r.Empty() {
				continue
			}
			draw.Draw(dst, r, src, r.Min, draw.Src)
			n++
		}
	}
	s.ClearDamage()
	s.frames++
	return n
}

// CommitCount returns how many times a buffer was attached.
func (s *SceneBuffer) CommitCount() int {
	return s.commits
}

// FrameCount returns how many Present calls copied pixels.
func (s *SceneBuffer) FrameCount() int {
	return s.frames
}
