// Package damage provides the region type used to report changed pixels to
// the presentation pipeline.
//
// A Region is a set of axis-aligned integer rectangles in device pixel
// coordinates. Regions are pooled: obtain one with Get, fill it, hand it to
// the consumer, and Release it when the consumer returns. Consumers must copy
// anything they want to keep.
//
//	r := damage.Get()
//	defer r.Release()
//	r.InitRect(0, 0, 20, 20)
//	buffer.SetBufferWithDamage(buf, r)
package damage

import (
	"image"
	"sync"
)

// Region is a set of non-empty rectangles.
//
// The zero value is an empty region ready for use. Region is not safe for
// concurrent use.
type Region struct {
	rects    []image.Rectangle
	released bool
}

// regionPool holds rectangle storage, not regions. Every Get hands out a new
// Region, so a stale pointer to a released region never aliases a live one.
var regionPool = sync.Pool{
	New: func() any {
		rects := make([]image.Rectangle, 0, 4)
		return &rects
	},
}

// Get returns an empty region backed by pooled storage.
func Get() *Region {
	rects := regionPool.Get().(*[]image.Rectangle)
	return &Region{rects: (*rects)[:0]}
}

// Release returns the region's storage to the pool and leaves the region
// empty. Calling Release more than once, including from an old reference
// after later Get calls, is a no-op.
func (r *Region) Release() {
	if r == nil || r.released {
		return
	}
	r.released = true
	rects := r.rects[:0]
	r.rects = nil
	regionPool.Put(&rects)
}

// Released reports whether Release has been called on this region.
func (r *Region) Released() bool {
	return r.released
}

// InitRect replaces the contents of the region with the single rectangle
// (x, y, width, height). A non-positive width or height leaves the region
// empty.
func (r *Region) InitRect(x, y, width, height int) {
	r.rects = r.rects[:0]
	r.Union(image.Rect(x, y, x+width, y+height))
}

// Union adds rect to the region. Empty rectangles and rectangles already
// covered by an existing member are ignored; members covered by rect are
// dropped.
func (r *Region) Union(rect image.Rectangle) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	for _, have := range r.rects {
		if rect.In(have) {
			return
		}
	}
	kept := r.rects[:0]
	for _, have := range r.rects {
		if !have.In(rect) {
			kept = append(kept, have)
		}
	}
	r.rects = append(kept, rect)
}

// Rects returns the rectangles of the region. The slice is owned by the
// region and is only valid until the next mutation or Release.
func (r *Region) Rects() []image.Rectangle {
	return r.rects
}

// Extents returns the bounding box of the region, or the zero rectangle for
// an empty region.
func (r *Region) Extents() image.Rectangle {
	var ext image.Rectangle
	for _, rect := range r.rects {
		ext = ext.Union(rect)
	}
	return ext
}

// IsEmpty reports whether the region contains no rectangles.
func (r *Region) IsEmpty() bool {
	return len(r.rects) == 0
}

// Clip intersects every rectangle of the region with bounds.
func (r *Region) Clip(bounds image.Rectangle) {
	kept := r.rects[:0]
	for _, rect := range r.rects {
		if c := rect.Intersect(bounds); !c.Empty() {
			kept = append(kept, c)
		}
	}
	r.rects = kept
}
