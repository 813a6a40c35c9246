package drawer

import (
	"image"
	"image/draw"
	"log/slog"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/drawer/damage"
	"github.com/gogpu/drawer/surface"
)

// Content is recorded drawing content that can be replayed into a
// destination. *recording.Recording implements it.
type Content interface {
	// Width and Height return the logical size of the content.
	Width() int
	Height() int

	// Paint composites the content into dst through the affine transform
	// m, touching only pixels inside clip.
	Paint(dst *image.RGBA, m f64.Aff3, clip image.Rectangle, op draw.Op)
}

// Destination is the window surface a Drawer commits into.
// *surface.Window implements it.
type Destination interface {
	// Width and Height return the logical size of the surface.
	Width() int
	Height() int

	// Buffer returns the device-resolution buffer backing the surface.
	Buffer() *surface.Buffer

	// SetBufferWithDamage presents buf, of which only region changed.
	// The region is owned by the caller and released after the call; the
	// destination may clip it to the buffer bounds.
	SetBufferWithDamage(buf *surface.Buffer, region *damage.Region)
}

// Result describes what a Commit did.
type Result struct {
	// Committed is true when pixels were written and damage submitted.
	Committed bool

	// Rect is the effective rectangle in logical units. It is the zero
	// rectangle when the commit returned before clamping.
	Rect image.Rectangle

	// Damage is the submitted damage in device pixels.
	Damage DamageRect
}

// Drawer commits recorded content into a window surface and reports the
// changed area to the presentation pipeline.
//
// Widgets record into a recording.Recorder; the Drawer then copies the
// requested part of the recording into the window buffer with a
// source-replace operator, so transparent content does not accumulate over
// earlier frames, and submits the covered area as damage.
//
// Example:
//
//	rec := recording.NewRecorder(300, 20)
//	// ... draw ...
//	d := drawer.New(rec.FinishRecording(), win)
//	d.Commit(0, 0, drawer.WithScale(cfg.Scale()))
//
// Drawer is not safe for concurrent use. Calls for the same destination
// must be serialized by the caller, typically by running them on the
// compositor's rendering goroutine.
type Drawer struct {
	content Content
	dst     Destination

	needsUpdate UpdatePredicate

	current     Rect
	previous    Rect
	hasCurrent  bool
	hasPrevious bool
}

// New creates a Drawer committing content into dst.
// New panics if content or dst is nil.
func New(content Content, dst Destination, opts ...Option) *Drawer {
	if content == nil {
		panic("drawer: New content is nil")
	}
	if dst == nil {
		panic("drawer: New destination is nil")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Drawer{
		content:     content,
		dst:         dst,
		needsUpdate: o.needsUpdate,
	}
}

// Content returns the content being committed.
func (d *Drawer) Content() Content {
	return d.content
}

// SetContent replaces the content committed by later calls, typically with
// a fresh recording after the widgets redrew. Nil is ignored.
func (d *Drawer) SetContent(c Content) {
	if c == nil {
		return
	}
	d.content = c
}

// CurrentRect returns the rectangle of the latest commit that reached the
// update check. ok is false before the first such commit.
func (d *Drawer) CurrentRect() (r Rect, ok bool) {
	return d.current, d.hasCurrent
}

// PreviousRect returns the rectangle of the latest commit that painted.
// ok is false before the first paint.
func (d *Drawer) PreviousRect() (r Rect, ok bool) {
	return d.previous, d.hasPrevious
}

// RectChanged reports whether the latest requested rectangle differs from
// the one last painted. Commit does not use it to skip work; the content
// may have changed under an unchanged rectangle.
func (d *Drawer) RectChanged() bool {
	return !d.hasPrevious || d.current != d.previous
}

// Commit composites the content into the destination at logical offset
// (x, y) and submits the changed area as damage.
//
// Nothing is written when x lies past the right edge of the destination or
// when the update predicate (or WithNeedsUpdate) says the content did not
// change. Otherwise the size defaults to the content size, is clamped to the
// destination, and the clamped area is replaced by the content positioned at
// (x-srcX, y-srcY). A clamped area with no pixels is an empty commit: no
// writes and no damage.
func (d *Drawer) Commit(x, y int, opts ...CommitOption) Result {
	o := defaultCommitOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if x > d.dst.Width() {
		return Result{}
	}

	d.current = Rect{
		X: x, Y: y,
		Width: o.width, Height: o.height,
		HasWidth: o.hasWidth, HasHeight: o.hasHeight,
	}
	d.hasCurrent = true

	if !d.updateNeeded(o) {
		return Result{}
	}

	d.previous = d.current
	d.hasPrevious = true

	rect := d.current.resolve(d.content.Width(), d.content.Height(), d.dst.Width(), d.dst.Height())
	dmg := scaleRect(rect, o.scale)
	res := Result{Rect: rect, Damage: dmg}
	if rect.Empty() || dmg.IsEmpty() {
		return res
	}

	buf := d.dst.Buffer()
	if buf == nil || buf.Image() == nil {
		Logger().Warn("drawer: destination has no buffer, commit dropped",
			slog.Any("rect", rect))
		return res
	}

	s := o.scale
	m := f64.Aff3{
		s, 0, s * float64(x-o.srcX),
		0, s, s * float64(y-o.srcY),
	}
	clip := dmg.Bounds()
	d.content.Paint(buf.Image(), m, clip, draw.Src)

	region := damage.Get()
	defer region.Release()
	region.InitRect(clip.Min.X, clip.Min.Y, clip.Dx(), clip.Dy())
	d.dst.SetBufferWithDamage(buf, region)

	// The destination may clip the region to its buffer.
	Logger().Debug("drawer: commit",
		slog.Int("x", x), slog.Int("y", y),
		slog.Int("src_x", o.srcX), slog.Int("src_y", o.srcY),
		slog.Float64("scale", s),
		slog.Any("rect", rect),
		slog.Any("damage", region.Extents()))

	res.Committed = true
	return res
}

// updateNeeded applies the per-call override, falling back to the
// drawer's predicate.
func (d *Drawer) updateNeeded(o commitOptions) bool {
	if o.needsUpdate != nil {
		return *o.needsUpdate
	}
	return d.needsUpdate()
}
