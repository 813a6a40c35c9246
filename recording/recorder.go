package recording

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Recorder captures drawing operations as commands.
// Use FinishRecording to obtain an immutable Recording that can be replayed
// to a Backend or painted into a destination image.
//
// Example:
//
//	rec := recording.NewRecorder(200, 20)
//	rec.SetColor(color.Black)
//	rec.Clear()
//	rec.SetColor(color.White)
//	rec.DrawString("1: www", 4, 14)
//	content := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	// Current state
	color     color.Color
	transform Matrix

	// State stack
	stateStack []recorderState
}

// recorderState stores the graphics state for Save/Restore.
type recorderState struct {
	color     color.Color
	transform Matrix
}

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with an opaque black color and the identity transform.
func NewRecorder(width, height int) *Recorder {
	r := &Recorder{
		commands:   make([]Command, 0, 64),
		stateStack: make([]recorderState, 0, 8),
	}
	r.Reset(width, height)
	return r
}

// Reset discards all recorded commands and state and starts a new recording
// of the given size. Recordings already returned by FinishRecording are not
// affected.
func (r *Recorder) Reset(width, height int) {
	r.width = max(width, 0)
	r.height = max(height, 0)
	r.commands = make([]Command, 0, cap(r.commands))
	r.stateStack = r.stateStack[:0]
	r.color = color.Black
	r.transform = Identity()
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder may keep recording; later commands do not show up in
// the returned Recording.
func (r *Recorder) FinishRecording() *Recording {
	commands := make([]Command, len(r.commands))
	copy(commands, r.commands)
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: commands,
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Save saves the current color and transform.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, recorderState{
		color:     r.color,
		transform: r.transform,
	})
	r.commands = append(r.commands, SaveCommand{})
}

// Restore restores the previously saved state.
// If the state stack is empty, this is a no-op.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}
	state := r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]

	r.color = state.color
	r.transform = state.transform
	r.commands = append(r.commands, RestoreCommand{})
}

// Identity resets the transformation matrix to identity.
func (r *Recorder) Identity() {
	r.SetTransform(Identity())
}

// Translate applies a translation to the transformation matrix.
func (r *Recorder) Translate(x, y float64) {
	r.SetTransform(r.transform.Multiply(Translate(x, y)))
}

// Scale applies a scaling transformation.
func (r *Recorder) Scale(sx, sy float64) {
	r.SetTransform(r.transform.Multiply(Scale(sx, sy)))
}

// SetTransform replaces the current transformation matrix.
func (r *Recorder) SetTransform(m Matrix) {
	r.transform = m
	r.commands = append(r.commands, SetTransformCommand{Matrix: m})
}

// Transform returns the current transformation matrix.
func (r *Recorder) Transform() Matrix {
	return r.transform
}

// SetColor sets the color used by subsequent drawing operations.
func (r *Recorder) SetColor(c color.Color) {
	if c == nil {
		c = color.Transparent
	}
	r.color = c
}

// Clear replaces the whole canvas with the current color.
func (r *Recorder) Clear() {
	r.commands = append(r.commands, ClearCommand{Color: r.color})
}

// FillRect fills a rectangle with the current color.
func (r *Recorder) FillRect(x, y, width, height float64) {
	rect := NewRect(x, y, width, height)
	if rect.IsEmpty() {
		return
	}
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Color: r.color})
}

// DrawImage draws img with its top-left corner at (x, y).
func (r *Recorder) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	r.commands = append(r.commands, DrawImageCommand{Image: img, X: x, Y: y})
}

// DrawString draws s with its baseline origin at (x, y) in the current
// color.
func (r *Recorder) DrawString(s string, x, y float64) {
	if s == "" {
		return
	}
	r.commands = append(r.commands, DrawTextCommand{Text: s, X: x, Y: y, Color: r.color})
}

// Recording is an immutable container for recorded drawing commands.
//
// A Recording is safe to share between goroutines: Playback only reads the
// command list and Paint guards its raster cache.
type Recording struct {
	width, height int
	commands      []Command

	mu         sync.Mutex
	cacheScale float64
	cache      *image.RGBA
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
// The returned slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	return r.PlaybackWithTransform(backend, Identity(), r.width, r.height)
}

// PlaybackWithTransform replays the recording onto a canvas of the given
// size, composing every recorded transform with base.
func (r *Recording) PlaybackWithTransform(backend Backend, base Matrix, width, height int) error {
	if err := backend.Begin(width, height); err != nil {
		return err
	}
	backend.SetTransform(base)
	compose := !base.IsIdentity()

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			backend.Save()
		case RestoreCommand:
			backend.Restore()
		case SetTransformCommand:
			if compose {
				backend.SetTransform(base.Multiply(c.Matrix))
			} else {
				backend.SetTransform(c.Matrix)
			}
		case ClearCommand:
			backend.Clear(c.Color)
		case FillRectCommand:
			backend.FillRect(c.Rect, c.Color)
		case DrawImageCommand:
			backend.DrawImage(c.Image, c.X, c.Y)
		case DrawTextCommand:
			backend.DrawText(c.Text, c.X, c.Y, c.Color)
		}
	}

	return backend.End()
}

// Paint composites the recording into dst through the affine transform m,
// touching only pixels inside clip (in dst coordinates).
//
// With draw.Src every pixel of clip is replaced: pixels the recording covers
// take its value, including transparency, and the rest become transparent.
// With draw.Over the recording is blended onto dst.
//
// When m is a uniform scale plus translation the recording is rasterized at
// that scale, so content stays sharp on scaled outputs. The raster is cached
// for the last scale used.
func (r *Recording) Paint(dst *image.RGBA, m f64.Aff3, clip image.Rectangle, op draw.Op) {
	if dst == nil {
		return
	}
	clip = clip.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	sub, ok := dst.SubImage(clip).(*image.RGBA)
	if !ok {
		return
	}

	if op == draw.Src {
		draw.Draw(sub, sub.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}

	src, residual := r.rasterFor(FromAff3(m))
	if src == nil || src.Bounds().Empty() {
		return
	}

	// Limit the transform to the part of clip the raster can reach.
	sb := src.Bounds()
	footprint := NewRect(float64(sb.Min.X), float64(sb.Min.Y), float64(sb.Dx()), float64(sb.Dy())).
		Transform(residual).
		Bounds().
		Intersect(clip)
	if footprint.Empty() {
		return
	}
	target, ok := dst.SubImage(footprint).(*image.RGBA)
	if !ok {
		return
	}
	xdraw.NearestNeighbor.Transform(target, residual.Aff3(), src, sb, op, nil)
}

// rasterFor returns a raster of the recording and the transform that
// remains to be applied to it to honour m.
func (r *Recording) rasterFor(m Matrix) (*image.RGBA, Matrix) {
	scale, ok := m.UniformScale()
	residual := Translate(m.C, m.F)
	if !ok {
		scale = 1
		residual = m
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache != nil && r.cacheScale == scale {
		return r.cache, residual
	}

	b := NewRasterBackend()
	w := int(math.Ceil(float64(r.width) * scale))
	h := int(math.Ceil(float64(r.height) * scale))
	if err := r.PlaybackWithTransform(b, Scale(scale, scale), w, h); err != nil {
		return nil, residual
	}
	r.cache = b.Image()
	r.cacheScale = scale
	return r.cache, residual
}
