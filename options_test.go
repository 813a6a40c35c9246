package drawer

import (
	"image"
	"math"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.needsUpdate == nil || !o.needsUpdate() {
		t.Error("default predicate should always report an update")
	}
}

func TestWithUpdatePredicateNil(t *testing.T) {
	o := defaultOptions()
	WithUpdatePredicate(func() bool { return false })(&o)
	if o.needsUpdate() {
		t.Fatal("predicate not applied")
	}
	WithUpdatePredicate(nil)(&o)
	if !o.needsUpdate() {
		t.Error("WithUpdatePredicate(nil) did not restore the default")
	}
}

func TestCommitOptions(t *testing.T) {
	o := defaultCommitOptions()
	if o.scale != 1 || o.hasWidth || o.hasHeight || o.needsUpdate != nil {
		t.Fatalf("defaultCommitOptions() = %+v", o)
	}

	for _, opt := range []CommitOption{
		WithWidth(3),
		WithHeight(4),
		WithSource(5, 6),
		WithScale(2.5),
		WithNeedsUpdate(false),
	} {
		opt(&o)
	}
	if o.width != 3 || !o.hasWidth || o.height != 4 || !o.hasHeight {
		t.Errorf("size = %dx%d (%v, %v), want 3x4 (true, true)", o.width, o.height, o.hasWidth, o.hasHeight)
	}
	if o.srcX != 5 || o.srcY != 6 {
		t.Errorf("source = (%d, %d), want (5, 6)", o.srcX, o.srcY)
	}
	if o.scale != 2.5 {
		t.Errorf("scale = %v, want 2.5", o.scale)
	}
	if o.needsUpdate == nil || *o.needsUpdate {
		t.Error("WithNeedsUpdate(false) not applied")
	}

	WithSize(7, 8)(&o)
	if o.width != 7 || o.height != 8 {
		t.Errorf("WithSize(7, 8) = %dx%d", o.width, o.height)
	}
}

func TestRectResolve(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want image.Rectangle
	}{
		{"content size", Rect{X: 1, Y: 2}, image.Rect(1, 2, 31, 42)},
		{"explicit size", Rect{X: 0, Y: 0, Width: 5, Height: 6, HasWidth: true, HasHeight: true}, image.Rect(0, 0, 5, 6)},
		{"clamped right", Rect{X: 90, Y: 0, Width: 20, Height: 10, HasWidth: true, HasHeight: true}, image.Rect(90, 0, 100, 10)},
		{"clamped bottom", Rect{X: 0, Y: 80}, image.Rect(0, 80, 30, 100)},
		{"at right edge", Rect{X: 100, Y: 0}, image.Rect(100, 0, 100, 40)},
		{"below bottom", Rect{X: 0, Y: 120}, image.Rect(0, 120, 30, 120)},
		{"negative size", Rect{Width: -5, Height: -5, HasWidth: true, HasHeight: true}, image.Rect(0, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.resolve(30, 40, 100, 100)
			if got != tt.want {
				t.Errorf("resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDamageRectBounds(t *testing.T) {
	tests := []struct {
		name string
		d    DamageRect
		want image.Rectangle
	}{
		{"integral", DamageRect{X: 180, Y: 0, Width: 20, Height: 20}, image.Rect(180, 0, 200, 20)},
		{"fractional", DamageRect{X: 1.5, Y: 1.5, Width: 4.5, Height: 4.5}, image.Rect(1, 1, 6, 6)},
		{"empty", DamageRect{X: 3, Y: 3}, image.Rectangle{}},
		{"nan", DamageRect{Width: math.NaN(), Height: 1}, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleRect(t *testing.T) {
	got := scaleRect(image.Rect(90, 0, 100, 10), 2)
	want := DamageRect{X: 180, Y: 0, Width: 20, Height: 20}
	if got != want {
		t.Errorf("scaleRect() = %+v, want %+v", got, want)
	}
}
