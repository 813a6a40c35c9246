package recording

import (
	"image"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestIdentity(t *testing.T) {
	m := Identity()

	if m.A != 1 || m.B != 0 || m.C != 0 ||
		m.D != 0 || m.E != 1 || m.F != 0 {
		t.Errorf("Identity() = %+v, want identity matrix", m)
	}

	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false, want true")
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(10, 20)

	if m.A != 1 || m.B != 0 || m.C != 10 ||
		m.D != 0 || m.E != 1 || m.F != 20 {
		t.Errorf("Translate(10, 20) = %+v", m)
	}

	if !m.IsTranslation() {
		t.Error("Translate().IsTranslation() = false, want true")
	}
	if m.IsIdentity() {
		t.Error("Translate(10, 20).IsIdentity() = true, want false")
	}

	x, y := m.TransformPoint(5, 5)
	if x != 15 || y != 25 {
		t.Errorf("TransformPoint(5, 5) = (%v, %v), want (15, 25)", x, y)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3)

	x, y := m.TransformPoint(10, 10)
	if x != 20 || y != 30 {
		t.Errorf("TransformPoint(10, 10) = (%v, %v), want (20, 30)", x, y)
	}
	if m.IsTranslation() {
		t.Error("Scale(2, 3).IsTranslation() = true, want false")
	}
}

func TestMultiplyOrder(t *testing.T) {
	// Scale after translate: the translation is scaled too.
	m := Scale(2, 2).Multiply(Translate(10, 5))

	x, y := m.TransformPoint(1, 1)
	if x != 22 || y != 12 {
		t.Errorf("TransformPoint(1, 1) = (%v, %v), want (22, 12)", x, y)
	}
}

func TestUniformScale(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix
		want   float64
		wantOK bool
	}{
		{"identity", Identity(), 1, true},
		{"scale 2 with offset", Translate(4, 4).Multiply(Scale(2, 2)), 2, true},
		{"fractional", Scale(1.5, 1.5), 1.5, true},
		{"non uniform", Scale(2, 3), 0, false},
		{"flip", Scale(-1, -1), 0, false},
		{"shear", Matrix{A: 1, B: 0.5, E: 1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.m.UniformScale()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("UniformScale() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAff3Conversion(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	a := m.Aff3()
	if a != (f64.Aff3{1, 2, 3, 4, 5, 6}) {
		t.Errorf("Aff3() = %v", a)
	}
	if FromAff3(a) != m {
		t.Errorf("FromAff3(Aff3()) = %+v, want %+v", FromAff3(a), m)
	}
}

func TestRect(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("size = %vx%v, want 30x40", r.Width(), r.Height())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if !NewRect(0, 0, 0, 5).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestRectTransformAndBounds(t *testing.T) {
	r := NewRect(1, 1, 3, 2).Transform(Scale(1.5, 1.5))

	want := Rect{MinX: 1.5, MinY: 1.5, MaxX: 6, MaxY: 4.5}
	if r != want {
		t.Errorf("Transform() = %+v, want %+v", r, want)
	}
	if got := r.Bounds(); got != image.Rect(1, 1, 6, 5) {
		t.Errorf("Bounds() = %v, want (1,1)-(6,5)", got)
	}
}
