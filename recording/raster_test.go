package recording

import (
	"image"
	"image/color"
	"testing"
)

func TestRasterBackendBegin(t *testing.T) {
	b := NewRasterBackend()
	if err := b.Begin(30, 20); err != nil {
		t.Fatalf("Begin() = %v", err)
	}
	img := b.Image()
	if img.Bounds() != image.Rect(0, 0, 30, 20) {
		t.Errorf("Image().Bounds() = %v, want (0,0)-(30,20)", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("fresh canvas pixel = %v, want transparent", got)
	}
}

func TestRasterBackendFillRect(t *testing.T) {
	b := NewRasterBackend()
	_ = b.Begin(10, 10)
	b.FillRect(NewRect(2, 3, 4, 5), red)

	img := b.Image()
	if got := img.RGBAAt(2, 3); got != red {
		t.Errorf("top-left pixel = %v, want %v", got, red)
	}
	if got := img.RGBAAt(5, 7); got != red {
		t.Errorf("bottom-right pixel = %v, want %v", got, red)
	}
	if got := img.RGBAAt(6, 3); got != (color.RGBA{}) {
		t.Errorf("pixel right of rect = %v, want transparent", got)
	}
	if got := img.RGBAAt(2, 8); got != (color.RGBA{}) {
		t.Errorf("pixel below rect = %v, want transparent", got)
	}
}

func TestRasterBackendTransformStack(t *testing.T) {
	b := NewRasterBackend()
	_ = b.Begin(10, 10)

	b.Save()
	b.SetTransform(Translate(5, 5))
	b.FillRect(NewRect(0, 0, 1, 1), green)
	b.Restore()
	b.FillRect(NewRect(0, 0, 1, 1), blue)
	// Extra restore is a no-op.
	b.Restore()

	img := b.Image()
	if got := img.RGBAAt(5, 5); got != green {
		t.Errorf("translated pixel = %v, want %v", got, green)
	}
	if got := img.RGBAAt(0, 0); got != blue {
		t.Errorf("restored pixel = %v, want %v", got, blue)
	}
}

func TestRasterBackendClearIgnoresTransform(t *testing.T) {
	b := NewRasterBackend()
	_ = b.Begin(4, 4)
	b.SetTransform(Scale(0.5, 0.5))
	b.Clear(green)

	if got := b.Image().RGBAAt(3, 3); got != green {
		t.Errorf("pixel (3,3) = %v, want %v", got, green)
	}
}

func TestRasterBackendDrawImage(t *testing.T) {
	icon := image.NewRGBA(image.Rect(0, 0, 2, 2))
	icon.SetRGBA(0, 0, red)
	icon.SetRGBA(1, 1, blue)

	b := NewRasterBackend()
	_ = b.Begin(10, 10)
	b.DrawImage(icon, 3, 4)

	img := b.Image()
	if got := img.RGBAAt(3, 4); got != red {
		t.Errorf("pixel (3,4) = %v, want %v", got, red)
	}
	if got := img.RGBAAt(4, 5); got != blue {
		t.Errorf("pixel (4,5) = %v, want %v", got, blue)
	}
}

func TestRasterBackendDrawText(t *testing.T) {
	b := NewRasterBackend()
	_ = b.Begin(40, 20)
	b.DrawText("H", 2, 14, color.White)

	img := b.Image()
	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y).A != 0 {
				lit++
				if x < 2 || x >= 2+TextAdvance("H") {
					t.Errorf("glyph pixel at x=%d outside advance", x)
				}
			}
		}
	}
	if lit == 0 {
		t.Error("DrawText produced no pixels")
	}
}

func TestTextAdvance(t *testing.T) {
	if got := TextAdvance(""); got != 0 {
		t.Errorf("TextAdvance(\"\") = %d, want 0", got)
	}
	one := TextAdvance("a")
	if one <= 0 {
		t.Fatalf("TextAdvance(\"a\") = %d, want > 0", one)
	}
	if got := TextAdvance("abc"); got != 3*one {
		t.Errorf("TextAdvance(\"abc\") = %d, want %d for a monospace face", got, 3*one)
	}
}
