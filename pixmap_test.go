package tfe

import (
	"image"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

func TestNewPixmap_ZeroInitialized(t *testing.T) {
	pm := NewPixmap(4, 3)
	if pm.Width() != 4 || pm.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 4*3*4 {
		t.Fatalf("data length = %d, want %d", len(pm.Data()), 4*3*4)
	}
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("data[%d] = %d, want 0", i, v)
		}
	}
}

// TestSetPixel_FlipsY verifies that logical y=0 addresses the bottom-most
// storage row.
func TestSetPixel_FlipsY(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(0, 0, White)

	data := pm.Data()
	// Bottom row is the last storage row.
	i := (1*3 + 0) * 4
	if data[i] != 255 || data[i+1] != 255 || data[i+2] != 255 || data[i+3] != 255 {
		t.Errorf("bottom-left pixel not in last storage row: data[%d:] = %v", i, data[i:i+4])
	}
	// Top storage row untouched.
	if data[0] != 0 || data[3] != 0 {
		t.Errorf("top storage row modified: %v", data[:4])
	}

	if got := pm.GetPixel(0, 0); !colorsClose(got, White, eps) {
		t.Errorf("GetPixel(0,0) = %+v, want white", got)
	}
}

func TestSetPixel_QuantizesOnSet(t *testing.T) {
	pm := NewPixmap(1, 1)
	pm.SetPixel(0, 0, FillColor)

	got := pm.GetPixel(0, 0)
	want := RGBA{R: 153.0 / 255, G: 153.0 / 255, B: 153.0 / 255, A: 242.0 / 255}
	if !colorsClose(got, want, eps) {
		t.Errorf("GetPixel = %+v, want %+v", got, want)
	}
}

func TestPixel_OutOfRangePanics(t *testing.T) {
	pm := NewPixmap(4, 4)

	oob := []struct{ x, y int }{
		{-1, 0}, {4, 0}, {0, -1}, {0, 4},
	}
	for _, c := range oob {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetPixel(%d, %d) did not panic", c.x, c.y)
				}
			}()
			pm.SetPixel(c.x, c.y, Black)
		}()
	}
}

// TestBlendUnder_OperandOrder verifies that the receiver is the front
// operand: an opaque bottom layer disappears behind an opaque receiver but
// shows through a transparent one.
func TestBlendUnder_OperandOrder(t *testing.T) {
	front := NewPixmap(2, 1)
	front.SetPixel(0, 0, RGB(1, 0, 0)) // opaque red, pixel (1,0) transparent

	back := NewPixmap(2, 1)
	back.Clear(RGB(0, 0, 1)) // opaque blue

	front.BlendUnder(back)

	if got := front.GetPixel(0, 0); !colorsClose(got, RGB(1, 0, 0), eps) {
		t.Errorf("opaque front pixel = %+v, want red", got)
	}
	if got := front.GetPixel(1, 0); !colorsClose(got, RGB(0, 0, 1), eps) {
		t.Errorf("transparent front pixel = %+v, want blue", got)
	}
}

func TestBlendUnder_Translucent(t *testing.T) {
	front := NewPixmap(1, 1)
	front.SetPixel(0, 0, RGBAf(1, 0, 0, 0.5))

	back := NewPixmap(1, 1)
	back.Clear(RGB(0, 0, 1))

	front.BlendUnder(back)

	got := front.GetPixel(0, 0)
	// src + (1-src.A)*dst with src quantized to A=127/255.
	a := 127.0 / 255
	want := RGBA{R: 1, G: 0, B: 1 - a, A: 1}
	if !colorsClose(got, want, 1.5/255) {
		t.Errorf("translucent blend = %+v, want %+v", got, want)
	}
}

func TestBlendUnder_SizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BlendUnder with mismatched sizes did not panic")
		}
	}()
	NewPixmap(2, 2).BlendUnder(NewPixmap(3, 2))
}

func TestToImage_CopiesBytes(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 1, RGBAf(1, 0.5, 0.25, 1)) // top-left logically

	img := pm.ToImage()
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	// Logical (0,1) of a 2-row pixmap is storage row 0.
	if img.Pix[0] != 255 || img.Pix[1] != 127 || img.Pix[2] != 63 || img.Pix[3] != 255 {
		t.Errorf("top-left image bytes = %v, want [255 127 63 255]", img.Pix[:4])
	}

	// The copy must be independent of the pixmap.
	img.Pix[0] = 0
	if pm.Data()[0] != 255 {
		t.Error("ToImage shares storage with the pixmap")
	}
}

func TestSavePNG(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(RGB(1, 0, 0))

	path := t.TempDir() + "/out.png"
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
