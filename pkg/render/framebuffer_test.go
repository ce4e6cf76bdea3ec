package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSetGetPixel(t *testing.T) {
	fb := NewFramebuffer(8, 6)

	fb.SetPixel(3, 2, fillRed)
	if got := fb.GetPixel(3, 2); got != fillRed {
		t.Errorf("GetPixel(3,2) = %v, want %v", got, fillRed)
	}

	// Out-of-bounds writes are dropped, reads return transparent black
	fb.SetPixel(-1, 0, fillRed)
	fb.SetPixel(8, 0, fillRed)
	fb.SetPixel(0, 6, fillRed)
	if got := fb.GetPixel(-1, 0); got != (color.RGBA{}) {
		t.Errorf("out-of-bounds GetPixel = %v, want zero", got)
	}
	if got := countPixels(fb, fillRed); got != 1 {
		t.Errorf("out-of-bounds SetPixel leaked, %d pixels set", got)
	}
}

func TestClear(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(ColorGray)
	if got := countPixels(fb, ColorGray); got != 16 {
		t.Errorf("Clear covered %d pixels, want 16", got)
	}
}

func TestDrawRect(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.DrawRect(2, 3, 4, 5, fillRed)
	if got := countPixels(fb, fillRed); got != 20 {
		t.Errorf("DrawRect covered %d pixels, want 20", got)
	}
	if got := fb.GetPixel(2, 3); got != fillRed {
		t.Error("top-left corner not filled")
	}
	if got := fb.GetPixel(6, 3); got == fillRed {
		t.Error("pixel right of the rect filled")
	}
}

func TestRGBABytesLayout(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetPixel(1, 0, color.RGBA{10, 20, 30, 40})

	buf := fb.RGBABytes(nil)
	if len(buf) != 3*2*4 {
		t.Fatalf("len = %d, want %d", len(buf), 3*2*4)
	}
	o := (0*3 + 1) * 4
	if buf[o] != 10 || buf[o+1] != 20 || buf[o+2] != 30 || buf[o+3] != 40 {
		t.Errorf("pixel (1,0) bytes = %v, want [10 20 30 40]", buf[o:o+4])
	}
}

func TestRGBABytesReusesBuffer(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	buf := fb.RGBABytes(nil)
	again := fb.RGBABytes(buf)
	if &again[0] != &buf[0] {
		t.Error("RGBABytes reallocated despite sufficient capacity")
	}
}

func TestToImage(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	fb.SetPixel(2, 4, fillRed)

	img := fb.ToImage()
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 5 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(2, 4); got != fillRed {
		t.Errorf("image pixel (2,4) = %v, want %v", got, fillRed)
	}
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(ColorWhite)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PNG file is empty")
	}
}
