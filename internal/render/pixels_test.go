package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestFillScalarRGBA(t *testing.T) {
	lo := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	hi := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	vals := []float64{0, 1, 0.5, -3, 7}
	buf := make([]byte, len(vals)*4)
	FillScalarRGBA(buf, vals, lo, hi)

	if buf[0] != 0 || buf[3] != 255 {
		t.Fatalf("value 0 painted %v, want lo", buf[0:4])
	}
	if buf[4] != 200 || buf[5] != 100 || buf[6] != 50 {
		t.Fatalf("value 1 painted %v, want hi", buf[4:8])
	}
	if buf[8] != 100 {
		t.Fatalf("value 0.5 red = %d, want 100", buf[8])
	}
	if buf[12] != 0 {
		t.Fatalf("value below range was not clamped to lo: %v", buf[12:16])
	}
	if buf[16] != 200 {
		t.Fatalf("value above range was not clamped to hi: %v", buf[16:20])
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	b := color.RGBA{R: 110, G: 120, B: 130, A: 255}
	if Lerp(a, b, 0) != a {
		t.Fatal("Lerp at 0 is not the first color")
	}
	if Lerp(a, b, 1) != b {
		t.Fatal("Lerp at 1 is not the second color")
	}
	mid := Lerp(a, b, 0.5)
	if mid.R != 60 || mid.G != 70 || mid.B != 80 {
		t.Fatalf("Lerp midpoint = %v", mid)
	}
	if Lerp(a, b, -1) != a || Lerp(a, b, 2) != b {
		t.Fatal("Lerp does not clamp t")
	}
}

func TestUpscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	dst := Upscale(src, 3)
	if dst.Bounds().Dx() != 6 || dst.Bounds().Dy() != 6 {
		t.Fatalf("upscaled bounds = %v, want 6x6", dst.Bounds())
	}
	if got := dst.RGBAAt(1, 1); got.R != 255 {
		t.Fatalf("nearest-neighbor block lost its color: %v", got)
	}
	if Upscale(src, 1) != src {
		t.Fatal("scale 1 must return the source image")
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("write png: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("png not written: %v", err)
	}
}
