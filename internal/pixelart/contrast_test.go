package pixelart

import (
	"image"
	"image/color"
	"testing"
)

// createSplitGrayImage fills the left half with one gray level and the right
// half with another.
func createSplitGrayImage(width, height int, left, right uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := left
			if x >= width/2 {
				v = right
			}
			img.Set(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

func TestAutoContrast_ExpandsNarrowRange(t *testing.T) {
	// Half the pixels at 100, half at 150: far more than the clip budget at
	// each end, so the range [100,150] maps exactly onto [0,255].
	img := createSplitGrayImage(64, 64, 100, 150)

	result := AutoContrast(img)

	if got := result.NRGBAAt(0, 0); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("dark half: got (%d,%d,%d), want (0,0,0)", got.R, got.G, got.B)
	}
	if got := result.NRGBAAt(63, 0); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("bright half: got (%d,%d,%d), want (255,255,255)", got.R, got.G, got.B)
	}
}

func TestAutoContrast_IdempotentOnFullRange(t *testing.T) {
	// Black/white checkerboard already spans the full range with far more
	// mass at each extreme than the clip budget, so the stretch is identity.
	img := createCheckerImage(64, 64, 8, color.Black, color.White)

	once := AutoContrast(img)
	if !samePixels(img, once) {
		t.Fatal("full-range image should be unchanged by auto-contrast")
	}

	twice := AutoContrast(once)
	if !samePixels(once, twice) {
		t.Error("second auto-contrast application should be a no-op")
	}
}

func TestAutoContrast_SemiTransparentStretch(t *testing.T) {
	// The remap must be computed on the straight channel values; alpha only
	// passes through. With every pixel at alpha 128, a [100,200] gray range
	// still maps exactly onto [0,255].
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			v := uint8(100)
			if x >= 32 {
				v = 200
			}
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 128})
		}
	}

	result := AutoContrast(img)

	if got := result.NRGBAAt(0, 0); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("dark half: got (%d,%d,%d), want (0,0,0)", got.R, got.G, got.B)
	}
	if got := result.NRGBAAt(63, 0); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("bright half: got (%d,%d,%d), want (255,255,255)", got.R, got.G, got.B)
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if a := result.NRGBAAt(x, y).A; a != 128 {
				t.Fatalf("alpha at (%d,%d): got %d, want 128", x, y, a)
			}
		}
	}
}

func TestAutoContrast_UniformImageUnchanged(t *testing.T) {
	img := createSolidImage(32, 32, color.NRGBA{128, 128, 128, 255})

	result := AutoContrast(img)

	if !samePixels(img, result) {
		t.Error("uniform image has a degenerate range and should be unchanged")
	}
}

func TestAutoContrast_PreservesAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 10),
				G: uint8(y * 10),
				B: 128,
				A: uint8(100 + x),
			})
		}
	}

	result := AutoContrast(img)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := uint8(100 + x)
			if got := result.NRGBAAt(x, y).A; got != want {
				t.Fatalf("alpha at (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestAutoContrast_ChannelsStretchedIndependently(t *testing.T) {
	// Red varies over [50,200], green is constant, blue varies over [0,255].
	img := image.NewNRGBA(image.Rect(0, 0, 64, 1))
	for x := 0; x < 64; x++ {
		r := uint8(50)
		b := uint8(0)
		if x >= 32 {
			r = 200
			b = 255
		}
		img.SetNRGBA(x, 0, color.NRGBA{R: r, G: 99, B: b, A: 255})
	}

	result := AutoContrast(img)

	if got := result.NRGBAAt(0, 0); got.R != 0 || got.B != 0 {
		t.Errorf("low end: got R=%d B=%d, want 0 and 0", got.R, got.B)
	}
	if got := result.NRGBAAt(63, 0); got.R != 255 || got.B != 255 {
		t.Errorf("high end: got R=%d B=%d, want 255 and 255", got.R, got.B)
	}
	// The constant green channel has a degenerate range and must not move.
	if got := result.NRGBAAt(10, 0); got.G != 99 {
		t.Errorf("constant channel: got G=%d, want 99", got.G)
	}
}

func TestStretchLUT(t *testing.T) {
	// 1000 samples spread between bins 100 and 150 only.
	bins := make([]int, 256)
	bins[100] = 500
	bins[150] = 500

	lut := stretchLUT(bins, 1000)

	if lut[100] != 0 {
		t.Errorf("lut[100]: got %d, want 0", lut[100])
	}
	if lut[150] != 255 {
		t.Errorf("lut[150]: got %d, want 255", lut[150])
	}
	if lut[99] != 0 || lut[151] != 255 {
		t.Error("values outside the clipped range should saturate")
	}
	if lut[125] == 0 || lut[125] == 255 {
		t.Errorf("midpoint should map inside the range, got %d", lut[125])
	}
}
