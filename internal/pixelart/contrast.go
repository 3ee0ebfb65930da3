package pixelart

import (
	"image"

	"github.com/anthonynsimon/bild/histogram"
)

// clipFraction is the share of samples ignored at each end of a channel's
// histogram before the contrast range is measured. Half a percent keeps
// single-pixel outliers from dominating the stretch.
const clipFraction = 0.005

// AutoContrast linearly remaps each color channel of img to the full 0-255
// range.
//
// The red, green and blue channels are stretched independently: for each one
// the darkest and brightest 0.5% of samples are clipped, the remaining
// [low, high] range is mapped onto [0, 255], and values outside it saturate.
// The alpha channel is copied through unmodified.
//
// A channel whose clipped range collapses to a single value (a uniform or
// near-uniform channel) is left unchanged, so there is nothing to stretch on
// a solid-color image. Once a channel already spans the full range, applying
// AutoContrast again is a no-op.
//
// The input is not mutated; a new image with the same bounds is returned.
func AutoContrast(img *image.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return img
	}

	// Histogram the straight channel values. NewRGBAHistogram premultiplies
	// by alpha, which would drag the measured range of translucent pixels
	// toward zero, so it gets a copy with the alpha forced opaque.
	scratch := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := img.PixOffset(x, y)
			o := scratch.PixOffset(x, y)
			scratch.Pix[o+0] = img.Pix[i+0]
			scratch.Pix[o+1] = img.Pix[i+1]
			scratch.Pix[o+2] = img.Pix[i+2]
			scratch.Pix[o+3] = 0xff
		}
	}

	hist := histogram.NewRGBAHistogram(scratch)
	luts := [3][256]uint8{
		stretchLUT(hist.R.Bins, total),
		stretchLUT(hist.G.Bins, total),
		stretchLUT(hist.B.Bins, total),
	}

	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := img.PixOffset(x, y)
			o := out.PixOffset(x, y)
			out.Pix[o+0] = luts[0][img.Pix[i+0]]
			out.Pix[o+1] = luts[1][img.Pix[i+1]]
			out.Pix[o+2] = luts[2][img.Pix[i+2]]
			out.Pix[o+3] = img.Pix[i+3]
		}
	}

	return out
}

// stretchLUT builds the 256-entry remap table for one channel from its
// histogram bins. The low cut is the smallest value whose cumulative count
// exceeds the clip budget; the high cut is found the same way from the top.
func stretchLUT(bins []int, total int) [256]uint8 {
	var lut [256]uint8

	clip := int(float64(total) * clipFraction)

	low := 0
	cum := 0
	for v := 0; v < len(bins); v++ {
		cum += bins[v]
		if cum > clip {
			low = v
			break
		}
	}

	high := 255
	cum = 0
	for v := len(bins) - 1; v >= 0; v-- {
		cum += bins[v]
		if cum > clip {
			high = v
			break
		}
	}

	if low >= high {
		// Degenerate range: leave the channel as-is.
		for v := range lut {
			lut[v] = uint8(v)
		}
		return lut
	}

	scale := 255.0 / float64(high-low)
	for v := range lut {
		switch {
		case v <= low:
			lut[v] = 0
		case v >= high:
			lut[v] = 255
		default:
			lut[v] = uint8(float64(v-low)*scale + 0.5)
		}
	}

	return lut
}
