package pixelart

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Pixelate quantizes an image into uniform color blocks of roughly
// pixelSize x pixelSize pixels.
//
// Parameters:
//   - img: The source image. Must have positive width and height.
//   - pixelSize: Block granularity. Must be >= 1; 4, 8, 16 and 32 are the
//     usual values. A pixelSize of 1 returns an exact copy of the input.
//   - autoAdjust: When true, AutoContrast is applied to the quantized result.
//
// Returns:
//   - *image.NRGBA: An image with the same dimensions as the input.
//   - error: Non-nil if pixelSize is not positive or the image is empty.
//
// # Algorithm
//
// The image is resized down to max(1, width/pixelSize) x
// max(1, height/pixelSize) (integer truncation) with a box filter, so each
// intermediate pixel holds the average color of its source region. It is then
// resized back to the original dimensions with nearest-neighbor resampling,
// which duplicates those averages into hard-edged blocks. Interpolating on
// the way back up would blur the block edges and destroy the effect.
//
// A pixelSize larger than both dimensions collapses the intermediate image
// to 1x1, producing a single solid block of the image's average color.
//
// Alpha is carried through both resize passes; the contrast step never
// touches it.
func Pixelate(img image.Image, pixelSize int, autoAdjust bool) (*image.NRGBA, error) {
	if pixelSize < 1 {
		return nil, fmt.Errorf("pixel size must be >= 1, got %d", pixelSize)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("image has empty bounds %v", bounds)
	}

	newW := width / pixelSize
	if newW < 1 {
		newW = 1
	}
	newH := height / pixelSize
	if newH < 1 {
		newH = 1
	}

	var result *image.NRGBA
	if newW == width && newH == height {
		// Nothing to quantize; keep the exact source pixels.
		result = imaging.Clone(img)
	} else {
		small := imaging.Resize(img, newW, newH, imaging.Box)
		result = imaging.Resize(small, width, height, imaging.NearestNeighbor)
	}

	if autoAdjust {
		result = AutoContrast(result)
	}

	return result, nil
}
