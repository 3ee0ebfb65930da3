package pixelart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrNoImages is returned by Assemble when there is nothing to place on the
// spritemap canvas.
var ErrNoImages = errors.New("no images to assemble")

// Layout describes the grid geometry of an assembled spritemap.
type Layout struct {
	Cols       int `json:"cols"`        // Number of grid columns
	Rows       int `json:"rows"`        // Number of grid rows
	CellWidth  int `json:"cell_width"`  // Uniform cell width in pixels
	CellHeight int `json:"cell_height"` // Uniform cell height in pixels
}

// GridLayout computes the near-square arrangement for n tiles of at most
// cellW x cellH pixels: cols = ceil(sqrt(n)) and rows = ceil(n/cols).
// The resulting grid always satisfies cols*rows >= n with less than one
// wasted row (cols*rows - n < cols). A non-positive n yields the zero
// Layout.
func GridLayout(n, cellW, cellH int) Layout {
	if n < 1 {
		return Layout{}
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols
	return Layout{Cols: cols, Rows: rows, CellWidth: cellW, CellHeight: cellH}
}

// SpritemapResult contains the assembled canvas and its grid geometry.
type SpritemapResult struct {
	Image  *image.NRGBA // The combined canvas
	Layout Layout       // Grid geometry used for placement
	Count  int          // Number of tiles placed
}

// Assemble composites an ordered sequence of images onto one grid canvas.
//
// Parameters:
//   - images: Tiles in placement order. May have heterogeneous dimensions;
//     the cell size is the maximum width and height across all of them.
//   - background: Fill color for the canvas. The zero value leaves the
//     canvas fully transparent.
//
// Returns:
//   - *SpritemapResult: The canvas, sized Cols*CellWidth x Rows*CellHeight.
//   - error: ErrNoImages when the sequence is empty.
//
// Tile i is placed at row i/Cols, column i%Cols (row-major, matching input
// order) and anchored at the top-left corner of its cell. Tiles smaller than
// the cell are neither centered nor stretched; the remainder of the cell
// keeps the background color.
func Assemble(images []image.Image, background color.NRGBA) (*SpritemapResult, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	cellW, cellH := 0, 0
	for _, img := range images {
		if w := img.Bounds().Dx(); w > cellW {
			cellW = w
		}
		if h := img.Bounds().Dy(); h > cellH {
			cellH = h
		}
	}

	layout := GridLayout(len(images), cellW, cellH)
	canvas := image.NewNRGBA(image.Rect(0, 0, layout.Cols*cellW, layout.Rows*cellH))
	if background != (color.NRGBA{}) {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}

	for i, img := range images {
		x := (i % layout.Cols) * cellW
		y := (i / layout.Cols) * cellH
		r := image.Rect(x, y, x+img.Bounds().Dx(), y+img.Bounds().Dy())
		draw.Draw(canvas, r, img, img.Bounds().Min, draw.Src)
	}

	return &SpritemapResult{Image: canvas, Layout: layout, Count: len(images)}, nil
}

// ParseBackground converts a "#RRGGBB" string into the opaque fill color
// used behind underfilled spritemap cells.
func ParseBackground(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid background color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
