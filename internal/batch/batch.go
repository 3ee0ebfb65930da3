// Package batch drives the pixelation pipeline over a file or a directory
// of images: discover, pixelate, write, and optionally assemble a spritemap.
package batch

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spritetools/pixelate/internal/pixelart"
)

// SpritemapName is the filename of the combined grid image, written once
// into the output directory when spritemap generation is requested.
const SpritemapName = "spritemap.png"

// ErrEmptyBatch is returned when no valid images were found to process.
var ErrEmptyBatch = errors.New("no images found to process")

// Options configures a processing run. The struct is built once at startup
// and never mutated.
type Options struct {
	// PixelSize is the block granularity passed to the pixelator. Must be
	// >= 1; 16 is the conventional default.
	PixelSize int

	// AutoAdjust applies auto-contrast to each pixelated image.
	AutoAdjust bool

	// Spritemap assembles all processed images into one grid canvas.
	Spritemap bool

	// OutputDir receives the processed images. Empty means alongside the
	// input: the input directory itself, or the parent of an input file.
	OutputDir string

	// Background fills underfilled spritemap cells. The zero value keeps
	// them transparent.
	Background color.NRGBA
}

// Summary reports what a run produced.
type Summary struct {
	Processed     int      // Images pixelated and written
	Skipped       int      // Files skipped (unsupported extension or undecodable)
	Outputs       []string // Paths of the written images, in discovery order
	OutputDir     string   // Directory the outputs were written to
	SpritemapPath string   // Path of the spritemap, empty unless requested
}

// Processor runs the pixelation pipeline. Each input image is processed
// independently; the spritemap, when requested, is assembled from the
// processed results in discovery order.
type Processor struct {
	opts   Options
	cache  *pixelart.ImageCache
	logger *log.Logger
}

// New creates a Processor. logger may be nil, in which case progress and
// warnings are discarded.
func New(opts Options, logger *log.Logger) *Processor {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Processor{
		opts:   opts,
		cache:  pixelart.NewImageCache(),
		logger: logger,
	}
}

// Run processes every supported image under input (a file or a directory).
//
// Per-file decode failures are logged and skipped so the batch continues;
// a missing input path, an empty batch, and any write failure abort the run
// with an error. Outputs keep their source format and are named
// <name>_p<pixelSize><ext> in the output directory, which is created if
// absent.
func (p *Processor) Run(input string) (*Summary, error) {
	source := pixelart.NewSource(input, p.cache, p.logger)

	// Validate the input path before touching the output directory.
	files, err := source.Files()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrEmptyBatch
	}

	outDir := p.opts.OutputDir
	if outDir == "" {
		outDir = defaultOutputDir(input)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	summary := &Summary{OutputDir: outDir}
	var processed []image.Image

	_, skipped, err := source.Each(func(path string, img image.Image) error {
		p.logger.Printf("processing %s", filepath.Base(path))

		result, err := pixelart.Pixelate(img, p.opts.PixelSize, p.opts.AutoAdjust)
		if err != nil {
			return err
		}

		outPath := filepath.Join(outDir, outputName(path, p.opts.PixelSize))
		if err := pixelart.EncodeFile(outPath, result); err != nil {
			return err
		}
		p.logger.Printf("saved %s", outPath)

		summary.Processed++
		summary.Outputs = append(summary.Outputs, outPath)
		processed = append(processed, result)
		return nil
	})
	if err != nil {
		return nil, err
	}
	summary.Skipped = skipped

	if summary.Processed == 0 {
		return nil, ErrEmptyBatch
	}

	if p.opts.Spritemap {
		sm, err := pixelart.Assemble(processed, p.opts.Background)
		if err != nil {
			return nil, err
		}
		smPath := filepath.Join(outDir, SpritemapName)
		if err := pixelart.EncodeFile(smPath, sm.Image); err != nil {
			return nil, err
		}
		p.logger.Printf("spritemap saved %s (%dx%d grid of %dx%d cells)",
			smPath, sm.Layout.Cols, sm.Layout.Rows, sm.Layout.CellWidth, sm.Layout.CellHeight)
		summary.SpritemapPath = smPath
	}

	return summary, nil
}

// outputName derives the processed filename from the source filename: the
// base name plus a suffix carrying the pixel size, keeping the source
// extension (and therefore the source format).
func outputName(path string, pixelSize int) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_p%d%s", name, pixelSize, ext)
}

// defaultOutputDir places outputs next to the input: the directory itself
// when the input is a directory, otherwise the file's parent directory.
func defaultOutputDir(input string) string {
	if info, err := os.Stat(input); err == nil && info.IsDir() {
		return input
	}
	return filepath.Dir(input)
}
