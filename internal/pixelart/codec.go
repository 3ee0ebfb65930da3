package pixelart

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
)

// Format identifies one of the two raster formats the tool speaks.
type Format string

const (
	FormatPNG Format = "png"
	FormatTGA Format = "tga"
)

// FormatForPath maps a file path to its raster format by extension.
// Matching is case-insensitive. Paths outside the two supported formats
// yield an error.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".tga":
		return FormatTGA, nil
	}
	return "", fmt.Errorf("unsupported image format: %s", filepath.Base(path))
}

// Supported reports whether path has one of the recognized extensions.
func Supported(path string) bool {
	_, err := FormatForPath(path)
	return err == nil
}

// DecodeFile reads and decodes a PNG or TGA image from disk.
func DecodeFile(path string) (image.Image, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	var img image.Image
	switch format {
	case FormatPNG:
		img, err = png.Decode(f)
	case FormatTGA:
		img, err = tga.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}

	return img, nil
}

// EncodeFile writes img to path, choosing the encoder from the path's
// extension. An existing file is truncated. Both formats are written
// losslessly.
func EncodeFile(path string, img image.Image) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	switch format {
	case FormatPNG:
		err = png.Encode(f, img)
	case FormatTGA:
		err = tga.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
