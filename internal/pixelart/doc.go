// Package pixelart implements the image transforms behind the pixelate tool.
//
// The package exposes two pure transforms and the I/O collaborators around
// them:
//   - Pixelate quantizes an image into uniform color blocks by resizing it
//     down with an area-averaging filter and back up with nearest-neighbor.
//   - AutoContrast stretches each color channel to the full 0-255 range,
//     ignoring a small share of outlier samples.
//   - Assemble tiles processed images into a single near-square spritemap.
//   - Source and ImageCache provide a restartable sequence of decoded images
//     from a file or directory, so the transforms can be tested entirely on
//     in-memory images.
//
// All transforms accept standard Go image.Image values and return new images;
// inputs are never mutated. Coordinates are 0-based with the origin at the
// top-left corner.
//
// # Supported formats
//
// The tool reads and writes exactly two raster formats, selected by file
// extension: PNG (compressed, metadata-capable) and TGA (uncompressed, with
// alpha). See codec.go.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Non-positive pixel sizes or empty image bounds
//   - Unsupported file extensions
//   - File I/O or decode failures
//   - Assembling a spritemap from zero images (ErrNoImages)
package pixelart
