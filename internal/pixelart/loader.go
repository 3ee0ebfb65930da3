package pixelart

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when the input path does not exist on disk.
var ErrNotFound = errors.New("input path does not exist")

// ImageCache provides thread-safe caching of decoded images to avoid
// redundant disk reads.
//
// Decoded images are keyed by their file path. Once an image is loaded,
// subsequent Load() calls for the same path return the cached copy without
// disk I/O, which is what makes Source iterations cheap to restart.
//
// ImageCache is safe for concurrent use by multiple goroutines.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk if not
// cached. Only the two supported formats (PNG, TGA) can be loaded; the
// format is chosen by file extension.
//
// The image is cached using the exact path string provided. Different paths
// to the same file (relative vs absolute) result in separate cache entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path. If the path is
// not cached, Evict does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Source yields the supported images below a file or directory path as a
// finite, restartable sequence of (path, decoded image) pairs.
//
// Files with unsupported extensions and files that fail to decode are
// skipped with a logged warning rather than aborting the sequence, so one
// broken file never sinks a batch. Discovery order is deterministic:
// directory entries are visited in lexical filename order.
type Source struct {
	root   string
	cache  *ImageCache
	logger *log.Logger
}

// NewSource creates a Source rooted at a file or directory path. The cache
// must not be nil; logger may be nil, in which case warnings are discarded.
func NewSource(root string, cache *ImageCache, logger *log.Logger) *Source {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Source{root: root, cache: cache, logger: logger}
}

// Files returns the candidate image paths for this source in lexical order.
//
// For a directory root, entries with unsupported extensions are skipped with
// a warning and subdirectories are ignored. For a file root, an unsupported
// extension yields an empty slice (warned, not an error). A missing root
// yields an error wrapping ErrNotFound.
func (s *Source) Files() ([]string, error) {
	files, _, err := s.scan()
	return files, err
}

// scan lists the candidate paths and counts the entries dropped for an
// unsupported extension.
func (s *Source) scan() (files []string, unsupported int, err error) {
	info, err := os.Stat(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, s.root)
		}
		return nil, 0, fmt.Errorf("failed to stat %s: %w", s.root, err)
	}

	if !info.IsDir() {
		if !Supported(s.root) {
			s.logger.Printf("skipping %s: unsupported extension", filepath.Base(s.root))
			return nil, 1, nil
		}
		return []string{s.root}, 0, nil
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read directory %s: %w", s.root, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.root, entry.Name())
		if !Supported(path) {
			s.logger.Printf("skipping %s: unsupported extension", entry.Name())
			unsupported++
			continue
		}
		files = append(files, path)
	}

	return files, unsupported, nil
}

// Each invokes fn for every decodable image in the source, in discovery
// order. Skipped entries are counted in skipped: files with unsupported
// extensions as well as files that fail to decode, both warned about. An
// error returned by fn stops the iteration immediately.
//
// Each may be called repeatedly; later passes decode nothing because the
// images come from the cache.
func (s *Source) Each(fn func(path string, img image.Image) error) (visited, skipped int, err error) {
	files, skipped, err := s.scan()
	if err != nil {
		return 0, 0, err
	}

	for _, path := range files {
		img, err := s.cache.Load(path)
		if err != nil {
			s.logger.Printf("skipping %s: %v", filepath.Base(path), err)
			skipped++
			continue
		}
		visited++
		if err := fn(path, img); err != nil {
			return visited, skipped, err
		}
	}

	return visited, skipped, nil
}
