package imagestore

import (
	"image/color"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	path := writeTestImage(t, createInMemoryImage(100, 80, color.NRGBA{255, 0, 0, 255}), "red.png")

	img, err := cache.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	again, err := cache.Load(path)
	require.NoError(t, err)
	assert.Same(t, img, again, "second load should hit the cache")
}

func TestImageCache_LoadMissing(t *testing.T) {
	cache := NewImageCache()
	_, err := cache.Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestImageCache_EvictAndClear(t *testing.T) {
	cache := NewImageCache()
	path := writeTestImage(t, createInMemoryImage(10, 10, color.White), "white.png")

	first, err := cache.Load(path)
	require.NoError(t, err)

	cache.Evict(path)
	second, err := cache.Load(path)
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	cache.Clear()
	third, err := cache.Load(path)
	require.NoError(t, err)
	assert.NotSame(t, second, third)

	// Evicting an unknown path is a no-op.
	cache.Evict("/does/not/exist.png")
}

func TestImageCache_Concurrent(t *testing.T) {
	cache := NewImageCache()
	path := writeTestImage(t, createInMemoryImage(20, 20, color.Black), "black.png")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent load failed: %v", err)
	}
}

func TestLoadImage(t *testing.T) {
	cache := NewImageCache()
	path := writeTestImage(t, createQuadrantImage(40, 20), "quad.png")

	buf, err := LoadImage(cache, path)
	require.NoError(t, err)

	assert.Equal(t, 20, buf.Rows)
	assert.Equal(t, 40, buf.Cols)
	assert.Equal(t, RGBChannels, buf.Channels)
	assert.Len(t, buf.Pix, 20*40*3)

	assert.Equal(t, []uint8{255, 0, 0}, pixelAt(buf, 0, 0))
	assert.Equal(t, []uint8{0, 255, 0}, pixelAt(buf, 0, 39))
	assert.Equal(t, []uint8{0, 0, 255}, pixelAt(buf, 19, 0))
	assert.Equal(t, []uint8{255, 255, 255}, pixelAt(buf, 19, 39))
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache()

	tests := []struct {
		name   string
		format string
	}{
		{"puzzle.png", "png"},
		{"puzzle.jpg", "jpeg"},
		{"puzzle.bmp", "bmp"},
		{"puzzle.tiff", "tiff"},
		{"puzzle.gif", "gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestImage(t, createInMemoryImage(64, 32, color.NRGBA{10, 20, 30, 255}), tt.name)

			info, err := LoadImageInfo(cache, path)
			require.NoError(t, err)
			assert.Equal(t, 64, info.Width)
			assert.Equal(t, 32, info.Height)
			assert.Equal(t, tt.format, info.Format)
			assert.Positive(t, info.FileSizeBytes)
		})
	}
}

func TestFormatFromExt(t *testing.T) {
	assert.Equal(t, "jpeg", formatFromExt("a.JPEG"))
	assert.Equal(t, "tiff", formatFromExt("a.tif"))
	assert.Equal(t, "webp", formatFromExt("a.webp"))
	assert.Equal(t, "unknown", formatFromExt("a.xyz"))
	assert.Equal(t, "unknown", formatFromExt("noext"))
}
