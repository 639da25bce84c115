package imagestore

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

// createInMemoryImage creates a solid-colour image.
func createInMemoryImage(width, height int, c color.Color) *image.NRGBA {
	return imaging.New(width, height, c)
}

// createQuadrantImage creates an image with red, green, blue and white
// quadrants (top-left, top-right, bottom-left, bottom-right).
func createQuadrantImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.NRGBA
			switch {
			case x < width/2 && y < height/2:
				c = color.NRGBA{255, 0, 0, 255}
			case y < height/2:
				c = color.NRGBA{0, 255, 0, 255}
			case x < width/2:
				c = color.NRGBA{0, 0, 255, 255}
			default:
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// writeTestImage saves img under a temp dir and returns its path.
func writeTestImage(t *testing.T, img image.Image, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, imaging.Save(img, path))
	return path
}

func pixelAt(buf *Buffer, r, c int) []uint8 {
	off := (r*buf.Cols + c) * buf.Channels
	return buf.Pix[off : off+buf.Channels]
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
