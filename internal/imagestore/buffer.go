package imagestore

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
)

// RGBChannels is the channel count of buffers decoded from image files.
const RGBChannels = 3

// ErrEmptyImage is returned for images or buffers without pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Buffer is a row-major pixel buffer with Channels bytes per pixel.
type Buffer struct {
	Rows     int
	Cols     int
	Channels int
	Pix      []uint8
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(rows, cols, channels int) *Buffer {
	return &Buffer{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Pix:      make([]uint8, rows*cols*channels),
	}
}

// FromImage converts any image into a 3-channel RGB buffer.
func FromImage(img image.Image) *Buffer {
	src := imaging.Clone(img)
	b := src.Bounds()
	buf := NewBuffer(b.Dy(), b.Dx(), RGBChannels)

	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			si := src.PixOffset(x+b.Min.X, y+b.Min.Y)
			di := (y*buf.Cols + x) * RGBChannels
			copy(buf.Pix[di:di+RGBChannels], src.Pix[si:si+RGBChannels])
		}
	}
	return buf
}

// Image converts the buffer to an opaque NRGBA image. Single-channel buffers
// are treated as gray, four-channel buffers keep their alpha.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Cols, b.Rows))
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Cols; x++ {
			img.SetNRGBA(x, y, b.at(y, x))
		}
	}
	return img
}

func (b *Buffer) at(r, c int) color.NRGBA {
	off := (r*b.Cols + c) * b.Channels
	p := b.Pix[off : off+b.Channels]
	switch b.Channels {
	case 1:
		return color.NRGBA{R: p[0], G: p[0], B: p[0], A: 255}
	case 2:
		return color.NRGBA{R: p[0], G: p[0], B: p[0], A: p[1]}
	case 3:
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: 255}
	default:
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
}

// TileImage renders a tile's pixel buffer as an image.
func TileImage(t *puzzle.Tile) *image.NRGBA {
	return (&Buffer{Rows: t.Rows, Cols: t.Cols, Channels: t.Channels, Pix: t.Pixels}).Image()
}
