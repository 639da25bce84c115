package imagestore

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
)

// ParseHexColor parses "#RRGGBB" or "#RGB" into an opaque colour.
func ParseHexColor(hex string) (color.NRGBA, error) {
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// MeanColorHex returns the average colour of a tile as "#rrggbb". Tiles with
// fewer than three channels are read as gray.
func MeanColorHex(t *puzzle.Tile) string {
	var sum [3]float64
	n := t.Rows * t.Cols
	for i := 0; i < n; i++ {
		p := t.Pixels[i*t.Channels : (i+1)*t.Channels]
		for c := 0; c < 3; c++ {
			sum[c] += float64(p[min(c, len(p)-1)])
		}
	}
	if n == 0 {
		return colorful.Color{}.Hex()
	}
	mean := colorful.Color{
		R: sum[0] / float64(n) / 255,
		G: sum[1] / float64(n) / 255,
		B: sum[2] / float64(n) / 255,
	}
	return mean.Clamped().Hex()
}
