package imagestore

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
)

// TileSize is the pixel size of every tile in a puzzle.
type TileSize struct {
	Rows int `json:"rows" toml:"rows"`
	Cols int `json:"cols" toml:"cols"`
}

// FitTileSize returns the smallest tile size whose layout covers buf.
func FitTileSize(buf *Buffer, layout puzzle.Layout) TileSize {
	return TileSize{
		Rows: (buf.Rows + layout.Down - 1) / layout.Down,
		Cols: (buf.Cols + layout.Across - 1) / layout.Across,
	}
}

// SliceIntoTiles cuts buf into layout.Total() tiles of the given size, with
// IDs in row-major slot order. Pixels outside buf are left zero.
func SliceIntoTiles(buf *Buffer, layout puzzle.Layout, size TileSize) ([]*puzzle.Tile, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if buf.Rows < 1 || buf.Cols < 1 {
		return nil, ErrEmptyImage
	}
	if size.Rows < 1 || size.Cols < 1 {
		return nil, fmt.Errorf("invalid tile size %dx%d", size.Cols, size.Rows)
	}

	ch := buf.Channels
	tiles := make([]*puzzle.Tile, layout.Total())
	for id := range tiles {
		row, col := layout.Position(id)
		startRow, startCol := row*size.Rows, col*size.Cols

		pix := make([]uint8, size.Rows*size.Cols*ch)
		width := min(size.Cols, buf.Cols-startCol)
		for r := 0; r < size.Rows && startRow+r < buf.Rows && width > 0; r++ {
			src := ((startRow+r)*buf.Cols + startCol) * ch
			copy(pix[r*size.Cols*ch:], buf.Pix[src:src+width*ch])
		}

		t, err := puzzle.NewTile(id, size.Rows, size.Cols, ch, pix)
		if err != nil {
			return nil, fmt.Errorf("failed to build tile %d: %w", id, err)
		}
		tiles[id] = t
	}
	return tiles, nil
}

// ComposeFromTiles pastes a row-major placement into one buffer of
// Size.Rows*Down x Size.Cols*Across pixels. Blank tiles are painted with
// fill; a nil fill leaves them black.
func ComposeFromTiles(placement []*puzzle.Tile, layout puzzle.Layout, fill color.Color) (*Buffer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if len(placement) != layout.Total() {
		return nil, fmt.Errorf("%w: %d tiles for %s grid", puzzle.ErrInvalidLayout, len(placement), layout)
	}
	if fill == nil {
		fill = color.Black
	}

	var ref *puzzle.Tile
	for _, t := range placement {
		if t != nil {
			ref = t
			break
		}
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: placement has no tiles", puzzle.ErrInvalidLayout)
	}

	rows, cols := ref.Rows, ref.Cols
	canvas := imaging.New(cols*layout.Across, rows*layout.Down, fill)
	for s, t := range placement {
		if t == nil || t.IsBlank() {
			continue
		}
		row, col := layout.Position(s)
		tile := imaging.Crop(TileImage(t), image.Rect(0, 0, cols, rows))
		canvas = imaging.Paste(canvas, tile, image.Pt(col*cols, row*rows))
	}
	return FromImage(canvas), nil
}

// SaveImage encodes buf to path, choosing the format from the extension.
func SaveImage(path string, buf *Buffer) error {
	if err := imaging.Save(buf.Image(), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodePNGBase64 encodes buf as a base64 PNG for transport in JSON.
func EncodePNGBase64(buf *Buffer) (string, error) {
	var out bytes.Buffer
	if err := imaging.Encode(&out, buf.Image(), imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(out.Bytes()), nil
}

// ResultPath derives the output file name for a solved puzzle, e.g.
// "scan.png" with suffix "_result.bmp" becomes "scan_result.bmp".
func ResultPath(input, suffix string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}
