package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type rgb [3]uint8

var (
	red     = rgb{255, 0, 0}
	green   = rgb{0, 255, 0}
	blue    = rgb{0, 0, 255}
	yellow  = rgb{255, 255, 0}
	magenta = rgb{255, 0, 255}
	cyan    = rgb{0, 255, 255}
	white   = rgb{255, 255, 255}
	gray    = rgb{128, 128, 128}
)

// solidTile creates a rows x cols RGB tile filled with c.
func solidTile(t *testing.T, id, rows, cols int, c rgb) *Tile {
	t.Helper()
	pix := make([]uint8, rows*cols*3)
	for i := 0; i < len(pix); i += 3 {
		copy(pix[i:i+3], c[:])
	}
	tile, err := NewTile(id, rows, cols, 3, pix)
	require.NoError(t, err)
	return tile
}

// seamImage paints a 2x2 grid of 10x10 solid quadrants (red, green / blue,
// yellow) with seam bands straddling the cuts, so facing borders of
// originally adjacent tiles match and every other pairing does not.
func seamImage() (pix []uint8, rows, cols int) {
	rows, cols = 20, 20
	pix = make([]uint8, rows*cols*3)
	set := func(r, c int, col rgb) {
		copy(pix[(r*cols+c)*3:], col[:])
	}

	quad := [2][2]rgb{{red, green}, {blue, yellow}}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			set(r, c, quad[r/10][c/10])
		}
	}

	// Horizontal seam (rows 9 and 10): white on the left half, gray on the right.
	for _, r := range []int{9, 10} {
		for c := 0; c < cols; c++ {
			if c < 10 {
				set(r, c, white)
			} else {
				set(r, c, gray)
			}
		}
	}
	// Vertical seam (cols 9 and 10): magenta in the top half, cyan in the
	// bottom half. Painted last so it owns the crossing pixels.
	for _, c := range []int{9, 10} {
		for r := 0; r < rows; r++ {
			if r < 10 {
				set(r, c, magenta)
			} else {
				set(r, c, cyan)
			}
		}
	}
	return pix, rows, cols
}

// cutGrid slices a row-major RGB image into layout tiles. order[id] names the
// original slot that becomes tile id, which lets tests shuffle the input.
func cutGrid(t *testing.T, pix []uint8, rows, cols int, layout Layout, order []int) []*Tile {
	t.Helper()
	tr, tc := rows/layout.Down, cols/layout.Across
	tiles := make([]*Tile, len(order))
	for id, slot := range order {
		row, col := layout.Position(slot)
		buf := make([]uint8, 0, tr*tc*3)
		for r := row * tr; r < (row+1)*tr; r++ {
			start := (r*cols + col*tc) * 3
			buf = append(buf, pix[start:start+tc*3]...)
		}
		tile, err := NewTile(id, tr, tc, 3, buf)
		require.NoError(t, err)
		tiles[id] = tile
	}
	return tiles
}

// noisyTile alternates two colors that are far from every color in seamImage.
func noisyTile(t *testing.T, id, rows, cols int) *Tile {
	t.Helper()
	dark := rgb{40, 40, 40}
	orange := rgb{200, 100, 30}
	pix := make([]uint8, rows*cols*3)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			col := dark
			if (r+c)%2 == 1 {
				col = orange
			}
			copy(pix[(r*cols+c)*3:], col[:])
		}
	}
	tile, err := NewTile(id, rows, cols, 3, pix)
	require.NoError(t, err)
	return tile
}

func placementIDs(placement []*Tile) []int {
	ids := make([]int, len(placement))
	for i, t := range placement {
		ids[i] = t.ID
	}
	return ids
}
