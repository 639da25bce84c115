package puzzle

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is returned when a layout has no slots or does not match
// the number of tiles supplied.
var ErrInvalidLayout = errors.New("invalid layout")

// Layout is the tile grid: Across tiles per row and Down rows of tiles.
type Layout struct {
	Across int `json:"across" toml:"across"`
	Down   int `json:"down" toml:"down"`
}

// Total returns the number of slots in the grid.
func (l Layout) Total() int {
	return l.Across * l.Down
}

// Validate checks that the layout has at least one slot in each dimension.
func (l Layout) Validate() error {
	if l.Across < 1 || l.Down < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidLayout, l.Across, l.Down)
	}
	return nil
}

// Position returns the tile-row and tile-column of slot s.
func (l Layout) Position(s int) (row, col int) {
	return s / l.Across, s % l.Across
}

func (l Layout) String() string {
	return fmt.Sprintf("%dx%d", l.Across, l.Down)
}

// FindCorner returns the top-left tile: the only tile with neither an up nor
// a left neighbor. When no tile or several tiles qualify it falls back to
// tiles[0] and reports false. It returns nil only for an empty tile set.
func FindCorner(tiles []*Tile) (*Tile, bool) {
	var corner *Tile
	found := 0
	for _, t := range tiles {
		_, hasUp := t.Neighbor(Up)
		_, hasLeft := t.Neighbor(Left)
		if !hasUp && !hasLeft {
			corner = t
			found++
		}
	}
	if found == 1 {
		return corner, true
	}
	if len(tiles) == 0 {
		return nil, false
	}
	return tiles[0], false
}

// Assemble propagates right and down links from the corner tile into a
// row-major placement of layout.Total() slots.
//
// Slots are visited in order; each placed tile writes its right neighbor into
// the next slot (unless it sits on the right edge) and its down neighbor into
// the slot below (unless it sits on the bottom row). A later write replaces
// an earlier one. Slots no link reaches hold blank. Links to IDs outside tiles
// are ignored. Assemble never fails and never leaves a nil slot.
func Assemble(layout Layout, tiles []*Tile, blank *Tile) []*Tile {
	total := max(layout.Total(), 0)
	if blank == nil {
		blank = blankLike(tiles)
	}
	placement := make([]*Tile, total)
	for s := range placement {
		placement[s] = blank
	}
	if total == 0 {
		return placement
	}

	if corner, _ := FindCorner(tiles); corner != nil {
		placement[0] = corner
	}

	lookup := func(id int) *Tile {
		if id < 0 || id >= len(tiles) {
			return nil
		}
		return tiles[id]
	}

	for s := 0; s < total; s++ {
		cur := placement[s]
		if cur == nil || cur.IsBlank() {
			continue
		}
		row, col := layout.Position(s)
		if col < layout.Across-1 {
			if id, ok := cur.Neighbor(Right); ok {
				if next := lookup(id); next != nil {
					placement[s+1] = next
				}
			}
		}
		if row < layout.Down-1 {
			if id, ok := cur.Neighbor(Down); ok {
				if next := lookup(id); next != nil {
					placement[s+layout.Across] = next
				}
			}
		}
	}

	return placement
}

// blankLike returns a placeholder sized like the first tile, or a 1x1x1
// placeholder for an empty set.
func blankLike(tiles []*Tile) *Tile {
	rows, cols, channels := 1, 1, 1
	if len(tiles) > 0 && tiles[0] != nil {
		rows, cols, channels = tiles[0].Rows, tiles[0].Cols, tiles[0].Channels
	}
	blank, _ := NewBlankTile(rows, cols, channels)
	return blank
}
