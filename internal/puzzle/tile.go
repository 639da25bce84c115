package puzzle

import (
	"errors"
	"fmt"
)

// Direction names one of the four sides of a tile, clockwise from the top.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// NumDirections is the number of neighbor slots a tile carries.
const NumDirections = 4

const (
	// NoNeighbor marks an empty neighbor slot.
	NoNeighbor = -1

	// BlankID is the ID of placeholder tiles created by NewBlankTile.
	BlankID = -1
)

var directionNames = [NumDirections]string{"up", "right", "down", "left"}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// MarshalText encodes d by name so JSON reports read "up", "right" and so on.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Opposite returns the direction facing d.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// Sentinel errors for tile construction and matching.
var (
	// ErrInvalidTile is returned when a pixel buffer does not match the
	// declared tile dimensions.
	ErrInvalidTile = errors.New("invalid tile")

	// ErrDimensionMismatch is returned when two borders of different lengths
	// are compared. Tiles sliced from one image never trigger it.
	ErrDimensionMismatch = errors.New("border length mismatch")

	// ErrInvalidTileID is returned when tile IDs are not dense and zero-based.
	ErrInvalidTileID = errors.New("tile ids must be dense and zero-based")
)

// Pixel is the channel vector of a single pixel.
type Pixel []uint8

// Border is the sequence of pixels along one side of a tile.
type Border []Pixel

// Tile is one rectangular piece of the source image.
//
// Pixels is row-major with Channels bytes per pixel and is owned by the tile.
// The four borders are extracted once by NewTile and never change.
type Tile struct {
	ID       int
	Rows     int
	Cols     int
	Channels int
	Pixels   []uint8

	// Scores is indexed by the other tile's ID. A nil entry means the pair
	// was never scored (the tile itself, or MatchAll has not run).
	Scores []*ScoreList

	// Neighbors holds the chosen neighbor ID per Direction, or NoNeighbor.
	Neighbors [NumDirections]int

	borders [NumDirections]Border
}

// NewTile builds a tile from a row-major pixel buffer and extracts its borders.
// The buffer is retained, not copied.
func NewTile(id, rows, cols, channels int, pixels []uint8) (*Tile, error) {
	if rows < 1 || cols < 1 || channels < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%dx%d", ErrInvalidTile, rows, cols, channels)
	}
	if len(pixels) != rows*cols*channels {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidTile, len(pixels), rows*cols*channels)
	}

	t := &Tile{
		ID:       id,
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Pixels:   pixels,
	}
	t.clearNeighbors()

	top := make(Border, cols)
	bottom := make(Border, cols)
	for c := 0; c < cols; c++ {
		top[c] = t.At(0, c)
		bottom[c] = t.At(rows-1, c)
	}
	left := make(Border, rows)
	right := make(Border, rows)
	for r := 0; r < rows; r++ {
		left[r] = t.At(r, 0)
		right[r] = t.At(r, cols-1)
	}
	t.borders = [NumDirections]Border{top, right, bottom, left}

	return t, nil
}

// NewBlankTile returns an all-zero placeholder tile with ID BlankID.
func NewBlankTile(rows, cols, channels int) (*Tile, error) {
	return NewTile(BlankID, rows, cols, channels, make([]uint8, rows*cols*channels))
}

// At returns the pixel at row r, column c. The slice aliases the tile buffer.
func (t *Tile) At(r, c int) Pixel {
	off := (r*t.Cols + c) * t.Channels
	return Pixel(t.Pixels[off : off+t.Channels : off+t.Channels])
}

// Border returns the border sequence on side d.
func (t *Tile) Border(d Direction) Border {
	return t.borders[d]
}

// IsBlank reports whether t is a placeholder.
func (t *Tile) IsBlank() bool {
	return t.ID == BlankID
}

// Neighbor returns the neighbor chosen in direction d, if any.
func (t *Tile) Neighbor(d Direction) (int, bool) {
	id := t.Neighbors[d]
	return id, id != NoNeighbor
}

// borderLength is the number of pixels along side d.
func (t *Tile) borderLength(d Direction) int {
	if d == Up || d == Down {
		return t.Cols
	}
	return t.Rows
}

func (t *Tile) clearNeighbors() {
	for d := range t.Neighbors {
		t.Neighbors[d] = NoNeighbor
	}
}
