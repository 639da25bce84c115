package puzzle

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Options tunes a Solve run.
type Options struct {
	// Workers bounds pair-matching goroutines. Zero uses GOMAXPROCS.
	Workers int

	// MutualOnly runs KeepMutual between selection and assembly.
	MutualOnly bool

	// Logger receives per-phase debug output. Nil discards it.
	Logger *log.Logger
}

// Result is the outcome of a Solve run.
type Result struct {
	Layout Layout

	// Placement is row-major with Layout.Total() entries, blank where no
	// link reached.
	Placement []*Tile

	// Corner is the tile placed in slot 0.
	Corner *Tile

	// CornerDetected is false when Corner came from the id-0 fallback.
	CornerDetected bool

	// Dropped counts links removed by KeepMutual.
	Dropped int

	// Blank is the placeholder used for unreached slots.
	Blank *Tile
}

// Placed returns how many slots hold a real tile.
func (r *Result) Placed() int {
	n := 0
	for _, t := range r.Placement {
		if !t.IsBlank() {
			n++
		}
	}
	return n
}

// Solve matches, links and assembles tiles into layout.
//
// tiles[i].ID must equal i and len(tiles) must equal layout.Total(). The only
// errors are an invalid layout, ErrDimensionMismatch from scoring, or context
// cancellation during pair matching; every other condition degrades into
// blank slots.
func Solve(ctx context.Context, tiles []*Tile, layout Layout, opts Options) (*Result, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if len(tiles) != layout.Total() {
		return nil, fmt.Errorf("%w: %d tiles for %s grid", ErrInvalidLayout, len(tiles), layout)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	start := time.Now()
	if err := MatchAll(ctx, tiles, opts.Workers); err != nil {
		return nil, fmt.Errorf("failed to match tiles: %w", err)
	}
	logger.Debug("pairs scored", "tiles", len(tiles), "elapsed", time.Since(start).Round(time.Millisecond))

	SelectAll(tiles)
	dropped := 0
	if opts.MutualOnly {
		dropped = KeepMutual(tiles)
		logger.Debug("non-mutual links dropped", "count", dropped)
	}

	blank := blankLike(tiles)
	placement := Assemble(layout, tiles, blank)
	corner, detected := FindCorner(tiles)
	if !detected {
		logger.Warn("no unique corner tile, falling back to tile 0")
	}

	res := &Result{
		Layout:         layout,
		Placement:      placement,
		Corner:         corner,
		CornerDetected: detected,
		Dropped:        dropped,
		Blank:          blank,
	}
	logger.Debug("grid assembled", "placed", res.Placed(), "slots", len(placement))
	return res, nil
}
