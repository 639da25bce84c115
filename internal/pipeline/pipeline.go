// Package pipeline runs whole puzzle jobs: load an image, cut it into tiles,
// solve, recompose and save. The CLI and the MCP server both drive it.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/puzzle-tools-mcp/internal/config"
	"github.com/ironsheep/puzzle-tools-mcp/internal/imagestore"
	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
	"github.com/ironsheep/puzzle-tools-mcp/internal/report"
)

// Job names one input image and the per-call overrides of the config.
type Job struct {
	Input string

	// Output is the file to write; empty derives it from Input and the
	// configured suffix.
	Output string

	// Layout overrides the configured grid when non-zero.
	Layout puzzle.Layout

	// MutualOnly enables mutual filtering in addition to the config setting.
	MutualOnly bool
}

// Solved is the outcome of Runner.Solve.
type Solved struct {
	Report   *report.Report
	Result   *puzzle.Result
	Tiles    []*puzzle.Tile
	TileSize imagestore.TileSize
	Image    *imagestore.Buffer
}

// Runner executes jobs against one configuration and image cache.
type Runner struct {
	cfg    *config.Config
	cache  *imagestore.ImageCache
	logger *log.Logger
}

// New creates a runner. A nil cache gets a private one; a nil logger
// discards output.
func New(cfg *config.Config, cache *imagestore.ImageCache, logger *log.Logger) *Runner {
	if cache == nil {
		cache = imagestore.NewImageCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cfg: cfg, cache: cache, logger: logger}
}

// Cache returns the image cache shared by every job of this runner.
func (r *Runner) Cache() *imagestore.ImageCache {
	return r.cache
}

// layout returns the job's grid, or the configured one when the job leaves
// it as the zero value. A partly set grid is returned as is and fails
// validation.
func (r *Runner) layout(job Job) puzzle.Layout {
	if job.Layout == (puzzle.Layout{}) {
		return r.cfg.Layout
	}
	return job.Layout
}

// Slice loads job.Input and cuts it into tiles for the job's layout.
func (r *Runner) Slice(job Job) ([]*puzzle.Tile, imagestore.TileSize, *imagestore.Buffer, error) {
	layout := r.layout(job)
	if err := layout.Validate(); err != nil {
		return nil, imagestore.TileSize{}, nil, err
	}

	buf, err := imagestore.LoadImage(r.cache, job.Input)
	if err != nil {
		return nil, imagestore.TileSize{}, nil, err
	}

	size := r.cfg.Tiles
	if size.Rows == 0 || size.Cols == 0 {
		size = imagestore.FitTileSize(buf, layout)
	}

	tiles, err := imagestore.SliceIntoTiles(buf, layout, size)
	if err != nil {
		return nil, imagestore.TileSize{}, nil, fmt.Errorf("failed to slice %s: %w", job.Input, err)
	}
	r.logger.Debug("image sliced", "path", job.Input, "width", buf.Cols, "height", buf.Rows,
		"layout", layout, "tile", fmt.Sprintf("%dx%d", size.Cols, size.Rows))
	return tiles, size, buf, nil
}

// Solve reassembles job.Input in memory. Nothing is written to disk.
func (r *Runner) Solve(ctx context.Context, job Job) (*Solved, error) {
	start := time.Now()
	tiles, size, _, err := r.Slice(job)
	if err != nil {
		return nil, err
	}
	layout := r.layout(job)

	opts := r.cfg.SolveOptions(r.logger)
	opts.MutualOnly = opts.MutualOnly || job.MutualOnly
	res, err := puzzle.Solve(ctx, tiles, layout, opts)
	if err != nil {
		return nil, err
	}

	fill, err := r.cfg.BlankColor()
	if err != nil {
		return nil, err
	}
	img, err := imagestore.ComposeFromTiles(res.Placement, layout, fill)
	if err != nil {
		return nil, err
	}

	rep := report.Build(res, tiles)
	rep.Image = job.Input
	r.logger.Info("puzzle solved", "path", job.Input, "placed", rep.Placed, "blanks", rep.Blanks,
		"fragments", rep.Fragments, "elapsed", time.Since(start).Round(time.Millisecond))
	if rep.Blanks > 0 {
		r.logger.Warn("some slots could not be filled", "blanks", rep.Blanks)
	}

	return &Solved{Report: rep, Result: res, Tiles: tiles, TileSize: size, Image: img}, nil
}

// OutputPath returns job.Output or the path derived from the input name.
func (r *Runner) OutputPath(job Job) string {
	if job.Output != "" {
		return job.Output
	}
	return imagestore.ResultPath(job.Input, r.cfg.Output.Suffix)
}

// SolveAndSave solves job and writes the recomposed image to OutputPath.
func (r *Runner) SolveAndSave(ctx context.Context, job Job) (*Solved, error) {
	solved, err := r.Solve(ctx, job)
	if err != nil {
		return nil, err
	}
	out := r.OutputPath(job)
	if err := imagestore.SaveImage(out, solved.Image); err != nil {
		return nil, err
	}
	r.cache.Evict(out)
	solved.Report.Output = out
	r.logger.Info("result written", "path", out)
	return solved, nil
}

// ShuffleJob describes a scramble of an existing image.
type ShuffleJob struct {
	Job
	Seed uint64

	// NoiseSlot replaces the tile at this output slot with noise; negative
	// disables it.
	NoiseSlot int
}

// Shuffle scrambles job.Input into job.Output and returns the permutation:
// perm[slot] is the original slot of the tile now at slot.
func (r *Runner) Shuffle(job ShuffleJob) ([]int, error) {
	if job.Output == "" {
		return nil, fmt.Errorf("shuffle needs an output path")
	}
	layout := r.layout(job.Job)
	_, size, buf, err := r.Slice(job.Job)
	if err != nil {
		return nil, err
	}

	out, perm, err := imagestore.Shuffle(buf, layout, size, job.Seed)
	if err != nil {
		return nil, err
	}
	if job.NoiseSlot >= 0 {
		if out, err = imagestore.AddNoise(out, layout, size, job.NoiseSlot); err != nil {
			return nil, err
		}
	}
	if err := imagestore.SaveImage(job.Output, out); err != nil {
		return nil, err
	}
	r.cache.Evict(job.Output)
	r.logger.Info("puzzle shuffled", "path", job.Output, "layout", layout, "seed", job.Seed)
	return perm, nil
}

// Graph solves job and returns its link graph as DOT.
func (r *Runner) Graph(ctx context.Context, job Job) (string, *Solved, error) {
	solved, err := r.Solve(ctx, job)
	if err != nil {
		return "", nil, err
	}
	return report.ToDOT(solved.Tiles), solved, nil
}
