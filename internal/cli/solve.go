package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/puzzle-tools-mcp/internal/pipeline"
	"github.com/ironsheep/puzzle-tools-mcp/internal/report"
)

type solveOpts struct {
	layoutFlags
	output  string
	mutual  bool
	workers int
	graph   string
	json    bool
}

// newSolveCmd creates the solve command. The result is written next to the
// input as <stem>_result.bmp unless -o is given.
func newSolveCmd(a *app) *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <image>",
		Short: "Reassemble a scrambled tile-grid image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Solver.Workers = opts.workers
			}
			job := pipeline.Job{
				Input:      args[0],
				Output:     opts.output,
				Layout:     opts.layout(cmd, a.cfg),
				MutualOnly: opts.mutual,
			}
			return runSolve(cmd, a, job, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image (default <image stem>_result.bmp)")
	cmd.Flags().BoolVar(&opts.mutual, "mutual", false, "keep only links confirmed from both sides")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "pair-matching goroutines (default GOMAXPROCS)")
	cmd.Flags().StringVar(&opts.graph, "graph", "", "also write the link graph (.dot or .svg)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the solve report as JSON on stdout")

	return cmd
}

func runSolve(cmd *cobra.Command, a *app, job pipeline.Job, opts *solveOpts) error {
	ctx := cmd.Context()
	logger := loggerOf(cmd)
	prog := newProgress(logger)

	if opts.graph != "" {
		if _, err := graphFormat(opts.graph); err != nil {
			return err
		}
	}

	runner := pipeline.New(a.cfg, nil, logger)
	solved, err := runner.SolveAndSave(ctx, job)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %s: %d/%d tiles placed", job.Input, solved.Report.Placed, solved.Report.Tiles))

	if opts.graph != "" {
		if err := writeGraph(ctx, opts.graph, report.ToDOT(solved.Tiles)); err != nil {
			return err
		}
		logger.Infof("Wrote %s", opts.graph)
	}

	if opts.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(solved.Report)
	}
	return nil
}

// graphFormat returns the lower-cased extension of a graph output path.
func graphFormat(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg", ".dot", ".gv":
		return ext, nil
	default:
		return "", fmt.Errorf("unsupported graph format: %s (must be .dot or .svg)", path)
	}
}

// writeGraph writes dot to path, rendering SVG when path ends in .svg.
func writeGraph(ctx context.Context, path, dot string) error {
	ext, err := graphFormat(path)
	if err != nil {
		return err
	}
	data := []byte(dot)
	if ext == ".svg" {
		svg, err := report.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		data = svg
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	return nil
}
