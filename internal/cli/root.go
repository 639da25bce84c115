// Package cli implements the puzzle-tools command-line interface.
//
// # Commands
//
//   - solve: reassemble a scrambled tile-grid image
//   - shuffle: scramble an image into a tile puzzle
//   - graph: write the neighbor link graph as DOT or SVG
//   - serve: run the MCP server on stdio
//
// Every command reads an optional TOML file given with --config, then the
// PUZZLE_* environment variables, then its own flags.
//
// # Logging
//
// Logs go to stderr at info level; --verbose switches to debug. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/puzzle-tools-mcp/internal/config"
	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
	"github.com/ironsheep/puzzle-tools-mcp/internal/server"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version and
// reported by the MCP server. main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
	server.Version = v
}

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool
	logOut     io.Writer
	cfg        *config.Config
}

// layoutFlags are the grid overrides shared by solve, shuffle and graph.
type layoutFlags struct {
	across int
	down   int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.across, "across", 0, "tiles per row (default from config)")
	cmd.Flags().IntVar(&f.down, "down", 0, "rows of tiles (default from config)")
}

// layout applies the flags that were set over the configured grid.
func (f *layoutFlags) layout(cmd *cobra.Command, cfg *config.Config) puzzle.Layout {
	l := cfg.Layout
	if cmd.Flags().Changed("across") {
		l.Across = f.across
	}
	if cmd.Flags().Changed("down") {
		l.Down = f.down
	}
	return l
}

// NewRootCommand builds the command tree. Logs are written to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	a := &app{logOut: logOut}

	root := &cobra.Command{
		Use:          "puzzle-tools",
		Short:        "Reassemble images scrambled on a tile grid",
		Long:         `puzzle-tools rebuilds images that were cut into a grid of equal tiles and shuffled, by matching tile borders pixel by pixel.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("puzzle-tools %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newShuffleCmd(a))
	root.AddCommand(newGraphCmd(a))
	root.AddCommand(newServeCmd(a))

	return root
}

// setup loads the config and attaches the logger to the command context.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	cmd.SetContext(withLogger(cmd.Context(), newLogger(a.logOut, level)))
	return nil
}

// Execute runs the puzzle-tools CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

func loggerOf(cmd *cobra.Command) *log.Logger {
	return loggerFromContext(cmd.Context())
}
