// Package config loads puzzle-tools settings from a TOML file and the
// environment.
//
// Precedence, lowest first: Default, the TOML file, environment variables,
// then command-line flags (applied by the caller).
//
//	[layout]
//	across = 16
//	down = 9
//
//	[tiles]
//	rows = 0   # 0 derives the size from the image
//	cols = 0
//
//	[solver]
//	workers = 0        # 0 uses GOMAXPROCS
//	mutual_only = false
//
//	[output]
//	suffix = "_result.bmp"
//	blank_color = "#000000"
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/ironsheep/puzzle-tools-mcp/internal/imagestore"
	"github.com/ironsheep/puzzle-tools-mcp/internal/puzzle"
)

// Environment variables read by ApplyEnv.
const (
	EnvWorkers  = "PUZZLE_WORKERS"
	EnvLogLevel = "PUZZLE_LOG_LEVEL"
)

// Config holds every tunable of a solve or shuffle run.
type Config struct {
	Layout   puzzle.Layout       `toml:"layout"`
	Tiles    imagestore.TileSize `toml:"tiles"`
	Solver   Solver              `toml:"solver"`
	Output   Output              `toml:"output"`
	LogLevel string              `toml:"log_level"`
}

type Solver struct {
	Workers    int  `toml:"workers"`
	MutualOnly bool `toml:"mutual_only"`
}

type Output struct {
	// Suffix replaces the input extension to name the result file.
	Suffix string `toml:"suffix"`

	// BlankColor fills slots no link reached, as "#rrggbb".
	BlankColor string `toml:"blank_color"`
}

// Default returns the settings used when no file is given: a 16x9 grid,
// tile size derived from the image, results written as <stem>_result.bmp.
func Default() *Config {
	return &Config{
		Layout: puzzle.Layout{Across: 16, Down: 9},
		Output: Output{
			Suffix:     "_result.bmp",
			BlankColor: "#000000",
		},
		LogLevel: "info",
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PUZZLE_WORKERS and PUZZLE_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		c.Solver.Workers = n
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if c.Tiles.Rows < 0 || c.Tiles.Cols < 0 {
		return fmt.Errorf("invalid tile size %dx%d", c.Tiles.Cols, c.Tiles.Rows)
	}
	if (c.Tiles.Rows == 0) != (c.Tiles.Cols == 0) {
		return fmt.Errorf("tile rows and cols must both be set or both be 0")
	}
	if c.Solver.Workers < 0 {
		return fmt.Errorf("invalid worker count %d", c.Solver.Workers)
	}
	if c.Output.Suffix == "" {
		return fmt.Errorf("output suffix must not be empty")
	}
	if _, err := c.BlankColor(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// BlankColor parses Output.BlankColor.
func (c *Config) BlankColor() (color.Color, error) {
	fill, err := imagestore.ParseHexColor(c.Output.BlankColor)
	if err != nil {
		return nil, fmt.Errorf("invalid blank_color: %w", err)
	}
	return fill, nil
}

// Level parses LogLevel; empty means info.
func (c *Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// SolveOptions converts the solver section for puzzle.Solve.
func (c *Config) SolveOptions(logger *log.Logger) puzzle.Options {
	return puzzle.Options{
		Workers:    c.Solver.Workers,
		MutualOnly: c.Solver.MutualOnly,
		Logger:     logger,
	}
}
