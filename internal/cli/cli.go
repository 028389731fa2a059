// Package cli implements the jumpgrid command-line interface.
//
// Commands:
//   - find:       one query, optionally drawn over the map
//   - batch:      every query of a scenario file, in parallel
//   - components: connected regions of a map
//   - verify:     cross-check Jump Point Search against Dijkstra
//
// Maps come from scenario files (see config.Scenario). Settings come from
// --config (YAML or TOML); a missing file means defaults.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/jumpgrid/config"
	"github.com/katalvlaran/jumpgrid/gridgraph"
	"github.com/katalvlaran/jumpgrid/planner"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

const defaultConfigPath = "jumpgrid.yaml"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	color      bool
}

// New creates a CLI logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "jumpgrid",
		Short:        "jumpgrid finds shortest paths on 2D grids with Jump Point Search",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", defaultConfigPath, "config file (.yaml or .toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&c.color, "color", false, "colorize map output")

	root.AddCommand(c.findCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.verifyCommand())

	return root
}

// loadConfig reads and validates --config and applies its log level unless
// --verbose overrides it.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if c.verbose {
		c.SetLogLevel(LogDebug)
	} else {
		c.SetLogLevel(cfg.LogLevel())
	}
	c.Logger.Debug("config loaded", "path", c.configPath, "frontier", cfg.Search.Frontier, "cache", cfg.Planner.Cache.Backend)

	return cfg, nil
}

// loadScenario reads a scenario file and builds its grid.
func (c *CLI) loadScenario(path string) (config.Scenario, *gridgraph.Grid, error) {
	sc, err := config.LoadScenario(path)
	if err != nil {
		return sc, nil, err
	}
	g, err := sc.Grid()
	if err != nil {
		return sc, nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	c.Logger.Debug("map loaded", "name", sc.Name, "width", g.Width, "height", g.Height, "walkable", g.Walkable())

	return sc, g, nil
}

// newPlanner wires the configured cache, search options and logger into a
// Planner. The returned close func releases the cache.
func (c *CLI) newPlanner(ctx context.Context, cfg config.Config, g *gridgraph.Grid) (*planner.Planner, func() error, error) {
	opts, err := cfg.SearchOptions()
	if err != nil {
		return nil, nil, err
	}
	cache, err := cfg.Planner.Cache.Open(ctx)
	if err != nil {
		return nil, nil, err
	}
	p, err := planner.New(g,
		planner.WithSearchOptions(opts...),
		planner.WithCache(cache, cfg.Planner.Cache.Expiry()),
		planner.WithWorkers(cfg.Planner.Workers),
		planner.WithSnap(cfg.Planner.Snap),
		planner.WithLogger(c.Logger),
	)
	if err != nil {
		_ = cache.Close()
		return nil, nil, err
	}

	return p, cache.Close, nil
}
