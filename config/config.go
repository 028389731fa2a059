// Package config loads jumpgrid settings and scenario files from YAML or TOML.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jumpgrid/jps"
	"github.com/katalvlaran/jumpgrid/pathcache"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Cache backends accepted in CacheConfig.Backend.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds all settings of the jumpgrid planner and CLI.
type Config struct {
	Search  SearchConfig  `yaml:"search" toml:"search"`
	Planner PlannerConfig `yaml:"planner" toml:"planner"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// SearchConfig tunes each jps.Searcher.
type SearchConfig struct {
	Frontier      string `yaml:"frontier" toml:"frontier"`             // "heap" or "linear"
	MaxExpansions int    `yaml:"max_expansions" toml:"max_expansions"` // 0 = unlimited
}

// PlannerConfig holds query-serving settings.
type PlannerConfig struct {
	Workers int         `yaml:"workers" toml:"workers"`
	Snap    bool        `yaml:"snap" toml:"snap"` // move blocked endpoints to the nearest open cell
	Cache   CacheConfig `yaml:"cache" toml:"cache"`
}

// CacheConfig selects and sizes the path cache.
type CacheConfig struct {
	Backend  string      `yaml:"backend" toml:"backend"`
	Capacity int         `yaml:"capacity" toml:"capacity"`
	TTL      string      `yaml:"ttl" toml:"ttl"` // Go duration, "" or "0" = no expiry
	Redis    RedisConfig `yaml:"redis" toml:"redis"`
}

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	Addr     string `yaml:"addr" toml:"addr"`
	Password string `yaml:"password" toml:"password"`
	DB       int    `yaml:"db" toml:"db"`
	Prefix   string `yaml:"prefix" toml:"prefix"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Frontier: jps.HeapFrontier.String(),
		},
		Planner: PlannerConfig{
			Workers: 4,
			Cache: CacheConfig{
				Backend:  BackendMemory,
				Capacity: pathcache.DefaultCapacity,
				TTL:      "10m",
				Redis: RedisConfig{
					Addr:   "127.0.0.1:6379",
					Prefix: "jumpgrid:",
				},
			},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a config file, decoding TOML for a ".toml" extension and YAML
// otherwise. If the file doesn't exist, returns defaults. Fields missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := decodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	return cfg, nil
}

// decodeFile reads path into v, wrapping os errors so os.ErrNotExist survives.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if isTOML(path) {
		if _, err := toml.Decode(string(data), v); err != nil {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Validate checks every field and returns the first problem wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := jps.ParseFrontierKind(c.Search.Frontier); err != nil {
		return fmt.Errorf("%w: search.frontier %q", ErrInvalidConfig, c.Search.Frontier)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions must be non-negative", ErrInvalidConfig)
	}
	if c.Planner.Workers < 1 {
		return fmt.Errorf("%w: planner.workers must be at least 1", ErrInvalidConfig)
	}
	switch c.Planner.Cache.Backend {
	case BackendNone, BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("%w: planner.cache.backend %q", ErrInvalidConfig, c.Planner.Cache.Backend)
	}
	if _, err := c.Planner.Cache.ttl(); err != nil {
		return fmt.Errorf("%w: planner.cache.ttl: %v", ErrInvalidConfig, err)
	}
	if c.Planner.Cache.Backend == BackendRedis && c.Planner.Cache.Redis.Addr == "" {
		return fmt.Errorf("%w: planner.cache.redis.addr is required", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}

// SearchOptions converts the search section into jps options.
func (c Config) SearchOptions() ([]jps.Option, error) {
	kind, err := jps.ParseFrontierKind(c.Search.Frontier)
	if err != nil {
		return nil, fmt.Errorf("%w: search.frontier %q", ErrInvalidConfig, c.Search.Frontier)
	}
	if c.Search.MaxExpansions < 0 {
		return nil, fmt.Errorf("%w: search.max_expansions must be non-negative", ErrInvalidConfig)
	}

	return []jps.Option{jps.WithFrontier(kind), jps.WithMaxExpansions(c.Search.MaxExpansions)}, nil
}

// LogLevel parses the log level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}

// Expiry returns the parsed cache TTL; invalid values yield 0.
func (c CacheConfig) Expiry() time.Duration {
	d, _ := c.ttl()

	return d
}

func (c CacheConfig) ttl() (time.Duration, error) {
	if c.TTL == "" || c.TTL == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", c.TTL)
	}

	return d, nil
}

// Open builds the configured cache backend. Redis is pinged before returning.
func (c CacheConfig) Open(ctx context.Context) (pathcache.Cache, error) {
	switch c.Backend {
	case BackendNone:
		return pathcache.NewNull(), nil
	case BackendMemory, "":
		return pathcache.NewMemory(c.Capacity), nil
	case BackendRedis:
		return pathcache.NewRedis(ctx, pathcache.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		})
	}

	return nil, fmt.Errorf("%w: planner.cache.backend %q", ErrInvalidConfig, c.Backend)
}
