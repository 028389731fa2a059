package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

// ErrInvalidScenario is wrapped by scenario validation failures.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Scenario is a map plus a list of queries against it. The map is given
// either as ASCII rows (Map) or in the packed flag format (Flags + Width).
type Scenario struct {
	Name    string          `yaml:"name" toml:"name"`
	Map     []string        `yaml:"map" toml:"map"`
	Flags   string          `yaml:"flags" toml:"flags"`
	Width   int             `yaml:"width" toml:"width"`
	Queries []ScenarioQuery `yaml:"queries" toml:"queries"`
}

// ScenarioQuery is one from→to request. ID is optional.
type ScenarioQuery struct {
	ID   string          `yaml:"id" toml:"id"`
	From gridgraph.Coord `yaml:"from" toml:"from"`
	To   gridgraph.Coord `yaml:"to" toml:"to"`
}

// LoadScenario reads a scenario file (TOML by extension, YAML otherwise).
// Unlike Load, a missing file is an error.
func LoadScenario(path string) (Scenario, error) {
	var sc Scenario
	if err := decodeFile(path, &sc); err != nil {
		return sc, err
	}
	if len(sc.Map) == 0 && sc.Flags == "" {
		return sc, fmt.Errorf("%w: %s has neither map nor flags", ErrInvalidScenario, path)
	}
	if len(sc.Map) > 0 && sc.Flags != "" {
		return sc, fmt.Errorf("%w: %s has both map and flags", ErrInvalidScenario, path)
	}

	return sc, nil
}

// Grid builds the scenario's grid.
func (s Scenario) Grid() (*gridgraph.Grid, error) {
	if len(s.Map) > 0 {
		return gridgraph.ParseASCII(s.Map)
	}

	return gridgraph.FromFlags(s.Flags, s.Width)
}

// QueryIDs returns each query's ID, defaulting to "q<index>".
func (s Scenario) QueryIDs() []string {
	ids := make([]string, len(s.Queries))
	for i, q := range s.Queries {
		ids[i] = q.ID
		if ids[i] == "" {
			ids[i] = fmt.Sprintf("q%d", i)
		}
	}

	return ids
}
