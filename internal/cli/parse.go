package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/jumpgrid/gridgraph"
)

var errBadCoord = errors.New("coordinate must look like x,y")

// parseCoord parses "x,y" (spaces allowed) into a Coord.
func parseCoord(s string) (gridgraph.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}

	return gridgraph.Coord{X: x, Y: y}, nil
}
