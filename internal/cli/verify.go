package cli

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jumpgrid/dijkstra"
	"github.com/katalvlaran/jumpgrid/gridgraph"
	"github.com/katalvlaran/jumpgrid/jps"
)

// errMismatch is returned by verify when any query disagrees.
var errMismatch = errors.New("jump point search disagrees with dijkstra")

const costTolerance = 1e-6

func (c *CLI) verifyCommand() *cobra.Command {
	var mapPath string
	var random int
	var seed int64

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check Jump Point Search costs against Dijkstra",
		Long: `Runs the scenario's queries, plus --random extra ones between random
walkable cells, through both Jump Point Search and the brute-force Dijkstra
reference, and reports every query where they disagree.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			sc, g, err := c.loadScenario(mapPath)
			if err != nil {
				return err
			}
			opts, err := cfg.SearchOptions()
			if err != nil {
				return err
			}
			s, err := jps.NewSearcher(g, opts...)
			if err != nil {
				return err
			}

			pairs := make([][2]gridgraph.Coord, 0, len(sc.Queries)+random)
			for _, q := range sc.Queries {
				pairs = append(pairs, [2]gridgraph.Coord{q.From, q.To})
			}
			pairs = append(pairs, randomPairs(g, random, seed)...)

			prog := newProgress(c.Logger)
			out := cmd.OutOrStdout()
			bad := 0
			for _, pr := range pairs {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				if msg := verifyPair(s, g, pr[0], pr[1]); msg != "" {
					bad++
					fmt.Fprintf(out, "MISMATCH %v→%v: %s\n", pr[0], pr[1], msg)
				}
			}
			prog.done(fmt.Sprintf("Verified %d queries", len(pairs)))
			fmt.Fprintf(out, "%d queries, %d mismatches\n", len(pairs), bad)
			if bad > 0 {
				return fmt.Errorf("%w on %d of %d queries", errMismatch, bad, len(pairs))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mapPath, "map", "m", "", "scenario file with the map")
	cmd.Flags().IntVar(&random, "random", 0, "extra random queries")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for --random")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}

// verifyPair returns "" when both searches agree, else a description.
func verifyPair(s *jps.Searcher, g *gridgraph.Grid, from, to gridgraph.Coord) string {
	res, jerr := s.Find(from, to)
	if !g.CanEnter(from) || !g.CanEnter(to) {
		if !errors.Is(jerr, jps.ErrNoPath) {
			return fmt.Sprintf("invalid endpoint accepted: %v", jerr)
		}
		return ""
	}
	ref, err := dijkstra.Grid(g, from, dijkstra.WithTarget(to))
	if err != nil {
		return err.Error()
	}
	want := ref.Cost(to)
	switch {
	case math.IsInf(want, 1) && jerr == nil:
		return fmt.Sprintf("jps found cost %.6f, dijkstra found no path", res.Cost)
	case math.IsInf(want, 1):
		return ""
	case jerr != nil:
		return fmt.Sprintf("jps failed (%v), dijkstra cost %.6f", jerr, want)
	}
	walked, err := res.Path.Cost(g)
	if err != nil {
		return fmt.Sprintf("illegal path %v: %v", res.Path, err)
	}
	if math.Abs(res.Cost-want) > costTolerance || math.Abs(walked-want) > costTolerance {
		return fmt.Sprintf("jps cost %.6f (walked %.6f), dijkstra cost %.6f", res.Cost, walked, want)
	}

	return ""
}

// randomPairs picks n endpoint pairs among walkable cells.
func randomPairs(g *gridgraph.Grid, n int, seed int64) [][2]gridgraph.Coord {
	if n <= 0 || g.Walkable() == 0 {
		return nil
	}
	open := make([]gridgraph.Coord, 0, g.Walkable())
	for i := 0; i < g.Size(); i++ {
		if c := g.At(i); g.CanEnter(c) {
			open = append(open, c)
		}
	}
	rng := rand.New(rand.NewSource(seed))
	pairs := make([][2]gridgraph.Coord, n)
	for i := range pairs {
		pairs[i] = [2]gridgraph.Coord{open[rng.Intn(len(open))], open[rng.Intn(len(open))]}
	}

	return pairs
}
