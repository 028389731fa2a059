package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jumpgrid/jps"
)

func (c *CLI) findCommand() *cobra.Command {
	var mapPath, fromStr, toStr string
	var draw bool

	cmd := &cobra.Command{
		Use:     "find",
		Short:   "Find the shortest path between two cells",
		Example: `  jumpgrid find --map maze.yaml --from 0,0 --to 9,4 --draw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseCoord(fromStr)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			to, err := parseCoord(toStr)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			_, g, err := c.loadScenario(mapPath)
			if err != nil {
				return err
			}
			p, closeCache, err := c.newPlanner(cmd.Context(), cfg, g)
			if err != nil {
				return err
			}
			defer closeCache()

			out := cmd.OutOrStdout()
			ans, err := p.Find(cmd.Context(), from, to)
			if errors.Is(err, jps.ErrNoPath) {
				fmt.Fprintf(out, "no path from %v to %v: %v\n", ans.From, ans.To, err)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %v\n", title("path", c.color), ans.Path)
			fmt.Fprintf(out, "cost %.3f, %d steps, %d expanded, %d touched%s\n",
				ans.Cost, ans.Path.Steps(), ans.Stats.Expanded, ans.Stats.Touched, cachedNote(ans.Cached, c.color))
			if draw {
				fmt.Fprintln(out, renderMap(g, ans.Path, c.color))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mapPath, "map", "m", "", "scenario file with the map")
	cmd.Flags().StringVar(&fromStr, "from", "", "start cell as x,y")
	cmd.Flags().StringVar(&toStr, "to", "", "end cell as x,y")
	cmd.Flags().BoolVarP(&draw, "draw", "d", false, "draw the path over the map")
	_ = cmd.MarkFlagRequired("map")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func cachedNote(cached, styled bool) string {
	if !cached {
		return ""
	}

	return dim(" (cached)", styled)
}
