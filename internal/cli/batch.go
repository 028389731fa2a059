package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/jumpgrid/planner"
)

func (c *CLI) batchCommand() *cobra.Command {
	var mapPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every query of a scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			sc, g, err := c.loadScenario(mapPath)
			if err != nil {
				return err
			}
			p, closeCache, err := c.newPlanner(cmd.Context(), cfg, g)
			if err != nil {
				return err
			}
			defer closeCache()

			ids := sc.QueryIDs()
			queries := make([]planner.Query, len(sc.Queries))
			for i, q := range sc.Queries {
				queries[i] = planner.Query{ID: ids[i], From: q.From, To: q.To}
			}
			rep, err := p.Batch(cmd.Context(), queries)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFROM\tTO\tCOST\tWAYPOINTS\tRESULT")
			for _, a := range rep.Answers {
				result := "found"
				cost := fmt.Sprintf("%.3f", a.Cost)
				if !a.Found {
					result, cost = a.Err.Error(), "-"
				}
				fmt.Fprintf(tw, "%s\t%v\t%v\t%s\t%d\t%s\n", a.ID, a.From, a.To, cost, len(a.Path), result)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d found, %d unreachable, %d failed\n", rep.Found, rep.Unreachable, rep.Failed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&mapPath, "map", "m", "", "scenario file with the map and queries")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}
