package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) componentsCommand() *cobra.Command {
	var mapPath string

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List the connected regions of a map",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.loadConfig(); err != nil {
				return err
			}
			_, g, err := c.loadScenario(mapPath)
			if err != nil {
				return err
			}
			comps := g.ConnectedComponents()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d regions, %d walkable cells\n", title("map", c.color), len(comps), g.Walkable())
			for i, comp := range comps {
				fmt.Fprintf(out, "region %d: %d cells starting at %v\n", i, len(comp), g.At(comp[0]))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&mapPath, "map", "m", "", "scenario file with the map")
	_ = cmd.MarkFlagRequired("map")

	return cmd
}
