package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prodflow/shopfloor-routing/internal/aas"
	"github.com/prodflow/shopfloor-routing/pkg/graph"
	"github.com/prodflow/shopfloor-routing/pkg/graph/path"
)

func planCmd(storeDir *string) *cobra.Command {
	var algoName string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan the transport route through the production flow",
		RunE: func(cmd *cobra.Command, _ []string) error {
			algo, err := path.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}

			machines, err := loadMachines(cmd.Context(), *storeDir)
			if err != nil {
				return err
			}
			selected := aas.SelectFlow(machines, aas.DefaultFlow())
			if len(selected) < 2 {
				return fmt.Errorf("need at least 2 running machines, got %d", len(selected))
			}

			g := graph.NewCompleteGraph(aas.Coords(selected))
			out := cmd.OutOrStdout()
			total := 0.0
			for i := 0; i+1 < len(selected); i++ {
				from, to := selected[i].Name, selected[i+1].Name
				res, err := path.Search(g, from, to, algo)
				if err != nil {
					return err
				}
				total += res.Distance
				fmt.Fprintf(out, "%s -> %s: %.6f km (%s, %d steps)\n",
					from, to, res.Distance, algo, res.Steps)
			}

			fmt.Fprintf(out, "route: %s\n", strings.Join(aas.Names(selected), " -> "))
			fmt.Fprintf(out, "total: %.6f km\n", total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algoName, "algorithm", "a", path.AStar.String(), "search algorithm: astar|dijkstra")
	return cmd
}
