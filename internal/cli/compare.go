package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prodflow/shopfloor-routing/internal/aas"
	"github.com/prodflow/shopfloor-routing/pkg/genetic"
	"github.com/prodflow/shopfloor-routing/pkg/graph"
	"github.com/prodflow/shopfloor-routing/pkg/routing"
)

func compareCmd(storeDir *string) *cobra.Command {
	var (
		generations int
		population  int
		mutation    float64
		seed        int64
		csvPath     string
		geojsonPath string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm over the production flow and report the results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			machines, err := loadMachines(cmd.Context(), *storeDir)
			if err != nil {
				return err
			}
			selected := aas.SelectFlow(machines, aas.DefaultFlow())
			if len(selected) < 2 {
				return fmt.Errorf("need at least 2 running machines, got %d", len(selected))
			}

			g := graph.NewCompleteGraph(aas.Coords(selected))
			opts := routing.CompareAll(genetic.Config{
				Generations:  generations,
				Population:   population,
				MutationRate: mutation,
				Seed:         seed,
			})
			results, err := routing.Compare(g, aas.Names(selected), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%-10s %.6f km  %.6f s  optimal=%t  iterations=%d\n",
					r.Algorithm, r.DistanceKm, r.Seconds, r.Optimal, r.Steps)
			}

			if csvPath != "" {
				if err := writeCSVFile(csvPath, results); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", csvPath)
			}
			if geojsonPath != "" {
				if err := writeGeoJSONFile(geojsonPath, g, results[0]); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", geojsonPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&generations, "generations", genetic.DefaultGenerations, "genetic algorithm generations")
	cmd.Flags().IntVar(&population, "population", genetic.DefaultPopulation, "genetic algorithm population size")
	cmd.Flags().Float64Var(&mutation, "mutation", genetic.DefaultMutationRate, "genetic algorithm mutation rate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "genetic algorithm random seed (0 uses the clock)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the comparison table to a CSV file")
	cmd.Flags().StringVar(&geojsonPath, "geojson", "", "write the reference route to a GeoJSON file")
	return cmd
}

func writeCSVFile(name string, results []routing.AlgorithmResult) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := routing.WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeGeoJSONFile(name string, g *graph.Graph, result routing.AlgorithmResult) error {
	fc, err := routing.RouteGeoJSON(g, result)
	if err != nil {
		return err
	}
	raw, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(name, raw, 0o644)
}
