package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/prodflow/shopfloor-routing/internal/aas"
	"github.com/prodflow/shopfloor-routing/internal/geocode"
	"github.com/prodflow/shopfloor-routing/internal/store"
)

const (
	envStoreDir     = "AAS_STORE_DIR"
	envNominatimURL = "NOMINATIM_URL"

	defaultStoreDir = "aas-store"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var storeDir string

	cmd := &cobra.Command{
		Use:          "route-planner",
		Short:        "Plan and compare shop floor transport routes from AAS documents",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// A missing .env is fine, the flags and defaults still apply.
			_ = godotenv.Load()
			if storeDir == "" {
				storeDir = os.Getenv(envStoreDir)
			}
			if storeDir == "" {
				storeDir = defaultStoreDir
			}
		},
	}

	cmd.PersistentFlags().StringVar(&storeDir, "store", "", "document store directory (default $"+envStoreDir+" or "+defaultStoreDir+")")

	cmd.AddCommand(
		uploadCmd(&storeDir),
		planCmd(&storeDir),
		compareCmd(&storeDir),
		serveCmd(&storeDir),
	)
	return cmd
}

// openStore opens the badger-backed document store at the configured
// directory.
func openStore(dir string) (*store.Store, error) {
	return store.Open(dir)
}

// defaultGeocoder resolves addresses from the built-in table first and falls
// back to Nominatim when NOMINATIM_URL is set.
func defaultGeocoder() geocode.Geocoder {
	chain := geocode.Fallback{geocode.DefaultTable()}
	if url := os.Getenv(envNominatimURL); url != "" {
		chain = append(chain, geocode.NewNominatim(url))
	}
	return chain
}

// loadMachines reads the stored documents and returns the running machines.
func loadMachines(ctx context.Context, dir string) ([]aas.Machine, error) {
	st, err := openStore(dir)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return aas.LoadMachines(ctx, st, aas.DefaultClassifier(), defaultGeocoder())
}
