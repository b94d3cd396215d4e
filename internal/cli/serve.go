package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/prodflow/shopfloor-routing/internal/aas"
	"github.com/prodflow/shopfloor-routing/pkg/server"
)

func serveCmd(storeDir *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route planning HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			machines, err := loadMachines(cmd.Context(), *storeDir)
			if err != nil {
				return err
			}

			service, err := server.NewPlannerService(machines, aas.DefaultFlow())
			if err != nil {
				return err
			}
			router := server.NewRouter(service)

			log.Printf("listening on %s", addr)
			if err := http.ListenAndServe(addr, router); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
