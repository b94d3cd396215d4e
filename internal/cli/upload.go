package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prodflow/shopfloor-routing/internal/aas"
)

func uploadCmd(storeDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <dir>",
		Short: "Load AAS JSON documents from a directory into the document store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(*storeDir)
			if err != nil {
				return err
			}
			defer st.Close()

			inserted, err := aas.UploadDirectory(st, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %d documents in %s\n", inserted, *storeDir)
			return nil
		},
	}
}
