package cmd

import (
	"fmt"

	"github.com/abhisek/vimdrill/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the known-item set as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "knownItems.json"
		if len(args) == 1 {
			path = args[0]
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		n, err := st.KnownRepo().Export(path)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d known commands to %s\n", n, path)
		return nil
	},
}
