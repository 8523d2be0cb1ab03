package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshtsang/fopo/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the stored result",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ResultRepo().Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Stored result cleared.")
		return nil
	},
}
