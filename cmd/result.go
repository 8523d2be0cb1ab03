package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshtsang/fopo/internal/scoring"
	"github.com/joshtsang/fopo/internal/store"
)

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Print the most recent stored result",
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

		res, err := st.ResultRepo().Latest(cmd.Context())
		if err != nil {
			return err
		}
		if res == nil {
			fmt.Println("No result stored yet. Run `fopo` to take the assessment.")
			return nil
		}

		tier := scoring.Tier(res.Level)
		fmt.Printf("Taken:  %s\n", res.Timestamp.Local().Format("2 Jan 2006 15:04"))
		fmt.Printf("Score:  %d / %d\n", res.Score, scoring.MaxScore)
		fmt.Printf("Level:  %s\n", tier.Label())
		fmt.Printf("\n%s\n", tier.Description())
		return nil
	},
}
