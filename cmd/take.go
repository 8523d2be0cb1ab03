package cmd

import (
	"github.com/spf13/cobra"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take the assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
