package cmd

import (
	"github.com/spf13/cobra"
)

var cheatsheetCmd = &cobra.Command{
	Use:   "cheatsheet",
	Short: "Browse the command cheat sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true, nil)
	},
}
