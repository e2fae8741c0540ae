package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/vimdrill/internal/mdparse"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <cheatsheet.md> <out.json>",
	Short: "Generate a command data file from a markdown cheat sheet",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer in.Close()

		items, err := mdparse.Parse(in)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("encode items: %w", err)
		}
		if err := os.WriteFile(args[1], append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[1], err)
		}

		fmt.Printf("Wrote %d commands to %s\n", len(items), args[1])
		return nil
	},
}
