package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/vimdrill/internal/quiz"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [mode|location]",
	Short: "Start the quiz game",
	Long: `Start the quiz game, optionally at a specific mode.

The argument is either a mode id (regular, flash, mc-hard, ...) or a
logical location like /play/regular/20 to skip the confirmation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runApp(cmd, false, nil)
		}

		arg := args[0]
		if !strings.HasPrefix(arg, "/") {
			arg = "/mode/" + arg
		}
		loc, err := quiz.ParseLocation(arg)
		if err != nil {
			return fmt.Errorf("bad location %q: %w", args[0], err)
		}
		if loc.Phase == quiz.PhaseIntro {
			return runApp(cmd, false, nil)
		}
		return runApp(cmd, false, &loc)
	},
}
