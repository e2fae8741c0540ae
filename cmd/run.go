package cmd

import (
	"fmt"

	"github.com/abhisek/vimdrill/internal/app"
	"github.com/abhisek/vimdrill/internal/quiz"
	"github.com/abhisek/vimdrill/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the repository, and launches the TUI.
func runApp(cmd *cobra.Command, openCheatSheet bool, startAt *quiz.Location) error {
	items, err := loadItems(cmd)
	if err != nil {
		return fmt.Errorf("load commands: %w", err)
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

	return app.Run(app.Options{
		Items:          items,
		Known:          st.KnownRepo(),
		Prefs:          st.PrefsRepo(),
		Sessions:       st.SessionRepo(),
		OpenCheatSheet: openCheatSheet,
		StartAt:        startAt,
	})
}
