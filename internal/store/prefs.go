package store

import (
	"fmt"
	"os"
)

// themeKey holds the theme preference: system, light, or dark.
const themeKey = "theme-preference"

// ThemeSystem is the default when no preference was saved.
const ThemeSystem = "system"

// PrefsRepo persists presentation preferences.
type PrefsRepo struct {
	kv kv
}

// Theme returns the saved theme preference, ThemeSystem when unset or
// unreadable.
func (r *PrefsRepo) Theme() string {
	value, ok, err := r.kv.get(themeKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: reading theme preference: %v\n", err)
		return ThemeSystem
	}
	if !ok {
		return ThemeSystem
	}
	switch value {
	case "system", "light", "dark":
		return value
	}
	return ThemeSystem
}

// SetTheme saves the theme preference.
func (r *PrefsRepo) SetTheme(theme string) error {
	switch theme {
	case "system", "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q (want system, light, or dark)", theme)
	}
	if err := r.kv.set(themeKey, theme); err != nil {
		return fmt.Errorf("save theme preference: %w", err)
	}
	return nil
}
