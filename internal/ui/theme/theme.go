package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. The dark palette is the default; Apply swaps in the
// light one when the persisted theme preference asks for it.
var (
	Primary   = lipgloss.Color("#34D399") // Emerald — vim green
	Secondary = lipgloss.Color("#60A5FA") // Blue
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Reference = lipgloss.Color("#A78BFA") // Violet — backtick spans
	Text      = lipgloss.Color("#E5E7EB") // Light Gray
	TextDim   = lipgloss.Color("#6B7280") // Gray
	BgCard    = lipgloss.Color("#1F2937") // Dark Slate
	Border    = lipgloss.Color("#374151") // Slate
)

// Shared styles, rebuilt whenever the palette changes.
var (
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Hint       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
	Known      lipgloss.Style
)

func init() {
	rebuild()
}

// Apply switches the palette for the given preference (system, light,
// dark). System and dark keep the defaults.
func Apply(pref string) {
	if pref != "light" {
		return
	}
	Primary = lipgloss.Color("#047857")
	Secondary = lipgloss.Color("#1D4ED8")
	Accent = lipgloss.Color("#B45309")
	Success = lipgloss.Color("#15803D")
	Error = lipgloss.Color("#B91C1C")
	Reference = lipgloss.Color("#6D28D9")
	Text = lipgloss.Color("#111827")
	TextDim = lipgloss.Color("#6B7280")
	BgCard = lipgloss.Color("#F3F4F6")
	Border = lipgloss.Color("#D1D5DB")
	rebuild()
}

func rebuild() {
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Hint = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Selected = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Known = lipgloss.NewStyle().Foreground(Success)
}
