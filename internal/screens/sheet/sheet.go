// Package sheet is the searchable cheat-sheet screen: every command
// grouped by category, fuzzy search, and known-state editing.
package sheet

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimdrill/internal/cheatsheet"
	"github.com/abhisek/vimdrill/internal/quiz"
	"github.com/abhisek/vimdrill/internal/router"
	"github.com/abhisek/vimdrill/internal/screen"
	"github.com/abhisek/vimdrill/internal/ui/components"
	"github.com/abhisek/vimdrill/internal/ui/layout"
	"github.com/abhisek/vimdrill/internal/ui/theme"
)

// row is one display line: a category header or a command.
type row struct {
	header string
	item   quiz.Item
}

// SheetScreen implements screen.Screen for the cheat sheet.
type SheetScreen struct {
	index *cheatsheet.Index
	known quiz.KnownStore
	rec   *quiz.Reconciler

	search      components.TextInput
	searchFocus bool

	filtered  []quiz.Item
	rows      []row
	sel       int // index into filtered
	statusMsg string
}

var _ screen.Screen = (*SheetScreen)(nil)
var _ screen.KeyHintProvider = (*SheetScreen)(nil)

// New creates the cheat-sheet screen showing the whole sheet.
func New(index *cheatsheet.Index, known quiz.KnownStore, rec *quiz.Reconciler) *SheetScreen {
	s := &SheetScreen{
		index:  index,
		known:  known,
		rec:    rec,
		search: components.NewTextInput("search commands...", false, 40),
	}
	s.refilter()
	return s
}

func (s *SheetScreen) Init() tea.Cmd {
	return nil
}

func (s *SheetScreen) Title() string {
	return "Cheat Sheet"
}

func (s *SheetScreen) KeyHints() []layout.KeyHint {
	if s.searchFocus {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Search"},
		{Key: "T", Description: "Toggle known"},
		{Key: "M/U", Description: "Mark/unmark all"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SheetScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if s.searchFocus {
		if isKey {
			switch kmsg.String() {
			case "enter":
				s.searchFocus = false
				s.search.Model.Blur()
				return s, nil
			case "esc":
				s.searchFocus = false
				s.search.Model.Blur()
				s.search.Reset()
				s.refilter()
				return s, nil
			}
		}
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		s.refilter()
		return s, cmd
	}

	if !isKey {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "/":
		s.searchFocus = true
		return s, s.search.Model.Focus()
	case "up", "k":
		if s.sel > 0 {
			s.sel--
		}
	case "down", "j":
		if s.sel < len(s.filtered)-1 {
			s.sel++
		}
	case "t", "enter", " ", "space":
		if s.sel >= 0 && s.sel < len(s.filtered) {
			item := s.filtered[s.sel]
			if s.rec.Toggle(item.ID) {
				s.statusMsg = "Marked as known."
			} else {
				s.statusMsg = "Unmarked."
			}
		}
	case "m":
		changed := s.rec.SetAll(ids(s.filtered), true)
		s.statusMsg = fmt.Sprintf("Marked %d commands as known.", changed)
	case "u":
		changed := s.rec.SetAll(ids(s.filtered), false)
		s.statusMsg = fmt.Sprintf("Unmarked %d commands.", changed)
	}
	return s, nil
}

// refilter recomputes the filtered items and display rows for the
// current query, keeping the selection in range.
func (s *SheetScreen) refilter() {
	s.filtered = s.index.Search(s.search.Value())

	s.rows = s.rows[:0]
	order, grouped := cheatsheet.GroupByCategory(s.filtered)
	for _, cat := range order {
		s.rows = append(s.rows, row{header: cat})
		for _, item := range grouped[cat] {
			s.rows = append(s.rows, row{item: item})
		}
	}

	if s.sel >= len(s.filtered) {
		s.sel = len(s.filtered) - 1
	}
	if s.sel < 0 {
		s.sel = 0
	}
}

func (s *SheetScreen) View(width, height int) string {
	known := s.known.Load()

	var b strings.Builder
	b.WriteString("\n  " + s.search.View() + "\n")
	if s.statusMsg != "" {
		b.WriteString("  " + theme.Hint.Render(s.statusMsg) + "\n")
	}
	b.WriteString("\n")

	if len(s.filtered) == 0 {
		b.WriteString("  " + theme.Subtitle.Render("No commands match.") + "\n")
		return b.String()
	}

	visible := height - 5
	if visible < 1 {
		visible = 1
	}

	// Find the selected item's row so the window tracks it.
	selRow := 0
	itemIdx := -1
	for i, r := range s.rows {
		if r.header == "" {
			itemIdx++
			if itemIdx == s.sel {
				selRow = i
				break
			}
		}
	}

	start := 0
	if selRow >= visible {
		start = selRow - visible + 1
	}
	end := start + visible
	if end > len(s.rows) {
		end = len(s.rows)
	}

	itemIdx = -1
	for i, r := range s.rows {
		if r.header == "" {
			itemIdx++
		}
		if i < start || i >= end {
			continue
		}
		if r.header != "" {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(r.header) + "\n")
			continue
		}
		b.WriteString(s.renderItem(r.item, itemIdx == s.sel, known) + "\n")
	}
	return b.String()
}

func (s *SheetScreen) renderItem(item quiz.Item, selected bool, known map[string]bool) string {
	cursor := "  "
	keyStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	if selected {
		cursor = theme.Selected.Render("▸ ")
		keyStyle = keyStyle.Bold(true)
	}

	keys := keyStyle.Render(fmt.Sprintf("%-14s", strings.Join(item.Answers, ", ")))

	var prompt strings.Builder
	for _, span := range cheatsheet.SplitReferences(item.Prompt) {
		if span.Reference {
			prompt.WriteString(lipgloss.NewStyle().Foreground(theme.Reference).Render(span.Text))
		} else {
			prompt.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(span.Text))
		}
	}

	badge := ""
	if known[item.ID] {
		badge = "  " + theme.Known.Render("✓")
	}

	return "    " + cursor + keys + "  " + prompt.String() + badge
}

func ids(items []quiz.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
