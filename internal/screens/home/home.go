// Package home is the entry screen: the mode menu plus the cheat
// sheet, grouped the way the modes are grouped.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimdrill/internal/cheatsheet"
	"github.com/abhisek/vimdrill/internal/quiz"
	"github.com/abhisek/vimdrill/internal/router"
	"github.com/abhisek/vimdrill/internal/screen"
	"github.com/abhisek/vimdrill/internal/screens/game"
	sheetscreen "github.com/abhisek/vimdrill/internal/screens/sheet"
	"github.com/abhisek/vimdrill/internal/ui/components"
	"github.com/abhisek/vimdrill/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(session *quiz.Session, known quiz.KnownStore, rec *quiz.Reconciler, snapRepo game.SnapshotRepo, index *cheatsheet.Index) *HomeScreen {
	groupNames := map[quiz.Group]string{
		quiz.GroupQuiz:     "Quiz",
		quiz.GroupPractice: "Practice",
		quiz.GroupTest:     "Test",
	}

	var items []components.MenuItem
	order, grouped := quiz.ModesByGroup()
	for _, group := range order {
		items = append(items, components.MenuItem{
			Label:    "— " + groupNames[group] + " —",
			Disabled: true,
		})
		for _, mode := range grouped[group] {
			mode := mode
			items = append(items, components.MenuItem{
				Label: mode.Name,
				Hint:  modeHint(mode),
				Action: func() tea.Cmd {
					return func() tea.Msg {
						session.SelectMode(mode.ID)
						return router.PushScreenMsg{
							Screen: game.New(session, known, rec, snapRepo),
						}
					}
				},
			})
		}
	}

	items = append(items,
		components.MenuItem{Label: "— Reference —", Disabled: true},
		components.MenuItem{
			Label: "Cheat Sheet",
			Hint:  "Browse and search every command",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sheetscreen.New(index, known, rec),
					}
				}
			},
		},
		components.MenuItem{
			Label: "Exit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{menu: components.NewMenu(items)}
}

func modeHint(mode quiz.Mode) string {
	if mode.Count == quiz.CountUnbounded {
		return mode.Description
	}
	return fmt.Sprintf("%s (%d questions)", mode.Description, mode.Count)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("V I M D R I L L")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("How well do you know your Vim?")))
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Left,
		lipgloss.NewStyle().MarginLeft(width/4).Render(menu)))
	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
