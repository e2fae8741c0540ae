package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimdrill/internal/cheatsheet"
	"github.com/abhisek/vimdrill/internal/quiz"
	"github.com/abhisek/vimdrill/internal/router"
	"github.com/abhisek/vimdrill/internal/screen"
	"github.com/abhisek/vimdrill/internal/screens/game"
	"github.com/abhisek/vimdrill/internal/screens/home"
	"github.com/abhisek/vimdrill/internal/screens/sheet"
	"github.com/abhisek/vimdrill/internal/store"
	"github.com/abhisek/vimdrill/internal/ui/layout"
	"github.com/abhisek/vimdrill/internal/ui/theme"
)

// Options carries the app's injected dependencies.
type Options struct {
	Items    []quiz.Item
	Known    quiz.KnownStore
	Prefs    *store.PrefsRepo
	Sessions *store.SessionRepo

	// OpenCheatSheet starts on the cheat sheet instead of the menu.
	OpenCheatSheet bool

	// StartAt jumps straight to a mode's confirmation (or into play,
	// when the location's phase is a play phase), skipping the menu.
	StartAt *quiz.Location
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	items   []quiz.Item
	known   quiz.KnownStore
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel builds the screen stack: home at the bottom, plus the
// cheat sheet or a resumed game when applicable.
func newAppModel(opts Options) AppModel {
	session := quiz.NewSession(opts.Items, opts.Known, nil)
	rec := quiz.NewReconciler(opts.Known)
	index := cheatsheet.NewIndex(opts.Items)

	r := router.New(home.New(session, opts.Known, rec, opts.Sessions, index))

	var initCmd tea.Cmd
	switch {
	case opts.OpenCheatSheet:
		initCmd = r.Push(sheet.New(index, opts.Known, rec))
	case opts.StartAt != nil:
		if session.SelectMode(opts.StartAt.Mode) {
			if opts.StartAt.Count > 0 {
				session.SetQuestionCount(opts.StartAt.Count)
			}
			switch opts.StartAt.Phase {
			case quiz.PhasePlaying, quiz.PhaseFlashcard, quiz.PhaseMultiChoice:
				session.Start()
			}
			initCmd = r.Push(game.New(session, opts.Known, rec, opts.Sessions))
		}
	default:
		if snap, ok := opts.Sessions.Load(); ok {
			if err := session.Restore(snap); err != nil {
				fmt.Fprintf(os.Stderr, "warning: dropping saved game: %v\n", err)
				opts.Sessions.Clear()
			} else {
				initCmd = r.Push(game.New(session, opts.Known, rec, opts.Sessions))
			}
		}
	}

	return AppModel{
		router:  r,
		items:   opts.Items,
		known:   opts.Known,
		initCmd: initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.knownCount(), len(m.items), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// knownCount counts known ids that still exist in the repository, so
// stale ids from an older data file don't inflate the tally.
func (m AppModel) knownCount() int {
	known := m.known.Load()
	count := 0
	for _, item := range m.items {
		if known[item.ID] {
			count++
		}
	}
	return count
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	theme.Apply(opts.Prefs.Theme())

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
