package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vimdrill/internal/cheatsheet"
	"github.com/abhisek/vimdrill/internal/quiz"
	"github.com/abhisek/vimdrill/internal/router"
)

type memKnown struct {
	known map[string]bool
}

func (m *memKnown) Load() map[string]bool {
	out := make(map[string]bool, len(m.known))
	for id, v := range m.known {
		out[id] = v
	}
	return out
}

func (m *memKnown) Save(known map[string]bool) {
	m.known = make(map[string]bool, len(known))
	for id, v := range known {
		m.known[id] = v
	}
}

type memSnaps struct{}

func (memSnaps) Save(quiz.Snapshot) {}
func (memSnaps) Clear()             {}

func newTestHome() (*HomeScreen, *quiz.Session) {
	items := []quiz.Item{
		{ID: "a", Category: "Motions", Prompt: "Move the cursor left", Answers: []string{"h"}},
	}
	known := &memKnown{}
	session := quiz.NewSession(items, known, nil)
	rec := quiz.NewReconciler(known)
	return New(session, known, rec, memSnaps{}, cheatsheet.NewIndex(items)), session
}

func TestViewListsEveryMode(t *testing.T) {
	h, _ := newTestHome()
	view := h.View(100, 40)

	for _, mode := range quiz.Modes() {
		if !strings.Contains(view, mode.Name) {
			t.Errorf("view missing mode %q", mode.Name)
		}
	}
	if !strings.Contains(view, "Cheat Sheet") {
		t.Error("view missing cheat sheet entry")
	}
}

func TestSelectingModeEntersModeSelect(t *testing.T) {
	h, session := newTestHome()

	// First enabled item is the first quiz mode.
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a mode should emit a command")
	}
	msg := cmd()
	if _, ok := msg.(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if session.Phase() != quiz.PhaseModeSelect {
		t.Errorf("phase = %v, want mode-select", session.Phase())
	}
	if mode, ok := session.Mode(); !ok || mode.ID != quiz.ModeFlash {
		t.Errorf("mode = %+v, want flash (first menu entry)", mode)
	}
}
