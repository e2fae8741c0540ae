package game

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vimdrill/internal/quiz"
)

// memKnown is an in-memory quiz.KnownStore.
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

// memSnaps records snapshot writes.
type memSnaps struct {
	saves  int
	clears int
	last   quiz.Snapshot
}

func (m *memSnaps) Save(snap quiz.Snapshot) {
	m.saves++
	m.last = snap
}

func (m *memSnaps) Clear() { m.clears++ }

func testItems() []quiz.Item {
	return []quiz.Item{
		{ID: "a", Category: "Motions", Prompt: "Move the cursor left", Answers: []string{"h"}},
		{ID: "b", Category: "Motions", Prompt: "Move the cursor down", Answers: []string{"j"}},
		{ID: "c", Category: "Editing", Prompt: "Delete the current line", Answers: []string{"dd"}},
		{ID: "d", Category: "Editing", Prompt: "Undo the last change", Answers: []string{"u"}},
		{ID: "e", Category: "Visual Mode", Prompt: "Start visual mode", Answers: []string{"v"}},
	}
}

func newTestGame(t *testing.T, modeID quiz.ModeID, known *memKnown) (*GameScreen, *quiz.Session, *memSnaps) {
	t.Helper()
	if known == nil {
		known = &memKnown{}
	}
	rng := rand.New(rand.NewPCG(1, 2))
	session := quiz.NewSession(testItems(), known, rng)
	if !session.SelectMode(modeID) {
		t.Fatalf("SelectMode(%s) failed", modeID)
	}
	snaps := &memSnaps{}
	g := New(session, known, quiz.NewReconciler(known), snaps)
	return g, session, snaps
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(g *GameScreen, text string) {
	for _, r := range text {
		g.Update(keyPress(r))
	}
}

func TestStartClampsToPool(t *testing.T) {
	g, session, snaps := newTestGame(t, quiz.ModeFlash, nil)

	g.Update(specialKey(tea.KeyEnter))

	if session.Phase() != quiz.PhasePlaying {
		t.Fatalf("phase = %v, want playing", session.Phase())
	}
	if session.Total() != 5 {
		t.Errorf("total = %d, want 5 (pool smaller than mode count)", session.Total())
	}
	if snaps.saves == 0 {
		t.Error("starting should persist a snapshot")
	}
}

func TestSubmitCorrectAnswer(t *testing.T) {
	g, session, _ := newTestGame(t, quiz.ModeFlash, nil)
	g.Update(specialKey(tea.KeyEnter))

	q, _ := session.Current()
	typeText(g, q.Answers[0])
	g.Update(specialKey(tea.KeyEnter))

	results := session.Results()
	if len(results) != 1 || !results[0].Correct {
		t.Fatalf("results = %+v, want one correct", results)
	}
	if !g.showingFeedback {
		t.Error("feedback should be showing after submit")
	}

	view := g.View(80, 20)
	if !strings.Contains(view, "Correct") {
		t.Errorf("feedback view missing verdict:\n%s", view)
	}

	// Any key dismisses feedback and moves to the next question.
	g.Update(keyPress('x'))
	if g.showingFeedback {
		t.Error("feedback should clear on keypress")
	}
	if session.Index() != 1 {
		t.Errorf("cursor = %d, want 1", session.Index())
	}
}

func TestQuitConfirmKeepsPartialResults(t *testing.T) {
	g, session, _ := newTestGame(t, quiz.ModeFlash, nil)
	g.Update(specialKey(tea.KeyEnter))

	g.Update(specialKey(tea.KeyEnter)) // blank answer, incorrect
	g.Update(keyPress('x'))            // dismiss feedback

	g.Update(specialKey(tea.KeyEscape))
	if !g.quitConfirm {
		t.Fatal("esc should open the quit confirmation")
	}

	g.Update(keyPress('n'))
	if g.quitConfirm || session.Phase() != quiz.PhasePlaying {
		t.Fatal("n should return to play")
	}

	g.Update(specialKey(tea.KeyEscape))
	g.Update(keyPress('y'))
	if session.Phase() != quiz.PhaseFinished {
		t.Fatalf("phase = %v, want finished after quit", session.Phase())
	}
	if session.Answered() != 1 {
		t.Errorf("answered = %d, want 1 partial result kept", session.Answered())
	}
}

func TestFinishedAddCorrectMarksKnown(t *testing.T) {
	known := &memKnown{}
	g, session, _ := newTestGame(t, quiz.ModeFlash, known)
	g.Update(specialKey(tea.KeyEnter))

	q, _ := session.Current()
	typeText(g, q.Answers[0])
	g.Update(specialKey(tea.KeyEnter))
	g.Update(keyPress('x')) // dismiss feedback
	g.Update(specialKey(tea.KeyEscape))
	g.Update(keyPress('y')) // quit to results

	g.Update(keyPress('a'))
	if !known.Load()[q.ID] {
		t.Errorf("item %s should be known after add-correct", q.ID)
	}
	if g.statusMsg == "" {
		t.Error("add-correct should report a count")
	}
}

func TestReviewToggle(t *testing.T) {
	known := &memKnown{}
	g, session, _ := newTestGame(t, quiz.ModeFlash, known)
	g.Update(specialKey(tea.KeyEnter))

	g.Update(specialKey(tea.KeyEnter)) // blank answer
	g.Update(keyPress('x'))
	g.Update(specialKey(tea.KeyEscape))
	g.Update(keyPress('y'))

	g.Update(keyPress('v'))
	if session.Phase() != quiz.PhaseReview {
		t.Fatalf("phase = %v, want review", session.Phase())
	}

	id := session.Results()[0].Item.ID
	g.Update(keyPress('t'))
	if !known.Load()[id] {
		t.Error("toggle should mark the selected item known")
	}
	g.Update(keyPress('t'))
	if known.Load()[id] {
		t.Error("second toggle should unmark it")
	}

	g.Update(specialKey(tea.KeyEscape))
	if session.Phase() != quiz.PhaseFinished {
		t.Errorf("phase = %v, want finished after leaving review", session.Phase())
	}
}

func TestFlashcardFlow(t *testing.T) {
	g, session, _ := newTestGame(t, quiz.ModeFlashcard, nil)
	g.Update(specialKey(tea.KeyEnter))

	if session.Phase() != quiz.PhaseFlashcard {
		t.Fatalf("phase = %v, want flashcard", session.Phase())
	}

	q, _ := session.Current()
	g.Update(specialKey(' '))
	g.Update(keyPress('y'))

	if known, ok := session.FlashcardResponse(q.ID); !ok || !known {
		t.Errorf("response for %s = (%v, %v), want recorded known", q.ID, known, ok)
	}
	if session.Index() != 1 {
		t.Errorf("cursor = %d, want 1 after response", session.Index())
	}
}

func TestFlashcardResponseBeforeRevealIgnored(t *testing.T) {
	g, session, _ := newTestGame(t, quiz.ModeFlashcard, nil)
	g.Update(specialKey(tea.KeyEnter))

	g.Update(keyPress('y')) // not revealed yet
	if session.Index() != 0 {
		t.Errorf("cursor = %d, response before reveal should be ignored", session.Index())
	}
}

func TestEmptyPoolBlocksStart(t *testing.T) {
	// Known-only mode with nothing marked known: empty pool.
	g, session, _ := newTestGame(t, quiz.ModeFlashcardRepeat, &memKnown{})

	g.Update(specialKey(tea.KeyEnter))
	if session.Phase() != quiz.PhaseModeSelect {
		t.Fatalf("phase = %v, start should be blocked on an empty pool", session.Phase())
	}
	if g.statusMsg == "" {
		t.Error("blocked start should explain itself")
	}
}

func TestMultiChoiceSubmitAndAdvance(t *testing.T) {
	g, session, _ := newTestGame(t, quiz.ModeMCEasy, nil)
	g.Update(specialKey(tea.KeyEnter))

	if session.Phase() != quiz.PhaseMultiChoice {
		t.Fatalf("phase = %v, want multiple-choice", session.Phase())
	}
	if len(g.mc.Options) == 0 {
		t.Fatal("multichoice component has no options")
	}

	g.Update(specialKey(tea.KeyEnter)) // submit first option
	if session.Answered() != 1 {
		t.Fatalf("answered = %d, want 1", session.Answered())
	}
	if !g.showingFeedback {
		t.Error("options should stay revealed until the next key")
	}

	g.Update(keyPress('x'))
	if session.Index() != 1 {
		t.Errorf("cursor = %d, want 1", session.Index())
	}
	if g.mc.Submitted {
		t.Error("component should be rebuilt for the next question")
	}
}

func TestRetryReturnsToConfirmation(t *testing.T) {
	g, session, snaps := newTestGame(t, quiz.ModeFlash, nil)
	g.Update(specialKey(tea.KeyEnter))
	g.Update(specialKey(tea.KeyEscape))
	g.Update(keyPress('y'))

	g.Update(keyPress('r'))
	if session.Phase() != quiz.PhaseModeSelect {
		t.Fatalf("phase = %v, want mode-select after retry", session.Phase())
	}
	if snaps.clears == 0 {
		t.Error("retry should clear the saved snapshot")
	}
}
