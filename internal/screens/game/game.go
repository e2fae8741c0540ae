// Package game hosts the quiz screen. One screen covers the whole
// session lifecycle: mode confirmation, the three play kinds, the
// results board, and the per-question review. All game state lives in
// quiz.Session; this screen only translates keys into session events
// and persists a snapshot after each one.
package game

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vimdrill/internal/quiz"
	"github.com/abhisek/vimdrill/internal/router"
	"github.com/abhisek/vimdrill/internal/screen"
	"github.com/abhisek/vimdrill/internal/ui/components"
	"github.com/abhisek/vimdrill/internal/ui/layout"
)

// SnapshotRepo persists the resumable session snapshot.
type SnapshotRepo interface {
	Save(quiz.Snapshot)
	Clear()
}

// GameScreen implements screen.Screen for the quiz game.
type GameScreen struct {
	session  *quiz.Session
	known    quiz.KnownStore
	rec      *quiz.Reconciler
	snapRepo SnapshotRepo

	countInput  components.TextInput
	answerInput components.TextInput
	mc          components.MultiChoice
	card        components.Flashcard

	showingFeedback bool
	lastResult      quiz.Result
	quitConfirm     bool
	statusMsg       string

	reviewSel int
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates the game screen over an already-positioned session. The
// session may be in mode select (the normal entry) or mid-game when
// resuming from a snapshot.
func New(session *quiz.Session, known quiz.KnownStore, rec *quiz.Reconciler, snapRepo SnapshotRepo) *GameScreen {
	g := &GameScreen{
		session:  session,
		known:    known,
		rec:      rec,
		snapRepo: snapRepo,
	}
	g.syncComponents()
	return g
}

func (g *GameScreen) Init() tea.Cmd {
	switch g.session.Phase() {
	case quiz.PhaseModeSelect:
		return g.countInput.Init()
	case quiz.PhasePlaying:
		return g.answerInput.Init()
	}
	return nil
}

func (g *GameScreen) Title() string {
	if mode, ok := g.session.Mode(); ok {
		return mode.Name
	}
	return "Play"
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if g.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}

	switch g.session.Phase() {
	case quiz.PhaseModeSelect:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case quiz.PhasePlaying:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Toggle known"},
			{Key: "Esc", Description: "Quit"},
		}
	case quiz.PhaseFlashcard:
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "Y/N", Description: "Knew it?"},
			{Key: "Esc", Description: "Quit"},
		}
	case quiz.PhaseMultiChoice:
		return []layout.KeyHint{
			{Key: "↑↓ 1-4", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	case quiz.PhaseFinished:
		mode, _ := g.session.Mode()
		if mode.Kind == quiz.KindFlashcard {
			return []layout.KeyHint{
				{Key: "A", Description: "Apply responses"},
				{Key: "R", Description: "Retry"},
				{Key: "Esc", Description: "Home"},
			}
		}
		return []layout.KeyHint{
			{Key: "V", Description: "Review"},
			{Key: "A", Description: "Add correct"},
			{Key: "X", Description: "Remove missed"},
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Home"},
		}
	case quiz.PhaseReview:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "T", Description: "Toggle known"},
			{Key: "Esc", Description: "Results"},
		}
	}
	return nil
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if g.quitConfirm {
		if !isKey {
			return g, nil
		}
		switch kmsg.String() {
		case "y", "Y":
			g.quitConfirm = false
			g.session.Quit()
			g.persist()
		case "n", "N", "esc":
			g.quitConfirm = false
		}
		return g, nil
	}

	switch g.session.Phase() {
	case quiz.PhaseModeSelect:
		return g.updateModeSelect(msg, kmsg, isKey)
	case quiz.PhasePlaying:
		return g.updatePlaying(msg, kmsg, isKey)
	case quiz.PhaseFlashcard:
		return g.updateFlashcard(msg, kmsg, isKey)
	case quiz.PhaseMultiChoice:
		return g.updateMultiChoice(msg, kmsg, isKey)
	case quiz.PhaseFinished:
		return g.updateFinished(kmsg, isKey)
	case quiz.PhaseReview:
		return g.updateReview(kmsg, isKey)
	}
	return g, nil
}

func (g *GameScreen) updateModeSelect(msg tea.Msg, kmsg tea.KeyMsg, isKey bool) (screen.Screen, tea.Cmd) {
	mode, _ := g.session.Mode()

	if isKey {
		switch kmsg.String() {
		case "esc":
			g.session.Reset()
			return g, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			if g.session.AvailableCount() == 0 {
				g.statusMsg = "Nothing to practice in this mode."
				return g, nil
			}
			if !mode.FixedCount {
				if n, err := g.countInput.NumericValue(); err == nil {
					g.session.SetQuestionCount(n)
				}
			}
			g.session.Start()
			g.persist()
			g.statusMsg = ""
			g.syncComponents()
			return g, g.Init()
		}
	}

	if !mode.FixedCount {
		var cmd tea.Cmd
		g.countInput, cmd = g.countInput.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GameScreen) updatePlaying(msg tea.Msg, kmsg tea.KeyMsg, isKey bool) (screen.Screen, tea.Cmd) {
	if g.showingFeedback {
		if isKey {
			g.showingFeedback = false
			g.syncComponents()
		}
		return g, nil
	}

	if isKey {
		switch kmsg.String() {
		case "esc":
			g.quitConfirm = true
			return g, nil
		case "tab":
			g.toggleCurrentKnown()
			return g, nil
		case "enter":
			g.session.SubmitAnswer(g.answerInput.Value())
			if results := g.session.Results(); len(results) > 0 {
				g.lastResult = results[len(results)-1]
			}
			g.showingFeedback = true
			g.persist()
			return g, nil
		}
	}

	var cmd tea.Cmd
	g.answerInput, cmd = g.answerInput.Update(msg)
	return g, cmd
}

func (g *GameScreen) updateFlashcard(msg tea.Msg, kmsg tea.KeyMsg, isKey bool) (screen.Screen, tea.Cmd) {
	if isKey && kmsg.String() == "esc" {
		g.quitConfirm = true
		return g, nil
	}

	var cmd tea.Cmd
	g.card, cmd = g.card.Update(msg)
	if g.card.Responded {
		g.session.RespondFlashcard(g.card.Knew)
		g.persist()
		g.syncComponents()
	}
	return g, cmd
}

func (g *GameScreen) updateMultiChoice(msg tea.Msg, kmsg tea.KeyMsg, isKey bool) (screen.Screen, tea.Cmd) {
	if g.showingFeedback {
		if isKey {
			g.showingFeedback = false
			g.syncComponents()
		}
		return g, nil
	}

	if isKey && kmsg.String() == "esc" {
		g.quitConfirm = true
		return g, nil
	}

	var cmd tea.Cmd
	g.mc, cmd = g.mc.Update(msg)
	if g.mc.Submitted {
		g.session.SubmitAnswer(g.mc.Chosen())
		if results := g.session.Results(); len(results) > 0 {
			g.lastResult = results[len(results)-1]
		}
		// Keep the revealed options on screen until the next key.
		g.showingFeedback = true
		g.persist()
	}
	return g, cmd
}

func (g *GameScreen) updateFinished(kmsg tea.KeyMsg, isKey bool) (screen.Screen, tea.Cmd) {
	if !isKey {
		return g, nil
	}
	mode, _ := g.session.Mode()

	switch kmsg.String() {
	case "esc":
		g.session.Reset()
		g.snapRepo.Clear()
		return g, func() tea.Msg { return router.PopScreenMsg{} }
	case "r", "R":
		g.session.Retry()
		g.persist()
		g.statusMsg = ""
		g.syncComponents()
		return g, g.Init()
	case "v", "V":
		g.session.ShowReview()
		if g.session.Phase() == quiz.PhaseReview {
			g.reviewSel = 0
			g.persist()
		}
	case "a", "A":
		if mode.Kind == quiz.KindFlashcard {
			added, removed := g.rec.ApplyFlashcards(g.session.FlashcardResponses())
			g.statusMsg = fmt.Sprintf("Applied: %d marked known, %d back to learning.", added, removed)
		} else {
			added, total := g.rec.AddCorrect(g.session.Results())
			g.statusMsg = fmt.Sprintf("Marked %d of %d correct answers as known.", added, total)
		}
	case "x", "X":
		if mode.Kind != quiz.KindFlashcard {
			removed, total := g.rec.RemoveIncorrect(g.session.Results())
			g.statusMsg = fmt.Sprintf("Unmarked %d of %d missed answers.", removed, total)
		}
	}
	return g, nil
}

func (g *GameScreen) updateReview(kmsg tea.KeyMsg, isKey bool) (screen.Screen, tea.Cmd) {
	if !isKey {
		return g, nil
	}
	results := g.session.Results()

	switch kmsg.String() {
	case "esc", "b":
		g.session.BackToResults()
		g.persist()
	case "up", "k":
		if g.reviewSel > 0 {
			g.reviewSel--
		}
	case "down", "j":
		if g.reviewSel < len(results)-1 {
			g.reviewSel++
		}
	case "t", "T":
		if g.reviewSel >= 0 && g.reviewSel < len(results) {
			item := results[g.reviewSel].Item
			if item.ID != "" {
				if g.rec.Toggle(item.ID) {
					g.statusMsg = fmt.Sprintf("Marked %q as known.", item.Prompt)
				} else {
					g.statusMsg = fmt.Sprintf("Unmarked %q.", item.Prompt)
				}
			}
		}
	}
	return g, nil
}

// toggleCurrentKnown flips the known state of the question on screen.
func (g *GameScreen) toggleCurrentKnown() {
	q, ok := g.session.Current()
	if !ok || q.ID == "" {
		return
	}
	if g.rec.Toggle(q.ID) {
		g.statusMsg = "Marked as known."
	} else {
		g.statusMsg = "Unmarked."
	}
}

// syncComponents rebuilds the per-question components for the current
// session position.
func (g *GameScreen) syncComponents() {
	switch g.session.Phase() {
	case quiz.PhaseModeSelect:
		g.countInput = components.NewTextInput("question count", true, 3)
	case quiz.PhasePlaying:
		g.answerInput = components.NewTextInput("type the command...", false, 40)
	case quiz.PhaseFlashcard:
		if q, ok := g.session.Current(); ok {
			g.card = components.NewFlashcard(q.Prompt, q.Answers)
		}
	case quiz.PhaseMultiChoice:
		q, ok := g.session.Current()
		if !ok {
			return
		}
		options := g.session.Options()
		correct := 0
		for i, opt := range options {
			for _, a := range q.Answers {
				if opt == a {
					correct = i
				}
			}
		}
		g.mc = components.NewMultiChoice(q.Prompt, options, correct)
	}
}

// persist saves the resumable snapshot, or clears it when the session
// has nothing to resume.
func (g *GameScreen) persist() {
	if snap, ok := g.session.Snapshot(); ok {
		g.snapRepo.Save(snap)
	} else {
		g.snapRepo.Clear()
	}
}
