package quiz

import "testing"

// memStore is an in-memory KnownStore for tests.
type memStore struct {
	set   map[string]bool
	saves int
}

func newMemStore(ids ...string) *memStore {
	set := make(map[string]bool)
	for _, id := range ids {
		set[id] = true
	}
	return &memStore{set: set}
}

func (m *memStore) Load() map[string]bool {
	out := make(map[string]bool, len(m.set))
	for id := range m.set {
		out[id] = true
	}
	return out
}

func (m *memStore) Save(known map[string]bool) {
	m.saves++
	m.set = make(map[string]bool, len(known))
	for id := range known {
		m.set[id] = true
	}
}

func sessionItems() []Item {
	return []Item{
		{ID: "a", Category: "Motions", Prompt: "move right", Answers: []string{"l"}},
		{ID: "b", Category: "Motions", Prompt: "move left", Answers: []string{"h"}},
		{ID: "c", Category: "Editing", Prompt: "delete line", Answers: []string{"dd"}},
		{ID: "d", Category: "Editing", Prompt: "undo", Answers: []string{"u"}},
	}
}

func startedSession(t *testing.T, mode ModeID, store KnownStore) *Session {
	t.Helper()
	s := NewSession(sessionItems(), store, testRNG())
	if !s.SelectMode(mode) {
		t.Fatalf("SelectMode(%s) failed", mode)
	}
	s.Start()
	return s
}

func answerFor(s *Session) string {
	q, _ := s.Current()
	return q.Answers[0]
}

func TestSubmitAnswerTrimsInput(t *testing.T) {
	s := startedSession(t, ModeAll, newMemStore())

	s.SubmitAnswer(answerFor(s) + " ")

	results := s.Results()
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if !results[0].Correct {
		t.Error("trailing space should be trimmed before scoring")
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}

func TestSubmitAnswerCaseSensitive(t *testing.T) {
	s := startedSession(t, ModeAll, newMemStore())

	q, _ := s.Current()
	s.SubmitAnswer(q.Answers[0] + "X")
	if s.Results()[0].Correct {
		t.Error("wrong answer scored correct")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
}

func TestSessionRunsToFinished(t *testing.T) {
	s := startedSession(t, ModeAll, newMemStore())

	for s.Phase() == PhasePlaying {
		s.SubmitAnswer(answerFor(s))
	}

	if s.Phase() != PhaseFinished {
		t.Fatalf("phase = %s, want finished", s.Phase())
	}
	if s.Score() != 4 || s.Answered() != 4 {
		t.Errorf("score %d/%d, want 4/4", s.Score(), s.Answered())
	}
	if s.Accuracy() != 100 {
		t.Errorf("accuracy = %d, want 100", s.Accuracy())
	}
}

func TestWasKnownBeforeSnapshotsAtAnswerTime(t *testing.T) {
	store := newMemStore()
	s := startedSession(t, ModeAll, store)

	q, _ := s.Current()
	store.set[q.ID] = true // marked known mid-session
	s.SubmitAnswer("wrong")

	results := s.Results()
	if !results[0].WasKnownBefore {
		t.Error("wasKnownBefore should reflect store state at answer time")
	}

	// Later store changes must not rewrite recorded results.
	store.set = map[string]bool{}
	if !s.Results()[0].WasKnownBefore {
		t.Error("recorded wasKnownBefore changed retroactively")
	}
}

func TestFlashcardIsolation(t *testing.T) {
	store := newMemStore()
	s := startedSession(t, ModeFlashcard, store)

	for s.Phase() == PhaseFlashcard {
		s.RespondFlashcard(true)
	}

	if s.Phase() != PhaseFinished {
		t.Fatalf("phase = %s, want finished", s.Phase())
	}
	if store.saves != 0 {
		t.Errorf("flashcard responses wrote to the known store %d times", store.saves)
	}
	if len(s.FlashcardResponses()) != 4 {
		t.Errorf("got %d responses, want 4", len(s.FlashcardResponses()))
	}
}

func TestFlashcardLastResponseWins(t *testing.T) {
	s := startedSession(t, ModeFlashcard, newMemStore())

	first, _ := s.Current()
	s.RespondFlashcard(false)

	// Navigate back to the same card (external navigation is
	// authoritative) and answer again; the later response wins.
	snap, _ := s.Snapshot()
	snap.Cursor = 0
	snap.Phase = PhaseFlashcard.String()
	if err := s.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	s.RespondFlashcard(true)

	if known, ok := s.FlashcardResponse(first.ID); !ok || !known {
		t.Errorf("response for %s = %v,%v, want last answer (true)", first.ID, known, ok)
	}
	if len(s.FlashcardResponses()) != 1 {
		t.Errorf("got %d responses, want 1", len(s.FlashcardResponses()))
	}
}

func TestQuitPreservesPartialResults(t *testing.T) {
	s := startedSession(t, ModeAll, newMemStore())

	s.SubmitAnswer(answerFor(s))
	s.SubmitAnswer("nope")
	s.Quit()

	if s.Phase() != PhaseFinished {
		t.Fatalf("phase = %s, want finished", s.Phase())
	}
	if s.Answered() != 2 {
		t.Errorf("answered = %d, want 2", s.Answered())
	}
	if s.Accuracy() != 50 {
		t.Errorf("accuracy = %d, want 50 (over answered only)", s.Accuracy())
	}
}

func TestAccuracyZeroGuard(t *testing.T) {
	s := startedSession(t, ModeAll, newMemStore())
	s.Quit()
	if s.Accuracy() != 0 {
		t.Errorf("accuracy with nothing answered = %d, want 0", s.Accuracy())
	}
}

func TestEmptyWorkingSetFinishesImmediately(t *testing.T) {
	// Everything known, so flashcard-unknown has nothing to play.
	s := NewSession(sessionItems(), newMemStore("a", "b", "c", "d"), testRNG())
	s.SelectMode(ModeFlashcardUnknown)
	if s.AvailableCount() != 0 {
		t.Fatalf("preview count = %d, want 0", s.AvailableCount())
	}
	s.Start()
	if s.Phase() != PhaseFinished {
		t.Fatalf("phase = %s, want finished", s.Phase())
	}
	if s.Score() != 0 || s.Total() != 0 || s.Accuracy() != 0 {
		t.Errorf("empty session scoreboard %d/%d acc %d, want zeros", s.Score(), s.Total(), s.Accuracy())
	}
}

func TestReviewToggle(t *testing.T) {
	s := startedSession(t, ModeAll, newMemStore())
	s.SubmitAnswer(answerFor(s))
	s.Quit()

	s.ShowReview()
	if s.Phase() != PhaseReview {
		t.Fatalf("phase = %s, want review", s.Phase())
	}
	s.BackToResults()
	if s.Phase() != PhaseFinished {
		t.Fatalf("phase = %s, want finished", s.Phase())
	}
}

func TestReviewUnavailableForFlashcards(t *testing.T) {
	s := startedSession(t, ModeFlashcard, newMemStore())
	s.RespondFlashcard(true)
	s.Quit()

	s.ShowReview()
	if s.Phase() != PhaseFinished {
		t.Errorf("flashcard session entered review (phase %s)", s.Phase())
	}
}

func TestInvalidEventsNoOp(t *testing.T) {
	s := startedSession(t, ModeAll, newMemStore())
	s.SubmitAnswer(answerFor(s))
	s.Quit()
	s.ShowReview()

	// submitAnswer during review is ignored, not an error.
	s.SubmitAnswer("l")
	if s.Answered() != 1 {
		t.Errorf("answered = %d after no-op submit, want 1", s.Answered())
	}
	s.RespondFlashcard(true)
	if len(s.FlashcardResponses()) != 0 {
		t.Error("flashcard response recorded outside flashcard phase")
	}
	if s.Phase() != PhaseReview {
		t.Errorf("phase = %s, want review", s.Phase())
	}
}

func TestMultiChoiceRegeneratesOptions(t *testing.T) {
	s := startedSession(t, ModeMCHard, newMemStore())

	if s.Phase() != PhaseMultiChoice {
		t.Fatalf("phase = %s, want multiple-choice", s.Phase())
	}

	for s.Phase() == PhaseMultiChoice {
		opts := s.Options()
		if len(opts) < 2 {
			t.Fatalf("question %d: got %d options", s.Index(), len(opts))
		}
		q, _ := s.Current()
		found := false
		for _, o := range opts {
			if contains(q.Answers, o) {
				found = true
			}
		}
		if !found {
			t.Fatalf("question %d: no correct answer among options %v", s.Index(), opts)
		}
		s.SubmitAnswer(opts[0])
	}

	if len(s.Options()) != 0 {
		t.Error("options should be cleared after the last question")
	}
}

func TestRetryReloadsKnownItems(t *testing.T) {
	store := newMemStore()
	s := startedSession(t, ModeFlashcardUnknown, store)
	if s.Total() != 4 {
		t.Fatalf("total = %d, want 4", s.Total())
	}
	s.Quit()

	// Reconciliation during the session marks two items known.
	store.set["a"] = true
	store.set["b"] = true

	s.Retry()
	if s.Phase() != PhaseModeSelect {
		t.Fatalf("phase = %s, want mode-select", s.Phase())
	}
	if s.AvailableCount() != 2 {
		t.Errorf("preview count after retry = %d, want 2", s.AvailableCount())
	}
	if m, ok := s.Mode(); !ok || m.ID != ModeFlashcardUnknown {
		t.Errorf("retry changed mode to %v", m.ID)
	}
}

func TestResetReturnsToIntro(t *testing.T) {
	s := startedSession(t, ModeAll, newMemStore())
	s.SubmitAnswer(answerFor(s))
	s.Reset()

	if s.Phase() != PhaseIntro {
		t.Fatalf("phase = %s, want intro", s.Phase())
	}
	if _, ok := s.Mode(); ok {
		t.Error("mode survived reset")
	}
	if s.Answered() != 0 || s.Total() != 0 {
		t.Error("session state survived reset")
	}
}

func TestSetQuestionCountRules(t *testing.T) {
	s := NewSession(sessionItems(), newMemStore(), testRNG())

	s.SelectMode(ModeFlashcard)
	s.SetQuestionCount(2)
	if s.CustomCount() != 2 {
		t.Errorf("custom count = %d, want 2", s.CustomCount())
	}
	s.Start()
	if s.Total() != 2 {
		t.Errorf("total = %d, want 2", s.Total())
	}

	// Exact-count modes never honor a custom count.
	s.SelectMode(ModeFlash)
	s.SetQuestionCount(2)
	if s.CustomCount() != 0 {
		t.Errorf("fixed-count mode stored custom count %d", s.CustomCount())
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := startedSession(t, ModeMCEasy, newMemStore())
	s.SubmitAnswer("wrong")

	snap, ok := s.Snapshot()
	if !ok {
		t.Fatal("mid-game session produced no snapshot")
	}

	restored := NewSession(sessionItems(), newMemStore(), testRNG())
	if err := restored.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.Phase() != PhaseMultiChoice {
		t.Errorf("restored phase = %s, want multiple-choice", restored.Phase())
	}
	if restored.Index() != 1 || restored.Answered() != 1 {
		t.Errorf("restored cursor/results = %d/%d, want 1/1", restored.Index(), restored.Answered())
	}
	if len(restored.Options()) == 0 {
		t.Error("restored multiple-choice session has no options")
	}
	if restored.ID() != s.ID() {
		t.Error("session id not preserved across restore")
	}
}

func TestSnapshotNotTakenBeforeStart(t *testing.T) {
	s := NewSession(sessionItems(), newMemStore(), testRNG())
	if _, ok := s.Snapshot(); ok {
		t.Error("intro phase produced a snapshot")
	}
	s.SelectMode(ModeAll)
	if _, ok := s.Snapshot(); ok {
		t.Error("mode-select phase produced a snapshot")
	}
}
