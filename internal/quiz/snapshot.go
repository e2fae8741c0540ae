package quiz

import "fmt"

// Snapshot is the JSON-serializable image of an in-flight session,
// persisted so a session survives process restarts. It is cleared on
// reset, retry, and mode change.
type Snapshot struct {
	SessionID   string          `json:"sessionId"`
	Phase       string          `json:"phase"`
	Mode        ModeID          `json:"mode"`
	CustomCount int             `json:"customCount,omitempty"`
	Questions   []Item          `json:"questions"`
	Cursor      int             `json:"cursor"`
	Score       int             `json:"score"`
	Results     []Result        `json:"results"`
	Flashcard   map[string]bool `json:"flashcardResponses"`
}

// Snapshot captures the session when there is something to resume:
// any phase with a frozen working set. Intro and mode select return
// false, meaning nothing should be persisted.
func (s *Session) Snapshot() (Snapshot, bool) {
	switch s.phase {
	case PhaseIntro, PhaseModeSelect:
		return Snapshot{}, false
	}
	return Snapshot{
		SessionID:   s.id,
		Phase:       s.phase.String(),
		Mode:        s.mode.ID,
		CustomCount: s.customCount,
		Questions:   append([]Item(nil), s.questions...),
		Cursor:      s.cursor,
		Score:       s.score,
		Results:     append([]Result(nil), s.results...),
		Flashcard:   s.FlashcardResponses(),
	}, true
}

// Restore rebuilds session state from a snapshot. The snapshot's phase
// is authoritative, matching the navigation contract where an external
// location plus the stored snapshot re-derives the game state.
func (s *Session) Restore(snap Snapshot) error {
	mode, ok := ModeByID(snap.Mode)
	if !ok {
		return fmt.Errorf("snapshot references unknown mode %q", snap.Mode)
	}
	phase := ParsePhase(snap.Phase)
	switch phase {
	case PhasePlaying, PhaseFlashcard, PhaseMultiChoice, PhaseFinished, PhaseReview:
	default:
		return fmt.Errorf("snapshot phase %q is not resumable", snap.Phase)
	}
	if snap.Cursor < 0 || snap.Cursor > len(snap.Questions) {
		return fmt.Errorf("snapshot cursor %d out of range", snap.Cursor)
	}

	s.mode = mode
	s.hasMode = true
	s.customCount = snap.CustomCount
	s.id = snap.SessionID
	s.questions = append([]Item(nil), snap.Questions...)
	s.cursor = snap.Cursor
	s.score = snap.Score
	s.results = append([]Result(nil), snap.Results...)
	s.flashcard = make(map[string]bool, len(snap.Flashcard))
	for id, known := range snap.Flashcard {
		s.flashcard[id] = known
	}
	s.candidates = nil
	s.phase = phase

	s.mcOptions = nil
	if phase == PhaseMultiChoice {
		s.regenOptions()
	}
	return nil
}
