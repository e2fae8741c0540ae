package quiz

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Phase is the session's current state-machine phase.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseModeSelect
	PhasePlaying
	PhaseFlashcard
	PhaseMultiChoice
	PhaseFinished
	PhaseReview
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseModeSelect:
		return "mode-select"
	case PhasePlaying:
		return "playing"
	case PhaseFlashcard:
		return "flashcard"
	case PhaseMultiChoice:
		return "multiple-choice"
	case PhaseFinished:
		return "finished"
	case PhaseReview:
		return "review"
	}
	return "unknown"
}

// ParsePhase is the inverse of Phase.String. Unrecognized names map to
// PhaseIntro, the safe landing spot.
func ParsePhase(s string) Phase {
	for p := PhaseIntro; p <= PhaseReview; p++ {
		if p.String() == s {
			return p
		}
	}
	return PhaseIntro
}

// Result records one answered question. WasKnownBefore is snapshotted
// at answer time and never recomputed.
type Result struct {
	Item           Item   `json:"item"`
	UserAnswer     string `json:"userAnswer"`
	Correct        bool   `json:"isCorrect"`
	WasKnownBefore bool   `json:"wasKnownBefore"`
}

// KnownStore is the durable known-item set. Load never fails (storage
// trouble degrades to an empty set) and Save never surfaces an error;
// both are last-writer-wins.
type KnownStore interface {
	Load() map[string]bool
	Save(known map[string]bool)
}

// Session is the quiz state machine. It owns the phase, the frozen
// working set, the cursor, scoring, per-question results, flashcard
// responses, and the current multiple-choice options. All transitions
// are synchronous; events invalid for the current phase are no-ops.
type Session struct {
	repo  []Item
	known KnownStore
	rng   *rand.Rand

	id          string
	phase       Phase
	mode        Mode
	hasMode     bool
	customCount int

	candidates []Item // mode-select preview pool
	questions  []Item // frozen working set
	cursor     int
	score      int
	results    []Result
	flashcard  map[string]bool
	mcOptions  []string
}

// NewSession creates a session in the intro phase. A nil rng gets a
// time-seeded one.
func NewSession(repo []Item, known KnownStore, rng *rand.Rand) *Session {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Session{
		repo:      repo,
		known:     known,
		rng:       rng,
		phase:     PhaseIntro,
		flashcard: make(map[string]bool),
	}
}

// SelectMode enters mode select for the given mode, discarding any
// in-flight session state and recomputing the preview pool against the
// freshly loaded known-item set. Returns false for unknown mode ids.
func (s *Session) SelectMode(id ModeID) bool {
	mode, ok := ModeByID(id)
	if !ok {
		return false
	}
	s.mode = mode
	s.hasMode = true
	s.customCount = 0
	s.clearProgress()
	s.candidates = Available(mode, s.repo, s.known.Load(), s.rng)
	s.phase = PhaseModeSelect
	return true
}

// SetQuestionCount records a custom question count. Only meaningful in
// mode select for modes that honor one; everything else no-ops.
func (s *Session) SetQuestionCount(n int) {
	if s.phase != PhaseModeSelect || s.mode.FixedCount || n <= 0 {
		return
	}
	s.customCount = n
}

// Start freezes the working set and begins play. An empty working set
// lands directly in the finished phase with an empty scoreboard.
func (s *Session) Start() {
	if s.phase != PhaseModeSelect {
		return
	}

	s.questions = Select(s.mode, s.repo, s.known.Load(), s.customCount, s.rng)
	s.id = uuid.New().String()
	s.cursor = 0
	s.score = 0
	s.results = nil
	s.flashcard = make(map[string]bool)
	s.mcOptions = nil

	if len(s.questions) == 0 {
		s.phase = PhaseFinished
		return
	}

	switch s.mode.Kind {
	case KindFlashcard:
		s.phase = PhaseFlashcard
	case KindMultiChoice:
		s.phase = PhaseMultiChoice
		s.regenOptions()
	default:
		s.phase = PhasePlaying
	}
}

// SubmitAnswer scores text against the current question, appends a
// result, and advances. Valid only while playing or in multiple
// choice; elsewhere it is a no-op.
func (s *Session) SubmitAnswer(text string) {
	if s.phase != PhasePlaying && s.phase != PhaseMultiChoice {
		return
	}
	if s.cursor >= len(s.questions) {
		return
	}

	q := s.questions[s.cursor]
	answer := strings.TrimSpace(text)
	correct := contains(q.Answers, answer)
	knownNow := s.known.Load()

	s.results = append(s.results, Result{
		Item:           q,
		UserAnswer:     answer,
		Correct:        correct,
		WasKnownBefore: q.ID != "" && knownNow[q.ID],
	})
	if correct {
		s.score++
	}

	s.advance()
}

// RespondFlashcard records "I know this" / "still learning" for the
// current card and advances. The last response for a card wins. The
// known-item store is untouched until an explicit apply.
func (s *Session) RespondFlashcard(known bool) {
	if s.phase != PhaseFlashcard || s.cursor >= len(s.questions) {
		return
	}
	q := s.questions[s.cursor]
	if q.ID != "" {
		s.flashcard[q.ID] = known
	}
	s.advance()
}

func (s *Session) advance() {
	s.cursor++
	if s.cursor >= len(s.questions) {
		s.phase = PhaseFinished
		s.mcOptions = nil
		return
	}
	if s.phase == PhaseMultiChoice {
		s.regenOptions()
	}
}

// regenOptions computes multiple-choice options for the current
// question. Items with no answers get no options rather than a panic.
func (s *Session) regenOptions() {
	s.mcOptions = nil
	if s.cursor >= len(s.questions) {
		return
	}
	q := s.questions[s.cursor]
	if len(q.Answers) == 0 {
		return
	}
	s.mcOptions = GenerateOptions(q.Answers[0], s.repo, q, s.mode.Difficulty, s.rng)
}

// Quit abandons play, keeping partial results on the scoreboard.
func (s *Session) Quit() {
	switch s.phase {
	case PhasePlaying, PhaseFlashcard, PhaseMultiChoice:
		s.phase = PhaseFinished
		s.mcOptions = nil
	}
}

// ShowReview opens the per-question review. Flashcard sessions have no
// review (they have apply instead), and an empty scoreboard has
// nothing to show.
func (s *Session) ShowReview() {
	if s.phase != PhaseFinished || s.mode.Kind == KindFlashcard || len(s.results) == 0 {
		return
	}
	s.phase = PhaseReview
}

// BackToResults returns from review to the finished screen.
func (s *Session) BackToResults() {
	if s.phase == PhaseReview {
		s.phase = PhaseFinished
	}
}

// Retry re-enters mode select for the same mode, discarding session
// state and picking up any reconciliation written during the session.
func (s *Session) Retry() {
	if s.hasMode {
		s.SelectMode(s.mode.ID)
	}
}

// Reset returns to the intro, discarding everything.
func (s *Session) Reset() {
	s.hasMode = false
	s.mode = Mode{}
	s.customCount = 0
	s.candidates = nil
	s.clearProgress()
	s.phase = PhaseIntro
}

func (s *Session) clearProgress() {
	s.id = ""
	s.questions = nil
	s.cursor = 0
	s.score = 0
	s.results = nil
	s.flashcard = make(map[string]bool)
	s.mcOptions = nil
}

// ID returns the current game's identifier, empty before the first Start.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Mode returns the selected mode, false before any selection.
func (s *Session) Mode() (Mode, bool) { return s.mode, s.hasMode }

// CustomCount returns the custom question count, 0 if unset.
func (s *Session) CustomCount() int { return s.customCount }

// AvailableCount is the size of the mode-select preview pool.
func (s *Session) AvailableCount() int { return len(s.candidates) }

// Total is the size of the frozen working set.
func (s *Session) Total() int { return len(s.questions) }

// Index is the zero-based cursor into the working set.
func (s *Session) Index() int { return s.cursor }

// Score is the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Current returns the question under the cursor.
func (s *Session) Current() (Item, bool) {
	if s.cursor < 0 || s.cursor >= len(s.questions) {
		return Item{}, false
	}
	return s.questions[s.cursor], true
}

// Options returns a copy of the current multiple-choice options.
func (s *Session) Options() []string {
	return append([]string(nil), s.mcOptions...)
}

// Results returns a copy of the per-question results so far.
func (s *Session) Results() []Result {
	return append([]Result(nil), s.results...)
}

// FlashcardResponses returns a copy of the accumulated card responses.
func (s *Session) FlashcardResponses() map[string]bool {
	out := make(map[string]bool, len(s.flashcard))
	for id, known := range s.flashcard {
		out[id] = known
	}
	return out
}

// FlashcardResponse reports the recorded response for an item, if any.
func (s *Session) FlashcardResponse(id string) (known, ok bool) {
	known, ok = s.flashcard[id]
	return known, ok
}

// Answered is the number of questions answered so far.
func (s *Session) Answered() int { return len(s.results) }

// Accuracy is the rounded percentage of correct answers over answered
// questions; 0 when nothing was answered.
func (s *Session) Accuracy() int {
	if len(s.results) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.score) / float64(len(s.results))))
}
