package quiz

// ModeID identifies a game mode.
type ModeID string

const (
	ModeFlash            ModeID = "flash"
	ModeRegular          ModeID = "regular"
	ModeAll              ModeID = "all"
	ModeFlashcard        ModeID = "flashcard"
	ModeFlashcardUnknown ModeID = "flashcard-unknown"
	ModeFlashcardRepeat  ModeID = "flashcard-repeat"
	ModeMCEasy           ModeID = "mc-easy"
	ModeMCMedium         ModeID = "mc-medium"
	ModeMCHard           ModeID = "mc-hard"
)

// Kind is how a mode plays: typed answers, flashcards, or multiple choice.
type Kind int

const (
	KindPrompt Kind = iota
	KindFlashcard
	KindMultiChoice
)

// Group is the section a mode appears under in the mode list. It has
// no behavioral effect on the session.
type Group string

const (
	GroupQuiz     Group = "quiz"
	GroupPractice Group = "practice"
	GroupTest     Group = "test"
)

// Filter restricts the question pool before shuffling.
type Filter int

const (
	FilterNone Filter = iota
	FilterUnknownOnly
	FilterKnownOnly
)

// CountUnbounded means "every item matching the mode's filter".
const CountUnbounded = 0

// Mode describes one game mode.
type Mode struct {
	ID          ModeID
	Name        string
	Description string

	// Count is the default question count; CountUnbounded takes the
	// whole filtered pool.
	Count int

	// FixedCount modes never honor a custom count.
	FixedCount bool

	Kind       Kind
	Group      Group
	Filter     Filter
	Difficulty Difficulty // multiple-choice modes only
}

var modes = []Mode{
	{
		ID:          ModeFlash,
		Name:        "Flash Mode",
		Description: "Quick 10-question challenge",
		Count:       10,
		FixedCount:  true,
		Kind:        KindPrompt,
		Group:       GroupQuiz,
	},
	{
		ID:          ModeRegular,
		Name:        "Regular Mode",
		Description: "Standard 50-question practice",
		Count:       50,
		FixedCount:  true,
		Kind:        KindPrompt,
		Group:       GroupQuiz,
	},
	{
		ID:          ModeAll,
		Name:        "Master Mode",
		Description: "Every command in the deck",
		Count:       CountUnbounded,
		FixedCount:  true,
		Kind:        KindPrompt,
		Group:       GroupQuiz,
	},
	{
		ID:          ModeFlashcard,
		Name:        "Flashcard - All",
		Description: "Study all commands",
		Count:       50,
		Kind:        KindFlashcard,
		Group:       GroupPractice,
	},
	{
		ID:          ModeFlashcardUnknown,
		Name:        "Flashcard - Unknown",
		Description: "Practice only unknown commands",
		Count:       CountUnbounded,
		Kind:        KindFlashcard,
		Group:       GroupPractice,
		Filter:      FilterUnknownOnly,
	},
	{
		ID:          ModeFlashcardRepeat,
		Name:        "Flashcard - Review",
		Description: "Review all known commands",
		Count:       CountUnbounded,
		Kind:        KindFlashcard,
		Group:       GroupPractice,
		Filter:      FilterKnownOnly,
	},
	{
		ID:          ModeMCEasy,
		Name:        "MC Easy",
		Description: "Multiple choice - random options",
		Count:       50,
		Kind:        KindMultiChoice,
		Group:       GroupTest,
		Difficulty:  Easy,
	},
	{
		ID:          ModeMCMedium,
		Name:        "MC Medium",
		Description: "Multiple choice - mixed difficulty",
		Count:       30,
		Kind:        KindMultiChoice,
		Group:       GroupTest,
		Difficulty:  Medium,
	},
	{
		ID:          ModeMCHard,
		Name:        "MC Hard",
		Description: "Multiple choice - similar answers",
		Count:       10,
		Kind:        KindMultiChoice,
		Group:       GroupTest,
		Difficulty:  Hard,
	},
}

// Modes returns the mode catalog in display order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ModeByID looks up a mode by id.
func ModeByID(id ModeID) (Mode, bool) {
	for _, m := range modes {
		if m.ID == id {
			return m, true
		}
	}
	return Mode{}, false
}

// ModesByGroup returns the catalog grouped for presentation, with
// groups in quiz/practice/test order.
func ModesByGroup() ([]Group, map[Group][]Mode) {
	order := []Group{GroupQuiz, GroupPractice, GroupTest}
	grouped := make(map[Group][]Mode)
	for _, m := range modes {
		grouped[m.Group] = append(grouped[m.Group], m)
	}
	return order, grouped
}
