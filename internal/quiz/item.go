package quiz

import (
	"crypto/sha1"
	"encoding/hex"
)

// Item is one cheat-sheet entry: a behavior to recall and the key
// sequences that trigger it. Items are immutable once loaded.
type Item struct {
	// ID is the stable identifier used for known-item tracking.
	ID string `json:"id"`

	// Category groups related items (e.g. "Motions").
	Category string `json:"category"`

	// Prompt describes the behavior. Backtick-delimited spans mark
	// reference text; the core passes them through untouched.
	Prompt string `json:"question"`

	// Answers holds the accepted literal key sequences, never empty.
	// Scoring is exact, whitespace-trimmed, case-sensitive membership.
	Answers []string `json:"solution"`
}

// SynthesizeID derives a stable item id from category and prompt.
// The data generator emits the same id, so hand-edited data files
// without an id field keep their known-item history.
func SynthesizeID(category, prompt string) string {
	h := sha1.Sum([]byte(category + "\x00" + prompt))
	return hex.EncodeToString(h[:])[:12]
}
