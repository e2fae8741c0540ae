package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/vimdrill/internal/quiz"
)

// sessionKey holds the in-flight session snapshot as one JSON document.
const sessionKey = "session-snapshot"

// SessionRepo persists the mid-session snapshot so a game survives a
// process restart. Like the known-item store, failures degrade rather
// than propagate: a snapshot that can't be written just means the game
// won't resume, and a snapshot that can't be read is discarded.
type SessionRepo struct {
	kv kv
}

// Save persists the snapshot, replacing any previous one.
func (r *SessionRepo) Save(snap quiz.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: encoding session snapshot: %v\n", err)
		return
	}
	if err := r.kv.set(sessionKey, string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: saving session snapshot: %v\n", err)
	}
}

// Load returns the stored snapshot, ok=false when there is none or it
// is unreadable. A corrupt snapshot is deleted on the way out.
func (r *SessionRepo) Load() (quiz.Snapshot, bool) {
	value, ok, err := r.kv.get(sessionKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: reading session snapshot: %v\n", err)
		return quiz.Snapshot{}, false
	}
	if !ok {
		return quiz.Snapshot{}, false
	}

	var snap quiz.Snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt session snapshot, discarding: %v\n", err)
		r.Clear()
		return quiz.Snapshot{}, false
	}
	return snap, true
}

// Clear removes the stored snapshot. Called on reset, retry, and mode
// change.
func (r *SessionRepo) Clear() {
	if err := r.kv.del(sessionKey); err != nil {
		fmt.Fprintf(os.Stderr, "warning: clearing session snapshot: %v\n", err)
	}
}
