package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// knownItemsKey holds the known-item set as a JSON array of item ids.
const knownItemsKey = "knownItems"

// KnownRepo persists the set of item ids the user has marked known.
// It implements quiz.KnownStore: reads degrade to an empty set and
// writes are fire-and-forget, so the game keeps working on in-memory
// state when storage misbehaves (the data just won't survive a
// restart). Both paths log to stderr for diagnostics.
type KnownRepo struct {
	kv kv
}

// Load reads the persisted set. Missing key, unreadable storage, and
// corrupt JSON all yield an empty set.
func (r *KnownRepo) Load() map[string]bool {
	value, ok, err := r.kv.get(knownItemsKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: reading known items: %v\n", err)
		return map[string]bool{}
	}
	if !ok {
		return map[string]bool{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt known items, starting empty: %v\n", err)
		return map[string]bool{}
	}

	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return known
}

// Save persists the set as a sorted JSON array. Failures are logged
// and otherwise ignored.
func (r *KnownRepo) Save(known map[string]bool) {
	data, err := json.Marshal(sortedIDs(known))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: encoding known items: %v\n", err)
		return
	}
	if err := r.kv.set(knownItemsKey, string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: saving known items: %v\n", err)
	}
}

// Export writes the known-item set to path as pretty-printed JSON,
// the shareable knownItems.json format.
func (r *KnownRepo) Export(path string) (int, error) {
	ids := sortedIDs(r.Load())
	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode known items: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(ids), nil
}

func sortedIDs(known map[string]bool) []string {
	ids := make([]string, 0, len(known))
	for id := range known {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
