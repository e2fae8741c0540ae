package quiz

import "math/rand/v2"

// Available returns the full shuffled pool an item mode can draw from,
// before any count clamping. Mode select uses it to preview how many
// questions a session could have.
func Available(mode Mode, items []Item, known map[string]bool, rng *rand.Rand) []Item {
	var filtered []Item
	switch mode.Filter {
	case FilterUnknownOnly:
		for _, q := range items {
			if !known[q.ID] {
				filtered = append(filtered, q)
			}
		}
	case FilterKnownOnly:
		for _, q := range items {
			if known[q.ID] {
				filtered = append(filtered, q)
			}
		}
	default:
		filtered = append([]Item(nil), items...)
	}

	rng.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})
	return filtered
}

// Select produces the session's working set: the filtered, shuffled
// pool clamped to the effective question count. Fixed-count modes
// ignore customCount; customCount <= 0 means "use the mode default".
// An empty pool yields an empty set, never an error.
func Select(mode Mode, items []Item, known map[string]bool, customCount int, rng *rand.Rand) []Item {
	pool := Available(mode, items, known, rng)

	count := mode.Count
	if !mode.FixedCount && customCount > 0 {
		count = customCount
	}
	if count == CountUnbounded || count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}
