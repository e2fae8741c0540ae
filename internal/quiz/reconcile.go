package quiz

// Reconciler writes session outcomes back onto the known-item store.
// Every operation reads the whole set, mutates it, and writes it back
// in one pass; all of them are idempotent.
type Reconciler struct {
	store KnownStore
}

// NewReconciler creates a reconciler over the given store.
func NewReconciler(store KnownStore) *Reconciler {
	return &Reconciler{store: store}
}

// AddCorrect marks every correctly answered item as known. Returns how
// many ids were newly added and how many correct results there were,
// so callers can report "already known" separately.
func (r *Reconciler) AddCorrect(results []Result) (added, total int) {
	known := r.store.Load()
	for _, res := range results {
		if !res.Correct {
			continue
		}
		total++
		if res.Item.ID != "" && !known[res.Item.ID] {
			known[res.Item.ID] = true
			added++
		}
	}
	r.store.Save(known)
	return added, total
}

// RemoveIncorrect unmarks every incorrectly answered item. Returns how
// many ids were actually removed and how many incorrect results there
// were.
func (r *Reconciler) RemoveIncorrect(results []Result) (removed, total int) {
	known := r.store.Load()
	for _, res := range results {
		if res.Correct {
			continue
		}
		total++
		if res.Item.ID != "" && known[res.Item.ID] {
			delete(known, res.Item.ID)
			removed++
		}
	}
	r.store.Save(known)
	return removed, total
}

// ApplyFlashcards folds a session's card responses into the store:
// "I know this" adds, "still learning" removes, matches are no-ops.
func (r *Reconciler) ApplyFlashcards(responses map[string]bool) (added, removed int) {
	known := r.store.Load()
	for id, isKnown := range responses {
		switch {
		case isKnown && !known[id]:
			known[id] = true
			added++
		case !isKnown && known[id]:
			delete(known, id)
			removed++
		}
	}
	r.store.Save(known)
	return added, removed
}

// Toggle flips one item's membership and returns the new state.
func (r *Reconciler) Toggle(id string) bool {
	if id == "" {
		return false
	}
	known := r.store.Load()
	if known[id] {
		delete(known, id)
	} else {
		known[id] = true
	}
	r.store.Save(known)
	return known[id]
}

// SetAll marks or unmarks every given id, returning how many actually
// changed. The cheat sheet's mark-all / clear-all toggle uses this.
func (r *Reconciler) SetAll(ids []string, isKnown bool) int {
	known := r.store.Load()
	changed := 0
	for _, id := range ids {
		if id == "" {
			continue
		}
		switch {
		case isKnown && !known[id]:
			known[id] = true
			changed++
		case !isKnown && known[id]:
			delete(known, id)
			changed++
		}
	}
	r.store.Save(known)
	return changed
}

// Impacts previews what AddCorrect and RemoveIncorrect would change,
// without writing anything.
func (r *Reconciler) Impacts(results []Result) (toAdd, toRemove int) {
	known := r.store.Load()
	for _, res := range results {
		if res.Item.ID == "" {
			continue
		}
		if res.Correct && !known[res.Item.ID] {
			toAdd++
		}
		if !res.Correct && known[res.Item.ID] {
			toRemove++
		}
	}
	return toAdd, toRemove
}
