package quiz

import (
	"math"
	"math/rand/v2"
	"sort"
)

// Difficulty selects the distractor candidate pool for multiple choice.
type Difficulty int

const (
	// Easy draws from categories other than the current question's.
	Easy Difficulty = iota
	// Medium mixes same-category and global answers, preferring
	// moderate similarity to the correct answer.
	Medium
	// Hard draws same-category answers, most similar first.
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// GenerateOptions builds the option list for a multiple-choice question:
// up to three distractors plus the correct answer, shuffled. When the
// data set has fewer than four unique answers the list degrades to
// whatever is available.
func GenerateOptions(correct string, all []Item, current Item, diff Difficulty, rng *rand.Rand) []string {
	uniquePool := uniqueAnswers(all, correct)

	var candidates []string
	switch diff {
	case Hard:
		candidates = sameCategoryAnswers(all, current, correct)
		sortBySimilarity(candidates, correct, func(a, b float64) bool { return a > b })
	case Medium:
		mixed := sameCategoryAnswers(all, current, correct)
		shuffled := append([]string(nil), uniquePool...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		candidates = dedup(append(mixed, shuffled...))
		// Prefer moderately similar distractors: neither trivially
		// different nor near-duplicates.
		sortBySimilarity(candidates, correct, func(a, b float64) bool {
			return math.Abs(a-0.5) < math.Abs(b-0.5)
		})
	default:
		candidates = differentCategoryAnswers(all, current, correct)
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	distractors := make([]string, 0, 3)
	for _, c := range candidates {
		if len(distractors) == 3 {
			break
		}
		if !contains(distractors, c) {
			distractors = append(distractors, c)
		}
	}

	// Backfill from the global pool when the scoped pool ran short.
	backfill := make([]string, 0, len(uniquePool))
	for _, a := range uniquePool {
		if !contains(distractors, a) {
			backfill = append(backfill, a)
		}
	}
	for len(distractors) < 3 && len(backfill) > 0 {
		i := rng.IntN(len(backfill))
		distractors = append(distractors, backfill[i])
		backfill = append(backfill[:i], backfill[i+1:]...)
	}

	options := append([]string{correct}, distractors...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// sortBySimilarity orders candidates by their similarity to correct
// using less over the similarity scores. The sort is stable so equal
// scores keep pool order.
func sortBySimilarity(candidates []string, correct string, less func(a, b float64) bool) {
	scores := make(map[string]float64, len(candidates))
	for _, c := range candidates {
		scores[c] = Similarity(correct, c)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return less(scores[candidates[i]], scores[candidates[j]])
	})
}

func uniqueAnswers(all []Item, exclude string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, q := range all {
		for _, a := range q.Answers {
			if a == exclude || seen[a] {
				continue
			}
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

func sameCategoryAnswers(all []Item, current Item, exclude string) []string {
	var out []string
	for _, q := range all {
		if q.Category != current.Category || q.ID == current.ID {
			continue
		}
		for _, a := range q.Answers {
			if a != exclude {
				out = append(out, a)
			}
		}
	}
	return out
}

func differentCategoryAnswers(all []Item, current Item, exclude string) []string {
	var out []string
	for _, q := range all {
		if q.Category == current.Category {
			continue
		}
		for _, a := range q.Answers {
			if a != exclude {
				out = append(out, a)
			}
		}
	}
	return out
}

func dedup(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
