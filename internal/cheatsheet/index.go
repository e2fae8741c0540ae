// Package cheatsheet provides the searchable command reference: a
// fuzzy index over the quiz repository plus the grouping and markup
// helpers the sheet screen renders from.
package cheatsheet

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/abhisek/vimdrill/internal/quiz"
)

// Index is a fuzzy search index over cheat-sheet items. Build it once
// at startup and pass it where needed; the haystack is precomputed
// from each item's answers, prompt, and category.
type Index struct {
	items    []quiz.Item
	haystack []string
}

// NewIndex builds an index over items.
func NewIndex(items []quiz.Item) *Index {
	haystack := make([]string, len(items))
	for i, q := range items {
		haystack[i] = strings.Join(q.Answers, " ") + " " + q.Prompt + " " + q.Category
	}
	return &Index{items: items, haystack: haystack}
}

// Search returns the items matching query, best match first. An empty
// query returns every item in repository order.
func (ix *Index) Search(query string) []quiz.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]quiz.Item(nil), ix.items...)
	}

	matches := fuzzy.Find(query, ix.haystack)
	out := make([]quiz.Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, ix.items[m.Index])
	}
	return out
}

// GroupByCategory splits items by category, preserving first-seen
// category order and item order within each category.
func GroupByCategory(items []quiz.Item) ([]string, map[string][]quiz.Item) {
	var order []string
	grouped := make(map[string][]quiz.Item)
	for _, q := range items {
		if _, ok := grouped[q.Category]; !ok {
			order = append(order, q.Category)
		}
		grouped[q.Category] = append(grouped[q.Category], q)
	}
	return order, grouped
}

// Span is a run of prompt text, either plain or a backtick-delimited
// reference (key sequence or literal to be highlighted).
type Span struct {
	Text      string
	Reference bool
}

// SplitReferences splits a prompt into plain and reference spans. An
// unterminated backtick is treated as plain text.
func SplitReferences(prompt string) []Span {
	var spans []Span
	for len(prompt) > 0 {
		open := strings.IndexByte(prompt, '`')
		if open < 0 {
			spans = append(spans, Span{Text: prompt})
			break
		}
		end := strings.IndexByte(prompt[open+1:], '`')
		if end < 0 {
			spans = append(spans, Span{Text: prompt})
			break
		}
		if open > 0 {
			spans = append(spans, Span{Text: prompt[:open]})
		}
		spans = append(spans, Span{Text: prompt[open+1 : open+1+end], Reference: true})
		prompt = prompt[open+end+2:]
	}
	return spans
}
