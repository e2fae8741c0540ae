// Package mdparse turns the markdown cheat sheet into quiz items.
// The grammar is the cheat sheet's own: "## Category" headings and
// "* `keys` - description" bullets, with comma-separated alternative
// key sequences.
package mdparse

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/abhisek/vimdrill/internal/quiz"
)

var (
	taskRe     = regexp.MustCompile("^\\s*\\*\\s+(`.*`)\\s+-\\s+(.*)$")
	categoryRe = regexp.MustCompile(`^##\s(.*)$`)
)

// Parse reads a markdown cheat sheet and returns its items with
// synthesized ids. Bullets before the first category heading are an
// error; a sheet with no items at all is, too.
func Parse(r io.Reader) ([]quiz.Item, error) {
	var items []quiz.Item
	currentCategory := ""

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if m := taskRe.FindStringSubmatch(line); m != nil {
			if currentCategory == "" {
				return nil, fmt.Errorf("line %d: command bullet before any category heading", lineNo)
			}
			items = append(items, quiz.Item{
				ID:       quiz.SynthesizeID(currentCategory, m[2]),
				Category: currentCategory,
				Prompt:   m[2],
				Answers:  splitAnswers(m[1]),
			})
			continue
		}
		if m := categoryRe.FindStringSubmatch(line); m != nil {
			currentCategory = m[1]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no command bullets found")
	}
	return items, nil
}

// splitAnswers breaks "`a`, `b`" into its literal key sequences,
// stripping the backtick quoting.
func splitAnswers(raw string) []string {
	raw = strings.ReplaceAll(raw, "```", "")
	parts := strings.Split(raw, ", ")
	answers := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if strings.HasPrefix(p, "`") && strings.HasSuffix(p, "`") && len(p) >= 2 {
			p = strings.TrimSpace(p[1 : len(p)-1])
		}
		if p != "" {
			answers = append(answers, p)
		}
	}
	return answers
}
