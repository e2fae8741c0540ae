package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimdrill/internal/cheatsheet"
	"github.com/abhisek/vimdrill/internal/quiz"
	"github.com/abhisek/vimdrill/internal/ui/components"
	"github.com/abhisek/vimdrill/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	if g.quitConfirm {
		return renderQuitConfirm(width, height)
	}

	switch g.session.Phase() {
	case quiz.PhaseModeSelect:
		return g.renderModeSelect(width)
	case quiz.PhasePlaying:
		if g.showingFeedback {
			return g.renderFeedback(width)
		}
		return g.renderPrompt(width)
	case quiz.PhaseFlashcard:
		return g.renderFlashcard(width)
	case quiz.PhaseMultiChoice:
		return g.renderMultiChoice(width)
	case quiz.PhaseFinished:
		return g.renderResults(width)
	case quiz.PhaseReview:
		return g.renderReview(width, height)
	}
	return ""
}

func renderQuitConfirm(width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render("End this game?\n\nPartial results stay on the scoreboard.\n\n" +
			theme.Hint.Render("y end    n keep going"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (g *GameScreen) renderModeSelect(width int) string {
	mode, ok := g.session.Mode()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Title.Render(mode.Name)))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Subtitle.Render(mode.Description)))
	b.WriteString("\n\n")

	avail := g.session.AvailableCount()
	b.WriteString(centered(width, fmt.Sprintf("Commands available: %d", avail)))
	b.WriteString("\n")

	count := mode.Count
	if g.session.CustomCount() > 0 {
		count = g.session.CustomCount()
	}
	if count == quiz.CountUnbounded || count > avail {
		count = avail
	}
	b.WriteString(centered(width, fmt.Sprintf("Questions this game: %d", count)))
	b.WriteString("\n\n")

	if avail == 0 {
		b.WriteString(centered(width, theme.Incorrect.Render("Nothing to practice in this mode.")))
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render("esc to go back")))
		return b.String()
	}

	if !mode.FixedCount {
		b.WriteString(centered(width, "Custom count (blank for default):"))
		b.WriteString("\n")
		b.WriteString(centered(width, g.countInput.View()))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width, theme.Hint.Render("enter to start")))
	if g.statusMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint.Render(g.statusMsg)))
	}
	return b.String()
}

func (g *GameScreen) renderProgress(width int) string {
	label := fmt.Sprintf("Question %d of %d", g.session.Index()+1, g.session.Total())
	percent := 0.0
	if g.session.Total() > 0 {
		percent = float64(g.session.Index()) / float64(g.session.Total())
	}
	bar := components.NewProgressBar(label, percent, false, min(width-8, 60))

	score := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score: %d", g.session.Score()))

	return "  " + bar.View() + "   " + score + "\n"
}

// renderQuestion renders a prompt with its backtick references
// highlighted, plus a known badge when the command is already marked.
func (g *GameScreen) renderQuestion(q quiz.Item) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(q.Category))
	if q.ID != "" && g.known.Load()[q.ID] {
		b.WriteString("  " + theme.Known.Render("✓ known"))
	}
	b.WriteString("\n\n")

	for _, span := range cheatsheet.SplitReferences(q.Prompt) {
		if span.Reference {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Reference).Bold(true).Render(span.Text))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(span.Text))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (g *GameScreen) renderPrompt(width int) string {
	q, ok := g.session.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(g.renderProgress(width))
	b.WriteString("\n")
	b.WriteString(indent(g.renderQuestion(q)))
	b.WriteString("\n")
	b.WriteString("  " + g.answerInput.View() + "\n")
	if g.statusMsg != "" {
		b.WriteString("\n  " + theme.Hint.Render(g.statusMsg) + "\n")
	}
	return b.String()
}

func (g *GameScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(g.renderProgress(width))
	b.WriteString("\n")

	res := g.lastResult
	if res.Correct {
		b.WriteString("  " + theme.Correct.Render("✓ Correct!") + "\n\n")
	} else {
		b.WriteString("  " + theme.Incorrect.Render("✗ Incorrect") + "\n\n")
		if res.UserAnswer == "" {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("You answered: (blank)") + "\n")
		} else {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("You answered: "+res.UserAnswer) + "\n")
		}
	}
	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).
		Render("Answer: ") +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(strings.Join(res.Item.Answers, "   ")) + "\n\n")
	b.WriteString("  " + theme.Hint.Render("any key to continue") + "\n")
	return b.String()
}

func (g *GameScreen) renderFlashcard(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(g.renderProgress(width))
	b.WriteString("\n")
	if q, ok := g.session.Current(); ok {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(q.Category) + "\n\n")
	}
	b.WriteString(indent(g.card.View()))
	return b.String()
}

func (g *GameScreen) renderMultiChoice(width int) string {
	q, ok := g.session.Current()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(g.renderProgress(width))
	b.WriteString("\n")
	if ok {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(q.Category) + "\n\n")
	}
	b.WriteString(indent(g.mc.View()))
	if g.showingFeedback {
		b.WriteString("\n  " + theme.Hint.Render("any key to continue") + "\n")
	}
	return b.String()
}

func (g *GameScreen) renderResults(width int) string {
	mode, _ := g.session.Mode()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Title.Render("Game over!")))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Subtitle.Render(mode.Name)))
	b.WriteString("\n\n")

	if mode.Kind == quiz.KindFlashcard {
		knew, learning := 0, 0
		for _, known := range g.session.FlashcardResponses() {
			if known {
				knew++
			} else {
				learning++
			}
		}
		b.WriteString(centered(width, fmt.Sprintf(
			"Cards seen: %d        Knew: %d        Still learning: %d",
			knew+learning, knew, learning)))
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint.Render(
			"a apply responses    r retry    esc home")))
	} else {
		b.WriteString(centered(width, fmt.Sprintf(
			"Answered: %d of %d        Correct: %d        Accuracy: %d%%",
			g.session.Answered(), g.session.Total(), g.session.Score(), g.session.Accuracy())))
		b.WriteString("\n\n")
		if g.session.Answered() == 0 {
			b.WriteString(centered(width, theme.Subtitle.Render("No questions answered.")))
			b.WriteString("\n\n")
			b.WriteString(centered(width, theme.Hint.Render("r retry    esc home")))
		} else {
			b.WriteString(centered(width, theme.Hint.Render(
				"v review    a add correct    x remove missed    r retry    esc home")))
		}
	}

	if g.statusMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Accent).Render(g.statusMsg)))
	}
	return b.String()
}

func (g *GameScreen) renderReview(width, height int) string {
	results := g.session.Results()
	known := g.known.Load()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Title.Render("Review")))
	b.WriteString("\n\n")

	// Three lines per result; keep the selection in the window.
	rows := (height - 6) / 3
	if rows < 1 {
		rows = 1
	}
	start := 0
	if g.reviewSel >= rows {
		start = g.reviewSel - rows + 1
	}
	end := min(start+rows, len(results))

	for i := start; i < end; i++ {
		res := results[i]

		mark := theme.Correct.Render("✓")
		if !res.Correct {
			mark = theme.Incorrect.Render("✗")
		}

		cursor := "  "
		promptStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == g.reviewSel {
			cursor = theme.Selected.Render("▸ ")
			promptStyle = promptStyle.Bold(true)
		}

		badge := ""
		if res.Item.ID != "" && known[res.Item.ID] {
			badge = "  " + theme.Known.Render("✓ known")
		}

		b.WriteString(fmt.Sprintf("  %s%s %s%s\n", cursor, mark, promptStyle.Render(res.Item.Prompt), badge))

		answer := strings.Join(res.Item.Answers, "   ")
		detail := lipgloss.NewStyle().Foreground(theme.TextDim)
		if res.Correct {
			b.WriteString("       " + detail.Render("answer: ") +
				lipgloss.NewStyle().Foreground(theme.Primary).Render(answer) + "\n")
		} else {
			user := res.UserAnswer
			if user == "" {
				user = "(blank)"
			}
			b.WriteString("       " + detail.Render("you: "+user+"   answer: ") +
				lipgloss.NewStyle().Foreground(theme.Primary).Render(answer) + "\n")
		}
		b.WriteString("\n")
	}

	if g.statusMsg != "" {
		b.WriteString("  " + theme.Hint.Render(g.statusMsg) + "\n")
	}
	return b.String()
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
