package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vimdrill/internal/ui/theme"
)

// Flashcard shows a prompt, reveals the key sequences on demand, and
// then records whether the user already knew them.
type Flashcard struct {
	Prompt    string
	Answers   []string
	Revealed  bool
	Responded bool
	Knew      bool
}

// NewFlashcard creates a card showing its front side.
func NewFlashcard(prompt string, answers []string) Flashcard {
	return Flashcard{
		Prompt:  prompt,
		Answers: answers,
	}
}

// Init returns nil.
func (f Flashcard) Init() tea.Cmd {
	return nil
}

// Update flips the card on space/enter, then accepts y/n.
func (f Flashcard) Update(msg tea.Msg) (Flashcard, tea.Cmd) {
	if f.Responded {
		return f, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch kmsg.String() {
	case " ", "space", "enter":
		if !f.Revealed {
			f.Revealed = true
		}
	case "y":
		if f.Revealed {
			f.Responded = true
			f.Knew = true
		}
	case "n":
		if f.Revealed {
			f.Responded = true
			f.Knew = false
		}
	}

	return f, nil
}

// View renders the card.
func (f Flashcard) View() string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 4)

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(f.Prompt)

	if !f.Revealed {
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("space to reveal")
		return card.Render(prompt+"\n\n"+hint) + "\n"
	}

	answer := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(strings.Join(f.Answers, "   "))

	s := card.Render(prompt+"\n\n"+answer) + "\n\n"
	if f.Responded {
		if f.Knew {
			s += lipgloss.NewStyle().Foreground(theme.Success).Render("  marked as known") + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Error).Render("  marked for repetition") + "\n"
		}
	} else {
		s += lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  did you know it?  y/n") + "\n"
	}
	return s
}
