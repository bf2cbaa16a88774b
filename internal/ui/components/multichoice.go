package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skilldrill/internal/ui/theme"
)

// Choice is one selectable option of a multiple-choice question.
type Choice struct {
	ID   string
	Text string
}

// MultiChoice is a multiple-choice selector. Grading is server-side, so
// the component never knows the correct index; after submission it only
// marks the chosen option with the verdict handed back via MarkResult.
type MultiChoice struct {
	Prompt        string
	Choices       []Choice
	Selected      int
	Submitted     bool
	ChosenIndex   int
	ChosenCorrect bool
}

// NewMultiChoice creates a new multiple-choice selector.
func NewMultiChoice(prompt string, choices []Choice) MultiChoice {
	return MultiChoice{
		Prompt:      prompt,
		Choices:     choices,
		Selected:    0,
		ChosenIndex: -1,
	}
}

// Update handles keyboard navigation.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// Select moves the cursor to index when it is in range.
func (m *MultiChoice) Select(index int) {
	if index >= 0 && index < len(m.Choices) {
		m.Selected = index
	}
}

// SelectedChoice returns the choice under the cursor.
func (m MultiChoice) SelectedChoice() *Choice {
	if m.Selected < 0 || m.Selected >= len(m.Choices) {
		return nil
	}
	return &m.Choices[m.Selected]
}

// Submit locks the cursor in as the chosen option. The verdict arrives
// later via MarkResult.
func (m *MultiChoice) Submit() {
	m.Submitted = true
	m.ChosenIndex = m.Selected
}

// MarkResult records the server's verdict for the chosen option.
func (m *MultiChoice) MarkResult(correct bool) {
	m.ChosenCorrect = correct
}

// View renders the multiple-choice selector.
func (m MultiChoice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(m.Prompt) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E", "F"}

	for i, choice := range m.Choices {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, choice.Text)

		if m.Submitted {
			if i == m.ChosenIndex {
				if m.ChosenCorrect {
					s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
				} else {
					s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
				}
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}
