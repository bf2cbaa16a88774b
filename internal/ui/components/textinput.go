package components

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skilldrill/internal/ui/theme"
)

// CountInput wraps bubbles/textinput for bounded numeric entry, used for
// the requested question count when starting a drill.
type CountInput struct {
	Model textinput.Model
	Min   int
	Max   int
}

// NewCountInput creates a numeric input accepting values in [min, max].
func NewCountInput(placeholder string, min, max int) CountInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = len(strconv.Itoa(max))
	ti.Focus()

	return CountInput{
		Model: ti,
		Min:   min,
		Max:   max,
	}
}

// Init returns the initial command.
func (c CountInput) Init() tea.Cmd {
	return c.Model.Focus()
}

// Update handles messages, dropping non-digit input.
func (c CountInput) Update(msg tea.Msg) (CountInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the input with its allowed range.
func (c CountInput) View() string {
	rangeHint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" (%d-%d)", c.Min, c.Max))
	return c.Model.View() + rangeHint
}

// Value returns the entered count, or an error when it is empty or out
// of range.
func (c CountInput) Value() (int, error) {
	raw := c.Model.Value()
	if raw == "" {
		return 0, fmt.Errorf("no count entered")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < c.Min || n > c.Max {
		return 0, fmt.Errorf("count must be between %d and %d", c.Min, c.Max)
	}
	return n, nil
}
