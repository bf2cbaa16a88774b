package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/router"
	"github.com/abhisek/skilldrill/internal/screen"
	"github.com/abhisek/skilldrill/internal/screens/drill"
	"github.com/abhisek/skilldrill/internal/screens/history"
	"github.com/abhisek/skilldrill/internal/session"
	"github.com/abhisek/skilldrill/internal/store"
	"github.com/abhisek/skilldrill/internal/ui/components"
	"github.com/abhisek/skilldrill/internal/ui/layout"
	"github.com/abhisek/skilldrill/internal/ui/theme"
)

const (
	minQuestions     = 5
	maxQuestions     = 50
	defaultQuestions = 10
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	gw     gateway.Gateway
	events store.EventRepo

	menu components.Menu

	// Count entry overlays the menu when a drill kind wants a size.
	pickingCount bool
	countInput   components.CountInput
	pendingKind  gateway.SessionKind
	countErr     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(gw gateway.Gateway, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{
		gw:     gw,
		events: events,
	}

	items := []components.MenuItem{
		{Label: "ADAPTIVE DRILL", Hint: "difficulty follows your answers", Action: func() tea.Cmd {
			return h.askCount(gateway.KindAdaptive)
		}},
		{Label: "DIAGNOSTIC", Hint: "baseline assessment, platform-sized", Action: func() tea.Cmd {
			return h.startDrill(session.StartConfig{Kind: gateway.KindDiagnostic})
		}},
		{Label: "FOCUSED DRILL", Hint: "hammers your weakest topics", Action: func() tea.Cmd {
			return h.askCount(gateway.KindFocused)
		}},
		{Label: "HISTORY", Hint: "past sessions from the local journal", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

// askCount switches the screen into count entry for the given kind.
func (h *HomeScreen) askCount(kind gateway.SessionKind) tea.Cmd {
	h.pickingCount = true
	h.pendingKind = kind
	h.countErr = ""
	h.countInput = components.NewCountInput("10", minQuestions, maxQuestions)
	return h.countInput.Init()
}

// startDrill pushes a drill screen configured with cfg.
func (h *HomeScreen) startDrill(cfg session.StartConfig) tea.Cmd {
	gw, events := h.gw, h.events
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: drill.New(gw, events, cfg)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.pickingCount {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.pickingCount {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "esc":
				h.pickingCount = false
				h.countErr = ""
				return h, nil
			case "enter":
				count := defaultQuestions
				if h.countInput.Model.Value() != "" {
					n, err := h.countInput.Value()
					if err != nil {
						h.countErr = err.Error()
						return h, nil
					}
					count = n
				}
				h.pickingCount = false
				cfg := session.StartConfig{
					Kind:               h.pendingKind,
					RequestedQuestions: count,
				}
				if h.pendingKind == gateway.KindFocused {
					cfg.Strategy = "weak-topics"
				}
				return h, h.startDrill(cfg)
			}
		}
		var cmd tea.Cmd
		h.countInput, cmd = h.countInput.Update(msg)
		return h, cmd
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("SkillDrill"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Adaptive assessment drills for working engineers"))
	b.WriteString("\n\n\n")

	if h.pickingCount {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render("How many questions?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.countInput.View()))
		b.WriteString("\n")
		if h.countErr != "" {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Render(h.countErr))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Leave empty for 10 · Enter to start"))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
