package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/poll"
	"github.com/abhisek/skilldrill/internal/router"
	"github.com/abhisek/skilldrill/internal/screen"
	"github.com/abhisek/skilldrill/internal/screens/home"
	"github.com/abhisek/skilldrill/internal/store"
	"github.com/abhisek/skilldrill/internal/ui/layout"
)

// Options carries the dependencies the TUI runs on.
type Options struct {
	Gateway   gateway.Gateway
	EventRepo store.EventRepo

	// Badge, when non-nil, feeds the unread-reading indicator in the
	// header. The polling loop itself runs outside the TUI.
	Badge *poll.Service
}

// badgeTickMsg refreshes the header badge from the polling read model.
type badgeTickMsg time.Time

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	badge  *poll.Service
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Gateway, opts.EventRepo)
	return AppModel{
		router: router.New(homeScreen),
		badge:  opts.Badge,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.badge == nil {
		return nil
	}
	return badgeTick()
}

func badgeTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return badgeTickMsg(t)
	})
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case badgeTickMsg:
		// Nothing to do but re-render; the polling service already
		// published whatever is newest.
		return m, badgeTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	badge := ""
	if m.badge != nil {
		if stats := m.badge.Stats(); stats != nil {
			badge = layout.RenderBadge(stats.UnreadCount, stats.HighPriorityCount)
		}
	}

	header := layout.RenderHeader(title, badge, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
