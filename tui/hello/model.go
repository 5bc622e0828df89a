// Package hello renders the greeting page and its feature-tour carousel.
package hello

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/syntheticahq/synthterm/tui/common"
)

// GoToRatioMsg is sent when the user presses Get Started on the last tour
// card; the root model switches to the Ratio page.
type GoToRatioMsg struct{}

type card struct {
	title string
	body  string
}

var tourCards = []card{
	{
		title: "Pick Up",
		body:  "Discover trending videos, featured creators, and community highlights all in one place.",
	},
	{
		title: "Ratio",
		body:  "Explore data views of global population and how the Synthetica community fits in.",
	},
	{
		title: "Story",
		body:  "Share your personal journey and connect with others through our interactive story feed.",
	},
}

// Model holds the state for the hello page.
type Model struct {
	tourOpen bool
	card     int
	keys     common.KeyMap
}

// New creates a hello model with the tour closed.
func New() Model {
	return Model{keys: common.DefaultKeyMap()}
}

// Init is a no-op.
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages for the hello page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if !m.tourOpen {
		if key.Matches(keyMsg, m.keys.Start) {
			m.tourOpen = true
			m.card = 0
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.tourOpen = false

	case key.Matches(keyMsg, m.keys.Left):
		if m.card > 0 {
			m.card--
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.card < len(tourCards)-1 {
			m.card++
		}

	case key.Matches(keyMsg, m.keys.Enter):
		if m.card == len(tourCards)-1 {
			m.tourOpen = false
			return m, func() tea.Msg { return GoToRatioMsg{} }
		}
		m.card++
	}
	return m, nil
}

// TourOpen reports whether the tour modal is showing, for root key routing.
func (m Model) TourOpen() bool { return m.tourOpen }

// View renders the hello page, with the tour modal over it when open.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(common.AppTitleStyle.Render("Hello It's Synthetica") + "\n")
	b.WriteString(common.TaglineStyle.Render("Welcome back to our shared space.") + "\n\n")

	if !m.tourOpen {
		b.WriteString(common.StatusBarStyle.Render("  s: start the feature tour"))
		return b.String()
	}

	c := tourCards[m.card]
	var modal strings.Builder
	modal.WriteString(common.AuthorStyle.Render(c.title) + "\n\n")
	modal.WriteString(common.ContentStyle.Render(c.body) + "\n\n")
	modal.WriteString(dots(m.card, len(tourCards)) + "\n\n")
	if m.card == len(tourCards)-1 {
		modal.WriteString(common.SuccessStyle.Render("enter: get started") + "  ")
	} else {
		modal.WriteString("→/enter: next  ")
	}
	if m.card > 0 {
		modal.WriteString("←: back  ")
	}
	modal.WriteString("esc: close")

	b.WriteString(common.ModalStyle.Render(modal.String()))
	return b.String()
}

func dots(active, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i == active {
			b.WriteString(common.SuccessStyle.Render("●"))
		} else {
			b.WriteString(common.MetadataStyle.Render("○"))
		}
		if i < n-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
