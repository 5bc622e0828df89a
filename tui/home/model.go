// Package home renders the landing page: who is signed in, sign-out, and a
// pointer to the external Google login flow.
package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/syntheticahq/synthterm/app"
	"github.com/syntheticahq/synthterm/tui/common"
)

// SignedOutMsg is sent after the local session file has been cleared.
type SignedOutMsg struct {
	Err error
}

// Model holds the state for the home page.
type Model struct {
	session  app.SessionReader
	loginURL string
	keys     common.KeyMap
	status   string
}

// New creates a home model. loginURL points at the API host's external
// OAuth entry point.
func New(session app.SessionReader, loginURL string) Model {
	return Model{
		session:  session,
		loginURL: loginURL,
		keys:     common.DefaultKeyMap(),
	}
}

// Init is a no-op; the page reads session state synchronously.
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages for the home page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignedOutMsg:
		if msg.Err != nil {
			m.status = "Sign out failed: " + msg.Err.Error()
		} else {
			m.status = "Signed out."
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.SignOut):
			if _, ok := m.session.UserID(); !ok {
				return m, nil
			}
			session := m.session
			return m, func() tea.Msg {
				return SignedOutMsg{Err: session.SignOut()}
			}

		case key.Matches(msg, m.keys.Open):
			if _, ok := m.session.UserID(); ok {
				return m, nil
			}
			m.status = "Opening " + m.loginURL
			return m, common.OpenURL(m.loginURL)
		}
	}
	return m, nil
}

// View renders the home page.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	if id, ok := m.session.UserID(); ok {
		b.WriteString(fmt.Sprintf("  Signed in as Google User %d\n\n", id))
		b.WriteString(common.StatusBarStyle.Render("  x: sign out"))
	} else {
		b.WriteString("  Not signed in.\n\n")
		b.WriteString("  Liking and sharing stories needs a signed-in session.\n")
		b.WriteString("  Sign in with Google in your browser; the session cookie\n")
		b.WriteString(fmt.Sprintf("  lands in this client's session file.\n\n  %s\n\n", common.ContentStyle.Render(m.loginURL)))
		b.WriteString(common.StatusBarStyle.Render("  o: open login page"))
	}

	if m.status != "" {
		b.WriteString("\n" + common.SuccessStyle.Render("  "+m.status))
	}
	return b.String()
}
