package compose

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/syntheticahq/synthterm/app"
	"github.com/syntheticahq/synthterm/domain"
	"github.com/syntheticahq/synthterm/infra/editor"
)

// --- Messages ---

// DoneMsg is sent when composing is complete.
type DoneMsg struct {
	Story     domain.Story // zero when cancelled
	Cancelled bool
}

// submittedMsg is sent after the create request settles.
type submittedMsg struct {
	story domain.Story
	err   error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

type field int

const (
	fieldTitle field = iota
	fieldDetail
)

// --- Model ---

// Model holds the state for the story compose view. Submission happens here
// so a rejected draft stays editable instead of being thrown away.
type Model struct {
	svc    app.StoryService
	editor *editor.EnvEditor

	title      textinput.Model
	detail     textarea.Model
	focus      field
	submitting bool
	err        error
}

// New creates a compose model with both fields empty and the title focused.
func New(svc app.StoryService, ed *editor.EnvEditor) Model {
	ti := textinput.New()
	ti.Placeholder = "Give your story a title"
	ti.CharLimit = 120
	ti.Width = 60
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "How has Synthetica changed your workflow?"
	ta.CharLimit = 2000
	ta.SetWidth(72)
	ta.SetHeight(8)

	return Model{
		svc:    svc,
		editor: ed,
		title:  ti,
		detail: ta,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// submit validates locally first so an obviously empty draft never leaves
// the client.
func (m Model) submit() (Model, tea.Cmd) {
	title := m.title.Value()
	detail := m.detail.Value()
	switch {
	case title == "":
		m.err = domain.ErrEmptyTitle
		return m, nil
	case detail == "":
		m.err = domain.ErrEmptyDetail
		return m, nil
	}

	m.err = nil
	m.submitting = true
	svc := m.svc
	return m, func() tea.Msg {
		story, err := svc.CreateStory(context.Background(), title, detail)
		return submittedMsg{story: story, err: err}
	}
}

// launchEditor hands the detail field to $EDITOR via tea.Exec, which
// suspends Bubble Tea's raw terminal mode while the editor runs.
func (m *Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd(m.detail.Value())
	if err != nil {
		m.err = fmt.Errorf("preparing editor: %w", err)
		return nil
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the compose view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	case submittedMsg:
		m.submitting = false
		if msg.err != nil {
			// Keep the draft; the user fixes it or signs in and retries.
			m.err = msg.err
			if errors.Is(msg.err, domain.ErrUnauthorized) {
				m.err = errors.New("sign in on the website first, then retry")
			}
			return m, nil
		}
		return m, done(DoneMsg{Story: msg.story})

	case editorFinishedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("editor: %w", msg.err)
			return m, nil
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			m.err = err
			return m, nil
		}
		if content != "" {
			m.detail.SetValue(content)
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, done(DoneMsg{Cancelled: true})

		case "tab", "shift+tab":
			return m.toggleFocus(), nil

		case "ctrl+d":
			return m.submit()

		case "ctrl+e":
			if m.editor != nil {
				cmd := m.launchEditor()
				return m, cmd
			}
		}

		return m.updateFocused(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) toggleFocus() Model {
	if m.focus == fieldTitle {
		m.focus = fieldDetail
		m.title.Blur()
		m.detail.Focus()
	} else {
		m.focus = fieldTitle
		m.detail.Blur()
		m.title.Focus()
	}
	return m
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == fieldTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
