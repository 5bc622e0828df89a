// Package ratio renders the population-distribution page: regional bars, a
// delayed community-share overlay, and the one-question community survey.
package ratio

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/syntheticahq/synthterm/app"
	"github.com/syntheticahq/synthterm/tui/common"
)

// overlayDelay mirrors the site's two-second pause before the community
// share overlay fades in over the regional chart.
const overlayDelay = 2 * time.Second

// communitySharePercent is the share highlighted by the overlay.
const communitySharePercent = 15

type region struct {
	name    string
	percent int
}

var worldRegions = []region{
	{"Asia", 60},
	{"Africa", 17},
	{"Europe", 10},
	{"Americas", 12},
	{"Oceania", 1},
}

// answerLabels maps survey answers to their display labels.
var answerLabels = map[int]string{
	1: "Daily Creator",
	2: "Occasional User",
	3: "Just Exploring",
}

var answerOptions = []string{
	"I create with Synthetica daily.",
	"I use Synthetica now and then.",
	"I'm just exploring for now.",
}

// --- Messages ---

// StatusLoadedMsg is sent when the survey status fetch settles.
type StatusLoadedMsg struct {
	Status app.QuestionnaireStatus
	Err    error
}

// SubmitResultMsg is sent when a survey submission settles.
type SubmitResultMsg struct {
	Answer int
	Err    error
}

// overlayMsg fires once after overlayDelay.
type overlayMsg struct{}

// Model holds the state for the ratio page.
type Model struct {
	svc app.QuestionnaireService

	overlay    bool
	modalOpen  bool
	choice     int // 0-based index into answerOptions
	submitting bool
	answered   bool
	answer     int
	err        error

	bars progress.Model
	keys common.KeyMap
}

// New creates a ratio model.
func New(svc app.QuestionnaireService) Model {
	bar := progress.New(progress.WithSolidFill("#7DC4FF"), progress.WithoutPercentage())
	bar.Width = 40
	return Model{
		svc:  svc,
		bars: bar,
		keys: common.DefaultKeyMap(),
	}
}

// Init starts the overlay timer and the survey status fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(overlayDelay, func(time.Time) tea.Msg { return overlayMsg{} }),
		m.fetchStatus(),
	)
}

func (m Model) fetchStatus() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		status, err := svc.Status(context.Background())
		return StatusLoadedMsg{Status: status, Err: err}
	}
}

func (m Model) submit(answer int) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		return SubmitResultMsg{Answer: answer, Err: svc.Submit(context.Background(), answer)}
	}
}

// ModalOpen reports whether the survey modal is showing, for root key routing.
func (m Model) ModalOpen() bool { return m.modalOpen }

// Update handles messages for the ratio page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case overlayMsg:
		m.overlay = true
		return m, nil

	case StatusLoadedMsg:
		if msg.Err != nil {
			// Status is best effort; an unreachable API just skips the prompt.
			return m, nil
		}
		if msg.Status.Answered {
			m.answered = true
			m.answer = msg.Status.Answer
			return m, nil
		}
		m.modalOpen = true
		return m, nil

	case SubmitResultMsg:
		m.submitting = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.answered = true
		m.answer = msg.Answer
		m.modalOpen = false
		m.err = nil
		return m, nil

	case tea.KeyMsg:
		if !m.modalOpen || m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Back):
			// Skip: close without submitting; status is re-asked next visit.
			m.modalOpen = false
			m.err = nil

		case key.Matches(msg, m.keys.Up):
			if m.choice > 0 {
				m.choice--
			}

		case key.Matches(msg, m.keys.Down):
			if m.choice < len(answerOptions)-1 {
				m.choice++
			}

		case key.Matches(msg, m.keys.Enter):
			m.submitting = true
			m.err = nil
			return m, m.submit(m.choice + 1)
		}
	}
	return m, nil
}
