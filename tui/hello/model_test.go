package hello

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartOpensTour(t *testing.T) {
	m := New()
	if m.TourOpen() {
		t.Fatalf("tour must start closed")
	}
	m, _ = m.Update(runes("s"))
	if !m.TourOpen() {
		t.Fatalf("s must open the tour")
	}
	if !strings.Contains(m.View(), "Pick Up") {
		t.Fatalf("first card missing:\n%s", m.View())
	}
}

func TestCarouselIsBounded(t *testing.T) {
	m := New()
	m, _ = m.Update(runes("s"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.card != 0 {
		t.Fatalf("back on the first card must not move")
	}

	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.card != len(tourCards)-1 {
		t.Fatalf("next past the last card must not move: %d", m.card)
	}
}

func TestLastCardEnterNavigatesToRatio(t *testing.T) {
	m := New()
	m, _ = m.Update(runes("s"))

	// Enter advances until the last card, then fires the navigation.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("enter on a middle card must only advance")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter on the last card must navigate")
	}
	if _, ok := cmd().(GoToRatioMsg); !ok {
		t.Fatalf("expected GoToRatioMsg, got %T", cmd())
	}
	if m.TourOpen() {
		t.Fatalf("navigation must close the tour")
	}
}

func TestEscClosesTour(t *testing.T) {
	m := New()
	m, _ = m.Update(runes("s"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.TourOpen() {
		t.Fatalf("esc must close the tour")
	}
}
