package story

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StoriesLoadedMsg:
		items := make([]StoryItem, len(msg.Stories))
		for i, st := range msg.Stories {
			status := LikeIdle
			if st.Liked {
				status = LikeConfirmed
			}
			items[i] = StoryItem{Story: st, LikeStatus: status}
		}
		m.items = items
		m.pending = make(map[int64]StoryItem)
		m.loading = false
		m.err = nil
		m.cursor = 0
		return m, nil

	case StoriesErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case StoryCreatedMsg:
		// Server-confirmed creation: prepend the authoritative story and
		// show the full feed, mirroring the site's post-submit view switch.
		m.items = append([]StoryItem{{Story: msg.Story}}, m.items...)
		m.tab = TabEveryone
		m.cursor = 0
		m.expanded[msg.Story.ID] = true
		return m, nil

	case LikeStoryMsg, LikeResultMsg:
		return m.handleOptimisticMsg(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if m.tab == TabYours {
			m.tab = TabEveryone
		} else {
			m.tab = TabYours
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.err = nil
		return m, m.fetchStories()
	}

	if m.tab != TabEveryone || len(m.items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Enter):
		id := m.items[m.cursor].Story.ID
		m.expanded[id] = !m.expanded[id]
	case key.Matches(msg, m.keys.Back):
		id := m.items[m.cursor].Story.ID
		delete(m.expanded, id)
	case key.Matches(msg, m.keys.Like):
		selected := m.items[m.cursor]
		// The control is disabled while liked or in flight; the
		// coordinator re-checks anyway.
		if selected.Story.Liked || selected.LikeStatus == LikePending {
			return m, nil
		}
		id := selected.Story.ID
		return m, func() tea.Msg { return LikeStoryMsg{ID: id} }
	}
	return m, nil
}
