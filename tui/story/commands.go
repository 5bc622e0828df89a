package story

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) fetchStories() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		stories, err := svc.FetchStories(context.Background())
		if err != nil {
			return StoriesErrorMsg{Err: err}
		}
		return StoriesLoadedMsg{Stories: stories}
	}
}

func (m Model) likeStory(id int64) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		err := svc.LikeStory(context.Background(), id)
		return LikeResultMsg{ID: id, Err: err}
	}
}
