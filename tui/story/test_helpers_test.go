package story

import (
	"context"
	"time"

	"github.com/syntheticahq/synthterm/domain"
)

// stubStories counts like calls so tests can assert on "exactly one request".
type stubStories struct {
	stories   []domain.Story
	fetchErr  error
	likeErr   error
	likeCalls int
}

func (s *stubStories) FetchStories(context.Context) ([]domain.Story, error) {
	return s.stories, s.fetchErr
}

func (s *stubStories) CreateStory(_ context.Context, title, detail string) (domain.Story, error) {
	return domain.Story{ID: 999, Title: title, Detail: detail, Author: "You"}, nil
}

func (s *stubStories) LikeStory(context.Context, int64) error {
	s.likeCalls++
	return s.likeErr
}

type stubSession struct {
	id int64
	ok bool
}

func (s stubSession) UserID() (int64, bool) { return s.id, s.ok }
func (s stubSession) SignOut() error        { return nil }

func makeStory(id int64, likes ...int64) domain.Story {
	ls := make([]domain.Like, 0, len(likes))
	for _, uid := range likes {
		ls = append(ls, domain.Like{UserID: uid})
	}
	return domain.Story{
		ID:        id,
		Title:     "Story " + string(rune('A'+id)),
		Detail:    "Detail text.",
		Author:    "Author",
		CreatedAt: time.Date(2024, 11, 3, 12, 0, 0, 0, time.UTC),
		Likes:     ls,
	}
}

// loadedModel builds a feed model on the all-stories tab with the given
// stories already loaded.
func loadedModel(svc *stubStories, stories ...domain.Story) Model {
	m := New(svc, stubSession{id: 42, ok: true}, "everyone")
	m, _ = m.Update(StoriesLoadedMsg{Stories: stories})
	return m
}
