package app

import (
	"context"

	"github.com/syntheticahq/synthterm/domain"
)

// StoryService reads and writes the community story feed.
type StoryService interface {
	// FetchStories returns the full feed, newest first.
	FetchStories(ctx context.Context) ([]domain.Story, error)

	// CreateStory publishes a new story and returns the server's
	// authoritative representation.
	CreateStory(ctx context.Context, title, detail string) (domain.Story, error)

	// LikeStory records the current user's like on a story.
	// Returns domain.ErrUnauthorized (wrapped) when the caller is not
	// signed in.
	LikeStory(ctx context.Context, id int64) error
}
