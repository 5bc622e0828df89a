package synthetica

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/syntheticahq/synthterm/domain"
)

// storyService implements app.StoryService against the Synthetica API.
type storyService struct {
	client *Client
}

// NewStoryService creates a StoryService backed by the Synthetica API.
func NewStoryService(client *Client) *storyService {
	return &storyService{client: client}
}

// storyDTO is the wire shape of a story record.
type storyDTO struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Detail    string       `json:"detail"`
	User      userDTO      `json:"user"`
	CreatedAt string       `json:"created_at"`
	Comments  []commentDTO `json:"comments"`
	Likes     []likeDTO    `json:"likes"`
	Liked     bool         `json:"liked"`
}

type userDTO struct {
	Name string `json:"name"`
}

type commentDTO struct {
	ID   int64  `json:"id"`
	User string `json:"user"`
	Text string `json:"text"`
}

type likeDTO struct {
	UserID int64 `json:"user_id"`
}

func (s *storyService) FetchStories(ctx context.Context) ([]domain.Story, error) {
	data, err := s.client.Get(ctx, "/stories")
	if err != nil {
		return nil, fmt.Errorf("fetching stories: %w", err)
	}

	var dtos []storyDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("parsing stories: %w", err)
	}

	stories := make([]domain.Story, 0, len(dtos))
	for _, dto := range dtos {
		stories = append(stories, mapStory(dto))
	}
	return stories, nil
}

func (s *storyService) CreateStory(ctx context.Context, title, detail string) (domain.Story, error) {
	title = strings.TrimSpace(title)
	detail = strings.TrimSpace(detail)
	if title == "" {
		return domain.Story{}, domain.ErrEmptyTitle
	}
	if detail == "" {
		return domain.Story{}, domain.ErrEmptyDetail
	}

	payload, err := json.Marshal(map[string]string{"title": title, "detail": detail})
	if err != nil {
		return domain.Story{}, fmt.Errorf("encoding story: %w", err)
	}

	data, err := s.client.Post(ctx, "/stories", bytes.NewReader(payload))
	if err != nil {
		return domain.Story{}, fmt.Errorf("creating story: %w", mapAuthErr(err))
	}

	var dto storyDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domain.Story{}, fmt.Errorf("parsing created story: %w", err)
	}
	story := mapStory(dto)
	if story.Author == "" {
		story.Author = "You"
	}
	return story, nil
}

func (s *storyService) LikeStory(ctx context.Context, id int64) error {
	if _, err := s.client.Post(ctx, fmt.Sprintf("/stories/%d/like", id), nil); err != nil {
		return fmt.Errorf("liking story: %w", mapAuthErr(err))
	}
	return nil
}

// mapAuthErr converts a 401 API response into the domain sentinel so callers
// can distinguish "sign in first" from a generic failure with errors.Is.
func mapAuthErr(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, apiErr.Message)
	}
	return err
}

func mapStory(dto storyDTO) domain.Story {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)

	comments := make([]domain.Comment, 0, len(dto.Comments))
	for _, c := range dto.Comments {
		comments = append(comments, domain.Comment{ID: c.ID, Author: c.User, Text: c.Text})
	}
	likes := make([]domain.Like, 0, len(dto.Likes))
	for _, l := range dto.Likes {
		likes = append(likes, domain.Like{UserID: l.UserID})
	}

	return domain.Story{
		ID:        dto.ID,
		Title:     dto.Title,
		Detail:    dto.Detail,
		Author:    dto.User.Name,
		CreatedAt: createdAt,
		Comments:  comments,
		Likes:     likes,
		Liked:     dto.Liked,
	}
}
