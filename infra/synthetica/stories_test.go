package synthetica

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/syntheticahq/synthterm/domain"
)

type staticCreds string

func (s staticCreds) CookieValue() string { return string(s) }

func TestFetchStories_MapsWireShape(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stories" || r.Method != http.MethodGet {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if c, err := r.Cookie("user_id"); err == nil {
			gotCookie = c.Value
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"id": 7,
				"title": "From Sketch to Symphony",
				"detail": "Synthetica turned my hummed notes into an arrangement.",
				"user": {"name": "MelodyMaker"},
				"created_at": "2024-10-12T09:30:00Z",
				"comments": [{"id": 101, "user": "AudioPhile", "text": "Inspiring!"}],
				"likes": [{"user_id": 3}, {"user_id": 9}],
				"liked": true
			}
		]`))
	}))
	defer srv.Close()

	svc := NewStoryService(NewClient(srv.URL, staticCreds("42")))
	stories, err := svc.FetchStories(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if gotCookie != "42" {
		t.Fatalf("session cookie not sent: %q", gotCookie)
	}
	if len(stories) != 1 {
		t.Fatalf("expected one story, got %d", len(stories))
	}
	st := stories[0]
	if st.ID != 7 || st.Author != "MelodyMaker" || !st.Liked {
		t.Fatalf("bad mapping: %#v", st)
	}
	if st.LikeCount() != 2 || st.Likes[1].UserID != 9 {
		t.Fatalf("likes not mapped: %#v", st.Likes)
	}
	if len(st.Comments) != 1 || st.Comments[0].Author != "AudioPhile" {
		t.Fatalf("comments not mapped: %#v", st.Comments)
	}
	if st.CreatedAt.IsZero() {
		t.Fatalf("created_at not parsed")
	}
}

func TestCreateStory_ValidatesAndDefaultsAuthor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stories" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id": 12, "title": "My Story", "detail": "Details.", "user": {"name": ""}}`))
	}))
	defer srv.Close()

	svc := NewStoryService(NewClient(srv.URL, staticCreds("42")))

	if _, err := svc.CreateStory(context.Background(), "  ", "detail"); !errors.Is(err, domain.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := svc.CreateStory(context.Background(), "title", ""); !errors.Is(err, domain.ErrEmptyDetail) {
		t.Fatalf("expected ErrEmptyDetail, got %v", err)
	}

	story, err := svc.CreateStory(context.Background(), "My Story", "Details.")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if story.Author != "You" {
		t.Fatalf("expected author fallback to You, got %q", story.Author)
	}
	if story.ID != 12 || story.Liked || story.LikeCount() != 0 {
		t.Fatalf("unexpected created story: %#v", story)
	}
}

func TestLikeStory_DistinguishesAuthFromGenericFailure(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantAuth bool
		wantErr  bool
	}{
		{name: "success", status: http.StatusOK, body: `{}`},
		{name: "auth denied", status: http.StatusUnauthorized, body: `{"error": "must be logged in"}`, wantAuth: true, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error": "boom"}`, wantErr: true},
		{name: "non-json error", status: http.StatusBadGateway, body: `bad gateway`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/stories/7/like" || r.Method != http.MethodPost {
					t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
				}
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			svc := NewStoryService(NewClient(srv.URL, staticCreds("")))
			err := svc.LikeStory(context.Background(), 7)
			if tc.wantErr != (err != nil) {
				t.Fatalf("error mismatch: %v", err)
			}
			if errors.Is(err, domain.ErrUnauthorized) != tc.wantAuth {
				t.Fatalf("auth classification mismatch for %v", err)
			}
		})
	}
}

func TestLikeStory_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Immediately closed: connection refused.

	svc := NewStoryService(NewClient(srv.URL, staticCreds("")))
	err := svc.LikeStory(context.Background(), 1)
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("transport failure must not classify as auth denial")
	}
}
