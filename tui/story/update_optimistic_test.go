package story

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/syntheticahq/synthterm/domain"
)

func TestLike_SpeculativeStateVisibleBeforeSettlement(t *testing.T) {
	svc := &stubStories{}
	m := loadedModel(svc, makeStory(1, 7))

	updated, cmd := m.Update(LikeStoryMsg{ID: 1})
	if cmd == nil {
		t.Fatalf("expected a like request command")
	}

	got := updated.items[0]
	if !got.Story.Liked {
		t.Fatalf("liked flag not set speculatively")
	}
	if got.Story.LikeCount() != 2 {
		t.Fatalf("placeholder entry must count: got %d likes", got.Story.LikeCount())
	}
	if got.LikeStatus != LikePending {
		t.Fatalf("expected LikePending, got %v", got.LikeStatus)
	}
	// Placeholder carries the session's user ID, not a magic sentinel.
	if got.Story.Likes[1].UserID != 42 {
		t.Fatalf("placeholder like should carry the session user: %#v", got.Story.Likes)
	}
}

func TestLike_TransportFailureRevertsExactly(t *testing.T) {
	svc := &stubStories{likeErr: errors.New("connection refused")}
	m := loadedModel(svc, makeStory(1, 7))
	before := m.items[0].Story

	updated, cmd := m.Update(LikeStoryMsg{ID: 1})
	result := cmd().(LikeResultMsg)
	if result.Err == nil {
		t.Fatalf("stub should have failed the request")
	}

	settled, noticeCmd := updated.Update(result)
	after := settled.items[0].Story
	if after.Liked != before.Liked || !reflect.DeepEqual(after.Likes, before.Likes) {
		t.Fatalf("revert mismatch:\n before %#v\n after  %#v", before, after)
	}
	if settled.items[0].LikeStatus != LikeFailed {
		t.Fatalf("expected LikeFailed tag after revert")
	}

	if noticeCmd == nil {
		t.Fatalf("expected a failure notice")
	}
	if _, ok := noticeCmd().(LikeFailedMsg); !ok {
		t.Fatalf("expected LikeFailedMsg, got %T", noticeCmd())
	}
}

func TestLike_AuthDenialRevertsAndSignalsSignIn(t *testing.T) {
	svc := &stubStories{likeErr: fmt.Errorf("liking story: %w", domain.ErrUnauthorized)}
	m := loadedModel(svc, makeStory(1))
	before := m.items[0].Story

	updated, cmd := m.Update(LikeStoryMsg{ID: 1})
	settled, noticeCmd := updated.Update(cmd().(LikeResultMsg))

	after := settled.items[0].Story
	if after.Liked || after.LikeCount() != before.LikeCount() {
		t.Fatalf("auth denial must revert: %#v", after)
	}
	if noticeCmd == nil {
		t.Fatalf("expected an auth-required signal")
	}
	if _, ok := noticeCmd().(AuthRequiredMsg); !ok {
		t.Fatalf("auth denial must be distinct from generic failure, got %T", noticeCmd())
	}
}

func TestLike_ReentrantCallIsNoOp(t *testing.T) {
	svc := &stubStories{}
	m := loadedModel(svc, makeStory(1))

	m, cmd := m.Update(LikeStoryMsg{ID: 1})
	if cmd == nil {
		t.Fatalf("first like must issue a request")
	}

	again, cmd2 := m.Update(LikeStoryMsg{ID: 1})
	if cmd2 != nil {
		t.Fatalf("duplicate like while pending must not issue a second request")
	}
	if again.items[0].Story.LikeCount() != 1 {
		t.Fatalf("duplicate like double-incremented the count: %d", again.items[0].Story.LikeCount())
	}

	// Also a no-op once confirmed.
	confirmed, _ := again.Update(cmd().(LikeResultMsg))
	_, cmd3 := confirmed.Update(LikeStoryMsg{ID: 1})
	if cmd3 != nil {
		t.Fatalf("like on an already-liked story must not issue a request")
	}
	if svc.likeCalls != 1 {
		t.Fatalf("expected exactly one like request, got %d", svc.likeCalls)
	}
}

func TestLike_UnrelatedItemsUntouched(t *testing.T) {
	svc := &stubStories{likeErr: errors.New("boom")}
	m := loadedModel(svc, makeStory(1), makeStory(2, 5, 6))
	otherBefore := m.items[1]

	updated, cmd := m.Update(LikeStoryMsg{ID: 1})
	if !reflect.DeepEqual(updated.items[1], otherBefore) {
		t.Fatalf("speculative apply touched another item: %#v", updated.items[1])
	}

	settled, _ := updated.Update(cmd().(LikeResultMsg))
	if !reflect.DeepEqual(settled.items[1], otherBefore) {
		t.Fatalf("revert touched another item: %#v", settled.items[1])
	}
}

func TestLike_EndToEndSuccessAndAuthDenial(t *testing.T) {
	t.Run("success keeps speculative state", func(t *testing.T) {
		svc := &stubStories{stories: []domain.Story{makeStory(1)}}
		m := New(svc, stubSession{id: 42, ok: true}, "everyone")
		m, _ = m.Update(m.fetchStories()())
		if len(m.items) != 1 || m.items[0].Story.LikeCount() != 0 {
			t.Fatalf("unexpected initial feed: %#v", m.items)
		}

		m, cmd := m.Update(LikeStoryMsg{ID: 1})
		immediate := m.items[0].Story
		if !immediate.Liked || immediate.LikeCount() != 1 {
			t.Fatalf("unexpected immediate state: %#v", immediate)
		}

		m, notice := m.Update(cmd().(LikeResultMsg))
		final := m.items[0].Story
		if !final.Liked || final.LikeCount() != 1 {
			t.Fatalf("success must leave speculative state: %#v", final)
		}
		if m.items[0].LikeStatus != LikeConfirmed {
			t.Fatalf("expected LikeConfirmed")
		}
		if notice != nil {
			t.Fatalf("success must not raise a notice")
		}
	})

	t.Run("401 reverts and prompts sign-in once", func(t *testing.T) {
		svc := &stubStories{
			stories: []domain.Story{makeStory(1)},
			likeErr: fmt.Errorf("liking story: %w", domain.ErrUnauthorized),
		}
		m := New(svc, stubSession{}, "everyone")
		m, _ = m.Update(m.fetchStories()())

		m, cmd := m.Update(LikeStoryMsg{ID: 1})
		m, notice := m.Update(cmd().(LikeResultMsg))

		final := m.items[0].Story
		if final.Liked || final.LikeCount() != 0 {
			t.Fatalf("expected full revert: %#v", final)
		}
		if notice == nil {
			t.Fatalf("expected exactly one auth-required signal")
		}
		if _, ok := notice().(AuthRequiredMsg); !ok {
			t.Fatalf("expected AuthRequiredMsg, got %T", notice())
		}

		// A duplicate settlement for the same request is ignored.
		m2, notice2 := m.Update(LikeResultMsg{ID: 1, Err: svc.likeErr})
		if notice2 != nil {
			t.Fatalf("stale settlement must not raise a second prompt")
		}
		if m2.items[0].Story.Liked {
			t.Fatalf("stale settlement changed state")
		}
	})
}

func TestLike_MissingItemIsNoOp(t *testing.T) {
	svc := &stubStories{}
	m := loadedModel(svc, makeStory(1))
	updated, cmd := m.Update(LikeStoryMsg{ID: 404})
	if cmd != nil {
		t.Fatalf("like on unknown id must not issue a request")
	}
	if !reflect.DeepEqual(updated.items, m.items) {
		t.Fatalf("collection changed for unknown id")
	}
}
