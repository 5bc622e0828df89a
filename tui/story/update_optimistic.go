package story

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/syntheticahq/synthterm/domain"
	"github.com/syntheticahq/synthterm/optimistic"
)

// The like flow applies its state change before the network round-trip
// completes. The pre-mutation snapshot is kept in m.pending until the
// request settles: success leaves the speculative state in place, any
// failure restores the snapshot and raises a notice. The placeholder like
// entry counts toward the displayed total for the whole speculative window.
func (m Model) handleOptimisticMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LikeStoryMsg:
		return m.applyLike(msg.ID)

	case LikeResultMsg:
		return m.settleLike(msg.ID, msg.Err)
	}

	return m, nil
}

// applyLike performs step 1 of the contract synchronously: snapshot, then
// speculative transition. Exactly one network request per accepted call;
// duplicate calls while liked or in flight are no-ops.
func (m Model) applyLike(id int64) (Model, tea.Cmd) {
	for _, it := range m.items {
		if it.Story.ID != id {
			continue
		}
		if it.Story.Liked || it.LikeStatus == LikePending {
			return m, nil
		}
		break
	}

	userID, _ := m.session.UserID() // 0 when signed out; the server rejects with 401

	next, snapshot, ok := optimistic.Apply(m.items, id, itemID, func(it StoryItem) StoryItem {
		st := it.Story
		likes := make([]domain.Like, len(st.Likes), len(st.Likes)+1)
		copy(likes, st.Likes)
		st.Likes = append(likes, domain.Like{UserID: userID})
		st.Liked = true
		it.Story = st
		it.LikeStatus = LikePending
		return it
	})
	if !ok {
		return m, nil
	}

	m.items = next
	m.pending[id] = snapshot
	return m, m.likeStory(id)
}

func (m Model) settleLike(id int64, err error) (Model, tea.Cmd) {
	snapshot, inFlight := m.pending[id]
	if !inFlight {
		return m, nil
	}
	delete(m.pending, id)

	switch optimistic.Settle(err, func(e error) bool { return errors.Is(e, domain.ErrUnauthorized) }) {
	case optimistic.Confirmed:
		m.items = m.tagLike(id, LikeConfirmed)
		return m, nil

	case optimistic.AuthRequired:
		m.items = optimistic.Revert(m.items, id, itemID, snapshot)
		m.items = m.tagLike(id, LikeFailed)
		return m, func() tea.Msg { return AuthRequiredMsg{} }

	default:
		m.items = optimistic.Revert(m.items, id, itemID, snapshot)
		m.items = m.tagLike(id, LikeFailed)
		return m, func() tea.Msg { return LikeFailedMsg{Err: err} }
	}
}

// tagLike updates only the UI-level like tag, leaving story data untouched.
func (m Model) tagLike(id int64, status LikeStatus) []StoryItem {
	next, _, _ := optimistic.Apply(m.items, id, itemID, func(it StoryItem) StoryItem {
		it.LikeStatus = status
		return it
	})
	return next
}
