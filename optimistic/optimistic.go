// Package optimistic implements speculative state transitions over an
// in-memory collection: apply a mutation to one item before the server
// confirms it, keep a snapshot, and revert to the snapshot if the request
// settles with an error.
//
// The functions are pure: each returns a new collection value and never
// mutates its input slice. Unrelated items are carried over by value, so
// their data is unchanged and anything they reference stays shared.
package optimistic

// Outcome classifies how a speculative mutation settled.
type Outcome int

const (
	// Confirmed means the server accepted the mutation; the speculative
	// state stands.
	Confirmed Outcome = iota

	// AuthRequired means the server rejected the mutation because the
	// caller is not authenticated; the caller should revert and prompt
	// for sign-in.
	AuthRequired

	// Failed covers every other settlement error (transport, non-2xx,
	// malformed response); the caller should revert and show a generic
	// notice.
	Failed
)

// Settle classifies a settlement error. isAuth reports whether err is the
// caller's authentication-denied error (typically errors.Is against a
// sentinel).
func Settle(err error, isAuth func(error) bool) Outcome {
	switch {
	case err == nil:
		return Confirmed
	case isAuth != nil && isAuth(err):
		return AuthRequired
	default:
		return Failed
	}
}

// Apply returns a copy of items with transition applied to the single item
// whose idOf matches id, plus the pre-mutation snapshot of that item. The
// snapshot is retained by the caller until the in-flight request settles and
// is the only input Revert needs. ok is false when no item matches, in which
// case the returned collection is items unchanged.
func Apply[T any, ID comparable](items []T, id ID, idOf func(T) ID, transition func(T) T) (next []T, snapshot T, ok bool) {
	for i, it := range items {
		if idOf(it) != id {
			continue
		}
		next = make([]T, len(items))
		copy(next, items)
		next[i] = transition(it)
		return next, it, true
	}
	return items, snapshot, false
}

// Revert returns a copy of items with the item matching id restored to the
// captured snapshot. When no item matches (e.g. the collection was replaced
// wholesale while the request was in flight) items is returned unchanged.
func Revert[T any, ID comparable](items []T, id ID, idOf func(T) ID, snapshot T) []T {
	for i, it := range items {
		if idOf(it) != id {
			continue
		}
		next := make([]T, len(items))
		copy(next, items)
		next[i] = snapshot
		return next
	}
	return items
}
