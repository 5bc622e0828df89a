package domain

import "time"

// Story is a single community story from the Synthetica feed.
type Story struct {
	ID        int64
	Title     string
	Detail    string
	Author    string // Display name; "You" for own stories without a server author
	CreatedAt time.Time
	Comments  []Comment
	Likes     []Like
	Liked     bool // True if the current user's like is in Likes
}

// LikeCount is the displayed like count. It is always the size of the Like
// collection, including a speculative placeholder entry while a like request
// is in flight.
func (s Story) LikeCount() int { return len(s.Likes) }

// Comment is a reader remark attached to a story. Read-only in this client.
type Comment struct {
	ID     int64
	Author string
	Text   string
}

// Like marks that one user liked a story. At most one per (story, user).
type Like struct {
	UserID int64
}
