package app

// SessionReader exposes the ambient session identity set by the external
// OAuth login flow. This client only reads presence and signs out; it never
// runs the login flow itself.
type SessionReader interface {
	// UserID returns the signed-in user's ID and true, or false when no
	// session is present.
	UserID() (int64, bool)

	// SignOut discards the stored session credential.
	SignOut() error
}
