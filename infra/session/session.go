// Package session reads and clears the user_id session credential written by
// the external Google OAuth login flow. The client never runs the login flow
// itself; it only attaches the credential to API requests and reports
// presence or absence to the UI.
package session

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FileStore keeps the user_id cookie value in a file on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a session store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// UserID returns the stored user ID and true, or false when no session
// credential is present.
func (f *FileStore) UserID() (int64, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0, false
	}
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// CookieValue returns the raw credential for the user_id request cookie,
// or "" when absent.
func (f *FileStore) CookieValue() string {
	id, ok := f.UserID()
	if !ok {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// SignOut discards the stored credential. A missing file is already
// signed out.
func (f *FileStore) SignOut() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", f.path, err)
	}
	return nil
}
