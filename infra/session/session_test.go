package session

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSession(t *testing.T, content string) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing session file: %v", err)
	}
	return NewFileStore(path)
}

func TestUserID_ParsesStoredID(t *testing.T) {
	s := writeSession(t, "108977423\n")
	id, ok := s.UserID()
	if !ok || id != 108977423 {
		t.Fatalf("unexpected session: id=%d ok=%v", id, ok)
	}
	if s.CookieValue() != "108977423" {
		t.Fatalf("unexpected cookie value: %q", s.CookieValue())
	}
}

func TestUserID_AbsentOrMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "whitespace", content: "  \n"},
		{name: "non-numeric", content: "abc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := writeSession(t, tc.content)
			if _, ok := s.UserID(); ok {
				t.Fatalf("expected no session for %q", tc.content)
			}
			if s.CookieValue() != "" {
				t.Fatalf("expected empty cookie value")
			}
		})
	}

	missing := NewFileStore(filepath.Join(t.TempDir(), "nope"))
	if _, ok := missing.UserID(); ok {
		t.Fatalf("expected no session for missing file")
	}
}

func TestSignOut_RemovesCredential(t *testing.T) {
	s := writeSession(t, "42")
	if err := s.SignOut(); err != nil {
		t.Fatalf("sign out failed: %v", err)
	}
	if _, ok := s.UserID(); ok {
		t.Fatalf("session still present after sign out")
	}
	// Signing out twice is fine.
	if err := s.SignOut(); err != nil {
		t.Fatalf("second sign out failed: %v", err)
	}
}
