package common

import (
	"net/url"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// OpenURL opens the URL in the system browser. Non-http(s) and hostless
// URLs are silently dropped.
func OpenURL(rawURL string) tea.Cmd {
	return func() tea.Msg {
		if !IsSafeExternalURL(rawURL) {
			return nil
		}
		_ = exec.Command("open", rawURL).Start()
		return nil
	}
}

// IsSafeExternalURL reports whether the URL is an absolute http(s) URL.
func IsSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
