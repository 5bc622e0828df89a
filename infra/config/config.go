package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application-level configuration.
type Config struct {
	APIBaseURL  string // Synthetica API server, e.g. "http://localhost:8080"
	SessionPath string // Path to the file holding the user_id session cookie
	UIStatePath string // Path to persisted UI state (last page, last tabs)
}

// Load reads configuration from environment variables.
//
//	SYNTHTERM_API      — API base URL (default: "http://localhost:8080")
//	SYNTHTERM_SESSION  — Session cookie file (default: ~/.config/synthterm/session)
//	SYNTHTERM_STATE    — UI state file (default: ~/.config/synthterm/ui_state.json)
func Load() (Config, error) {
	api := os.Getenv("SYNTHTERM_API")
	if api == "" {
		api = "http://localhost:8080"
	}
	parsed, err := url.Parse(api)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid SYNTHTERM_API: must be an absolute URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid SYNTHTERM_API: scheme must be http or https")
	}
	api = strings.TrimRight(parsed.String(), "/")

	sessionPath := os.Getenv("SYNTHTERM_SESSION")
	statePath := os.Getenv("SYNTHTERM_STATE")
	if sessionPath == "" || statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		if sessionPath == "" {
			sessionPath = filepath.Join(home, ".config", "synthterm", "session")
		}
		if statePath == "" {
			statePath = filepath.Join(home, ".config", "synthterm", "ui_state.json")
		}
	}

	return Config{
		APIBaseURL:  api,
		SessionPath: sessionPath,
		UIStatePath: statePath,
	}, nil
}

// UIState is the persisted slice of UI preferences, restored on startup.
type UIState struct {
	Page      string `json:"page,omitempty"`
	PickupTab string `json:"pickup_tab,omitempty"`
	StoryTab  string `json:"story_tab,omitempty"`
}

// LoadUIState reads persisted UI state. A missing or corrupt file yields the
// zero state without error; preferences are not worth failing startup over.
func LoadUIState(path string) (UIState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return UIState{}, nil
		}
		return UIState{}, fmt.Errorf("reading ui state: %w", err)
	}
	var st UIState
	if err := json.Unmarshal(data, &st); err != nil {
		return UIState{}, nil
	}
	return st, nil
}

// SaveUIState writes UI state, creating the parent directory if needed.
func SaveUIState(path string, st UIState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding ui state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing ui state: %w", err)
	}
	return nil
}
