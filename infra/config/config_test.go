package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ParsesEnvAndDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SYNTHTERM_API", "https://synthetica.example/")
	t.Setenv("SYNTHTERM_SESSION", filepath.Join(dir, "session"))
	t.Setenv("SYNTHTERM_STATE", filepath.Join(dir, "ui_state.json"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.APIBaseURL != "https://synthetica.example" {
		t.Fatalf("API base must be normalized: %q", cfg.APIBaseURL)
	}
	if cfg.SessionPath != filepath.Join(dir, "session") {
		t.Fatalf("unexpected session path: %q", cfg.SessionPath)
	}
}

func TestLoad_DefaultsToLocalhost(t *testing.T) {
	t.Setenv("SYNTHTERM_API", "")
	t.Setenv("SYNTHTERM_SESSION", filepath.Join(t.TempDir(), "session"))
	t.Setenv("SYNTHTERM_STATE", filepath.Join(t.TempDir(), "state.json"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected default API base: %q", cfg.APIBaseURL)
	}
}

func TestLoad_RejectsNonHTTPSchemes(t *testing.T) {
	t.Setenv("SYNTHTERM_API", "ftp://files.example")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-http scheme")
	}
}

func TestUIState_LoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ui_state.json")

	st, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("missing state should not error: %v", err)
	}
	if st != (UIState{}) {
		t.Fatalf("expected empty state for missing file")
	}

	want := UIState{Page: "story", PickupTab: "creators", StoryTab: "everyone"}
	if err := SaveUIState(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("load after save failed: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected loaded state got=%#v want=%#v", got, want)
	}

	if err := os.WriteFile(path, []byte("not-json"), 0o600); err != nil {
		t.Fatalf("write corrupt state failed: %v", err)
	}
	got, err = LoadUIState(path)
	if err != nil || got != (UIState{}) {
		t.Fatalf("corrupt state should yield zero state, got %#v err=%v", got, err)
	}
}
