package common

import (
	"strings"
	"testing"
)

func TestTruncateLines_KeepsShortTextIntact(t *testing.T) {
	out := TruncateLines("short text", 40, 2)
	if !strings.Contains(out, "short text") || strings.Contains(out, "...") {
		t.Fatalf("unexpected truncation: %q", out)
	}
}

func TestTruncateLines_CutsAndMarksLongText(t *testing.T) {
	long := strings.Repeat("word ", 60)
	out := TruncateLines(long, 20, 2)
	if len(strings.Split(out, "\n")) > 2 {
		t.Fatalf("too many lines: %q", out)
	}
	if !strings.HasSuffix(out, "...") {
		t.Fatalf("expected ellipsis marker: %q", out)
	}
}

func TestVisibleWidth_IgnoresStyling(t *testing.T) {
	styled := ErrorStyle.Render("abc")
	if VisibleWidth(styled) != 3 {
		t.Fatalf("expected width 3, got %d", VisibleWidth(styled))
	}
	if PlainText(styled) != "abc" {
		t.Fatalf("expected plain text abc, got %q", PlainText(styled))
	}
}
