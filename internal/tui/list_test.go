package tui

import (
	"strings"
	"testing"
	"time"

	"prosegate/internal/history"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a longer label than fits", 10, "a longe..."},
		{"中文标签也要按符文截断", 6, "中文标..."},
		{"abc", 0, ""},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		if got := truncateStr(tt.in, tt.n); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m"},
		{now.Add(-3 * time.Hour), "3h"},
		{now.Add(-2 * 24 * time.Hour), "2d"},
	}
	for _, tt := range tests {
		if got := relativeTime(tt.t); got != tt.want {
			t.Errorf("relativeTime(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestRenderListEmpty(t *testing.T) {
	out := renderList(nil, 0, 10, 40)
	if !strings.Contains(out, "No runs recorded") {
		t.Errorf("expected empty-state message, got %q", out)
	}
}

func TestRenderListItemVerdicts(t *testing.T) {
	pass := history.Run{
		Label: "good draft", Passed: true,
		Originality: 90, AITone: 10, Humanity: 85,
		EvaluatedAt: time.Now(),
	}
	fail := pass
	fail.Label = "bad draft"
	fail.Passed = false

	if out := renderListItem(pass, false, 40); !strings.Contains(out, "PASS") {
		t.Errorf("expected PASS marker, got %q", out)
	}
	if out := renderListItem(fail, false, 40); !strings.Contains(out, "FAIL") {
		t.Errorf("expected FAIL marker, got %q", out)
	}
	if out := renderListItem(pass, true, 40); !strings.Contains(out, "> ") {
		t.Errorf("expected selection marker, got %q", out)
	}
}

func TestRenderListScrollsToCursor(t *testing.T) {
	runs := make([]history.Run, 20)
	for i := range runs {
		runs[i] = history.Run{
			Label:       string(rune('a' + i)),
			Passed:      true,
			EvaluatedAt: time.Now(),
		}
	}
	// Height fits 3 items; cursor at the end must still be visible.
	out := renderList(runs, 19, 9, 40)
	if !strings.Contains(out, "> t") {
		t.Errorf("expected cursor item visible, got %q", out)
	}
	if strings.Contains(out, "> a") {
		t.Errorf("first item should have scrolled out, got %q", out)
	}
}
