package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q)=%v want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewStderrLogger(t *testing.T) {
	log := New("debug", "")
	if log == nil {
		t.Fatalf("New returned nil")
	}
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("debug level not enabled")
	}
}

func TestNewFileLogger(t *testing.T) {
	log := New("warn", t.TempDir())
	if log == nil {
		t.Fatalf("New returned nil")
	}
	if log.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info should be disabled at warn level")
	}
}
