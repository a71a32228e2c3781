package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrBadLevel) {
				t.Errorf("ParseLevel(%q) err = %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown", "body", "Mars")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "body=Mars") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.log")
	l, c, err := Open(path, "info")
	if err != nil {
		t.Fatal(err)
	}
	l.Info("tick")
	c.Close()

	data, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(data), "msg=tick") {
		t.Errorf("log file = %q, %v", data, err)
	}
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Error("expected default logger")
	}
	l, _ := New(&bytes.Buffer{}, "info")
	if FromContext(NewContext(context.Background(), l)) != l {
		t.Error("logger not carried by context")
	}
}
