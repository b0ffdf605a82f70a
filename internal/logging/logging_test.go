package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("synced", "domain", "commands")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if parsed["msg"] != "synced" {
		t.Errorf("msg = %v, want synced", parsed["msg"])
	}
	if parsed["domain"] != "commands" {
		t.Errorf("domain = %v, want commands", parsed["domain"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: Format("unknown"),
		Output: &buf,
	})

	logger.Info("synced", "domain", "commands")

	output := buf.String()
	var parsed map[string]any
	if err := json.Unmarshal([]byte(output), &parsed); err == nil {
		t.Error("unknown format should default to text, not JSON")
	}
	for _, want := range []string{"INFO", "synced", "domain=commands"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestNew_JSONRedaction(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("server", "env", map[string]string{"GITHUB_TOKEN": "ghp_supersecret", "DEBUG": "1"})

	output := buf.String()
	if strings.Contains(output, "ghp_supersecret") {
		t.Errorf("env token leaked: %s", output)
	}
	if !strings.Contains(output, "****cret") {
		t.Errorf("expected masked env value: %s", output)
	}
	if !strings.Contains(output, `"DEBUG":"1"`) {
		t.Errorf("non-secret env value should be kept: %s", output)
	}
}

func TestNewDiscard_ProducesNoOutput(t *testing.T) {
	logger := NewDiscard()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger should not be enabled")
	}
	logger.Error("dropped")
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		level     slog.Level
		wantDebug bool
		wantWarn  bool
	}{
		{"trace shows everything", LevelTrace, true, true},
		{"info hides debug", slog.LevelInfo, false, true},
		{"error hides warn", slog.LevelError, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: tt.level, Output: &buf})

			logger.Debug("debug line")
			if got := strings.Contains(buf.String(), "debug line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}

			logger.Warn("warn line")
			if got := strings.Contains(buf.String(), "warn line"); got != tt.wantWarn {
				t.Errorf("warn logged = %v, want %v", got, tt.wantWarn)
			}
		})
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if !logger.Enabled(context.Background(), LevelTrace) {
		t.Error("ForTest logger should capture trace")
	}
	logger.Debug("visible with -v")
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"json": FormatJSON,
		"JSON": FormatJSON,
		"text": FormatText,
		"":     FormatText,
		"xml":  FormatText,
	}
	for in, want := range tests {
		if got := ParseFormat(in); got != want {
			t.Errorf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext without logger should return slog.Default")
	}

	logger := NewDiscard()
	ctx := NewContext(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Error("FromContext should return the stored logger")
	}
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	n, err := tw.Write([]byte("test message\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len("test message\n") {
		t.Errorf("Write returned %d, want %d", n, len("test message\n"))
	}
}
