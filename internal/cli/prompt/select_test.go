package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thoreinstein/aisync/internal/errors"
)

var platforms = []Choice{
	{Value: "claude", Label: "Claude Code"},
	{Value: "codex", Label: "Codex CLI"},
	{Value: "copilot", Label: "GitHub Copilot CLI"},
}

func TestSelector_Pick_Empty(t *testing.T) {
	t.Parallel()

	s := NewSelectorWithIO(strings.NewReader(""), &bytes.Buffer{})
	if _, err := s.Pick("Source", nil); !errors.Is(err, ErrNoChoices) {
		t.Errorf("Pick() error = %v, want ErrNoChoices", err)
	}
}

func TestSelector_Pick_SingleChoice(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	got, err := s.Pick("Source", platforms[:1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != "claude" {
		t.Errorf("Pick() = %q, want claude", got.Value)
	}
	if buf.Len() > 0 {
		t.Errorf("expected no prompt for a single choice, got: %s", buf.String())
	}
}

func TestSelector_Pick(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "explicit first", input: "1\n", want: "claude"},
		{name: "explicit third", input: "3\n", want: "copilot"},
		{name: "default on empty", input: "\n", want: "claude"},
		{name: "whitespace trimmed", input: "  2  \n", want: "codex"},
		{name: "not a number", input: "abc\n", wantErr: ErrInvalidSelection},
		{name: "out of range", input: "4\n", wantErr: ErrInvalidSelection},
		{name: "zero", input: "0\n", wantErr: ErrInvalidSelection},
		{name: "eof", input: "", wantErr: ErrSelectionCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &buf)

			got, err := s.Pick("Source platform", platforms)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Pick() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Value != tt.want {
				t.Errorf("Pick() = %q, want %q", got.Value, tt.want)
			}
			if !strings.Contains(buf.String(), "[3] GitHub Copilot CLI") {
				t.Errorf("prompt missing choices: %s", buf.String())
			}
		})
	}
}

func TestFuzzy_Pick_Empty(t *testing.T) {
	t.Parallel()

	if _, err := (Fuzzy{}).Pick("Source", nil); !errors.Is(err, ErrNoChoices) {
		t.Errorf("Pick() error = %v, want ErrNoChoices", err)
	}
}
