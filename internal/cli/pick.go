package cli

import (
	"github.com/thoreinstein/aisync/internal/cli/prompt"
	"github.com/thoreinstein/aisync/internal/errors"
	"github.com/thoreinstein/aisync/internal/logging"
	"github.com/thoreinstein/aisync/internal/platform"
)

// ErrPlatformRequired is returned when a platform flag is missing and no
// terminal is available to ask.
var ErrPlatformRequired = errors.New("platform not specified")

// DefaultPicker returns the fuzzy finder when stdin and stdout are both
// terminals, the numbered prompt when only stdin is, and nil otherwise.
func DefaultPicker() prompt.Picker {
	switch {
	case logging.IsInteractive():
		return prompt.Fuzzy{}
	case logging.IsStdinTTY():
		return prompt.NewSelector()
	default:
		return nil
	}
}

// PickPlatform asks the user to choose among agents, leaving out exclude.
// The chosen platform's name is returned.
func PickPlatform(picker prompt.Picker, title string, agents []platform.Agent, exclude string) (string, error) {
	if picker == nil {
		return "", errors.Wrapf(ErrPlatformRequired, "%s: pass --from and --to when not running in a terminal", title)
	}

	results := platform.DetectAll(agents)
	choices := make([]prompt.Choice, 0, len(results))
	for _, res := range results {
		if res.Name == exclude {
			continue
		}
		label := res.DisplayName + " (" + res.Root + ")"
		if !res.Installed() {
			label += " [not installed]"
		}
		choices = append(choices, prompt.Choice{Value: res.Name, Label: label})
	}

	choice, err := picker.Pick(title, choices)
	if err != nil {
		return "", err
	}
	return choice.Value, nil
}
