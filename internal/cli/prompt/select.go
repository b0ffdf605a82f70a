// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/aisync/internal/errors"
)

// Sentinel errors for selection.
var (
	ErrNoChoices          = errors.New("nothing to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Choice is one selectable item.
type Choice struct {
	// Value is returned when the choice is selected.
	Value string

	// Label is what the user sees.
	Label string
}

// Picker chooses one of choices.
type Picker interface {
	Pick(title string, choices []Choice) (Choice, error)
}

// Selector prompts with a numbered list. It needs only a readable input,
// so it works when stdout is piped.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a Selector reading stdin and prompting on stderr.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stderr,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// Pick prompts the user to choose from choices.
//
// Returns:
//   - ErrNoChoices if the list is empty
//   - The only choice without prompting when there is one
//   - ErrInvalidSelection if the input is not a number in range
//   - ErrSelectionCancelled on EOF (e.g., Ctrl+D)
func (s *Selector) Pick(title string, choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}
	if len(choices) == 1 {
		return choices[0], nil
	}

	fmt.Fprintf(s.writer, "%s:\n", title)
	for i, c := range choices {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, c.Label)
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	input, err := bufio.NewReader(s.reader).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Choice{}, ErrSelectionCancelled
		}
		return Choice{}, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return choices[0], nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return Choice{}, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if selection < 1 || selection > len(choices) {
		return Choice{}, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(choices))
	}
	return choices[selection-1], nil
}

// Fuzzy is a full-screen fuzzy finder. It needs a terminal on both stdin
// and stdout.
type Fuzzy struct{}

// Pick opens the finder over choices.
func (Fuzzy) Pick(title string, choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}

	idx, err := fuzzyfinder.Find(
		choices,
		func(i int) string { return choices[i].Label },
		fuzzyfinder.WithHeader(title),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return Choice{}, ErrSelectionCancelled
		}
		return Choice{}, errors.Wrap(err, "fuzzy selection failed")
	}
	return choices[idx], nil
}
