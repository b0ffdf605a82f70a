// Package main is the entry point for the aisync CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/aisync/cmd/aisync/commands"
	"github.com/thoreinstein/aisync/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", exitErr.Suggestion)
	}
	os.Exit(errors.ExitCode(err))
}
