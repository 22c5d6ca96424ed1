// Package main is the entry point for the trellis-skills CLI.
package main

import (
	"fmt"
	"os"

	"github.com/trellis-framework/skills/cmd/trellis-skills/commands"
	skillserrors "github.com/trellis-framework/skills/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var exitErr *skillserrors.ExitError
	if skillserrors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
	}
	os.Exit(skillserrors.ExitCode(err))
}
