// Package console provides terminal interaction helpers for the CLI.
package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsInteractive returns true if stdin is attached to a terminal.
// It is false for piped or redirected input, in which case the exit pause
// is skipped so scripted invocations do not hang.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// WaitForKeypress prompts on w and blocks until a single key is pressed.
// The terminal is switched to raw mode so no Enter is required, then
// restored. When stdin is not a terminal the call returns immediately.
func WaitForKeypress(w io.Writer) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	fmt.Fprintln(w, "Press any key to exit...")

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	if _, err := os.Stdin.Read(buf); err != nil {
		return fmt.Errorf("failed to read keypress: %w", err)
	}
	return nil
}
