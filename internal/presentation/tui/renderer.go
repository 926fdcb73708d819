package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	// Auto style detects light/dark terminal backgrounds.
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// IsTerminal reports whether stdout is a TTY; plain output is used
// otherwise so pipes stay clean.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
