package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown renders a markdown report to stdout, with terminal styling
// when stdout is a terminal, and as plain markdown otherwise (pipes,
// redirections).
func printMarkdown(markdown string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(markdown)
		return
	}
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		// Fall back to the raw markdown rather than losing the report.
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
