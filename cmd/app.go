// Package cmd implements the CLI application of the financial advisor.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands returns all subcommands. A main package registers them on a
// commander and executes the user-selected one.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&allocateCmd{},
		&growthCmd{},
		&stockCmd{},
		&retireCmd{},
		&compareCmd{},
		&planCmd{},
		&assistCmd{},
		&topicCmd{},
	}
}

// printMarkdown renders a markdown report to the terminal. If the
// terminal renderer cannot be built, the raw markdown is printed
// instead: the report must always reach the user.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
