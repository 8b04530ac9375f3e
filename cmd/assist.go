package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/advisor/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI advisor" }
func (*assistCmd) Usage() string {
	return `fadv assist [initial question]

  Start an interactive session with the AI financial advisor. The
  advisor delegates market research to an analyst and all computations
  to a quant, so every figure in its answers comes from the calculators
  rather than from the model.

Usage Example:
$ fadv assist "I'm 35 with $40,000 in savings, how should I invest?"

`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(), agent.NewQuant())
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
