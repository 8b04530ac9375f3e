package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

type planCmd struct {
	file string
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "run a full financial plan from a client profile" }
func (*planCmd) Usage() string {
	return `fadv plan -f <profile.json>

  Reads a client profile document and runs the full advisory pass:
  portfolio allocation for the client's age and risk tolerance, growth
  projection to retirement age, and the retirement needs analysis.

Usage Example:
$ fadv plan -f sarah.json

`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "profile.json", "Path to the client profile JSON document.")
}

func (c *planCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open profile: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	profile, err := advisor.DecodeProfile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	allocation, err := advisor.Allocate(profile.AllocationRequest())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	growth, err := advisor.Project(profile.GrowthRequest())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	retirement, err := advisor.PlanRetirement(profile.RetirementRequest())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(fmt.Sprintf("# Financial Plan for %s\n\n", profile.Name) +
		renderer.AllocationMarkdown(allocation) + "\n" +
		renderer.GrowthMarkdown(growth) + "\n" +
		renderer.RetirementMarkdown(retirement))
	return subcommands.ExitSuccess
}
