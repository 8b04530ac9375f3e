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

type growthCmd struct {
	principal float64
	rate      float64
	years     int
	monthly   float64
}

func (*growthCmd) Name() string     { return "growth" }
func (*growthCmd) Synopsis() string { return "project compound growth of an investment" }
func (*growthCmd) Usage() string {
	return `fadv growth -principal <amount> -rate <pct> -years <n> [-monthly <amount>]

  Projects the future value of an initial investment with monthly
  compounding and optional monthly contributions, including a
  year-by-year breakdown.

Usage Example:
$ fadv growth -principal 10000 -rate 8 -years 20 -monthly 500

`
}

func (c *growthCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 0, "Initial investment, in dollars.")
	f.Float64Var(&c.rate, "rate", 0, "Annual return rate, as a percentage.")
	f.IntVar(&c.years, "years", 0, "Investment horizon, in years.")
	f.Float64Var(&c.monthly, "monthly", 0, "Monthly contribution, in dollars.")
}

func (c *growthCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := advisor.Project(advisor.GrowthRequest{
		Principal:           c.principal,
		AnnualRate:          advisor.Percent(c.rate),
		Years:               c.years,
		MonthlyContribution: c.monthly,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.GrowthMarkdown(res))
	return subcommands.ExitSuccess
}
