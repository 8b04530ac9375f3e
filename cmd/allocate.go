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

type allocateCmd struct {
	age    int
	risk   string
	amount float64
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "recommend a stock/bond allocation for age and risk" }
func (*allocateCmd) Usage() string {
	return `fadv allocate -age <age> -risk <tolerance> -amount <total>

  Recommends a portfolio allocation from the 100-minus-age rule adjusted
  for risk tolerance (conservative, moderate, aggressive), with fixed
  sub-splits for the stock and bond buckets.

Usage Example:
$ fadv allocate -age 35 -risk moderate -amount 40000

`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.age, "age", 0, "The investor's age, between 0 and 100.")
	f.StringVar(&c.risk, "risk", "moderate", "Risk tolerance: conservative, moderate or aggressive.")
	f.Float64Var(&c.amount, "amount", 0, "Total amount to invest, in dollars.")
}

func (c *allocateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := advisor.Allocate(advisor.AllocationRequest{
		Age:           c.age,
		RiskTolerance: advisor.ParseRiskTolerance(c.risk),
		TotalAmount:   c.amount,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AllocationMarkdown(res))
	return subcommands.ExitSuccess
}
