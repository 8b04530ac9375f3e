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

type retireCmd struct {
	age      int
	retireAt int
	savings  float64
	income   float64
	ret      float64
}

func (*retireCmd) Name() string     { return "retire" }
func (*retireCmd) Synopsis() string { return "size the retirement corpus and required monthly saving" }
func (*retireCmd) Usage() string {
	return `fadv retire -age <current> -at <retirement> -savings <amount> -income <annual> -return <pct>

  Sizes the retirement corpus with the 4% withdrawal rule (25x the
  desired annual income, withdrawals to age 90) and computes the monthly
  saving required to close the gap.

Usage Example:
$ fadv retire -age 35 -at 65 -savings 40000 -income 80000 -return 8

`
}

func (c *retireCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.age, "age", 0, "Current age.")
	f.IntVar(&c.retireAt, "at", 65, "Target retirement age.")
	f.Float64Var(&c.savings, "savings", 0, "Current savings, in dollars.")
	f.Float64Var(&c.income, "income", 0, "Desired annual income in retirement, in dollars.")
	f.Float64Var(&c.ret, "return", 0, "Expected annual return, as a percentage.")
}

func (c *retireCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := advisor.PlanRetirement(advisor.RetirementRequest{
		CurrentAge:          c.age,
		RetirementAge:       c.retireAt,
		CurrentSavings:      c.savings,
		DesiredAnnualIncome: c.income,
		ExpectedReturn:      advisor.Percent(c.ret),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RetirementMarkdown(res))
	return subcommands.ExitSuccess
}
