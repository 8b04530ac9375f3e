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

type compareCmd struct {
	aName, aRisk string
	aReturn      float64
	bName, bRisk string
	bReturn      float64
	amount       float64
	years        int
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare two investment options side by side" }
func (*compareCmd) Usage() string {
	return `fadv compare -a <name> -a-return <pct> -a-risk <tier> -b <name> -b-return <pct> -b-risk <tier> -amount <n> -years <n>

  Compares two investment options on future value and risk-adjusted
  return. An option is recommended only when its risk-adjusted score
  beats the other's by more than 20%; otherwise the options are declared
  comparable.

Usage Example:
$ fadv compare -a "S&P 500 Index" -a-return 7 -a-risk low -b "Tech ETF" -b-return 10 -b-risk high -amount 20000 -years 15

`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.aName, "a", "", "Name of option A.")
	f.Float64Var(&c.aReturn, "a-return", 0, "Expected annual return of option A, as a percentage.")
	f.StringVar(&c.aRisk, "a-risk", "medium", "Risk tier of option A: low, medium or high.")
	f.StringVar(&c.bName, "b", "", "Name of option B.")
	f.Float64Var(&c.bReturn, "b-return", 0, "Expected annual return of option B, as a percentage.")
	f.StringVar(&c.bRisk, "b-risk", "medium", "Risk tier of option B: low, medium or high.")
	f.Float64Var(&c.amount, "amount", 0, "Amount invested in either option, in dollars.")
	f.IntVar(&c.years, "years", 0, "Investment horizon, in years.")
}

func (c *compareCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := advisor.Compare(advisor.ComparisonRequest{
		OptionA: advisor.InvestmentOption{
			Name:           c.aName,
			ExpectedReturn: advisor.Percent(c.aReturn),
			Risk:           advisor.ParseRiskTier(c.aRisk),
		},
		OptionB: advisor.InvestmentOption{
			Name:           c.bName,
			ExpectedReturn: advisor.Percent(c.bReturn),
			Risk:           advisor.ParseRiskTier(c.bRisk),
		},
		InvestmentAmount: c.amount,
		TimeHorizonYears: c.years,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ComparisonMarkdown(res))
	return subcommands.ExitSuccess
}
