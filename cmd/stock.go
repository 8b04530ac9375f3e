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

type stockCmd struct {
	name  string
	price float64
	pe    float64
	yield float64
	rev   float64
	debt  float64
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "evaluate a stock's fundamental metrics" }
func (*stockCmd) Usage() string {
	return `fadv stock -name <name> -price <p> -pe <ratio> -yield <pct> -growth <pct> -debt <ratio>

  Classifies a stock's P/E ratio, dividend yield, revenue growth and
  debt-to-equity into labeled signals and derives an overall verdict.

Usage Example:
$ fadv stock -name TechCorp -price 125 -pe 22 -yield 2.5 -growth 18 -debt 0.8

`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Company name or ticker.")
	f.Float64Var(&c.price, "price", 0, "Current share price, in dollars.")
	f.Float64Var(&c.pe, "pe", 0, "Price-to-earnings ratio.")
	f.Float64Var(&c.yield, "yield", 0, "Dividend yield, as a percentage.")
	f.Float64Var(&c.rev, "growth", 0, "Revenue growth, as a percentage.")
	f.Float64Var(&c.debt, "debt", 0, "Debt-to-equity ratio.")
}

func (c *stockCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := advisor.EvaluateStock(advisor.StockEvaluationRequest{
		Name:          c.name,
		CurrentPrice:  c.price,
		PERatio:       c.pe,
		DividendYield: advisor.Percent(c.yield),
		RevenueGrowth: advisor.Percent(c.rev),
		DebtToEquity:  c.debt,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StockMarkdown(res))
	return subcommands.ExitSuccess
}
