package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/advisor"
)

// StockMarkdown renders the stock metric evaluation.
func StockMarkdown(res *advisor.StockEvaluationResult) string {
	var b strings.Builder
	req := res.Request

	fmt.Fprintf(&b, "# Stock Evaluation: %s\n\n", req.Name)

	fmt.Fprint(&b, "## Current Metrics\n\n")
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Price | %s |\n", usd(req.CurrentPrice))
	fmt.Fprintf(&b, "| P/E Ratio | %.2f |\n", req.PERatio)
	fmt.Fprintf(&b, "| Dividend Yield | %s |\n", req.DividendYield)
	fmt.Fprintf(&b, "| Revenue Growth | %s |\n", req.RevenueGrowth)
	fmt.Fprintf(&b, "| Debt-to-Equity | %.2f |\n\n", req.DebtToEquity)

	fmt.Fprint(&b, "## Analysis\n\n")
	for _, s := range res.Signals {
		fmt.Fprintf(&b, "- %s %s: %s - %s\n", s.Label.Mark(), s.Metric, s.Assessment, s.Note)
	}

	fmt.Fprintf(&b, "\n## Overall Assessment: %s\n\n%s.\n\n", res.Verdict, res.Verdict.Summary())
	fmt.Fprint(&b, "Important: this is a simplified analysis based on limited metrics. Always conduct thorough research including industry comparison, competitive analysis, management quality and market conditions before investing.\n")
	return b.String()
}
