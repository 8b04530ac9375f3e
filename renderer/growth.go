package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/advisor"
)

// GrowthMarkdown renders the investment growth projection.
func GrowthMarkdown(res *advisor.GrowthResult) string {
	var b strings.Builder
	req := res.Request

	fmt.Fprint(&b, "# Investment Growth Projection\n\n")
	fmt.Fprintf(&b, "- Initial Investment: %s\n", usd(req.Principal))
	fmt.Fprintf(&b, "- Monthly Contribution: %s\n", usd(req.MonthlyContribution))
	fmt.Fprintf(&b, "- Annual Return Rate: %s\n", req.AnnualRate)
	fmt.Fprintf(&b, "- Time Period: %d years\n\n", req.Years)

	fmt.Fprint(&b, "## Results\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Amount Invested | %s |\n", usd(res.TotalInvested))
	fmt.Fprintf(&b, "| Future Value | %s |\n", usd(res.FutureValue))
	fmt.Fprintf(&b, "| Total Investment Gains | %s |\n", usd(res.TotalGain))
	fmt.Fprintf(&b, "| Return on Investment | %s |\n\n", res.ROI)

	fmt.Fprint(&b, "## Year-by-Year Breakdown\n\n")
	fmt.Fprintln(&b, "| Year | Value |")
	fmt.Fprintln(&b, "|---:|---:|")
	for _, p := range res.Series {
		fmt.Fprintf(&b, "| %d | %s |\n", p.Year, usd(p.Value))
	}
	return b.String()
}
