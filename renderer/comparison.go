package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/advisor"
)

// ComparisonMarkdown renders the side-by-side investment comparison.
func ComparisonMarkdown(res *advisor.ComparisonResult) string {
	var b strings.Builder
	req := res.Request

	fmt.Fprint(&b, "# Investment Comparison Analysis\n\n")
	fmt.Fprintf(&b, "- Initial Investment: %s\n", usd(req.InvestmentAmount))
	fmt.Fprintf(&b, "- Time Horizon: %d years\n\n", req.TimeHorizonYears)

	optionMarkdown(&b, "Option A", res.A)
	optionMarkdown(&b, "Option B", res.B)

	fmt.Fprint(&b, "## Comparison\n\n")
	fmt.Fprintf(&b, "%s will be %s higher than %s.\n\n",
		res.Winner.Option.Name, usd(res.Difference), res.RunnerUp.Option.Name)

	if rec := res.Recommended(); rec != nil {
		fmt.Fprintf(&b, "**Recommendation:** %s offers better risk-adjusted returns.\n\n", rec.Option.Name)
	} else {
		fmt.Fprint(&b, "**Recommendation:** Both options are comparable; choose based on your risk tolerance.\n\n")
	}

	fmt.Fprint(&b, "Note: past performance doesn't guarantee future results. Consider diversification.\n")
	return b.String()
}

func optionMarkdown(b *strings.Builder, title string, o advisor.OptionOutcome) {
	fmt.Fprintf(b, "## %s: %s\n\n", title, o.Option.Name)
	fmt.Fprintln(b, "| | |")
	fmt.Fprintln(b, "|:---|---:|")
	fmt.Fprintf(b, "| Expected Return | %s annually |\n", o.Option.ExpectedReturn)
	fmt.Fprintf(b, "| Risk Level | %s |\n", strings.ToUpper(o.Option.Risk.String()))
	fmt.Fprintf(b, "| Future Value | %s |\n", usd(o.FutureValue))
	fmt.Fprintf(b, "| Total Gain | %s |\n", usd(o.Gain))
	fmt.Fprintf(b, "| Risk-Adjusted Return Score | %.2f |\n\n", o.RiskAdjusted)
}
