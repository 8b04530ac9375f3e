package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/advisor"
)

// AllocationMarkdown renders the allocation recommendation.
func AllocationMarkdown(res *advisor.AllocationResult) string {
	var b strings.Builder
	req := res.Request

	fmt.Fprint(&b, "# Portfolio Allocation Recommendation\n\n")
	fmt.Fprintf(&b, "- Age: %d years old\n", req.Age)
	fmt.Fprintf(&b, "- Risk Tolerance: %s\n", req.RiskTolerance)
	fmt.Fprintf(&b, "- Total Investment: %s\n\n", usd(req.TotalAmount))

	fmt.Fprint(&b, "## Recommended Allocation\n\n")
	fmt.Fprintln(&b, "| Asset Class | Share | Amount |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	fmt.Fprintf(&b, "| Stocks/Equities | %d%% | %s |\n", res.StockPct, usd(res.StockAmount))
	fmt.Fprintf(&b, "| Bonds/Fixed Income | %d%% | %s |\n\n", res.BondPct, usd(res.BondAmount))

	fmt.Fprint(&b, "## Suggested Breakdown\n\n")
	fmt.Fprint(&b, "Stocks portion:\n\n")
	fmt.Fprintf(&b, "- 70%% Diversified Index Funds: %s\n", usd(res.IndexFunds))
	fmt.Fprintf(&b, "- 20%% International Stocks: %s\n", usd(res.International))
	fmt.Fprintf(&b, "- 10%% Individual Stocks: %s\n\n", usd(res.Individual))
	fmt.Fprint(&b, "Bonds portion:\n\n")
	fmt.Fprintf(&b, "- 60%% Government Bonds: %s\n", usd(res.GovernmentBonds))
	fmt.Fprintf(&b, "- 40%% Corporate Bonds: %s\n\n", usd(res.CorporateBonds))

	fmt.Fprint(&b, "Note: this is a general guideline; actual allocation should be adjusted to individual circumstances.\n")
	return b.String()
}
