package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/advisor"
)

// RetirementMarkdown renders the retirement planning analysis.
func RetirementMarkdown(res *advisor.RetirementResult) string {
	var b strings.Builder
	req := res.Request

	fmt.Fprint(&b, "# Retirement Planning Analysis\n\n")

	fmt.Fprint(&b, "## Your Profile\n\n")
	fmt.Fprintf(&b, "- Current Age: %d\n", req.CurrentAge)
	fmt.Fprintf(&b, "- Retirement Age: %d\n", req.RetirementAge)
	fmt.Fprintf(&b, "- Years Until Retirement: %d\n", res.YearsToRetirement)
	fmt.Fprintf(&b, "- Current Savings: %s\n", usd(req.CurrentSavings))
	fmt.Fprintf(&b, "- Expected Annual Return: %s\n\n", req.ExpectedReturn)

	fmt.Fprint(&b, "## Retirement Goals\n\n")
	fmt.Fprintf(&b, "- Desired Annual Income: %s\n", usd(req.DesiredAnnualIncome))
	fmt.Fprintf(&b, "- Estimated Retirement Duration: %d years (to age 90)\n\n", res.RetirementYears)

	fmt.Fprint(&b, "## Calculations\n\n")
	fmt.Fprintf(&b, "- Retirement Corpus Needed: %s (4%% withdrawal rule: 25x annual income)\n", usd(res.CorpusNeeded))
	fmt.Fprintf(&b, "- Future Value of Current Savings: %s (%s growing at %s for %d years)\n",
		usd(res.ProjectedSavings), usd(req.CurrentSavings), req.ExpectedReturn, res.YearsToRetirement)
	fmt.Fprintf(&b, "- Additional Savings Needed: %s\n\n", usd(res.AdditionalNeeded))

	if res.OnTrack() {
		fmt.Fprint(&b, "**You are already on track:** your current savings are projected to cover the corpus; no additional monthly saving is required.\n\n")
	} else {
		fmt.Fprintf(&b, "**Monthly Savings Required: %s**\n\n", usd(res.RequiredMonthlySaving))
		fmt.Fprintf(&b, "If you save %s per month for %d years at %s annual return, you will have %s at age %d, providing %s per year for %d years.\n\n",
			usd(res.RequiredMonthlySaving), res.YearsToRetirement, req.ExpectedReturn,
			usd(res.CorpusNeeded), req.RetirementAge, usd(req.DesiredAnnualIncome), res.RetirementYears)
	}

	fmt.Fprint(&b, "Note: this assumes constant returns and does not account for inflation. Consider consulting a financial advisor for personalized planning.\n")
	return b.String()
}
