// Package renderer turns calculator results into markdown reports.
//
// Rendering is strictly separated from computation: the advisor package
// produces unrounded numeric results, this package owns every rounding
// and formatting decision. Each report follows the same layout: a
// parameter echo block, a computed-results block, and, where the
// calculator produces one, a classification or recommendation block.
package renderer

import (
	"fmt"

	"github.com/etnz/advisor"
)

// Markdown renders any calculator result to its markdown report. The
// switch is exhaustive over the closed Result set.
func Markdown(res advisor.Result) string {
	switch r := res.(type) {
	case *advisor.AllocationResult:
		return AllocationMarkdown(r)
	case *advisor.GrowthResult:
		return GrowthMarkdown(r)
	case *advisor.StockEvaluationResult:
		return StockMarkdown(r)
	case *advisor.RetirementResult:
		return RetirementMarkdown(r)
	case *advisor.ComparisonResult:
		return ComparisonMarkdown(r)
	default:
		return fmt.Sprintf("no renderer for result type %T", res)
	}
}

// usd formats an unrounded amount for display.
func usd(v float64) string { return advisor.USD(v).String() }
