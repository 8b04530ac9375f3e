package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/advisor"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func mustAllocate(t *testing.T, req advisor.AllocationRequest) *advisor.AllocationResult {
	t.Helper()
	res, err := advisor.Allocate(req)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}
	return res
}

func TestAllocationMarkdown(t *testing.T) {
	res := mustAllocate(t, advisor.AllocationRequest{Age: 35, RiskTolerance: advisor.Moderate, TotalAmount: 40000})
	md := AllocationMarkdown(res)

	for _, want := range []string{
		"# Portfolio Allocation Recommendation",
		"Age: 35 years old",
		"Risk Tolerance: moderate",
		"Total Investment: $40,000.00",
		"| Stocks/Equities | 65% | $26,000.00 |",
		"| Bonds/Fixed Income | 35% | $14,000.00 |",
		"70% Diversified Index Funds: $18,200.00",
		"60% Government Bonds: $8,400.00",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report does not contain %q:\n%s", want, md)
		}
	}
}

func TestGrowthMarkdown_ZeroRate(t *testing.T) {
	res, err := advisor.Project(advisor.GrowthRequest{Principal: 1000, AnnualRate: 0, Years: 10, MonthlyContribution: 100})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	md := GrowthMarkdown(res)
	for _, want := range []string{
		"# Investment Growth Projection",
		"| Future Value | $13,000.00 |",
		"| Total Amount Invested | $13,000.00 |",
		"| Return on Investment | 0.00% |",
		"| 10 | $13,000.00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report does not contain %q:\n%s", want, md)
		}
	}
}

func TestStockMarkdown(t *testing.T) {
	res, err := advisor.EvaluateStock(advisor.StockEvaluationRequest{
		Name: "TechCorp", CurrentPrice: 125, PERatio: 22, DividendYield: 2.5, RevenueGrowth: 18, DebtToEquity: 0.8,
	})
	if err != nil {
		t.Fatalf("EvaluateStock() error = %v", err)
	}
	md := StockMarkdown(res)
	for _, want := range []string{
		"# Stock Evaluation: TechCorp",
		"| P/E Ratio | 22.00 |",
		"○ P/E Ratio: FAIR (15-25)",
		"✓ Revenue Growth: GOOD (10-20%)",
		"## Overall Assessment: NEUTRAL",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report does not contain %q:\n%s", want, md)
		}
	}
}

func TestRetirementMarkdown_OnTrack(t *testing.T) {
	res, err := advisor.PlanRetirement(advisor.RetirementRequest{
		CurrentAge: 30, RetirementAge: 65, CurrentSavings: 2000000, DesiredAnnualIncome: 40000, ExpectedReturn: 7,
	})
	if err != nil {
		t.Fatalf("PlanRetirement() error = %v", err)
	}
	md := RetirementMarkdown(res)
	if !strings.Contains(md, "already on track") {
		t.Errorf("on-track report lacks the break-even message:\n%s", md)
	}
	if strings.Contains(md, "Monthly Savings Required") {
		t.Errorf("on-track report still asks for monthly savings:\n%s", md)
	}
}

func TestComparisonMarkdown_Comparable(t *testing.T) {
	res, err := advisor.Compare(advisor.ComparisonRequest{
		OptionA:          advisor.InvestmentOption{Name: "Fund A", ExpectedReturn: 6, Risk: advisor.MediumRisk},
		OptionB:          advisor.InvestmentOption{Name: "Fund B", ExpectedReturn: 6.5, Risk: advisor.MediumRisk},
		InvestmentAmount: 10000,
		TimeHorizonYears: 10,
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	md := ComparisonMarkdown(res)

	// Within the margin the recommendation must say comparable and never
	// name a single winner, even though B wins on raw value.
	if !strings.Contains(md, "Both options are comparable") {
		t.Errorf("comparable case does not say so:\n%s", md)
	}
	if strings.Contains(md, "offers better risk-adjusted returns") {
		t.Errorf("comparable case recommends a single option:\n%s", md)
	}
	if !strings.Contains(md, "Fund B will be") {
		t.Errorf("raw-value winner missing:\n%s", md)
	}
}

func TestMarkdown_Dispatch(t *testing.T) {
	res := mustAllocate(t, advisor.AllocationRequest{Age: 50, RiskTolerance: advisor.Conservative, TotalAmount: 1000})
	if got, want := Markdown(res), AllocationMarkdown(res); got != want {
		t.Error("Markdown() differs from AllocationMarkdown()")
	}
}

// TestReportsAreValidMarkdown parses every report and requires at least
// one top-level heading, so that glamour always has a document to style.
func TestReportsAreValidMarkdown(t *testing.T) {
	alloc := mustAllocate(t, advisor.AllocationRequest{Age: 35, RiskTolerance: advisor.Aggressive, TotalAmount: 50000})
	growth, err := advisor.Project(advisor.GrowthRequest{Principal: 10000, AnnualRate: 8, Years: 20, MonthlyContribution: 500})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	stock, err := advisor.EvaluateStock(advisor.StockEvaluationRequest{Name: "ACME", CurrentPrice: 85, PERatio: 28, DividendYield: 1.2, RevenueGrowth: 25, DebtToEquity: 0.4})
	if err != nil {
		t.Fatalf("EvaluateStock() error = %v", err)
	}
	retirement, err := advisor.PlanRetirement(advisor.RetirementRequest{CurrentAge: 35, RetirementAge: 65, CurrentSavings: 40000, DesiredAnnualIncome: 80000, ExpectedReturn: 8})
	if err != nil {
		t.Fatalf("PlanRetirement() error = %v", err)
	}
	comparison, err := advisor.Compare(advisor.ComparisonRequest{
		OptionA:          advisor.InvestmentOption{Name: "A", ExpectedReturn: 7, Risk: advisor.LowRisk},
		OptionB:          advisor.InvestmentOption{Name: "B", ExpectedReturn: 10, Risk: advisor.HighRisk},
		InvestmentAmount: 20000, TimeHorizonYears: 15,
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	for _, res := range []advisor.Result{alloc, growth, stock, retirement, comparison} {
		md := Markdown(res)
		doc := goldmark.DefaultParser().Parse(text.NewReader([]byte(md)))
		headings := 0
		ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
				headings++
			}
			return ast.WalkContinue, nil
		})
		if headings != 1 {
			t.Errorf("%s report has %d top-level headings, want 1", res.Calculator(), headings)
		}
	}
}
