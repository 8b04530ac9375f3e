package advisor

import "fmt"

// Calculator identifies one of the five calculators of the engine.
type Calculator int

const (
	PortfolioAllocation Calculator = iota
	CompoundGrowth
	StockEvaluation
	RetirementNeeds
	InvestmentComparison
)

func (c Calculator) String() string {
	switch c {
	case PortfolioAllocation:
		return "allocation"
	case CompoundGrowth:
		return "growth"
	case StockEvaluation:
		return "stock"
	case RetirementNeeds:
		return "retirement"
	case InvestmentComparison:
		return "comparison"
	default:
		return "unknown"
	}
}

// ParseCalculator parses a string into a Calculator.
func ParseCalculator(s string) (Calculator, error) {
	switch s {
	case "allocation":
		return PortfolioAllocation, nil
	case "growth":
		return CompoundGrowth, nil
	case "stock":
		return StockEvaluation, nil
	case "retirement":
		return RetirementNeeds, nil
	case "comparison":
		return InvestmentComparison, nil
	default:
		return 0, fmt.Errorf("%w: unknown calculator %q", ErrInvalidInput, s)
	}
}

// Request is the closed set of calculator requests. Each request type
// belongs to exactly one Calculator.
type Request interface {
	Calculator() Calculator
}

// Result is the closed set of calculator results.
type Result interface {
	Calculator() Calculator
}

func (AllocationRequest) Calculator() Calculator      { return PortfolioAllocation }
func (GrowthRequest) Calculator() Calculator          { return CompoundGrowth }
func (StockEvaluationRequest) Calculator() Calculator { return StockEvaluation }
func (RetirementRequest) Calculator() Calculator      { return RetirementNeeds }
func (ComparisonRequest) Calculator() Calculator      { return InvestmentComparison }

func (*AllocationResult) Calculator() Calculator      { return PortfolioAllocation }
func (*GrowthResult) Calculator() Calculator          { return CompoundGrowth }
func (*StockEvaluationResult) Calculator() Calculator { return StockEvaluation }
func (*RetirementResult) Calculator() Calculator      { return RetirementNeeds }
func (*ComparisonResult) Calculator() Calculator      { return InvestmentComparison }

// Compute dispatches a request to its calculator. The switch is
// exhaustive over the closed Request set.
func Compute(req Request) (Result, error) {
	switch r := req.(type) {
	case AllocationRequest:
		return Allocate(r)
	case GrowthRequest:
		return Project(r)
	case StockEvaluationRequest:
		return EvaluateStock(r)
	case RetirementRequest:
		return PlanRetirement(r)
	case ComparisonRequest:
		return Compare(r)
	default:
		return nil, fmt.Errorf("%w: unsupported request type %T", ErrInvalidInput, req)
	}
}
