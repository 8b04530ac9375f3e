package advisor

import "fmt"

// riskFreeRate is the assumed risk-free return subtracted before risk
// adjustment.
const riskFreeRate = 2.0

// recommendationMargin is the relative margin one option's risk-adjusted
// score must exceed the other's by before it is recommended outright.
// Within the margin the options are declared comparable: a hysteresis
// against near-tie recommendations.
const recommendationMargin = 1.2

// InvestmentOption is one side of a comparison.
type InvestmentOption struct {
	Name           string
	ExpectedReturn Percent
	Risk           RiskTier
}

// ComparisonRequest compares two options over a shared amount and
// horizon.
type ComparisonRequest struct {
	OptionA InvestmentOption
	OptionB InvestmentOption

	InvestmentAmount float64
	TimeHorizonYears int
}

// OptionOutcome is the computed outcome for one option.
type OptionOutcome struct {
	Option      InvestmentOption
	FutureValue float64
	Gain        float64
	// RiskAdjusted is (return% - risk-free%) / risk score, a relative
	// ranking metric only.
	RiskAdjusted float64
}

// Recommendation is the comparator's conclusion on risk-adjusted grounds.
type Recommendation int

const (
	// Comparable means neither option clears the margin; the choice
	// defers to the caller's risk preference.
	Comparable Recommendation = iota
	PreferA
	PreferB
)

// ComparisonResult holds both outcomes, the raw future-value winner and
// the risk-adjusted recommendation. Winner and Recommendation are
// independent: an option can win on raw value while the recommendation
// stays Comparable.
type ComparisonResult struct {
	Request ComparisonRequest

	A OptionOutcome
	B OptionOutcome

	// Winner is the option with the strictly larger future value; on an
	// exact tie it designates option B.
	Winner     *OptionOutcome
	RunnerUp   *OptionOutcome
	Difference float64

	Recommendation Recommendation
}

// Recommended returns the recommended outcome, or nil when the options
// are comparable.
func (r *ComparisonResult) Recommended() *OptionOutcome {
	switch r.Recommendation {
	case PreferA:
		return &r.A
	case PreferB:
		return &r.B
	default:
		return nil
	}
}

// Compare computes each option's future value with the lump-sum formula
// at its own rate and ranks them on risk-adjusted score.
func Compare(req ComparisonRequest) (*ComparisonResult, error) {
	if req.TimeHorizonYears <= 0 {
		return nil, fmt.Errorf("%w: time horizon %d must be positive", ErrInvalidInput, req.TimeHorizonYears)
	}
	if req.InvestmentAmount < 0 {
		return nil, fmt.Errorf("%w: negative investment amount %g", ErrInvalidInput, req.InvestmentAmount)
	}
	if req.OptionA.Name == "" || req.OptionB.Name == "" {
		return nil, fmt.Errorf("%w: both options must be named", ErrInvalidInput)
	}
	for _, opt := range []InvestmentOption{req.OptionA, req.OptionB} {
		if err := checkRate(opt.ExpectedReturn); err != nil {
			return nil, fmt.Errorf("option %q: %w", opt.Name, err)
		}
	}

	a, err := outcome(req.OptionA, req.InvestmentAmount, req.TimeHorizonYears)
	if err != nil {
		return nil, err
	}
	b, err := outcome(req.OptionB, req.InvestmentAmount, req.TimeHorizonYears)
	if err != nil {
		return nil, err
	}

	result := &ComparisonResult{Request: req, A: a, B: b}
	if a.FutureValue > b.FutureValue {
		result.Winner, result.RunnerUp = &result.A, &result.B
	} else {
		result.Winner, result.RunnerUp = &result.B, &result.A
	}
	result.Difference = result.Winner.FutureValue - result.RunnerUp.FutureValue

	switch {
	case a.RiskAdjusted > b.RiskAdjusted*recommendationMargin:
		result.Recommendation = PreferA
	case b.RiskAdjusted > a.RiskAdjusted*recommendationMargin:
		result.Recommendation = PreferB
	default:
		result.Recommendation = Comparable
	}
	return result, nil
}

func outcome(opt InvestmentOption, amount float64, years int) (OptionOutcome, error) {
	// Annual compounding of the invested amount at the option's rate.
	fv, err := futureValueLump(amount, opt.ExpectedReturn.Rate(), years)
	if err != nil {
		return OptionOutcome{}, err
	}
	return OptionOutcome{
		Option:       opt,
		FutureValue:  fv,
		Gain:         fv - amount,
		RiskAdjusted: (float64(opt.ExpectedReturn) - riskFreeRate) / float64(opt.Risk.Score()),
	}, nil
}
