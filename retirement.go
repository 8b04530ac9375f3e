package advisor

import "fmt"

// Retirement horizon constants.
const (
	// lifeExpectancy bounds the retirement duration: the corpus must
	// sustain withdrawals to age 90.
	lifeExpectancy = 90

	// corpusMultiplier sizes the corpus as 25x the desired annual income,
	// the 4% withdrawal rule.
	corpusMultiplier = 25
)

// RetirementRequest asks how much must be saved to fund a retirement
// income.
type RetirementRequest struct {
	CurrentAge          int
	RetirementAge       int
	CurrentSavings      float64
	DesiredAnnualIncome float64
	ExpectedReturn      Percent
}

// RetirementResult is the corpus sizing and the monthly saving required
// to reach it.
type RetirementResult struct {
	Request RetirementRequest

	YearsToRetirement int
	RetirementYears   int

	CorpusNeeded     float64
	ProjectedSavings float64
	// AdditionalNeeded is clamped at zero: a surplus never turns into a
	// negative requirement.
	AdditionalNeeded      float64
	RequiredMonthlySaving float64
}

// OnTrack reports whether current savings alone are projected to reach
// the corpus.
func (r *RetirementResult) OnTrack() bool { return r.AdditionalNeeded == 0 }

// PlanRetirement sizes the retirement corpus with the 4% withdrawal rule
// and solves for the required monthly saving.
//
// Current savings are compounded annually here, while the growth
// projector compounds monthly. The mismatch is historical and kept for
// reproducibility of published projections; see DESIGN.md.
func PlanRetirement(req RetirementRequest) (*RetirementResult, error) {
	if req.CurrentAge < 0 || req.CurrentAge > 120 {
		return nil, fmt.Errorf("%w: current age %d outside [0,120]", ErrInvalidInput, req.CurrentAge)
	}
	if req.RetirementAge <= req.CurrentAge {
		return nil, fmt.Errorf("%w: retirement age %d must be greater than current age %d", ErrInvalidInput, req.RetirementAge, req.CurrentAge)
	}
	if req.RetirementAge >= lifeExpectancy {
		return nil, fmt.Errorf("%w: retirement age %d leaves no retirement years before age %d", ErrInvalidInput, req.RetirementAge, lifeExpectancy)
	}
	if req.CurrentSavings < 0 {
		return nil, fmt.Errorf("%w: negative current savings %g", ErrInvalidInput, req.CurrentSavings)
	}
	if req.DesiredAnnualIncome < 0 {
		return nil, fmt.Errorf("%w: negative desired annual income %g", ErrInvalidInput, req.DesiredAnnualIncome)
	}
	if err := checkRate(req.ExpectedReturn); err != nil {
		return nil, err
	}

	years := req.RetirementAge - req.CurrentAge
	corpus := req.DesiredAnnualIncome * corpusMultiplier

	// Annual compounding of the existing savings.
	projected, err := futureValueLump(req.CurrentSavings, req.ExpectedReturn.Rate(), years)
	if err != nil {
		return nil, err
	}

	additional := max(0.0, corpus-projected)

	// Already on track: required saving is exactly zero, the annuity is
	// not solved at all.
	var monthly float64
	if additional > 0 {
		monthly, err = requiredPayment(additional, monthlyRate(req.ExpectedReturn), years*12)
		if err != nil {
			return nil, err
		}
	}

	return &RetirementResult{
		Request:               req,
		YearsToRetirement:     years,
		RetirementYears:       lifeExpectancy - req.RetirementAge,
		CorpusNeeded:          corpus,
		ProjectedSavings:      projected,
		AdditionalNeeded:      additional,
		RequiredMonthlySaving: monthly,
	}, nil
}
