package advisor

import "fmt"

// GrowthRequest projects the growth of a lump sum plus monthly
// contributions compounded monthly.
type GrowthRequest struct {
	Principal           float64
	AnnualRate          Percent
	Years               int
	MonthlyContribution float64
}

// GrowthPoint is one sampled point of the year-by-year series.
type GrowthPoint struct {
	Year  int
	Value float64
}

// GrowthResult is the projection outcome. All amounts are unrounded.
type GrowthResult struct {
	Request GrowthRequest

	FutureValue   float64
	TotalInvested float64
	TotalGain     float64
	ROI           Percent

	// Series samples the cumulative value at a fixed stride: every year
	// when Years <= 10, every 5th year otherwise. The final year is not
	// forced onto the series when it misses the stride; see Stride.
	Series []GrowthPoint
}

// Stride returns the sampling stride of the yearly series for a given
// horizon. Note that a 12-year projection at stride 5 samples years 5 and
// 10 only: the terminal year is reported by FutureValue, not by the
// series.
func Stride(years int) int {
	if years > 10 {
		return 5
	}
	return 1
}

// Project computes the future value of the request and its sampled
// series.
//
// A request with zero principal and zero contribution is rejected as
// degenerate: there is no invested amount to compute a return on.
func Project(req GrowthRequest) (*GrowthResult, error) {
	if req.Years <= 0 {
		return nil, fmt.Errorf("%w: years %d must be positive", ErrInvalidInput, req.Years)
	}
	if err := checkRate(req.AnnualRate); err != nil {
		return nil, err
	}
	if req.Principal < 0 {
		return nil, fmt.Errorf("%w: negative principal %g", ErrInvalidInput, req.Principal)
	}
	if req.MonthlyContribution < 0 {
		return nil, fmt.Errorf("%w: negative monthly contribution %g", ErrInvalidInput, req.MonthlyContribution)
	}

	rate := monthlyRate(req.AnnualRate)
	months := req.Years * 12

	totalInvested := req.Principal + req.MonthlyContribution*float64(months)
	if totalInvested == 0 {
		return nil, fmt.Errorf("%w: zero total invested, cannot compute a return", ErrDegenerate)
	}

	futureValue, err := valueAfterMonths(req, rate, months)
	if err != nil {
		return nil, err
	}
	totalGain := futureValue - totalInvested

	result := &GrowthResult{
		Request:       req,
		FutureValue:   futureValue,
		TotalInvested: totalInvested,
		TotalGain:     totalGain,
		ROI:           Percent(totalGain / totalInvested * 100),
	}

	stride := Stride(req.Years)
	for year := stride; year <= req.Years; year += stride {
		value, err := valueAfterMonths(req, rate, year*12)
		if err != nil {
			return nil, err
		}
		result.Series = append(result.Series, GrowthPoint{Year: year, Value: value})
	}
	return result, nil
}

// valueAfterMonths is the cumulative value of the request after a number
// of months: compounded principal plus the annuity of contributions.
func valueAfterMonths(req GrowthRequest, rate float64, months int) (float64, error) {
	lump, err := futureValueLump(req.Principal, rate, months)
	if err != nil {
		return 0, err
	}
	annuity, err := futureValueAnnuity(req.MonthlyContribution, rate, months)
	if err != nil {
		return 0, err
	}
	return lump + annuity, nil
}
