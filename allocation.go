package advisor

import "fmt"

// AllocationRequest asks for a recommended stock/bond split.
type AllocationRequest struct {
	Age           int
	RiskTolerance RiskTolerance
	TotalAmount   float64
}

// Fixed sub-splits applied multiplicatively to the dollar amount of each
// parent bucket.
const (
	indexFundSplit     = 0.70
	internationalSplit = 0.20
	individualSplit    = 0.10

	governmentBondSplit = 0.60
	corporateBondSplit  = 0.40
)

// AllocationResult is the recommended split. Percentages are whole points
// summing to 100; dollar amounts are unrounded and sum to the requested
// total within floating tolerance.
type AllocationResult struct {
	Request AllocationRequest

	StockPct int
	BondPct  int

	StockAmount float64
	BondAmount  float64

	// Sub-splits of the stock bucket.
	IndexFunds    float64
	International float64
	Individual    float64

	// Sub-splits of the bond bucket.
	GovernmentBonds float64
	CorporateBonds  float64
}

// Allocate applies the "100 minus age" rule adjusted for risk tolerance.
// Conservative subtracts 15 points with a floor of 20; aggressive adds 15
// points with a cap of 90; moderate is unmodified and carries no floor or
// cap of its own, so extreme ages can legitimately fall outside [20,90]
// (age 95 moderate yields 5% stocks).
func Allocate(req AllocationRequest) (*AllocationResult, error) {
	if req.Age < 0 || req.Age > 100 {
		return nil, fmt.Errorf("%w: age %d outside [0,100]", ErrInvalidInput, req.Age)
	}
	if req.TotalAmount < 0 {
		return nil, fmt.Errorf("%w: negative total amount %g", ErrInvalidInput, req.TotalAmount)
	}

	base := 100 - req.Age
	stockPct := base
	switch req.RiskTolerance {
	case Conservative:
		stockPct = max(20, base-15)
	case Aggressive:
		stockPct = min(90, base+15)
	}
	bondPct := 100 - stockPct

	stockAmount := req.TotalAmount * float64(stockPct) / 100
	bondAmount := req.TotalAmount * float64(bondPct) / 100

	return &AllocationResult{
		Request:         req,
		StockPct:        stockPct,
		BondPct:         bondPct,
		StockAmount:     stockAmount,
		BondAmount:      bondAmount,
		IndexFunds:      stockAmount * indexFundSplit,
		International:   stockAmount * internationalSplit,
		Individual:      stockAmount * individualSplit,
		GovernmentBonds: bondAmount * governmentBondSplit,
		CorporateBonds:  bondAmount * corporateBondSplit,
	}, nil
}
