package advisor

import "fmt"

// StockEvaluationRequest carries the fundamental metrics of one stock.
type StockEvaluationRequest struct {
	Name          string
	CurrentPrice  float64
	PERatio       float64
	DividendYield Percent
	RevenueGrowth Percent
	DebtToEquity  float64
}

// StockEvaluationResult is the ordered list of metric signals and the
// overall verdict derived from them.
type StockEvaluationResult struct {
	Request StockEvaluationRequest

	// Signals in fixed order: P/E, dividend yield, revenue growth,
	// debt-to-equity.
	Signals []Signal

	Verdict Verdict
}

// EvaluateStock classifies each metric against fixed thresholds and
// derives the overall verdict by counting favorable and warning signals.
func EvaluateStock(req StockEvaluationRequest) (*StockEvaluationResult, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: missing stock name", ErrInvalidInput)
	}
	if req.CurrentPrice < 0 {
		return nil, fmt.Errorf("%w: negative price %g", ErrInvalidInput, req.CurrentPrice)
	}

	signals := []Signal{
		peSignal(req.PERatio),
		dividendSignal(req.DividendYield),
		revenueSignal(req.RevenueGrowth),
		debtSignal(req.DebtToEquity),
	}

	return &StockEvaluationResult{
		Request: req,
		Signals: signals,
		Verdict: verdict(signals),
	}, nil
}

func peSignal(pe float64) Signal {
	s := Signal{Metric: "P/E Ratio"}
	switch {
	case pe < 15:
		s.Label, s.Assessment, s.Note = Favorable, "ATTRACTIVE (< 15)", "Stock may be undervalued"
	case pe < 25:
		s.Label, s.Assessment, s.Note = NeutralSignal, "FAIR (15-25)", "Reasonably valued"
	default:
		s.Label, s.Assessment, s.Note = Warning, "HIGH (> 25)", "Stock may be overvalued or high-growth"
	}
	return s
}

// dividendSignal never warns: a low yield marks a growth-focused company,
// not a defect.
func dividendSignal(yield Percent) Signal {
	s := Signal{Metric: "Dividend Yield"}
	switch {
	case yield > 3:
		s.Label, s.Assessment, s.Note = Favorable, "STRONG (> 3%)", "Good income potential"
	case yield > 1:
		s.Label, s.Assessment, s.Note = NeutralSignal, "MODERATE (1-3%)", "Some income"
	default:
		s.Label, s.Assessment, s.Note = NeutralSignal, "LOW (< 1%)", "Growth-focused company"
	}
	return s
}

// revenueSignal has two favorable tiers, above 20% and above 10%.
func revenueSignal(growth Percent) Signal {
	s := Signal{Metric: "Revenue Growth"}
	switch {
	case growth > 20:
		s.Label, s.Assessment, s.Note = Favorable, "EXCELLENT (> 20%)", "Strong expansion"
	case growth > 10:
		s.Label, s.Assessment, s.Note = Favorable, "GOOD (10-20%)", "Solid growth"
	case growth > 0:
		s.Label, s.Assessment, s.Note = NeutralSignal, "MODEST (0-10%)", "Stable company"
	default:
		s.Label, s.Assessment, s.Note = Warning, "DECLINING", "Revenue concerns"
	}
	return s
}

func debtSignal(debtToEquity float64) Signal {
	s := Signal{Metric: "Debt Level"}
	switch {
	case debtToEquity < 0.5:
		s.Label, s.Assessment, s.Note = Favorable, "LOW (< 0.5)", "Strong balance sheet"
	case debtToEquity < 1.5:
		s.Label, s.Assessment, s.Note = NeutralSignal, "MODERATE (0.5-1.5)", "Manageable debt"
	default:
		s.Label, s.Assessment, s.Note = Warning, "HIGH (> 1.5)", "Leverage concerns"
	}
	return s
}

// verdict counts signals with a fixed precedence: three or more favorable
// signals win over any number of warnings, so 3 favorable + 2 warning
// resolves to Positive, not Cautious.
func verdict(signals []Signal) Verdict {
	var favorable, warnings int
	for _, s := range signals {
		switch s.Label {
		case Favorable:
			favorable++
		case Warning:
			warnings++
		}
	}
	switch {
	case favorable >= 3:
		return Positive
	case warnings >= 2:
		return Cautious
	default:
		return Neutral
	}
}
