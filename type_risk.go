package advisor

import "strings"

// RiskTolerance is the investor's appetite for volatility, used by the
// allocation rule engine.
type RiskTolerance int

const (
	// Moderate keeps the age-based allocation unmodified. It is also the
	// fallback for any unrecognized risk string.
	Moderate RiskTolerance = iota
	// Conservative shifts 15 points from stocks to bonds, floored at 20% stocks.
	Conservative
	// Aggressive shifts 15 points from bonds to stocks, capped at 90% stocks.
	Aggressive
)

func (r RiskTolerance) String() string {
	switch r {
	case Conservative:
		return "conservative"
	case Aggressive:
		return "aggressive"
	default:
		return "moderate"
	}
}

// ParseRiskTolerance matches the string case-insensitively against the
// known tolerances. Anything unrecognized falls through to Moderate,
// mirroring the lenient matching of the comparator's risk tiers.
func ParseRiskTolerance(s string) RiskTolerance {
	switch strings.ToLower(s) {
	case "conservative":
		return Conservative
	case "aggressive":
		return Aggressive
	default:
		return Moderate
	}
}

// RiskTier is the coarse risk level of a single investment option, used
// by the comparator.
type RiskTier int

const (
	LowRisk    RiskTier = 1
	MediumRisk RiskTier = 2
	HighRisk   RiskTier = 3
)

func (t RiskTier) String() string {
	switch t {
	case LowRisk:
		return "low"
	case HighRisk:
		return "high"
	default:
		return "medium"
	}
}

// Score returns the tier's numeric risk score, the divisor of the
// risk-adjusted return.
func (t RiskTier) Score() int { return int(t) }

// ParseRiskTier maps a risk string to its tier. Unrecognized strings
// default to MediumRisk rather than failing: tool callers routinely send
// free-form risk descriptions, and a lenient middle default beats
// rejecting the whole comparison.
func ParseRiskTier(s string) RiskTier {
	switch strings.ToLower(s) {
	case "low":
		return LowRisk
	case "high":
		return HighRisk
	default:
		return MediumRisk
	}
}
