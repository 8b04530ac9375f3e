package advisor

import "fmt"

// Verdict is the overall assessment of a stock evaluation.
type Verdict int

const (
	Neutral Verdict = iota
	Positive
	Cautious
)

func (v Verdict) String() string {
	switch v {
	case Positive:
		return "POSITIVE"
	case Cautious:
		return "CAUTIOUS"
	default:
		return "NEUTRAL"
	}
}

// Summary returns the one-line explanation that accompanies the verdict
// in reports.
func (v Verdict) Summary() string {
	switch v {
	case Positive:
		return "Multiple favorable indicators"
	case Cautious:
		return "Multiple concerns identified"
	default:
		return "Mixed signals, requires deeper analysis"
	}
}

// ParseVerdict parses a string into a Verdict.
func ParseVerdict(s string) (Verdict, error) {
	switch s {
	case "POSITIVE":
		return Positive, nil
	case "CAUTIOUS":
		return Cautious, nil
	case "NEUTRAL":
		return Neutral, nil
	default:
		return 0, fmt.Errorf("unknown verdict: %q", s)
	}
}
