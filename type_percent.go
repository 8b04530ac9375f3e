package advisor

import "fmt"

// Percent is a percentage value, e.g. Percent(7) is 7%.
type Percent float64

// Rate returns the percentage as a decimal fraction (7% -> 0.07).
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
