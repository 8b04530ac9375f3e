package advisor

// SignalLabel is the tri-state classification of a single stock metric.
type SignalLabel int

const (
	Favorable SignalLabel = iota
	NeutralSignal
	Warning
)

func (l SignalLabel) String() string {
	switch l {
	case Favorable:
		return "favorable"
	case Warning:
		return "warning"
	default:
		return "neutral"
	}
}

// Mark returns the one-rune marker used in rendered reports.
func (l SignalLabel) Mark() string {
	switch l {
	case Favorable:
		return "✓"
	case Warning:
		return "⚠"
	default:
		return "○"
	}
}

// Signal is one labeled metric assessment produced by the stock
// classifier, e.g. {Metric: "P/E Ratio", Label: Favorable,
// Assessment: "ATTRACTIVE (< 15)", Note: "stock may be undervalued"}.
type Signal struct {
	Metric     string
	Label      SignalLabel
	Assessment string
	Note       string
}
