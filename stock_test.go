package advisor

import (
	"errors"
	"testing"
)

func TestEvaluateStock_AllFavorable(t *testing.T) {
	res, err := EvaluateStock(StockEvaluationRequest{
		Name:          "ACME",
		CurrentPrice:  100,
		PERatio:       14.9,
		DividendYield: 3.1,
		RevenueGrowth: 21,
		DebtToEquity:  0.4,
	})
	if err != nil {
		t.Fatalf("EvaluateStock() error = %v", err)
	}
	if len(res.Signals) != 4 {
		t.Fatalf("got %d signals, want 4", len(res.Signals))
	}
	for _, s := range res.Signals {
		if s.Label != Favorable {
			t.Errorf("signal %s = %s, want favorable", s.Metric, s.Label)
		}
	}
	if res.Verdict != Positive {
		t.Errorf("verdict = %s, want POSITIVE", res.Verdict)
	}
}

func TestEvaluateStock_SignalOrder(t *testing.T) {
	res, err := EvaluateStock(StockEvaluationRequest{Name: "ACME", CurrentPrice: 10})
	if err != nil {
		t.Fatalf("EvaluateStock() error = %v", err)
	}
	want := []string{"P/E Ratio", "Dividend Yield", "Revenue Growth", "Debt Level"}
	for i, metric := range want {
		if res.Signals[i].Metric != metric {
			t.Errorf("signal[%d] = %q, want %q", i, res.Signals[i].Metric, metric)
		}
	}
}

func TestEvaluateStock_Thresholds(t *testing.T) {
	tests := []struct {
		name string
		req  StockEvaluationRequest
		want []SignalLabel
	}{
		{
			"growth company, no dividend warning",
			StockEvaluationRequest{Name: "GRW", CurrentPrice: 85, PERatio: 28, DividendYield: 0.2, RevenueGrowth: 25, DebtToEquity: 0.4},
			[]SignalLabel{Warning, NeutralSignal, Favorable, Favorable},
		},
		{
			"leveraged decliner",
			StockEvaluationRequest{Name: "DCL", CurrentPrice: 12, PERatio: 30, DividendYield: 0.5, RevenueGrowth: -3, DebtToEquity: 2.1},
			[]SignalLabel{Warning, NeutralSignal, Warning, Warning},
		},
		{
			"middling everywhere",
			StockEvaluationRequest{Name: "MID", CurrentPrice: 55, PERatio: 20, DividendYield: 2, RevenueGrowth: 5, DebtToEquity: 1},
			[]SignalLabel{NeutralSignal, NeutralSignal, NeutralSignal, NeutralSignal},
		},
		{
			"second favorable growth tier",
			StockEvaluationRequest{Name: "TIER", CurrentPrice: 55, PERatio: 14, DividendYield: 3.5, RevenueGrowth: 15, DebtToEquity: 1},
			[]SignalLabel{Favorable, Favorable, Favorable, NeutralSignal},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := EvaluateStock(tc.req)
			if err != nil {
				t.Fatalf("EvaluateStock() error = %v", err)
			}
			for i, want := range tc.want {
				if res.Signals[i].Label != want {
					t.Errorf("signal %s = %s, want %s", res.Signals[i].Metric, res.Signals[i].Label, want)
				}
			}
		})
	}
}

func TestEvaluateStock_Verdicts(t *testing.T) {
	tests := []struct {
		name string
		req  StockEvaluationRequest
		want Verdict
	}{
		{"three favorable", StockEvaluationRequest{Name: "A", CurrentPrice: 1, PERatio: 14, DividendYield: 3.5, RevenueGrowth: 15, DebtToEquity: 1}, Positive},
		{"two warnings", StockEvaluationRequest{Name: "B", CurrentPrice: 1, PERatio: 30, DividendYield: 0.5, RevenueGrowth: -3, DebtToEquity: 1}, Cautious},
		{"mixed", StockEvaluationRequest{Name: "C", CurrentPrice: 1, PERatio: 20, DividendYield: 2, RevenueGrowth: 5, DebtToEquity: 1}, Neutral},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := EvaluateStock(tc.req)
			if err != nil {
				t.Fatalf("EvaluateStock() error = %v", err)
			}
			if res.Verdict != tc.want {
				t.Errorf("verdict = %s, want %s", res.Verdict, tc.want)
			}
		})
	}
}

func TestVerdict_PositivePrecedence(t *testing.T) {
	// Favorable count wins over warning count: 3 favorable and 2 warning
	// signals resolve to POSITIVE, not CAUTIOUS.
	signals := []Signal{
		{Label: Favorable}, {Label: Favorable}, {Label: Favorable},
		{Label: Warning}, {Label: Warning},
	}
	if got := verdict(signals); got != Positive {
		t.Errorf("verdict = %s, want POSITIVE", got)
	}
}

func TestEvaluateStock_InvalidInput(t *testing.T) {
	if _, err := EvaluateStock(StockEvaluationRequest{Name: "", CurrentPrice: 10}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing name: got %v, want ErrInvalidInput", err)
	}
	if _, err := EvaluateStock(StockEvaluationRequest{Name: "N", CurrentPrice: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative price: got %v, want ErrInvalidInput", err)
	}
}
