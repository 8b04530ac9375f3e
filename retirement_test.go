package advisor

import (
	"errors"
	"math"
	"testing"
)

func TestPlanRetirement_Sizing(t *testing.T) {
	res, err := PlanRetirement(RetirementRequest{
		CurrentAge:          35,
		RetirementAge:       65,
		CurrentSavings:      40000,
		DesiredAnnualIncome: 80000,
		ExpectedReturn:      8,
	})
	if err != nil {
		t.Fatalf("PlanRetirement() error = %v", err)
	}
	if res.YearsToRetirement != 30 {
		t.Errorf("years to retirement = %d, want 30", res.YearsToRetirement)
	}
	if res.RetirementYears != 25 {
		t.Errorf("retirement years = %d, want 25", res.RetirementYears)
	}
	// 4% withdrawal rule: 25x annual income.
	if want := 80000.0 * 25; !almostEqual(res.CorpusNeeded, want) {
		t.Errorf("corpus = %g, want %g", res.CorpusNeeded, want)
	}
	// Current savings compound annually, not monthly.
	if want := 40000 * math.Pow(1.08, 30); !almostEqual(res.ProjectedSavings, want) {
		t.Errorf("projected savings = %g, want %g", res.ProjectedSavings, want)
	}
	if res.AdditionalNeeded <= 0 || res.RequiredMonthlySaving <= 0 {
		t.Errorf("expected a shortfall, got additional=%g monthly=%g", res.AdditionalNeeded, res.RequiredMonthlySaving)
	}
	if res.OnTrack() {
		t.Error("OnTrack() = true for a shortfall")
	}
}

func TestPlanRetirement_BreakEven(t *testing.T) {
	// Projected savings at or above the corpus: nothing extra to save.
	res, err := PlanRetirement(RetirementRequest{
		CurrentAge:          30,
		RetirementAge:       65,
		CurrentSavings:      2000000,
		DesiredAnnualIncome: 40000,
		ExpectedReturn:      7,
	})
	if err != nil {
		t.Fatalf("PlanRetirement() error = %v", err)
	}
	if res.AdditionalNeeded != 0 {
		t.Errorf("additional needed = %g, want exactly 0", res.AdditionalNeeded)
	}
	if res.RequiredMonthlySaving != 0 {
		t.Errorf("required monthly saving = %g, want exactly 0", res.RequiredMonthlySaving)
	}
	if !res.OnTrack() {
		t.Error("OnTrack() = false at break-even")
	}
}

func TestPlanRetirement_ZeroReturn(t *testing.T) {
	// A 0% expected return must hit the zero-rate branch of the annuity
	// solver: the monthly saving is the shortfall spread evenly.
	res, err := PlanRetirement(RetirementRequest{
		CurrentAge:          55,
		RetirementAge:       65,
		CurrentSavings:      100000,
		DesiredAnnualIncome: 20000,
		ExpectedReturn:      0,
	})
	if err != nil {
		t.Fatalf("PlanRetirement() error = %v", err)
	}
	additional := 20000.0*25 - 100000
	if !almostEqual(res.AdditionalNeeded, additional) {
		t.Fatalf("additional needed = %g, want %g", res.AdditionalNeeded, additional)
	}
	if want := additional / (10 * 12); !almostEqual(res.RequiredMonthlySaving, want) {
		t.Errorf("required monthly saving = %g, want %g", res.RequiredMonthlySaving, want)
	}
}

func TestPlanRetirement_MonthlySavingReachesCorpus(t *testing.T) {
	// Saving the required amount must close the gap exactly.
	res, err := PlanRetirement(RetirementRequest{
		CurrentAge:          40,
		RetirementAge:       67,
		CurrentSavings:      50000,
		DesiredAnnualIncome: 60000,
		ExpectedReturn:      6,
	})
	if err != nil {
		t.Fatalf("PlanRetirement() error = %v", err)
	}
	months := res.YearsToRetirement * 12
	fv, err := futureValueAnnuity(res.RequiredMonthlySaving, monthlyRate(6), months)
	if err != nil {
		t.Fatalf("futureValueAnnuity() error = %v", err)
	}
	if math.Abs(fv-res.AdditionalNeeded) > 1e-4 {
		t.Errorf("savings grow to %g, want %g", fv, res.AdditionalNeeded)
	}
}

func TestPlanRetirement_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  RetirementRequest
	}{
		{"retirement before current", RetirementRequest{CurrentAge: 65, RetirementAge: 60}},
		{"same age", RetirementRequest{CurrentAge: 65, RetirementAge: 65}},
		{"negative age", RetirementRequest{CurrentAge: -1, RetirementAge: 65}},
		{"age above 120", RetirementRequest{CurrentAge: 121, RetirementAge: 125}},
		{"no retirement years", RetirementRequest{CurrentAge: 60, RetirementAge: 95}},
		{"negative savings", RetirementRequest{CurrentAge: 30, RetirementAge: 65, CurrentSavings: -1}},
		{"negative income", RetirementRequest{CurrentAge: 30, RetirementAge: 65, DesiredAnnualIncome: -1}},
		{"rate at -100", RetirementRequest{CurrentAge: 30, RetirementAge: 65, ExpectedReturn: -100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := PlanRetirement(tc.req); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("PlanRetirement() = %v, want ErrInvalidInput", err)
			}
		})
	}
}
