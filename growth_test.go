package advisor

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestProject_ZeroRate(t *testing.T) {
	// At 0% the future value is exactly the contributions.
	res, err := Project(GrowthRequest{Principal: 1000, AnnualRate: 0, Years: 10, MonthlyContribution: 100})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if want := 1000 + 100.0*120; !almostEqual(res.FutureValue, want) {
		t.Errorf("future value = %g, want %g", res.FutureValue, want)
	}
	if !almostEqual(res.TotalGain, 0) {
		t.Errorf("total gain = %g, want 0", res.TotalGain)
	}
	if !res.ROI.Equal(0) {
		t.Errorf("roi = %s, want 0.00%%", res.ROI)
	}
}

func TestProject_MonotonicInYears(t *testing.T) {
	prev := 0.0
	for years := 1; years <= 40; years++ {
		res, err := Project(GrowthRequest{Principal: 10000, AnnualRate: 7, Years: years, MonthlyContribution: 200})
		if err != nil {
			t.Fatalf("Project(years=%d) error = %v", years, err)
		}
		if res.FutureValue < prev {
			t.Errorf("future value decreased from %g to %g at %d years", prev, res.FutureValue, years)
		}
		prev = res.FutureValue
	}
}

func TestProject_MonotonicInRate(t *testing.T) {
	prev := math.Inf(-1)
	for rate := Percent(0); rate <= 15; rate++ {
		res, err := Project(GrowthRequest{Principal: 10000, AnnualRate: rate, Years: 20, MonthlyContribution: 200})
		if err != nil {
			t.Fatalf("Project(rate=%s) error = %v", rate, err)
		}
		if res.FutureValue < prev {
			t.Errorf("future value decreased from %g to %g at rate %s", prev, res.FutureValue, rate)
		}
		prev = res.FutureValue
	}
}

func TestProject_SeriesStride(t *testing.T) {
	tests := []struct {
		years     int
		wantYears []int
	}{
		{1, []int{1}},
		{10, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{11, []int{5, 10}},
		// The stride rule never forces a final-year point: a 12-year
		// projection samples years 5 and 10 only, year 12 is reported by
		// FutureValue alone.
		{12, []int{5, 10}},
		{25, []int{5, 10, 15, 20, 25}},
	}
	for _, tc := range tests {
		res, err := Project(GrowthRequest{Principal: 1000, AnnualRate: 5, Years: tc.years, MonthlyContribution: 50})
		if err != nil {
			t.Fatalf("Project(years=%d) error = %v", tc.years, err)
		}
		var got []int
		for _, p := range res.Series {
			got = append(got, p.Year)
		}
		if !reflect.DeepEqual(got, tc.wantYears) {
			t.Errorf("years=%d: series years = %v, want %v", tc.years, got, tc.wantYears)
		}
	}
}

func TestProject_SeriesEndsAtFutureValue(t *testing.T) {
	// When the horizon falls on the stride, the last sample equals the
	// future value.
	res, err := Project(GrowthRequest{Principal: 5000, AnnualRate: 6, Years: 20, MonthlyContribution: 300})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	last := res.Series[len(res.Series)-1]
	if last.Year != 20 || !almostEqual(last.Value, res.FutureValue) {
		t.Errorf("last sample = (%d, %g), want (20, %g)", last.Year, last.Value, res.FutureValue)
	}
}

func TestProject_ZeroInvested(t *testing.T) {
	_, err := Project(GrowthRequest{Principal: 0, AnnualRate: 7, Years: 10, MonthlyContribution: 0})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("Project() = %v, want ErrDegenerate", err)
	}
}

func TestProject_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  GrowthRequest
	}{
		{"zero years", GrowthRequest{Principal: 1000, Years: 0}},
		{"negative years", GrowthRequest{Principal: 1000, Years: -5}},
		{"rate at -100", GrowthRequest{Principal: 1000, AnnualRate: -100, Years: 10}},
		{"negative principal", GrowthRequest{Principal: -1, Years: 10}},
		{"negative contribution", GrowthRequest{Principal: 1000, Years: 10, MonthlyContribution: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Project(tc.req); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Project() = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestProject_Deterministic(t *testing.T) {
	req := GrowthRequest{Principal: 40000, AnnualRate: 8, Years: 25, MonthlyContribution: 1000}
	first, err := Project(req)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	second, err := Project(req)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two identical projections differ:\n%+v\n%+v", first, second)
	}
}
