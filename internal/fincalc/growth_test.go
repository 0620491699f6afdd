package fincalc

import (
	"math"
	"testing"
)

func TestFutureValue(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		want      float64
	}{
		{name: "double-ish at 12 over 6", principal: 1000, rate: 12, years: 6, want: 1973.82},
		{name: "zero rate", principal: 5000, rate: 0, years: 10, want: 5000},
		{name: "zero years", principal: 5000, rate: 12, years: 0, want: 5000},
		{name: "opportunity cost of 50k over 20", principal: 50000, rate: 12, years: 20, want: 482314.65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FutureValue(tt.principal, tt.rate, tt.years)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("FutureValue(%v, %v, %d) = %v, want %v", tt.principal, tt.rate, tt.years, got, tt.want)
			}
		})
	}
}

func TestSIPFutureValue(t *testing.T) {
	t.Run("zero rate is plain accumulation", func(t *testing.T) {
		if got := SIPFutureValue(5000, 0, 24); math.Abs(got-120000) > 1e-9 {
			t.Errorf("SIPFutureValue at 0%% = %v, want 120000", got)
		}
	})

	t.Run("matches month-by-month simulation", func(t *testing.T) {
		const monthly, rate = 5000.0, 12.0
		const months = 120
		i := rate / 100 / 12
		balance := 0.0
		for m := 0; m < months; m++ {
			balance = (balance + monthly) * (1 + i)
		}
		got := SIPFutureValue(monthly, rate, months)
		if math.Abs(got-balance) > 0.01 {
			t.Errorf("closed form = %v, simulation = %v", got, balance)
		}
	})
}

func TestStepUpSIP(t *testing.T) {
	series := StepUpSIP(5000, 12, 10, 20)

	if len(series) != 20 {
		t.Fatalf("expected 20 yearly rows, got %d", len(series))
	}

	t.Run("first year matches level SIP", func(t *testing.T) {
		levelYear := SIPFutureValue(5000, 12, 12)
		if math.Abs(series[0].Value-levelYear) > 0.01 {
			t.Errorf("year 1 value = %v, want %v", series[0].Value, levelYear)
		}
		if math.Abs(series[0].Contributed-60000) > 0.01 {
			t.Errorf("year 1 contributed = %v, want 60000", series[0].Contributed)
		}
	})

	t.Run("contributions step up at each anniversary", func(t *testing.T) {
		// Year 2 adds 5500/month: cumulative 60000 + 66000.
		if math.Abs(series[1].Contributed-126000) > 0.01 {
			t.Errorf("year 2 contributed = %v, want 126000", series[1].Contributed)
		}
	})

	t.Run("value and contributions grow monotonically", func(t *testing.T) {
		for i := 1; i < len(series); i++ {
			if series[i].Value <= series[i-1].Value {
				t.Errorf("year %d value %v not greater than year %d value %v",
					series[i].Year, series[i].Value, series[i-1].Year, series[i-1].Value)
			}
			if series[i].Contributed <= series[i-1].Contributed {
				t.Errorf("year %d contributed not increasing", series[i].Year)
			}
		}
	})

	t.Run("returns grow above contributions at a positive rate", func(t *testing.T) {
		last := series[len(series)-1]
		if last.Value <= last.Contributed {
			t.Errorf("terminal value %v should exceed contributions %v", last.Value, last.Contributed)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		again := StepUpSIP(5000, 12, 10, 20)
		for i := range series {
			if series[i] != again[i] {
				t.Fatalf("row %d differs between identical runs", i)
			}
		}
	})

	if got := StepUpSIP(5000, 12, 10, 0); got != nil {
		t.Errorf("zero horizon should return nil, got %v rows", len(got))
	}
}

func TestYearsToDouble(t *testing.T) {
	if got := YearsToDouble(12); got != 6.0 {
		t.Errorf("YearsToDouble(12) = %v, want 6.0", got)
	}
	if got := YearsToDouble(8); got != 9.0 {
		t.Errorf("YearsToDouble(8) = %v, want 9.0", got)
	}
	if got := YearsToDouble(0); got != 0 {
		t.Errorf("YearsToDouble(0) = %v, want 0 sentinel", got)
	}
}

func TestCostOfDelay(t *testing.T) {
	res := CostOfDelay(5000, 12, 30, 5)

	if res.StartNow <= res.StartLater {
		t.Errorf("starting now (%v) should beat starting later (%v)", res.StartNow, res.StartLater)
	}
	if math.Abs(res.Loss-(res.StartNow-res.StartLater)) > 1e-6 {
		t.Errorf("loss %v should equal the difference", res.Loss)
	}
	// Waiting five years out of thirty costs more than 40% of the corpus
	// at 12%; the exact figure is pinned by the closed form.
	if res.Loss < res.StartNow*0.3 {
		t.Errorf("loss %v implausibly small next to corpus %v", res.Loss, res.StartNow)
	}
}

func TestTimeCostDays(t *testing.T) {
	if got := TimeCostDays(50000, 100000); math.Abs(got-15) > 1e-9 {
		t.Errorf("TimeCostDays(50000, 100000) = %v, want 15", got)
	}
	if got := TimeCostDays(50000, 0); got != 0 {
		t.Errorf("zero income should return 0 sentinel, got %v", got)
	}
}
