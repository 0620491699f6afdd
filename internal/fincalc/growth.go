package fincalc

import "math"

// FutureValue returns the value of a lump sum compounded annually for the
// given number of whole years: FV = P*(1+r)^n.
func FutureValue(principal, annualRatePercent float64, years int) float64 {
	if years < 0 {
		return principal
	}
	return principal * math.Pow(1+annualRatePercent/100, float64(years))
}

// SIPFutureValue returns the value of a level monthly contribution
// compounded monthly for the given number of months, with each
// contribution made at the start of its month (annuity-due):
//
//	FV = C * ((1+i)^n - 1)/i * (1+i), i = r/12
//
// A zero rate degenerates to C*n.
func SIPFutureValue(monthly, annualRatePercent float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	i := annualRatePercent / 100 / 12
	if i == 0 {
		return monthly * float64(months)
	}
	return monthly * ((math.Pow(1+i, float64(months)) - 1) / i) * (1 + i)
}

// SIPYear is one row of a step-up SIP projection.
type SIPYear struct {
	Year        int     `json:"year"`
	Value       float64 `json:"value"`       // balance at the end of the year
	Contributed float64 `json:"contributed"` // cumulative amount invested so far
}

// StepUpSIP simulates month-by-month compounding of a monthly contribution
// that grows by stepUpPercent at the start of each new year. Each month
// the contribution is added and the whole balance earns one month of
// growth:
//
//	balance = (balance + contribution) * (1 + r/12)
//
// The returned series has one entry per year up to the horizon.
func StepUpSIP(initialMonthly, annualRatePercent, stepUpPercent float64, years int) []SIPYear {
	if years <= 0 {
		return nil
	}
	monthlyRate := annualRatePercent / 100 / 12
	contribution := initialMonthly

	series := make([]SIPYear, 0, years)
	balance := 0.0
	contributed := 0.0
	for year := 1; year <= years; year++ {
		for m := 0; m < 12; m++ {
			balance = (balance + contribution) * (1 + monthlyRate)
			contributed += contribution
		}
		series = append(series, SIPYear{Year: year, Value: balance, Contributed: contributed})
		contribution *= 1 + stepUpPercent/100
	}
	return series
}

// YearsToDouble applies the rule of 72: an investment at the given annual
// rate doubles in roughly 72/rate years. A non-positive rate returns 0.
func YearsToDouble(annualRatePercent float64) float64 {
	if annualRatePercent <= 0 {
		return 0
	}
	return 72 / annualRatePercent
}

// DelayCost quantifies what waiting costs an investor: the projected
// corpus when starting today versus after the delay, and the difference.
type DelayCost struct {
	StartNow   float64 `json:"start_now"`
	StartLater float64 `json:"start_later"`
	Loss       float64 `json:"loss"`
}

// CostOfDelay compares a level monthly SIP invested for the full horizon
// against the same SIP started delayYears later, so it compounds for
// horizonYears-delayYears instead.
func CostOfDelay(monthly, annualRatePercent float64, horizonYears, delayYears int) DelayCost {
	now := SIPFutureValue(monthly, annualRatePercent, horizonYears*12)
	later := SIPFutureValue(monthly, annualRatePercent, (horizonYears-delayYears)*12)
	return DelayCost{StartNow: now, StartLater: later, Loss: now - later}
}

// TimeCostDays converts a purchase price into days of work at the given
// monthly income (30-day month). Zero income returns 0 rather than
// dividing by zero.
func TimeCostDays(price, monthlyIncome float64) float64 {
	if monthlyIncome <= 0 {
		return 0
	}
	return price / (monthlyIncome / 30)
}
