package scout

import (
	"github.com/shopspring/decimal"
)

// Project is a fixed-fee engagement tracked in the time-tracking service.
//
// Projects are fetched on every render and never mutated.
type Project struct {
	ID          int64
	Name        string
	Client      string
	StartDate   Date   // zero when absent
	EndDate     Date   // zero when absent
	FixedFee    *Money // nil when absent
	ActualHours float64
}

// DurationDays returns the number of days between the start and the end of the project.
func (p Project) DurationDays() int { return p.EndDate.DaysSince(p.StartDate) }

// FractionComplete returns the elapsed share of the project duration on a given day,
// within [0, 1].
//
// It returns false if the start or end date is absent, or if the project does not
// last at least one day.
func (p Project) FractionComplete(on Date) (decimal.Decimal, bool) {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return decimal.Zero, false
	}
	elapsed := on.DaysSince(p.StartDate)
	duration := p.DurationDays()
	if duration <= 0 {
		return decimal.Zero, false
	}
	f := decimal.NewFromInt(int64(elapsed)).Div(decimal.NewFromInt(int64(duration)))
	if f.GreaterThan(decimal.NewFromInt(1)) {
		f = decimal.NewFromInt(1)
	}
	if f.IsNegative() {
		f = decimal.Zero
	}
	return f, true
}

// FeeToDate returns the share of the fixed fee earned on a given day.
func (p Project) FeeToDate(on Date) (Money, bool) {
	if p.FixedFee == nil {
		return Money{}, false
	}
	f, ok := p.FractionComplete(on)
	if !ok {
		return Money{}, false
	}
	return p.FixedFee.Mul(f), true
}

// EffectiveRate returns the fee earned to date per hour worked.
//
// It is undefined when the fee or a date is absent, or when no hour was logged.
func (p Project) EffectiveRate(on Date) (Money, bool) {
	if p.ActualHours <= 0 {
		return Money{}, false
	}
	fee, ok := p.FeeToDate(on)
	if !ok {
		return Money{}, false
	}
	return fee.Div(decimal.NewFromFloat(p.ActualHours)), true
}
