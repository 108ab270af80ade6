package scout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Palette is the sequence of bar colours, reused cyclically.
var Palette = []string{
	"#687090",
	"#DF1864",
	"#FFCD05",
	"#A770A0",
	"#93278F",
	"#70CADC",
	"#3EB891",
	"#079797",
	"#4D4D4D",
}

// RecentDays is how long after its end a project still counts as active.
const RecentDays = 7

// BillingBar is one project of a billing chart: a bar as tall as the hours worked,
// stacked on top of the hours of the cheaper projects.
type BillingBar struct {
	Project   Project
	Rate      Money   // effective hourly rate
	FeeToDate Money   // fee earned so far
	Hours     float64 // bar height
	Left      float64 // cumulative hours of the bars below
	Color     string
	Label     string
	Hover     string
}

// BillingReport holds the effective hourly rates of all projects, and of the active ones.
type BillingReport struct {
	On     Date
	Bars   []BillingBar // every rated project, by increasing rate
	Recent []BillingBar // projects active or ended less than RecentDays ago
}

// NewBillingReport computes the billing report of projects on a given day.
//
// Projects without a defined rate are left out.
func NewBillingReport(projects []Project, on Date) *BillingReport {
	r := &BillingReport{On: on}
	for _, p := range projects {
		rate, ok := p.EffectiveRate(on)
		if !ok {
			continue
		}
		fee, _ := p.FeeToDate(on)
		bar := BillingBar{
			Project:   p,
			Rate:      rate,
			FeeToDate: fee,
			Hours:     p.ActualHours,
			Label:     p.Name + ", " + p.FixedFee.Thousands(),
		}
		bar.Hover = hoverText(bar)
		r.Bars = append(r.Bars, bar)
	}
	sort.SliceStable(r.Bars, func(i, j int) bool { return r.Bars[i].Rate.LessThan(r.Bars[j].Rate) })
	stack(r.Bars)

	for _, b := range r.Bars {
		if on.DaysSince(b.Project.EndDate) < RecentDays {
			r.Recent = append(r.Recent, b)
		}
	}
	stack(r.Recent)
	return r
}

// stack assigns offsets and colours to bars in order.
func stack(bars []BillingBar) {
	left := 0.0
	for i := range bars {
		bars[i].Left = left
		bars[i].Color = Palette[i%len(Palette)]
		left += bars[i].Hours
	}
}

func hoverText(b BillingBar) string {
	return strings.Join([]string{
		"Fee to date: " + b.FeeToDate.Dollars(),
		fmt.Sprintf("Hours: %.0f", b.Hours),
		"Effective rate: " + b.Rate.PerHour(),
		"End date: " + b.Project.EndDate.String(),
	}, "<br>")
}

// AllTimeRate returns the total fee earned per hour worked over all rated projects.
func (r *BillingReport) AllTimeRate() (Money, bool) { return averageRate(r.Bars) }

// RecentRate returns the total fee earned per hour worked over active projects.
func (r *BillingReport) RecentRate() (Money, bool) { return averageRate(r.Recent) }

// TotalHours returns the hours worked on all rated projects.
func (r *BillingReport) TotalHours() float64 {
	h := 0.0
	for _, b := range r.Bars {
		h += b.Hours
	}
	return h
}

func averageRate(bars []BillingBar) (Money, bool) {
	var fee Money
	hours := 0.0
	for _, b := range bars {
		fee = fee.Add(b.FeeToDate)
		hours += b.Hours
	}
	if hours <= 0 {
		return Money{}, false
	}
	return fee.Div(decimal.NewFromFloat(hours)), true
}
