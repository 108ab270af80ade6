package scout

import (
	"testing"

	"github.com/shopspring/decimal"
)

func fee(v float64) *Money {
	m := USD(v)
	return &m
}

func TestProject_EffectiveRate(t *testing.T) {
	on := NewDate(2025, 3, 11)
	tests := []struct {
		name     string
		project  Project
		fraction string
		rate     float64
		ok       bool
	}{
		{
			name:     "half way",
			project:  Project{StartDate: NewDate(2025, 3, 1), EndDate: NewDate(2025, 3, 21), FixedFee: fee(10000), ActualHours: 25},
			fraction: "0.5", rate: 200, ok: true,
		},
		{
			name:     "over is clamped",
			project:  Project{StartDate: NewDate(2025, 1, 1), EndDate: NewDate(2025, 2, 1), FixedFee: fee(12000), ActualHours: 60},
			fraction: "1", rate: 200, ok: true,
		},
		{
			name:     "not started",
			project:  Project{StartDate: NewDate(2025, 4, 1), EndDate: NewDate(2025, 5, 1), FixedFee: fee(12000), ActualHours: 2},
			fraction: "0", rate: 0, ok: true,
		},
		{
			name:    "zero length",
			project: Project{StartDate: NewDate(2025, 3, 1), EndDate: NewDate(2025, 3, 1), FixedFee: fee(900), ActualHours: 3},
		},
		{
			name:    "ends before it starts",
			project: Project{StartDate: NewDate(2025, 3, 5), EndDate: NewDate(2025, 3, 1), FixedFee: fee(900), ActualHours: 3},
		},
		{
			name:    "no hours",
			project: Project{StartDate: NewDate(2025, 3, 1), EndDate: NewDate(2025, 3, 21), FixedFee: fee(10000)},
		},
		{
			name:    "no fee",
			project: Project{StartDate: NewDate(2025, 3, 1), EndDate: NewDate(2025, 3, 21), ActualHours: 10},
		},
		{
			name:    "no end date",
			project: Project{StartDate: NewDate(2025, 3, 1), FixedFee: fee(10000), ActualHours: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.fraction != "" {
				f, _ := tt.project.FractionComplete(on)
				if !f.Equal(decimal.RequireFromString(tt.fraction)) {
					t.Errorf("FractionComplete() = %v, want %v", f, tt.fraction)
				}
			}
			rate, ok := tt.project.EffectiveRate(on)
			if ok != tt.ok {
				t.Fatalf("EffectiveRate() ok = %v, want %v", ok, tt.ok)
			}
			if ok && !rate.Equal(USD(tt.rate)) {
				t.Errorf("EffectiveRate() = %v, want %v", rate, tt.rate)
			}
		})
	}
}

func TestNewBillingReport(t *testing.T) {
	on := NewDate(2025, 3, 11)
	projects := []Project{
		// rate 200, ended long ago
		{Name: "Alpha", StartDate: NewDate(2024, 1, 1), EndDate: NewDate(2024, 2, 1), FixedFee: fee(20000), ActualHours: 100},
		// rate 100, active
		{Name: "Beta", StartDate: NewDate(2025, 3, 1), EndDate: NewDate(2025, 3, 21), FixedFee: fee(10000), ActualHours: 50},
		// rate 400, ended 3 days ago
		{Name: "Gamma", StartDate: NewDate(2025, 2, 1), EndDate: NewDate(2025, 3, 8), FixedFee: fee(8000), ActualHours: 20},
		// undefined rate
		{Name: "Delta", StartDate: NewDate(2025, 3, 1), EndDate: NewDate(2025, 3, 21)},
	}

	r := NewBillingReport(projects, on)

	var names []string
	for _, b := range r.Bars {
		names = append(names, b.Project.Name)
	}
	if got, want := len(names), 3; got != want {
		t.Fatalf("len(Bars) = %d, want %d: %v", got, want, names)
	}
	wantBars := []struct {
		name  string
		left  float64
		color string
		label string
	}{
		{"Beta", 0, "#687090", "Beta, $10k"},
		{"Alpha", 50, "#DF1864", "Alpha, $20k"},
		{"Gamma", 150, "#FFCD05", "Gamma, $8k"},
	}
	for i, w := range wantBars {
		b := r.Bars[i]
		if b.Project.Name != w.name || b.Left != w.left || b.Color != w.color || b.Label != w.label {
			t.Errorf("Bars[%d] = %s left=%v color=%s label=%q, want %+v", i, b.Project.Name, b.Left, b.Color, b.Label, w)
		}
	}
	if want := "Fee to date: $5,000<br>Hours: 50<br>Effective rate: $100/hr<br>End date: 2025-03-21"; r.Bars[0].Hover != want {
		t.Errorf("Hover = %q, want %q", r.Bars[0].Hover, want)
	}

	// (5000+20000+8000)/(50+100+20)
	allTime, ok := r.AllTimeRate()
	if !ok || allTime.Round(2).Float() != 194.12 {
		t.Errorf("AllTimeRate() = %v, %v, want 194.12", allTime, ok)
	}

	if len(r.Recent) != 2 || r.Recent[0].Project.Name != "Beta" || r.Recent[1].Project.Name != "Gamma" {
		t.Fatalf("Recent = %v, want Beta, Gamma", r.Recent)
	}
	if r.Recent[1].Left != 50 || r.Recent[1].Color != "#DF1864" {
		t.Errorf("Recent[1] left=%v color=%s, want 50 #DF1864", r.Recent[1].Left, r.Recent[1].Color)
	}
	// (5000+8000)/(50+20)
	recent, ok := r.RecentRate()
	if !ok || recent.Round(2).Float() != 185.71 {
		t.Errorf("RecentRate() = %v, %v, want 185.71", recent, ok)
	}
}

func TestNewBillingReport_Empty(t *testing.T) {
	r := NewBillingReport(nil, Today())
	if _, ok := r.AllTimeRate(); ok {
		t.Errorf("AllTimeRate() of no project must be undefined")
	}
	if _, ok := r.RecentRate(); ok {
		t.Errorf("RecentRate() of no project must be undefined")
	}
}

func TestNewBillingReport_Palette(t *testing.T) {
	var projects []Project
	for i := 0; i < 11; i++ {
		projects = append(projects, Project{
			StartDate: NewDate(2024, 1, 1), EndDate: NewDate(2024, 1, 2),
			FixedFee: fee(float64(1000 * (i + 1))), ActualHours: 1,
		})
	}
	r := NewBillingReport(projects, NewDate(2025, 1, 1))
	if r.Bars[9].Color != Palette[0] || r.Bars[10].Color != Palette[1] {
		t.Errorf("colors must cycle, got %s %s", r.Bars[9].Color, r.Bars[10].Color)
	}
}

func TestNewBillingReport_RecentCutoff(t *testing.T) {
	on := NewDate(2025, 3, 11)
	tests := []struct {
		name   string
		end    Date
		recent bool
	}{
		{"ends in the future", on.Add(10), true},
		{"ends today", on, true},
		{"ended 6 days ago", on.Add(-(RecentDays - 1)), true},
		{"ended 7 days ago", on.Add(-RecentDays), false},
		{"ended 8 days ago", on.Add(-(RecentDays + 1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project{Name: tt.name, StartDate: NewDate(2025, 1, 1), EndDate: tt.end, FixedFee: fee(5000), ActualHours: 10}
			r := NewBillingReport([]Project{p}, on)
			if len(r.Bars) != 1 {
				t.Fatalf("len(Bars) = %d, want 1", len(r.Bars))
			}
			if got := len(r.Recent) == 1; got != tt.recent {
				t.Errorf("recent = %v, want %v", got, tt.recent)
			}
		})
	}
}
