package scout

import (
	"reflect"
	"slices"
	"testing"
)

func TestNewRange(t *testing.T) {
	r := NewRange(NewDate(2025, 6, 16), NewDate(2025, 6, 8))
	if r.From != NewDate(2025, 6, 8) || r.To != NewDate(2025, 6, 16) {
		t.Errorf("NewRange() = %v, want boundaries swapped", r)
	}
	if got := r.String(); got != "2025-06-08..2025-06-16" {
		t.Errorf("String() = %q", got)
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(NewDate(2025, 6, 8), NewDate(2025, 6, 16))
	tests := []struct {
		date Date
		want bool
	}{
		{NewDate(2025, 6, 7), false},
		{NewDate(2025, 6, 8), true},
		{NewDate(2025, 6, 12), true},
		{NewDate(2025, 6, 16), true},
		{NewDate(2025, 6, 17), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.date); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestLastDays(t *testing.T) {
	on := NewDate(2025, 6, 16)
	tests := []struct {
		days int
		want Range
	}{
		{8, Range{From: NewDate(2025, 6, 9), To: on}},
		{1, Range{From: on, To: on}},
		{0, Range{From: on, To: on}},
	}
	for _, tt := range tests {
		if got := LastDays(on, tt.days); got != tt.want {
			t.Errorf("LastDays(%v, %d) = %v, want %v", on, tt.days, got, tt.want)
		}
		if n := len(slices.Collect(LastDays(on, tt.days).Days())); n != max(tt.days, 1) {
			t.Errorf("LastDays(%v, %d) spans %d days", on, tt.days, n)
		}
	}
}

func TestRange_Days(t *testing.T) {
	r := NewRange(NewDate(2024, 2, 28), NewDate(2024, 3, 1))
	want := []Date{NewDate(2024, 2, 28), NewDate(2024, 2, 29), NewDate(2024, 3, 1)}
	if got := slices.Collect(r.Days()); !reflect.DeepEqual(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
}
