package scout

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"2024-03-05T14:07:00Z", NewDate(2024, time.March, 5), false},
		{"2024-03-05T14:07:00.123456+0000", NewDate(2024, time.March, 5), false},
		{"invalid-date", Date{}, true},

		{"0d", today, false},
		{"-8d", today.Add(-8), false},
		{"+1d", today.Add(1), false},
		{"-2w", today.Add(-14), false},
		{"1d", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_DaysSince(t *testing.T) {
	tests := []struct {
		d, x Date
		want int
	}{
		{NewDate(2025, 1, 10), NewDate(2025, 1, 1), 9},
		{NewDate(2025, 1, 1), NewDate(2025, 1, 10), -9},
		{NewDate(2025, 3, 1), NewDate(2025, 2, 1), 28},
		{NewDate(2025, 3, 1), NewDate(2025, 3, 1), 0},
	}
	for _, tt := range tests {
		if got := tt.d.DaysSince(tt.x); got != tt.want {
			t.Errorf("%v.DaysSince(%v) = %d, want %d", tt.d, tt.x, got, tt.want)
		}
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Date
		wantErr  bool
	}{
		{"valid date", `"2025-07-31"`, NewDate(2025, 7, 31), false},
		{"timestamp", `"2025-07-31T10:00:00Z"`, NewDate(2025, 7, 31), false},
		{"null", `null`, Date{}, false},
		{"empty", `""`, Date{}, false},
		{"unparsable is absent", `"someday"`, Date{}, false},
		{"not a string", `12`, Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			err := json.Unmarshal([]byte(tt.json), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.json, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.json, got, tt.expected)
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		On  Date `json:"on"`
		Off Date `json:"off"`
	}{On: NewDate(2025, 7, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"on":"2025-07-01","off":null}`; string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}
}
