package model

import (
	"testing"
	"time"
)

func TestPeriod_Contains(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		date   time.Time
		want   bool
	}{
		{
			name:   "date inside the month",
			period: NewPeriod(time.January, 2025),
			date:   time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "first day of the month",
			period: NewPeriod(time.January, 2025),
			date:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "last day of the month",
			period: NewPeriod(time.January, 2025),
			date:   time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
			want:   true,
		},
		{
			name:   "same month, different year",
			period: NewPeriod(time.January, 2025),
			date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "same year, different month",
			period: NewPeriod(time.January, 2025),
			date:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.period.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestPeriod_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		period   Period
		wantLast int
	}{
		{"31-day month", NewPeriod(time.January, 2025), 31},
		{"30-day month", NewPeriod(time.April, 2025), 30},
		{"february common year", NewPeriod(time.February, 2025), 28},
		{"february leap year", NewPeriod(time.February, 2024), 29},
		{"december rollover", NewPeriod(time.December, 2024), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := tt.period.Bounds()
			if first.Day() != 1 || first.Month() != tt.period.Month || first.Year() != tt.period.Year {
				t.Errorf("first = %v, want first day of %v", first, tt.period)
			}
			if last.Day() != tt.wantLast {
				t.Errorf("last day = %d, want %d", last.Day(), tt.wantLast)
			}
			if last.Month() != tt.period.Month || last.Year() != tt.period.Year {
				t.Errorf("last = %v, want a day inside %v", last, tt.period)
			}
		})
	}
}

func TestPeriod_MonthsUntil(t *testing.T) {
	tests := []struct {
		name string
		from Period
		to   Period
		want int
	}{
		{"same month", NewPeriod(time.January, 2025), NewPeriod(time.January, 2025), 1},
		{"three months", NewPeriod(time.January, 2025), NewPeriod(time.March, 2025), 3},
		{"across a year boundary", NewPeriod(time.November, 2024), NewPeriod(time.February, 2025), 4},
		{"full year", NewPeriod(time.January, 2025), NewPeriod(time.December, 2025), 12},
		{"end before start", NewPeriod(time.March, 2025), NewPeriod(time.January, 2025), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.MonthsUntil(tt.to); got != tt.want {
				t.Errorf("MonthsUntil(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2025-03")
	if err != nil {
		t.Fatalf("ParsePeriod returned error: %v", err)
	}
	if p.Month != time.March || p.Year != 2025 {
		t.Errorf("ParsePeriod = %v, want 2025-03", p)
	}

	if _, err := ParsePeriod("03-2025"); err == nil {
		t.Error("ParsePeriod accepted malformed input")
	}
	if _, err := ParsePeriod("2025-13"); err == nil {
		t.Error("ParsePeriod accepted month 13")
	}
}

func TestPeriod_String(t *testing.T) {
	if got := NewPeriod(time.March, 2025).String(); got != "2025-03" {
		t.Errorf("String() = %q, want %q", got, "2025-03")
	}
}

func TestPeriod_Next(t *testing.T) {
	tests := []struct {
		name string
		in   Period
		want Period
	}{
		{"mid-year", NewPeriod(time.March, 2025), NewPeriod(time.April, 2025)},
		{"year rollover", NewPeriod(time.December, 2024), NewPeriod(time.January, 2025)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Next(); got != tt.want {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMinPeriod(t *testing.T) {
	early := NewPeriod(time.January, 2025)
	late := NewPeriod(time.June, 2025)

	if got := MinPeriod(early, late); got != early {
		t.Errorf("MinPeriod = %v, want %v", got, early)
	}
	if got := MinPeriod(late, early); got != early {
		t.Errorf("MinPeriod = %v, want %v", got, early)
	}
	if got := MinPeriod(early, early); got != early {
		t.Errorf("MinPeriod = %v, want %v", got, early)
	}
}
