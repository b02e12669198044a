package model

import (
	"testing"
	"time"
)

func quarterTarget() Target {
	return Target{
		ID:         1,
		Name:       "Dana darurat",
		Amount:     900_000,
		StartMonth: time.January,
		StartYear:  2025,
		EndMonth:   time.March,
		EndYear:    2025,
	}
}

func TestTarget_IsActiveIn(t *testing.T) {
	target := quarterTarget()

	tests := []struct {
		name   string
		period Period
		want   bool
	}{
		{"month before the window", NewPeriod(time.December, 2024), false},
		{"first month", NewPeriod(time.January, 2025), true},
		{"middle month", NewPeriod(time.February, 2025), true},
		{"last month", NewPeriod(time.March, 2025), true},
		{"month after the window", NewPeriod(time.April, 2025), false},
		{"same month next year", NewPeriod(time.February, 2026), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := target.IsActiveIn(tt.period); got != tt.want {
				t.Errorf("IsActiveIn(%v) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}

func TestTarget_WindowEndsOnTrueLastDay(t *testing.T) {
	// A window ending in a 30-day month must not leak into the next
	// month: the first day of the following month is outside.
	target := Target{
		Amount:     100_000,
		StartMonth: time.April,
		StartYear:  2025,
		EndMonth:   time.April,
		EndYear:    2025,
	}

	if !target.IsActiveIn(NewPeriod(time.April, 2025)) {
		t.Error("target inactive in its only month")
	}
	if target.IsActiveIn(NewPeriod(time.May, 2025)) {
		t.Error("window leaked into the following month")
	}
}

func TestTarget_TotalMonths(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   int
	}{
		{"three months", quarterTarget(), 3},
		{
			"single month",
			Target{StartMonth: time.June, StartYear: 2025, EndMonth: time.June, EndYear: 2025},
			1,
		},
		{
			"across years",
			Target{StartMonth: time.November, StartYear: 2024, EndMonth: time.February, EndYear: 2025},
			4,
		},
		{
			"inverted window",
			Target{StartMonth: time.March, StartYear: 2025, EndMonth: time.January, EndYear: 2025},
			-1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.TotalMonths(); got != tt.want {
				t.Errorf("TotalMonths() = %d, want %d", got, tt.want)
			}
		})
	}
}
