package model

import (
	"fmt"
	"time"
)

// Period is a calendar month used to scope transaction and category
// queries. It is derived state, never stored as an entity.
type Period struct {
	Month time.Month
	Year  int
}

// NewPeriod creates a period for the given 1-indexed month and year.
func NewPeriod(month time.Month, year int) Period {
	return Period{Month: month, Year: year}
}

// PeriodOf returns the period a date falls in.
func PeriodOf(t time.Time) Period {
	return Period{Month: t.Month(), Year: t.Year()}
}

// CurrentPeriod returns the period containing the current wall-clock date.
func CurrentPeriod() Period {
	return PeriodOf(time.Now())
}

// ParsePeriod parses a period in "2006-01" form.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q (want YYYY-MM): %w", s, err)
	}
	return PeriodOf(t), nil
}

// String formats the period as "2006-01".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Contains reports whether the date falls inside this period. The
// comparison uses the date's own calendar month and year fields only.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// Bounds returns the first and last calendar day of the period. The
// last day is computed as day zero of the following month, which
// handles 28/29/30/31-day months and leap years.
func (p Period) Bounds() (first, last time.Time) {
	first = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	last = time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last
}

// ordinal maps the period onto a single month axis for comparison.
func (p Period) ordinal() int {
	return p.Year*12 + int(p.Month) - 1
}

// Before reports whether p is strictly earlier than other.
func (p Period) Before(other Period) bool {
	return p.ordinal() < other.ordinal()
}

// After reports whether p is strictly later than other.
func (p Period) After(other Period) bool {
	return p.ordinal() > other.ordinal()
}

// MonthsUntil returns the inclusive month count from p through other.
// A result of 1 means the same month; the result is zero or negative
// when other precedes p.
func (p Period) MonthsUntil(other Period) int {
	return other.ordinal() - p.ordinal() + 1
}

// Next returns the period one month later.
func (p Period) Next() Period {
	first, _ := p.Bounds()
	return PeriodOf(first.AddDate(0, 1, 0))
}

// MinPeriod returns the earlier of two periods.
func MinPeriod(a, b Period) Period {
	if b.Before(a) {
		return b
	}
	return a
}
