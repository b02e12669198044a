package model

import "time"

// Target is a savings goal: a fixed amount to accumulate across an
// inclusive range of calendar months.
type Target struct {
	CreatedAt  time.Time
	Name       string
	ID         int64
	Amount     int64
	StartMonth time.Month
	StartYear  int
	EndMonth   time.Month
	EndYear    int
}

// Window returns the first and last period of the target's active range.
func (t Target) Window() (start, end Period) {
	start = Period{Month: t.StartMonth, Year: t.StartYear}
	end = Period{Month: t.EndMonth, Year: t.EndYear}
	return start, end
}

// IsActiveIn reports whether the period falls inside the target's
// window, inclusive on both ends. The window ends on the true last day
// of the end month.
func (t Target) IsActiveIn(p Period) bool {
	start, end := t.Window()
	return !p.Before(start) && !p.After(end)
}

// TotalMonths returns the inclusive month count of the window. A
// malformed window (end before start) yields zero or a negative count.
func (t Target) TotalMonths() int {
	start, end := t.Window()
	return start.MonthsUntil(end)
}
