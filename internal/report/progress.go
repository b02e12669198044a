package report

import "github.com/dompet-app/dompet/internal/model"

// ProgressStatus compares savings progress against elapsed time.
type ProgressStatus string

const (
	// StatusCompleted means the target amount has been reached.
	StatusCompleted ProgressStatus = "completed"
	// StatusAhead means progress exceeds the elapsed-time fraction by
	// more than the configured margin.
	StatusAhead ProgressStatus = "ahead"
	// StatusBehind means progress trails the elapsed-time fraction by
	// more than the configured margin.
	StatusBehind ProgressStatus = "behind"
	// StatusOnTrack means progress is within the margin.
	StatusOnTrack ProgressStatus = "on-track"
)

// DefaultStatusMargin is the band, in percentage points, around the
// elapsed-time fraction inside which a target counts as on-track.
const DefaultStatusMargin = 10

// Options holds the presentation thresholds for status derivation.
type Options struct {
	// StatusMargin is in percentage points; zero or negative selects
	// DefaultStatusMargin.
	StatusMargin float64
}

func (o Options) margin() float64 {
	if o.StatusMargin <= 0 {
		return DefaultStatusMargin
	}
	return o.StatusMargin
}

// Progress is the computed state of one savings target as of a
// selected period. Amounts are in the smallest currency denomination.
type Progress struct {
	Target          model.Target
	Saved           int64
	Remaining       int64
	Percent         float64
	DisplayPercent  float64
	MonthlyTarget   int64
	TotalMonths     int
	MonthsElapsed   int
	MonthsRemaining int
	Completed       bool
	Status          ProgressStatus
}

// ComputeProgress walks every month of the target's window up to the
// selected period and accumulates the positive monthly balances.
// Months that close negative contribute zero rather than reducing the
// running total, so cumulative savings never decrease.
//
// A degenerate target (zero or negative amount, or an inverted window)
// never panics: it reports zero percent, zero remaining, and counts as
// completed.
func ComputeProgress(target model.Target, txns []model.Transaction, selected model.Period, opts Options) Progress {
	pr := Progress{Target: target}

	start, end := target.Window()
	last := model.MinPeriod(selected, end)
	if !last.Before(start) {
		for p := start; ; p = p.Next() {
			if bal := Aggregate(txns, p).Balance; bal > 0 {
				pr.Saved += bal
			}
			if p == last {
				break
			}
		}
	}

	if target.Amount > 0 {
		pr.Percent = float64(pr.Saved) / float64(target.Amount) * 100
	}
	pr.DisplayPercent = clampPercent(pr.Percent)
	pr.Completed = pr.Saved >= target.Amount
	if rem := target.Amount - pr.Saved; rem > 0 {
		pr.Remaining = rem
	}

	pr.TotalMonths = target.TotalMonths()
	pr.MonthsElapsed = start.MonthsUntil(selected)
	if rem := pr.TotalMonths - pr.MonthsElapsed; rem > 0 {
		pr.MonthsRemaining = rem
	}
	if pr.TotalMonths > 0 && target.Amount > 0 {
		pr.MonthlyTarget = target.Amount / int64(pr.TotalMonths)
	}

	pr.Status = deriveStatus(pr, opts.margin())
	return pr
}

// deriveStatus classifies progress against the elapsed-time fraction.
// The unclamped percent is used so progress past 100 still compares
// meaningfully.
func deriveStatus(pr Progress, margin float64) ProgressStatus {
	if pr.Completed {
		return StatusCompleted
	}
	if pr.TotalMonths <= 0 {
		return StatusOnTrack
	}

	expected := float64(pr.MonthsElapsed) / float64(pr.TotalMonths) * 100
	switch {
	case pr.Percent > expected+margin:
		return StatusAhead
	case pr.Percent < expected-margin:
		return StatusBehind
	default:
		return StatusOnTrack
	}
}

// ActiveTargets filters to the targets whose window contains the
// period. Source order is preserved; any re-sorting is the caller's
// concern.
func ActiveTargets(targets []model.Target, p model.Period) []model.Target {
	var active []model.Target
	for _, t := range targets {
		if t.IsActiveIn(p) {
			active = append(active, t)
		}
	}
	return active
}
