package report

import "github.com/dompet-app/dompet/internal/model"

// BudgetStatus classifies how much of a category's budget is consumed.
type BudgetStatus string

const (
	// BudgetNone means the category defines no budget and is not
	// classified at all.
	BudgetNone BudgetStatus = ""
	// BudgetSafe means consumption is below the warning threshold.
	BudgetSafe BudgetStatus = "safe"
	// BudgetWarning means consumption reached the warning threshold.
	BudgetWarning BudgetStatus = "warning"
	// BudgetOver means consumption reached or exceeded the limit.
	BudgetOver BudgetStatus = "over"
)

// warningPercent is the consumption level at which a budget is flagged
// before it is actually exceeded.
const warningPercent = 80

// BudgetReport describes one category's budget consumption for a
// period. Percent is unclamped and drives status classification;
// DisplayPercent is clamped to [0,100] for progress-bar rendering.
// Collapsing the two loses the over-100 signal, so both are kept.
type BudgetReport struct {
	Category       model.Category
	Spending       int64
	Percent        float64
	DisplayPercent float64
	Status         BudgetStatus
}

// EvaluateBudget computes budget consumption for a category given its
// period spending. Categories without a budget (including all income
// categories) report zero percentages and no status.
func EvaluateBudget(cat model.Category, spending int64) BudgetReport {
	r := BudgetReport{Category: cat, Spending: spending}
	if !cat.HasBudget() {
		return r
	}

	r.Percent = float64(spending) / float64(cat.BudgetLimit) * 100
	r.DisplayPercent = clampPercent(r.Percent)

	switch {
	case r.Percent >= 100:
		r.Status = BudgetOver
	case r.Percent >= warningPercent:
		r.Status = BudgetWarning
	default:
		r.Status = BudgetSafe
	}
	return r
}

// TotalBudget sums the budget limits of every expense category that
// defines one. Categories without a limit contribute nothing.
func TotalBudget(categories []model.Category) int64 {
	var total int64
	for _, cat := range categories {
		if cat.HasBudget() {
			total += cat.BudgetLimit
		}
	}
	return total
}

func clampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
