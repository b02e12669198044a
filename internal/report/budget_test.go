package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dompet-app/dompet/internal/model"
)

func expenseCategory(limit int64) model.Category {
	return model.Category{
		ID:          1,
		Name:        "Belanja",
		Kind:        model.CategoryExpense,
		BudgetLimit: limit,
		Month:       time.January,
		Year:        2025,
	}
}

func TestEvaluateBudget_OverBudgetKeepsRawPercent(t *testing.T) {
	got := EvaluateBudget(expenseCategory(500_000), 600_000)

	assert.InDelta(t, 120.0, got.Percent, 0.001, "raw percent must exceed 100")
	assert.Equal(t, 100.0, got.DisplayPercent, "display percent clamps at 100")
	assert.Equal(t, BudgetOver, got.Status)
}

func TestEvaluateBudget_Thresholds(t *testing.T) {
	tests := []struct {
		name     string
		spending int64
		want     BudgetStatus
	}{
		{"well under budget", 100_000, BudgetSafe},
		{"just under warning", 399_999, BudgetSafe},
		{"at warning threshold", 400_000, BudgetWarning},
		{"just under the limit", 499_999, BudgetWarning},
		{"exactly at the limit", 500_000, BudgetOver},
		{"past the limit", 700_000, BudgetOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateBudget(expenseCategory(500_000), tt.spending)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestEvaluateBudget_DisplayPercentStaysInRange(t *testing.T) {
	for _, spending := range []int64{-100_000, 0, 250_000, 500_000, 5_000_000} {
		got := EvaluateBudget(expenseCategory(500_000), spending)
		assert.GreaterOrEqual(t, got.DisplayPercent, 0.0)
		assert.LessOrEqual(t, got.DisplayPercent, 100.0)
	}
}

func TestEvaluateBudget_NoBudgetMeansNoStatus(t *testing.T) {
	got := EvaluateBudget(expenseCategory(0), 600_000)

	assert.Equal(t, BudgetNone, got.Status)
	assert.Zero(t, got.Percent)
	assert.Zero(t, got.DisplayPercent)
}

func TestEvaluateBudget_IncomeCategoryIsNeverClassified(t *testing.T) {
	cat := model.Category{
		Name:        "Gaji",
		Kind:        model.CategoryIncome,
		BudgetLimit: 500_000, // semantically unused on income categories
		Month:       time.January,
		Year:        2025,
	}

	got := EvaluateBudget(cat, 600_000)
	assert.Equal(t, BudgetNone, got.Status)
}

func TestTotalBudget(t *testing.T) {
	categories := []model.Category{
		{Name: "Belanja", Kind: model.CategoryExpense, BudgetLimit: 500_000},
		{Name: "Transport", Kind: model.CategoryExpense, BudgetLimit: 200_000},
		{Name: "Jajan", Kind: model.CategoryExpense}, // no budget
		{Name: "Gaji", Kind: model.CategoryIncome, BudgetLimit: 1_000_000},
	}

	assert.Equal(t, int64(700_000), TotalBudget(categories))
	assert.Zero(t, TotalBudget(nil))
}
