package model

import "time"

// CategoryKind indicates whether a category groups income or expenses.
type CategoryKind string

const (
	// CategoryIncome groups income transactions.
	CategoryIncome CategoryKind = "income"
	// CategoryExpense groups expense transactions.
	CategoryExpense CategoryKind = "expense"
)

// Category is a per-period grouping for transactions. Names are unique
// within a period only; recreating a category in a new period produces
// a distinct entity with no lineage to the old one. BudgetLimit is a
// monthly spending ceiling in the smallest currency denomination; zero
// means no budget. It is only meaningful for expense categories.
type Category struct {
	CreatedAt   time.Time
	Name        string
	Kind        CategoryKind
	Color       string
	ID          int64
	BudgetLimit int64
	Month       time.Month
	Year        int
}

// Period returns the period this category belongs to.
func (c Category) Period() Period {
	return Period{Month: c.Month, Year: c.Year}
}

// HasBudget reports whether the category defines a spending ceiling.
func (c Category) HasBudget() bool {
	return c.Kind == CategoryExpense && c.BudgetLimit > 0
}
