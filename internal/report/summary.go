// Package report computes period-scoped financial aggregates, budget
// consumption, and savings-target progress from in-memory collections.
// Every function is pure: the period is always an explicit argument and
// results are recomputed on each call.
package report

import (
	"sort"

	"github.com/dompet-app/dompet/internal/model"
)

// Summary holds the aggregate totals for a single period. Transfers
// into savings targets are internal movement and never count toward
// income or expense.
type Summary struct {
	Income  int64
	Expense int64
	Balance int64
}

// Aggregate computes the income, expense, and balance totals for the
// given period. Non-positive amounts are summed as-is; boundary
// validation is the caller's concern.
func Aggregate(txns []model.Transaction, p model.Period) Summary {
	var s Summary
	for _, txn := range txns {
		if !p.Contains(txn.Date) {
			continue
		}
		switch txn.Kind {
		case model.KindIncome:
			s.Income += txn.Amount
		case model.KindExpense:
			s.Expense += txn.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}

// TotalSavings sums transfer amounts across the entire transaction
// history. Unlike income and expense this is deliberately not scoped
// to a period: lifetime savings are an all-time figure.
func TotalSavings(txns []model.Transaction) int64 {
	var total int64
	for _, txn := range txns {
		if txn.Kind == model.KindTransfer {
			total += txn.Amount
		}
	}
	return total
}

// RecentTransactions returns up to n of the period's transactions,
// newest first. Equal dates keep their relative collection order, so
// an insertion-ordered input stays insertion-ordered within a day.
// n <= 0 returns all of the period's transactions.
func RecentTransactions(txns []model.Transaction, p model.Period, n int) []model.Transaction {
	var scoped []model.Transaction
	for _, txn := range txns {
		if p.Contains(txn.Date) {
			scoped = append(scoped, txn)
		}
	}
	sort.SliceStable(scoped, func(i, j int) bool {
		return scoped[i].Date.After(scoped[j].Date)
	})
	if n > 0 && len(scoped) > n {
		scoped = scoped[:n]
	}
	return scoped
}

// SpendingByCategory sums the period's expenses whose category name
// matches exactly (case-sensitive).
func SpendingByCategory(txns []model.Transaction, p model.Period, category string) int64 {
	var total int64
	for _, txn := range txns {
		if txn.Kind != model.KindExpense || txn.Category != category {
			continue
		}
		if p.Contains(txn.Date) {
			total += txn.Amount
		}
	}
	return total
}
