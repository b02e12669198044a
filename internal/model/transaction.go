package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind discriminates the three kinds of money movement.
type TransactionKind string

const (
	// KindIncome represents money coming in.
	KindIncome TransactionKind = "income"
	// KindExpense represents money going out.
	KindExpense TransactionKind = "expense"
	// KindTransfer represents money moved into a savings target. It is
	// internal movement and never counts toward income or expense.
	KindTransfer TransactionKind = "transfer"
)

// Transaction represents a single recorded money movement. Amounts are
// integers in the smallest currency denomination. TargetID is set only
// when Kind is KindTransfer; the constructors maintain that pairing.
type Transaction struct {
	Date        time.Time
	CreatedAt   time.Time
	ID          string
	Kind        TransactionKind
	Description string
	Category    string // denormalized category name, not a foreign key
	Amount      int64
	TargetID    int64
}

// NewIncome records an income transaction.
func NewIncome(amount int64, description, category string, date time.Time) Transaction {
	return newTransaction(KindIncome, amount, description, category, date, 0)
}

// NewExpense records an expense transaction.
func NewExpense(amount int64, description, category string, date time.Time) Transaction {
	return newTransaction(KindExpense, amount, description, category, date, 0)
}

// NewTransfer records a transfer into the given savings target. The
// category field carries a display label for transfers, not a category
// reference.
func NewTransfer(amount int64, description string, targetID int64, date time.Time) Transaction {
	return newTransaction(KindTransfer, amount, description, "Tabungan", date, targetID)
}

func newTransaction(kind TransactionKind, amount int64, description, category string, date time.Time, targetID int64) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
		TargetID:    targetID,
		CreatedAt:   time.Now().UTC(),
	}
}

// ValidKind reports whether the kind is one of the three known kinds.
func ValidKind(kind TransactionKind) bool {
	switch kind {
	case KindIncome, KindExpense, KindTransfer:
		return true
	}
	return false
}
