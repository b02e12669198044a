// Package storage provides the SQLite persistence layer for the
// dompet application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dompet-app/dompet/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidPeriod      = errors.New("invalid period")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidTarget      = errors.New("invalid target")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validatePeriod ensures the period carries a real calendar month.
func validatePeriod(p model.Period) error {
	if p.Month < time.January || p.Month > time.December {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, p.Month)
	}
	if p.Year <= 0 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, p.Year)
	}
	return nil
}

// validateTransactions validates a slice of transactions.
func validateTransactions(txns []model.Transaction) error {
	if txns == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(txns) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}

	for i, txn := range txns {
		if err := validateTransaction(&txn); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

// validateTransaction validates a single transaction.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if !model.ValidKind(txn.Kind) {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, txn.Kind)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if txn.Kind == model.KindTransfer && txn.TargetID == 0 {
		return fmt.Errorf("%w: transfer without target", ErrInvalidTransaction)
	}
	if txn.Kind != model.KindTransfer && txn.TargetID != 0 {
		return fmt.Errorf("%w: target set on non-transfer", ErrInvalidTransaction)
	}
	return nil
}

// validateCategory validates a category before persistence.
func validateCategory(cat *model.Category) error {
	if cat == nil {
		return fmt.Errorf("%w: category", ErrNilParameter)
	}
	if strings.TrimSpace(cat.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	if cat.Kind != model.CategoryIncome && cat.Kind != model.CategoryExpense {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidCategory, cat.Kind)
	}
	if cat.BudgetLimit < 0 {
		return fmt.Errorf("%w: negative budget limit", ErrInvalidCategory)
	}
	return validatePeriod(cat.Period())
}

// validateTarget validates a savings target before persistence.
func validateTarget(target *model.Target) error {
	if target == nil {
		return fmt.Errorf("%w: target", ErrNilParameter)
	}
	if strings.TrimSpace(target.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTarget)
	}
	if target.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTarget)
	}
	start, end := target.Window()
	if err := validatePeriod(start); err != nil {
		return err
	}
	if err := validatePeriod(end); err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("%w: window ends before it starts", ErrInvalidTarget)
	}
	return nil
}
