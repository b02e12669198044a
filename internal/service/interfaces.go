// Package service defines the contracts between the CLI surface, the
// reporting engine, and the persistence layer.
package service

import (
	"context"
	"time"

	"github.com/dompet-app/dompet/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
// A nil field means no constraint.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Kind      model.TransactionKind
	Limit     int
}

// Storage defines the contract for the persistence layer. The engine
// only ever reads; all writes come from the CLI commands, which then
// trigger a re-read.
type Storage interface {
	// Transaction operations
	SaveTransactions(ctx context.Context, txns []model.Transaction) error
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransactionsByFilter(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	GetTransactionsByPeriod(ctx context.Context, p model.Period) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	// Category operations (period-scoped)
	CreateCategory(ctx context.Context, cat *model.Category) (*model.Category, error)
	GetCategoriesByPeriod(ctx context.Context, p model.Period) ([]model.Category, error)
	GetCategoryByName(ctx context.Context, name string, p model.Period) (*model.Category, error)
	UpdateCategory(ctx context.Context, cat *model.Category) error
	DeleteCategory(ctx context.Context, id int64) error
	CopyCategories(ctx context.Context, from, to model.Period) (int, error)

	// Target operations
	CreateTarget(ctx context.Context, target *model.Target) (*model.Target, error)
	GetTargets(ctx context.Context) ([]model.Target, error)
	GetTargetByID(ctx context.Context, id int64) (*model.Target, error)
	DeleteTarget(ctx context.Context, id int64) error

	// Persisted UI preferences
	GetSelectedPeriod(ctx context.Context) (*model.Period, error)
	SetSelectedPeriod(ctx context.Context, p model.Period) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for storage I/O. The
// reporting engine itself never retries; only the persistence layer
// does.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
