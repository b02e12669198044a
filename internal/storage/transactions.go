package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dompet-app/dompet/internal/common"
	"github.com/dompet-app/dompet/internal/model"
	"github.com/dompet-app/dompet/internal/service"
)

const transactionColumns = `id, kind, amount, description, category, date, target_id, created_at`

// SaveTransactions saves multiple transactions in one database
// transaction, retrying on transient lock contention.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, txns []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(txns); err != nil {
		return err
	}

	return common.WithRetry(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO transactions (`+transactionColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, txn := range txns {
			if _, err := stmt.ExecContext(ctx,
				txn.ID, string(txn.Kind), txn.Amount, txn.Description,
				txn.Category, txn.Date, txn.TargetID, txn.CreatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
			}
		}

		return tx.Commit()
	}, service.RetryOptions{})
}

// GetTransactions returns the full transaction history, oldest first.
// The reporting engine scopes and re-sorts as needed.
func (s *SQLiteStorage) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date, created_at`
	return s.queryTransactions(ctx, query)
}

// GetTransactionsByPeriod returns the transactions dated inside the
// given period, oldest first.
func (s *SQLiteStorage) GetTransactionsByPeriod(ctx context.Context, p model.Period) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validatePeriod(p); err != nil {
		return nil, err
	}

	first, _ := p.Bounds()
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE date >= ? AND date < ?
		ORDER BY date, created_at`
	return s.queryTransactions(ctx, query, first, first.AddDate(0, 1, 0))
}

// GetTransactionsByFilter returns transactions matching the filter,
// oldest first.
func (s *SQLiteStorage) GetTransactionsByFilter(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var conditions []string
	var args []any
	if filter.StartDate != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.Kind != "" {
		if !model.ValidKind(filter.Kind) {
			return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, filter.Kind)
		}
		conditions = append(conditions, "kind = ?")
		args = append(args, string(filter.Kind))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date, created_at"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	return s.queryTransactions(ctx, query, args...)
}

// GetTransactionByID returns a single transaction, or ErrNotFound.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	txn, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	return txn, nil
}

// DeleteTransaction removes a transaction by id.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %s", common.ErrNotFound, id)
	}

	slog.Debug("deleted transaction", "id", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var txn model.Transaction
	var kind string
	if err := row.Scan(
		&txn.ID, &kind, &txn.Amount, &txn.Description,
		&txn.Category, &txn.Date, &txn.TargetID, &txn.CreatedAt,
	); err != nil {
		return nil, err
	}
	txn.Kind = model.TransactionKind(kind)
	return &txn, nil
}

func (s *SQLiteStorage) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", scanErr)
		}
		txns = append(txns, *txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	slog.Debug("retrieved transactions", "count", len(txns))
	return txns, nil
}
