package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/dompet-app/dompet/internal/common"
	"github.com/dompet-app/dompet/internal/model"
)

const targetColumns = `id, name, amount, start_month, start_year, end_month, end_year, created_at`

// CreateTarget creates a savings target.
func (s *SQLiteStorage) CreateTarget(ctx context.Context, target *model.Target) (*model.Target, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	created := *target
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO targets (name, amount, start_month, start_year, end_month, end_year, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		created.Name, created.Amount,
		int(created.StartMonth), created.StartYear,
		int(created.EndMonth), created.EndYear,
		created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create target: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get target id: %w", err)
	}
	created.ID = id

	slog.Info("created target", "name", created.Name, "amount", created.Amount)
	return &created, nil
}

// GetTargets returns all savings targets, newest first.
func (s *SQLiteStorage) GetTargets(ctx context.Context) ([]model.Target, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + targetColumns + ` FROM targets ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query targets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var targets []model.Target
	for rows.Next() {
		target, scanErr := scanTarget(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan target: %w", scanErr)
		}
		targets = append(targets, *target)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating targets: %w", err)
	}

	slog.Debug("retrieved targets", "count", len(targets))
	return targets, nil
}

// GetTargetByID returns a single target, or ErrNotFound.
func (s *SQLiteStorage) GetTargetByID(ctx context.Context, id int64) (*model.Target, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + targetColumns + ` FROM targets WHERE id = ?`
	target, err := scanTarget(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: target %d", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query target: %w", err)
	}
	return target, nil
}

// DeleteTarget removes a target by id. Transfer transactions that
// reference it are kept; their amounts still count toward lifetime
// savings.
func (s *SQLiteStorage) DeleteTarget(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM targets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete target: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: target %d", common.ErrNotFound, id)
	}
	return nil
}

func scanTarget(row rowScanner) (*model.Target, error) {
	var target model.Target
	var startMonth, endMonth int
	if err := row.Scan(
		&target.ID, &target.Name, &target.Amount,
		&startMonth, &target.StartYear,
		&endMonth, &target.EndYear,
		&target.CreatedAt,
	); err != nil {
		return nil, err
	}
	target.StartMonth = time.Month(startMonth)
	target.EndMonth = time.Month(endMonth)
	return &target, nil
}
