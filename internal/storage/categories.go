package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dompet-app/dompet/internal/common"
	"github.com/dompet-app/dompet/internal/model"
)

const categoryColumns = `id, name, kind, budget_limit, color, month, year, created_at`

// CreateCategory creates a category inside its period. Names are
// unique per period; a clash reports ErrDuplicateEntry.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, cat *model.Category) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateCategory(cat); err != nil {
		return nil, err
	}

	created := *cat
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, kind, budget_limit, color, month, year, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		created.Name, string(created.Kind), created.BudgetLimit,
		created.Color, int(created.Month), created.Year, created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("%w: category %q in %s", common.ErrDuplicateEntry, created.Name, created.Period())
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category id: %w", err)
	}
	created.ID = id

	slog.Info("created category", "name", created.Name, "period", created.Period().String())
	return &created, nil
}

// GetCategoriesByPeriod returns the categories belonging to a period,
// ordered by name.
func (s *SQLiteStorage) GetCategoriesByPeriod(ctx context.Context, p model.Period) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validatePeriod(p); err != nil {
		return nil, err
	}

	query := `SELECT ` + categoryColumns + ` FROM categories
		WHERE month = ? AND year = ?
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, int(p.Month), p.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		cat, scanErr := scanCategory(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan category: %w", scanErr)
		}
		categories = append(categories, *cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "period", p.String(), "count", len(categories))
	return categories, nil
}

// GetCategoryByName returns a period's category by exact name, or nil
// when absent.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string, p model.Period) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}
	if err := validatePeriod(p); err != nil {
		return nil, err
	}

	query := `SELECT ` + categoryColumns + ` FROM categories
		WHERE name = ? AND month = ? AND year = ?`

	cat, err := scanCategory(s.db.QueryRowContext(ctx, query, name, int(p.Month), p.Year))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	return cat, nil
}

// UpdateCategory updates a category's name, budget limit, and color.
// The period a category belongs to never changes.
func (s *SQLiteStorage) UpdateCategory(ctx context.Context, cat *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(cat); err != nil {
		return err
	}
	if cat.ID == 0 {
		return fmt.Errorf("%w: missing id", ErrInvalidCategory)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, budget_limit = ?, color = ?
		WHERE id = ?`,
		cat.Name, cat.BudgetLimit, cat.Color, cat.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: category %q in %s", common.ErrDuplicateEntry, cat.Name, cat.Period())
		}
		return fmt.Errorf("failed to update category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: category %d", common.ErrNotFound, cat.ID)
	}
	return nil
}

// DeleteCategory removes a category by id. Transactions keep their
// denormalized category name; nothing cascades.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: category %d", common.ErrNotFound, id)
	}
	return nil
}

// CopyCategories duplicates every category of one period into another
// as fresh rows with no lineage to the source. Names already present
// in the destination period are skipped. Returns the number copied.
func (s *SQLiteStorage) CopyCategories(ctx context.Context, from, to model.Period) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validatePeriod(from); err != nil {
		return 0, err
	}
	if err := validatePeriod(to); err != nil {
		return 0, err
	}
	if from == to {
		return 0, fmt.Errorf("%w: source and destination are the same period", ErrInvalidPeriod)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO categories (name, kind, budget_limit, color, month, year, created_at)
		SELECT name, kind, budget_limit, color, ?, ?, ?
		FROM categories src
		WHERE src.month = ? AND src.year = ?
		AND NOT EXISTS (
			SELECT 1 FROM categories dst
			WHERE dst.name = src.name AND dst.month = ? AND dst.year = ?
		)`,
		int(to.Month), to.Year, time.Now().UTC(),
		int(from.Month), from.Year,
		int(to.Month), to.Year,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy categories: %w", err)
	}

	copied, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check copy result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit copy: %w", err)
	}

	slog.Info("copied categories", "from", from.String(), "to", to.String(), "count", copied)
	return int(copied), nil
}

func scanCategory(row rowScanner) (*model.Category, error) {
	var cat model.Category
	var kind string
	var month int
	if err := row.Scan(
		&cat.ID, &cat.Name, &kind, &cat.BudgetLimit,
		&cat.Color, &month, &cat.Year, &cat.CreatedAt,
	); err != nil {
		return nil, err
	}
	cat.Kind = model.CategoryKind(kind)
	cat.Month = time.Month(month)
	return &cat, nil
}
