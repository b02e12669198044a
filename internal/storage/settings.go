package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dompet-app/dompet/internal/model"
)

// selectedPeriodKey is the settings row holding the user's period
// selection, persisted across sessions.
const selectedPeriodKey = "selected_period"

// GetSelectedPeriod returns the persisted period selection, or nil if
// the user never set one.
func (s *SQLiteStorage) GetSelectedPeriod(ctx context.Context) (*model.Period, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, selectedPeriodKey,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query selected period: %w", err)
	}

	p, err := model.ParsePeriod(value)
	if err != nil {
		return nil, fmt.Errorf("corrupt selected period setting: %w", err)
	}
	return &p, nil
}

// SetSelectedPeriod persists the period selection.
func (s *SQLiteStorage) SetSelectedPeriod(ctx context.Context, p model.Period) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePeriod(p); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		selectedPeriodKey, p.String(), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to persist selected period: %w", err)
	}
	return nil
}
