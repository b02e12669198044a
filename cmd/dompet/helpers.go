package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dompet-app/dompet/internal/config"
	"github.com/dompet-app/dompet/internal/model"
	"github.com/dompet-app/dompet/internal/report"
	"github.com/dompet-app/dompet/internal/service"
	"github.com/dompet-app/dompet/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/dompet/dompet.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// resolvePeriod decides which period a command operates on: an
// explicit --period flag wins, then the persisted selection, then the
// current calendar month.
func resolvePeriod(ctx context.Context, cmd *cobra.Command, store service.Storage) (model.Period, error) {
	if flag, err := cmd.Flags().GetString("period"); err == nil && flag != "" {
		return model.ParsePeriod(flag)
	}
	if flag, err := cmd.Root().PersistentFlags().GetString("period"); err == nil && flag != "" {
		return model.ParsePeriod(flag)
	}

	saved, err := store.GetSelectedPeriod(ctx)
	if err != nil {
		return model.Period{}, fmt.Errorf("failed to read period selection: %w", err)
	}
	if saved != nil {
		return *saved, nil
	}
	return model.CurrentPeriod(), nil
}

// reportOptions reads the presentation thresholds from config.
func reportOptions() report.Options {
	return report.Options{
		StatusMargin: viper.GetFloat64("report.status_margin"),
	}
}

// currencySymbol reads the display currency prefix from config.
func currencySymbol() string {
	symbol := viper.GetString("currency.symbol")
	if symbol == "" {
		symbol = "Rp"
	}
	return symbol
}
