package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dompet-app/dompet/internal/cli"
	"github.com/dompet-app/dompet/internal/model"
	"github.com/dompet-app/dompet/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	var (
		dryRun   bool
		category string
	)

	cmd := &cobra.Command{
		Use:   "import <files...>",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) statements exported from
your bank. Credits become income, debits become expenses; savings
transfers are never created by an import.

Examples:
  dompet import ~/Downloads/statement_jan.qfx
  dompet import --category "Belanja" ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var files []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					if _, err := os.Stat(pattern); err == nil {
						files = append(files, pattern)
					} else {
						slog.Warn("No files found matching pattern", "pattern", pattern)
					}
					continue
				}
				files = append(files, matches...)
			}
			if len(files) == 0 {
				return fmt.Errorf("no files to import")
			}

			parser := ofx.NewParser()
			var all []model.Transaction
			for _, file := range files {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", file, err)
				}

				txns, err := parser.ParseFile(ctx, f, category)
				_ = f.Close()
				if err != nil {
					return fmt.Errorf("failed to parse %s: %w", file, err)
				}

				slog.Info("Parsed statement", "file", file, "transactions", len(txns))
				all = append(all, txns...)
			}

			if len(all) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found in the given files."))
				return nil
			}

			if dryRun {
				symbol := currencySymbol()
				for _, txn := range all {
					fmt.Printf("%s  %-8s %s  %s\n",
						txn.Date.Format("2006-01-02"), txn.Kind,
						cli.FormatCurrency(symbol, txn.Amount), txn.Description)
				}
				fmt.Println(cli.FormatInfo(fmt.Sprintf("Dry run: %d transactions not saved.", len(all))))
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveTransactions(ctx, all); err != nil {
				return fmt.Errorf("failed to save imported transactions: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions from %d files.",
				len(all), len(files))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Preview import without saving")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category name for imported transactions")

	return cmd
}
