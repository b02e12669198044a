package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dompet-app/dompet/internal/cli"
	"github.com/dompet-app/dompet/internal/report"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the selected period's financial snapshot",
		Long: `Display the period dashboard: income, expenses, balance, lifetime
savings, per-category budget consumption, and progress for every
savings target active in the period.`,
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	period, err := resolvePeriod(ctx, cmd, store)
	if err != nil {
		return err
	}

	svc := report.NewService(store, reportOptions())
	snap, err := svc.Snapshot(ctx, period)
	if err != nil {
		// A failed read renders as an empty period rather than crashing.
		fmt.Println(cli.FormatWarning(fmt.Sprintf("Could not read storage: %v", err)))
	}

	symbol := currencySymbol()

	var summary strings.Builder
	fmt.Fprintf(&summary, "Income:   %s\n", cli.FormatCurrency(symbol, snap.Summary.Income))
	fmt.Fprintf(&summary, "Expenses: %s\n", cli.FormatCurrency(symbol, snap.Summary.Expense))
	fmt.Fprintf(&summary, "Balance:  %s\n", cli.FormatCurrency(symbol, snap.Summary.Balance))
	fmt.Fprintf(&summary, "Saved (all time): %s", cli.FormatCurrency(symbol, snap.TotalSavings))
	fmt.Println(cli.RenderBox(cli.ChartIcon+" "+period.String(), summary.String()))

	if len(snap.Budgets) > 0 {
		var budgets strings.Builder
		fmt.Fprintf(&budgets, "Total budget: %s\n\n", cli.FormatCurrency(symbol, snap.TotalBudget))
		for _, br := range snap.Budgets {
			if br.Status == report.BudgetNone {
				fmt.Fprintf(&budgets, "%-18s %s  %s\n",
					br.Category.Name,
					cli.FormatCurrency(symbol, br.Spending),
					cli.SubtleStyle.Render("(no budget)"))
				continue
			}
			fmt.Fprintf(&budgets, "%-18s %s  %s of %s (%.0f%%) %s\n",
				br.Category.Name,
				cli.RenderBar(br.DisplayPercent, 16),
				cli.FormatCurrency(symbol, br.Spending),
				cli.FormatCurrency(symbol, br.Category.BudgetLimit),
				br.Percent,
				formatBudgetStatus(br.Status))
		}
		fmt.Println(cli.RenderBox("Budgets", strings.TrimRight(budgets.String(), "\n")))
	}

	for _, pr := range snap.Targets {
		fmt.Println(renderProgress(pr))
	}

	if len(snap.Recent) > 0 {
		var recent strings.Builder
		for _, txn := range snap.Recent {
			fmt.Fprintf(&recent, "%s  %-8s %s  %s\n",
				txn.Date.Format("2006-01-02"), txn.Kind,
				cli.FormatCurrency(symbol, txn.Amount), txn.Description)
		}
		fmt.Println(cli.RenderBox("Recent transactions", strings.TrimRight(recent.String(), "\n")))
	}

	return nil
}

func formatBudgetStatus(status report.BudgetStatus) string {
	switch status {
	case report.BudgetOver:
		return cli.ErrorStyle.Render("over")
	case report.BudgetWarning:
		return cli.WarningStyle.Render("warning")
	case report.BudgetSafe:
		return cli.SuccessStyle.Render("safe")
	default:
		return ""
	}
}
