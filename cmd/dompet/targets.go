package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dompet-app/dompet/internal/cli"
	"github.com/dompet-app/dompet/internal/model"
	"github.com/dompet-app/dompet/internal/report"
)

func targetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Manage savings targets",
		Long: `Create and track savings targets: a fixed amount to accumulate across
an inclusive range of months. Progress counts each month's positive
balance; losing months contribute nothing and never reduce savings.`,
	}

	cmd.AddCommand(listTargetsCmd())
	cmd.AddCommand(addTargetCmd())
	cmd.AddCommand(deleteTargetCmd())
	cmd.AddCommand(targetProgressCmd())

	return cmd
}

func listTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all savings targets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			targets, err := store.GetTargets(ctx)
			if err != nil {
				return fmt.Errorf("failed to get targets: %w", err)
			}

			if len(targets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No savings targets. Use 'dompet targets add' to create one."))
				return nil
			}

			symbol := currencySymbol()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", "ID", "NAME", "AMOUNT", "FROM", "UNTIL")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4), strings.Repeat("-", 20), strings.Repeat("-", 14),
				strings.Repeat("-", 7), strings.Repeat("-", 7))

			for _, target := range targets {
				start, end := target.Window()
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					target.ID, target.Name,
					cli.FormatCurrency(symbol, target.Amount),
					start, end)
			}

			return nil
		},
	}
}

func addTargetCmd() *cobra.Command {
	var (
		amount int64
		from   string
		until  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a savings target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if amount <= 0 {
				return fmt.Errorf("--amount must be positive")
			}
			start, err := model.ParsePeriod(from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			end, err := model.ParsePeriod(until)
			if err != nil {
				return fmt.Errorf("invalid --until: %w", err)
			}
			if end.Before(start) {
				return fmt.Errorf("target window ends (%s) before it starts (%s)", end, start)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			target := &model.Target{
				Name:       args[0],
				Amount:     amount,
				StartMonth: start.Month,
				StartYear:  start.Year,
				EndMonth:   end.Month,
				EndYear:    end.Year,
				CreatedAt:  time.Now().UTC(),
			}

			created, err := store.CreateTarget(ctx, target)
			if err != nil {
				return fmt.Errorf("failed to create target: %w", err)
			}

			months := created.TotalMonths()
			pace := created.Amount / int64(months)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Created target %q: %s over %d months (~%s/month, ID: %d)",
				created.Name, cli.FormatCurrency(currencySymbol(), created.Amount),
				months, cli.FormatCurrency(currencySymbol(), pace), created.ID)))
			return nil
		},
	}

	cmd.Flags().Int64VarP(&amount, "amount", "a", 0, "target amount (smallest denomination)")
	cmd.Flags().StringVar(&from, "from", "", "first month of the window (YYYY-MM)")
	cmd.Flags().StringVar(&until, "until", "", "last month of the window (YYYY-MM)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("until")

	return cmd
}

func deleteTargetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a savings target",
		Long: `Delete a target. Transfers already recorded against it are kept and
still count toward lifetime savings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid target id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTarget(ctx, id); err != nil {
				return fmt.Errorf("failed to delete target: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted target %d", id)))
			return nil
		},
	}
}

func targetProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show progress for targets active in the selected period",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			targets, err := store.GetTargets(ctx)
			if err != nil {
				return fmt.Errorf("failed to get targets: %w", err)
			}
			txns, err := store.GetTransactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}

			active := report.ActiveTargets(targets, period)
			if len(active) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No targets active in %s.", period)))
				return nil
			}

			opts := reportOptions()
			for _, target := range active {
				pr := report.ComputeProgress(target, txns, period, opts)
				fmt.Println(renderProgress(pr))
			}

			return nil
		},
	}
}

// renderProgress formats one target's progress as a boxed summary.
func renderProgress(pr report.Progress) string {
	symbol := currencySymbol()
	start, end := pr.Target.Window()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  (%s – %s)\n",
		cli.RenderBar(pr.DisplayPercent, 24), formatStatus(pr.Status), start, end)
	fmt.Fprintf(&b, "Saved %s of %s (%.1f%%)\n",
		cli.FormatCurrency(symbol, pr.Saved),
		cli.FormatCurrency(symbol, pr.Target.Amount),
		pr.Percent)
	fmt.Fprintf(&b, "Remaining: %s", cli.FormatCurrency(symbol, pr.Remaining))
	if pr.MonthsRemaining > 0 {
		fmt.Fprintf(&b, "  ·  %d of %d months left  ·  pace %s/month",
			pr.MonthsRemaining, pr.TotalMonths,
			cli.FormatCurrency(symbol, pr.MonthlyTarget))
	}

	return cli.RenderBox(cli.TargetIcon+" "+pr.Target.Name, b.String())
}

func formatStatus(status report.ProgressStatus) string {
	switch status {
	case report.StatusCompleted:
		return cli.FormatSuccess("completed")
	case report.StatusAhead:
		return cli.SuccessStyle.Render("ahead")
	case report.StatusBehind:
		return cli.WarningStyle.Render("behind")
	default:
		return cli.InfoStyle.Render("on track")
	}
}
