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
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Record and manage transactions",
		Long:  `Record income, expenses, and transfers into savings targets, and manage the transaction history.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		kind     string
		category string
		date     string
		targetID int64
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <description>",
		Short: "Record a transaction",
		Long: `Record a single transaction. The amount is an integer in the
smallest currency denomination. Transfers require --target and move
money into a savings target; they never count as income or expense.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			if amount <= 0 {
				return fmt.Errorf("amount must be positive, got %d", amount)
			}
			description := args[1]

			when := time.Now()
			if date != "" {
				when, err = time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", date, err)
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var txn model.Transaction
			switch model.TransactionKind(kind) {
			case model.KindIncome:
				txn = model.NewIncome(amount, description, category, when)
			case model.KindExpense:
				txn = model.NewExpense(amount, description, category, when)
			case model.KindTransfer:
				if targetID == 0 {
					return fmt.Errorf("transfers require --target")
				}
				if _, err := store.GetTargetByID(ctx, targetID); err != nil {
					return fmt.Errorf("unknown target %d: %w", targetID, err)
				}
				txn = model.NewTransfer(amount, description, targetID, when)
			default:
				return fmt.Errorf("invalid type %q (want income, expense, or transfer)", kind)
			}

			if err := store.SaveTransactions(ctx, []model.Transaction{txn}); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s (%s)",
				kind, cli.FormatCurrency(currencySymbol(), amount), txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "expense", "transaction type (income, expense, transfer)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name (denormalized label)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "transaction date (YYYY-MM-DD, default: today)")
	cmd.Flags().Int64Var(&targetID, "target", 0, "savings target id (transfers only)")

	return cmd
}

func listTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the selected period's transactions",
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

			txns, err := store.GetTransactionsByPeriod(ctx, period)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if len(txns) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No transactions in %s.", period)))
				return nil
			}

			symbol := currencySymbol()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				"DATE", "TYPE", "AMOUNT", "CATEGORY", "DESCRIPTION", "ID")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10), strings.Repeat("-", 8), strings.Repeat("-", 12),
				strings.Repeat("-", 14), strings.Repeat("-", 24), strings.Repeat("-", 36))

			for _, txn := range txns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					txn.Date.Format("2006-01-02"),
					txn.Kind,
					cli.FormatCurrency(symbol, txn.Amount),
					txn.Category,
					txn.Description,
					txn.ID)
			}

			return nil
		},
	}
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %s", args[0])))
			return nil
		},
	}
}
