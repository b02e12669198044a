package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dompet-app/dompet/internal/cli"
	"github.com/dompet-app/dompet/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage per-period categories",
		Long: `List, add, update, delete, and copy categories. Categories belong to a
single month; recreating one in a new month is an independent entity
with no link back to the old month's row.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())
	cmd.AddCommand(copyCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the selected period's categories",
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

			categories, err := store.GetCategoriesByPeriod(ctx, period)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf(
					"No categories in %s. Use 'dompet categories add' to create one.", period)))
				return nil
			}

			symbol := currencySymbol()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "ID", "NAME", "TYPE", "BUDGET")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4), strings.Repeat("-", 20),
				strings.Repeat("-", 8), strings.Repeat("-", 14))

			for _, cat := range categories {
				budget := cli.SubtleStyle.Render("(none)")
				if cat.HasBudget() {
					budget = cli.FormatCurrency(symbol, cat.BudgetLimit)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", cat.ID, cat.Name, cat.Kind, budget)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		kind   string
		budget int64
		color  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category to the selected period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			period, err := resolvePeriod(ctx, cmd, store)
			if err != nil {
				return err
			}

			existing, err := store.GetCategoryByName(ctx, name, period)
			if err != nil {
				return fmt.Errorf("failed to check existing category: %w", err)
			}
			if existing != nil {
				return fmt.Errorf("category %q already exists in %s", name, period)
			}

			cat := &model.Category{
				Name:        name,
				Kind:        model.CategoryKind(kind),
				BudgetLimit: budget,
				Color:       color,
				Month:       period.Month,
				Year:        period.Year,
			}

			created, err := store.CreateCategory(ctx, cat)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q in %s (ID: %d)",
				created.Name, period, created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "expense", "category type (income, expense)")
	cmd.Flags().Int64VarP(&budget, "budget", "b", 0, "monthly budget limit (expense categories, 0 = none)")
	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		name   string
		budget int64
		color  string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category's name, budget, or color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			period, err := resolvePeriod(ctx, cmd, store)
			if err != nil {
				return err
			}

			categories, err := store.GetCategoriesByPeriod(ctx, period)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			var cat *model.Category
			for i := range categories {
				if categories[i].ID == id {
					cat = &categories[i]
					break
				}
			}
			if cat == nil {
				return fmt.Errorf("category %d not found in %s", id, period)
			}

			if name != "" {
				cat.Name = name
			}
			if cmd.Flags().Changed("budget") {
				cat.BudgetLimit = budget
			}
			if cmd.Flags().Changed("color") {
				cat.Color = color
			}

			if err := store.UpdateCategory(ctx, cat); err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated category %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new category name")
	cmd.Flags().Int64VarP(&budget, "budget", "b", 0, "new budget limit (0 = remove)")
	cmd.Flags().StringVar(&color, "color", "", "new display color")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category. Transactions keep their recorded category name;
nothing cascades.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteCategory(ctx, id); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %d", id)))
			return nil
		},
	}
}

func copyCategoriesCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy categories from another period into the selected one",
		Long: `Duplicate the categories of one month into the selected month as
independent rows. Names already present are skipped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if from == "" {
				return fmt.Errorf("--from is required")
			}
			source, err := model.ParsePeriod(from)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			period, err := resolvePeriod(ctx, cmd, store)
			if err != nil {
				return err
			}

			copied, err := store.CopyCategories(ctx, source, period)
			if err != nil {
				return fmt.Errorf("failed to copy categories: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Copied %d categories from %s to %s",
				copied, source, period)))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source period (YYYY-MM)")

	return cmd
}
