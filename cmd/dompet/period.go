package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dompet-app/dompet/internal/cli"
	"github.com/dompet-app/dompet/internal/model"
)

func periodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Show or change the selected period",
		Long: `The selected period scopes every dashboard, listing, and report. It is
persisted across sessions and only changes through this command or the
--period flag.`,
	}

	cmd.AddCommand(showPeriodCmd())
	cmd.AddCommand(setPeriodCmd())

	return cmd
}

func showPeriodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the selected period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			saved, err := store.GetSelectedPeriod(ctx)
			if err != nil {
				return fmt.Errorf("failed to read period selection: %w", err)
			}

			if saved == nil {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf(
					"No period selected; defaulting to the current month (%s).", model.CurrentPeriod())))
				return nil
			}

			fmt.Println(cli.BoldStyle.Render(saved.String()))
			return nil
		},
	}
}

func setPeriodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <YYYY-MM>",
		Short: "Select and persist a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := model.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SetSelectedPeriod(ctx, p); err != nil {
				return fmt.Errorf("failed to persist period selection: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Selected period %s", p)))
			return nil
		},
	}
}
