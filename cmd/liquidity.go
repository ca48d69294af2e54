package cmd

import (
	"context"
	"errors"

	"github.com/bnema/poolctl/internal/application"
	"github.com/spf13/cobra"
)

func newLiquidityCmd(app *app) *cobra.Command {
	liquidityCmd := &cobra.Command{
		Use:   "liquidity",
		Short: "Change liquidity in the configured pool inside one unlocked session",
	}
	flags := liquidityCmd.PersistentFlags()
	poolKeyFlags(flags)
	flags.Int32("tick-lower", 0, "lower tick of the position")
	flags.Int32("tick-upper", 0, "upper tick of the position")
	flags.String("liquidity", "", "signed liquidity delta")
	flags.String("salt", "", "position salt (32 byte hex)")
	flags.Bool("use-claims", false, "settle with claims instead of token transfers")
	flags.Bool("use-burn", false, "pay debts by burning claims")
	flags.String("recipient", "", "receiver of credits (default payer)")
	flags.String("native-value", "", "native amount sent with the call (default: exact amount owed)")

	var dryRun bool
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Modify the position and settle every delta before the session closes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd.Context(), cmd.ErrOrStderr()); err != nil {
				return err
			}

			command, err := app.cfg.AddLiquidityCommand()
			if err != nil {
				return err
			}
			command.DryRun = dryRun
			if dryRun {
				result, err := app.liquidity.AddLiquidity(cmd.Context(), command)
				if err != nil {
					return err
				}
				return writeSession(cmd, app, result, true)
			}

			var result application.SessionResult
			settle := func(ctx context.Context) error {
				var execErr error
				result, execErr = app.liquidity.AddLiquidity(ctx, command)
				return execErr
			}
			if app.opts.asJSON {
				err = settle(cmd.Context())
			} else {
				err = runSettleSpinner(cmd.Context(), cmd.ErrOrStderr(), "Settling session...", settle)
			}

			// approvals granted before a failed session are kept
			if commitErr := app.commit(cmd.Context()); commitErr != nil {
				return errors.Join(err, commitErr)
			}
			if err != nil {
				return err
			}

			return writeSession(cmd, app, result, false)
		},
	}
	addCmd.Flags().BoolVar(&dryRun, "dry-run", false, "quote the session and revert it")

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the deltas and required native funding without changing state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd.Context(), cmd.ErrOrStderr()); err != nil {
				return err
			}

			command, err := app.cfg.AddLiquidityCommand()
			if err != nil {
				return err
			}
			result, err := app.liquidity.Quote(cmd.Context(), command)
			if err != nil {
				return err
			}

			return writeSession(cmd, app, result, true)
		},
	}

	liquidityCmd.AddCommand(addCmd, quoteCmd)
	return liquidityCmd
}
