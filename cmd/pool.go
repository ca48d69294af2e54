package cmd

import (
	"github.com/spf13/cobra"
)

func newPoolCmd(app *app) *cobra.Command {
	poolCmd := &cobra.Command{
		Use:   "pool",
		Short: "Create and inspect pools",
	}
	poolKeyFlags(poolCmd.PersistentFlags())

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Initialize the configured pool at a starting price",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd.Context(), cmd.ErrOrStderr()); err != nil {
				return err
			}

			command, err := app.cfg.CreatePool.Command()
			if err != nil {
				return err
			}
			meta, err := app.pools.CreatePool(cmd.Context(), command)
			if err != nil {
				return err
			}
			if err := app.commit(cmd.Context()); err != nil {
				return err
			}

			return writePool(cmd, app, meta)
		},
	}
	createCmd.Flags().String("sqrt-price-x96", "", "initial sqrt price as Q64.96")

	metaCmd := &cobra.Command{
		Use:   "meta",
		Short: "Show the id, price and liquidity of the configured pool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd.Context(), cmd.ErrOrStderr()); err != nil {
				return err
			}

			key, err := app.cfg.CreatePool.PoolKey()
			if err != nil {
				return err
			}
			meta, err := app.pools.PoolMeta(cmd.Context(), key)
			if err != nil {
				return err
			}

			return writePool(cmd, app, meta)
		},
	}

	poolCmd.AddCommand(createCmd, metaCmd)
	return poolCmd
}
