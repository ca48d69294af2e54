package cmd

import (
	"strings"

	"github.com/bnema/poolctl/internal/adapters/config"
	"github.com/bnema/poolctl/internal/application"
	"github.com/bnema/poolctl/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

func newLedgerCmd(app *app) *cobra.Command {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Credit and inspect token balances on the local ledger",
	}

	var (
		creditHolder string
		creditAsset  string
		creditAmount string
	)
	creditCmd := &cobra.Command{
		Use:   "credit",
		Short: "Mint an amount of an asset to a holder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd.Context(), cmd.ErrOrStderr()); err != nil {
				return err
			}

			holder, err := resolveHolder(app, creditHolder)
			if err != nil {
				return err
			}
			asset, err := domain.ParseAsset(creditAsset)
			if err != nil {
				return err
			}
			amount, err := config.ParseUint("amount", creditAmount)
			if err != nil {
				return err
			}

			if err := app.ledger.Credit(cmd.Context(), application.CreditCommand{Holder: holder, Asset: asset, Amount: amount}); err != nil {
				return err
			}
			if err := app.commit(cmd.Context()); err != nil {
				return err
			}

			return showBalances(cmd, app, holder, []domain.Asset{asset}, false)
		},
	}
	creditCmd.Flags().StringVar(&creditHolder, "holder", "", "receiving address (default payer)")
	creditCmd.Flags().StringVar(&creditAsset, "asset", "", "asset address or \"native\"")
	creditCmd.Flags().StringVar(&creditAmount, "amount", "", "amount in base units")
	_ = creditCmd.MarkFlagRequired("asset")
	_ = creditCmd.MarkFlagRequired("amount")

	var (
		balancesHolder string
		balancesAssets []string
	)
	balancesCmd := &cobra.Command{
		Use:   "balances",
		Short: "Show external and claim balances of a holder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd.Context(), cmd.ErrOrStderr()); err != nil {
				return err
			}

			holder, err := resolveHolder(app, balancesHolder)
			if err != nil {
				return err
			}
			assets, err := resolveAssets(app, balancesAssets)
			if err != nil {
				return err
			}

			return showBalances(cmd, app, holder, assets, false)
		},
	}
	balancesCmd.Flags().StringVar(&balancesHolder, "holder", "", "holder address (default payer)")
	balancesCmd.Flags().StringArrayVar(&balancesAssets, "asset", nil, "asset to show, repeatable (default the configured pool's pair)")

	ledgerCmd.AddCommand(creditCmd, balancesCmd)
	return ledgerCmd
}

func newClaimsCmd(app *app) *cobra.Command {
	var (
		holder string
		assets []string
	)
	claimsCmd := &cobra.Command{
		Use:   "claims",
		Short: "Show claim balances held in the manager",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd.Context(), cmd.ErrOrStderr()); err != nil {
				return err
			}

			address, err := resolveHolder(app, holder)
			if err != nil {
				return err
			}
			resolved, err := resolveAssets(app, assets)
			if err != nil {
				return err
			}

			return showBalances(cmd, app, address, resolved, true)
		},
	}
	claimsCmd.Flags().StringVar(&holder, "holder", "", "holder address (default payer)")
	claimsCmd.Flags().StringArrayVar(&assets, "asset", nil, "asset to show, repeatable (default the configured pool's pair)")

	return claimsCmd
}

func showBalances(cmd *cobra.Command, app *app, holder common.Address, assets []domain.Asset, claimsOnly bool) error {
	balances, err := app.ledger.Balances(cmd.Context(), holder, assets)
	if err != nil {
		return err
	}
	if claimsOnly {
		held := balances.Holdings[:0]
		for _, holding := range balances.Holdings {
			if holding.Claims != nil && !holding.Claims.IsZero() {
				held = append(held, holding)
			}
		}
		balances.Holdings = held
	}

	return writeBalances(cmd, app, balances)
}

func resolveHolder(app *app, raw string) (common.Address, error) {
	if strings.TrimSpace(raw) == "" {
		return app.cfg.PayerAddress()
	}
	return config.ParseAddress("holder", raw)
}

func resolveAssets(app *app, raw []string) ([]domain.Asset, error) {
	if len(raw) == 0 {
		key, err := app.cfg.CreatePool.PoolKey()
		if err != nil {
			return nil, err
		}
		return []domain.Asset{key.Currency0, key.Currency1}, nil
	}

	assets := make([]domain.Asset, 0, len(raw))
	for _, value := range raw {
		asset, err := domain.ParseAsset(value)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}
