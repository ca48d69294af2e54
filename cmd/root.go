package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	configPath string
	asJSON     bool
	verbose    bool
	logJSON    bool
}

// configFlags maps flag names to the configuration keys they override.
var configFlags = map[string]string{
	"state":          "state.path",
	"journal":        "journal.path",
	"payer":          "payer",
	"network":        "network",
	"router":         "router",
	"decimals":       "decimals",
	"token0":         "create_pool.token0",
	"token1":         "create_pool.token1",
	"fee":            "create_pool.fee",
	"tick-spacing":   "create_pool.tickSpacing",
	"sqrt-price-x96": "create_pool.sqrtPriceX96",
	"hooks":          "create_pool.hooks",
	"tick-lower":     "add_liquidity.tickLower",
	"tick-upper":     "add_liquidity.tickUpper",
	"liquidity":      "add_liquidity.liquidityDelta",
	"salt":           "add_liquidity.salt",
	"use-claims":     "add_liquidity.useClaims",
	"use-burn":       "add_liquidity.useBurn",
	"recipient":      "add_liquidity.recipient",
	"native-value":   "add_liquidity.nativeValue",
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	app := &app{viper: viper.New(), opts: opts}

	rootCmd := &cobra.Command{
		Use:           "poolctl",
		Short:         "poolctl: settle liquidity changes against a singleton pool manager",
		Long:          "poolctl creates pools and adds or removes liquidity inside a single unlocked session against a local singleton manager. Every delta the position change leaves is settled before the session closes, or the whole session is reverted.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindConfigFlags(app.viper, cmd.Flags())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to app.config.{json,yaml,toml}")
	flags.String("state", "", "state file (default ~/.poolctl/state.toml)")
	flags.String("journal", "", "journal file (default ~/.poolctl/journal.jsonl)")
	flags.String("payer", "", "payer address")
	flags.String("network", "", "network label written to the journal")
	flags.String("router", "", "router address that pulls tokens for the payer")
	flags.Int32("decimals", 0, "display amounts scaled down by 10^decimals")
	flags.BoolVar(&opts.asJSON, "json", false, "output JSON")
	flags.BoolVar(&opts.verbose, "verbose", false, "log debug details to stderr")
	flags.BoolVar(&opts.logJSON, "log-json", false, "log as JSON lines")

	rootCmd.AddCommand(
		newVersionCmd(),
		newPoolCmd(app),
		newLiquidityCmd(app),
		newLedgerCmd(app),
		newClaimsCmd(app),
		newMetricsCmd(app),
	)

	return rootCmd
}

// bindConfigFlags binds the flags of the running command so that only flags
// set on the command line override configuration.
func bindConfigFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(flag *pflag.Flag) {
		key, ok := configFlags[flag.Name]
		if !ok || !flag.Changed || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, flag)
	})
	return bindErr
}

// poolKeyFlags are shared by every command that addresses the configured pool.
func poolKeyFlags(flags *pflag.FlagSet) {
	flags.String("token0", "", "first pool asset (address or \"native\")")
	flags.String("token1", "", "second pool asset (address or \"native\")")
	flags.Uint32("fee", 0, "pool fee in hundredths of a bip")
	flags.Int32("tick-spacing", 0, "pool tick spacing")
	flags.String("hooks", "", "hooks address")
}
