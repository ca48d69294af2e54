// Package config loads poolctl settings from app.config.{json,yaml,toml},
// POOLCTL_* environment variables and defaults, in that order of precedence
// below command flags.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/poolctl/internal/application"
	"github.com/bnema/poolctl/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/spf13/viper"
)

const (
	configName = "app.config"
	configDir  = ".poolctl"
	envPrefix  = "POOLCTL"

	DefaultRouter = "0x0000000000000000000000000000000000000e0e"
)

type App struct {
	Network      string       `mapstructure:"network"`
	Payer        string       `mapstructure:"payer"`
	Router       string       `mapstructure:"router"`
	Decimals     int32        `mapstructure:"decimals"`
	State        PathConfig   `mapstructure:"state"`
	Journal      PathConfig   `mapstructure:"journal"`
	Manager      Manager      `mapstructure:"manager"`
	CreatePool   CreatePool   `mapstructure:"create_pool"`
	AddLiquidity AddLiquidity `mapstructure:"add_liquidity"`
}

type PathConfig struct {
	Path string `mapstructure:"path"`
}

// Manager configures the local manager's address and its per-unit quote.
// Units are charged per 1e18 of liquidity.
type Manager struct {
	Address string `mapstructure:"address"`
	Unit0   string `mapstructure:"unit0"`
	Unit1   string `mapstructure:"unit1"`
}

type CreatePool struct {
	Token0       string `mapstructure:"token0"`
	Token1       string `mapstructure:"token1"`
	Fee          uint32 `mapstructure:"fee"`
	TickSpacing  int32  `mapstructure:"tickSpacing"`
	SqrtPriceX96 string `mapstructure:"sqrtPriceX96"`
	Hooks        string `mapstructure:"hooks"`
}

type AddLiquidity struct {
	TickLower      int32  `mapstructure:"tickLower"`
	TickUpper      int32  `mapstructure:"tickUpper"`
	LiquidityDelta string `mapstructure:"liquidityDelta"`
	Salt           string `mapstructure:"salt"`
	UseClaims      bool   `mapstructure:"useClaims"`
	UseBurn        bool   `mapstructure:"useBurn"`
	Recipient      string `mapstructure:"recipient"`
	NativeValue    string `mapstructure:"nativeValue"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network", "local")
	v.SetDefault("payer", "")
	v.SetDefault("router", DefaultRouter)
	v.SetDefault("decimals", 0)
	v.SetDefault("state.path", "")
	v.SetDefault("journal.path", "")
	v.SetDefault("manager.address", "")
	v.SetDefault("manager.unit0", "1000000000000000000")
	v.SetDefault("manager.unit1", "1000000000000000000")
	v.SetDefault("create_pool.token0", "native")
	v.SetDefault("create_pool.token1", "")
	v.SetDefault("create_pool.fee", 3000)
	v.SetDefault("create_pool.tickSpacing", 60)
	v.SetDefault("create_pool.sqrtPriceX96", "79228162514264337593543950336")
	v.SetDefault("create_pool.hooks", "")
	v.SetDefault("add_liquidity.tickLower", -60)
	v.SetDefault("add_liquidity.tickUpper", 60)
	v.SetDefault("add_liquidity.liquidityDelta", "")
	v.SetDefault("add_liquidity.salt", "")
	v.SetDefault("add_liquidity.useClaims", false)
	v.SetDefault("add_liquidity.useBurn", false)
	v.SetDefault("add_liquidity.recipient", "")
	v.SetDefault("add_liquidity.nativeValue", "")
}

// Load reads configuration into v and decodes it. An explicit path must
// exist; otherwise app.config.* is looked up in the working directory and
// ~/.poolctl, and a missing file is not an error.
func Load(v *viper.Viper, path string) (App, error) {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return App{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, configDir))
		}
		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return App{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var app App
	if err := v.Unmarshal(&app); err != nil {
		return App{}, fmt.Errorf("decode config: %w", err)
	}

	return app, nil
}

func (a App) PayerAddress() (common.Address, error) {
	if strings.TrimSpace(a.Payer) == "" {
		return common.Address{}, fmt.Errorf("%w: payer is not configured", domain.ErrConfig)
	}
	return ParseAddress("payer", a.Payer)
}

func (a App) RouterAddress() (common.Address, error) {
	return ParseAddress("router", a.Router)
}

// ManagerAddress returns the zero address when none is configured.
func (a App) ManagerAddress() (common.Address, error) {
	if strings.TrimSpace(a.Manager.Address) == "" {
		return common.Address{}, nil
	}
	return ParseAddress("manager.address", a.Manager.Address)
}

func (a App) ManagerUnits() (*big.Int, *big.Int, error) {
	unit0, err := ParseBig("manager.unit0", a.Manager.Unit0)
	if err != nil {
		return nil, nil, err
	}
	unit1, err := ParseBig("manager.unit1", a.Manager.Unit1)
	if err != nil {
		return nil, nil, err
	}
	if unit0.Sign() < 0 || unit1.Sign() < 0 {
		return nil, nil, fmt.Errorf("%w: manager units must not be negative", domain.ErrConfig)
	}
	return unit0, unit1, nil
}

func (c CreatePool) Command() (application.CreatePoolCommand, error) {
	token0, err := domain.ParseAsset(c.Token0)
	if err != nil {
		return application.CreatePoolCommand{}, fmt.Errorf("create_pool.token0: %w", err)
	}
	token1, err := domain.ParseAsset(c.Token1)
	if err != nil {
		return application.CreatePoolCommand{}, fmt.Errorf("create_pool.token1: %w", err)
	}
	var hooks common.Address
	if strings.TrimSpace(c.Hooks) != "" {
		if hooks, err = ParseAddress("create_pool.hooks", c.Hooks); err != nil {
			return application.CreatePoolCommand{}, err
		}
	}
	sqrtPrice, err := ParseBig("create_pool.sqrtPriceX96", c.SqrtPriceX96)
	if err != nil {
		return application.CreatePoolCommand{}, err
	}

	return application.CreatePoolCommand{
		Token0:       token0,
		Token1:       token1,
		Fee:          c.Fee,
		TickSpacing:  c.TickSpacing,
		Hooks:        hooks,
		SqrtPriceX96: sqrtPrice,
	}, nil
}

// PoolKey is the key of the pool described by create_pool, sorted.
func (c CreatePool) PoolKey() (domain.PoolKey, error) {
	cmd, err := c.Command()
	if err != nil {
		return domain.PoolKey{}, err
	}
	key := domain.NewPoolKey(cmd.Token0, cmd.Token1, cmd.Fee, cmd.TickSpacing, cmd.Hooks)
	if err := key.Validate(); err != nil {
		return domain.PoolKey{}, err
	}
	return key, nil
}

// AddLiquidityCommand builds an add-liquidity command against the
// create_pool key.
func (a App) AddLiquidityCommand() (application.AddLiquidityCommand, error) {
	payer, err := a.PayerAddress()
	if err != nil {
		return application.AddLiquidityCommand{}, err
	}
	key, err := a.CreatePool.PoolKey()
	if err != nil {
		return application.AddLiquidityCommand{}, err
	}

	cfg := a.AddLiquidity
	liquidity, err := ParseBig("add_liquidity.liquidityDelta", cfg.LiquidityDelta)
	if err != nil {
		return application.AddLiquidityCommand{}, err
	}

	var salt common.Hash
	if strings.TrimSpace(cfg.Salt) != "" {
		if salt, err = ParseHash("add_liquidity.salt", cfg.Salt); err != nil {
			return application.AddLiquidityCommand{}, err
		}
	}

	var recipient common.Address
	if strings.TrimSpace(cfg.Recipient) != "" {
		if recipient, err = ParseAddress("add_liquidity.recipient", cfg.Recipient); err != nil {
			return application.AddLiquidityCommand{}, err
		}
	}

	var native *uint256.Int
	if strings.TrimSpace(cfg.NativeValue) != "" {
		if native, err = ParseUint("add_liquidity.nativeValue", cfg.NativeValue); err != nil {
			return application.AddLiquidityCommand{}, err
		}
	}

	return application.AddLiquidityCommand{
		Payer:     payer,
		Recipient: recipient,
		Key:       key,
		Params: domain.ModifyLiquidityParams{
			TickLower:      cfg.TickLower,
			TickUpper:      cfg.TickUpper,
			LiquidityDelta: liquidity,
			Salt:           salt,
		},
		Flags:       domain.SettlementFlags{UseClaims: cfg.UseClaims, UseBurn: cfg.UseBurn},
		NativeValue: native,
	}, nil
}

// ParseAddress, ParseHash and ParseBig wrap failures in domain.ErrConfig
// naming field.
func ParseAddress(field, raw string) (common.Address, error) {
	trimmed := strings.TrimSpace(raw)
	if !common.IsHexAddress(trimmed) {
		return common.Address{}, fmt.Errorf("%w: %s: invalid address %q", domain.ErrConfig, field, raw)
	}
	return common.HexToAddress(trimmed), nil
}

func ParseHash(field, raw string) (common.Hash, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if len(trimmed) == 0 || len(trimmed) > 2*common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: %s: invalid hash %q", domain.ErrConfig, field, raw)
	}
	if _, ok := new(big.Int).SetString(trimmed, 16); !ok {
		return common.Hash{}, fmt.Errorf("%w: %s: invalid hash %q", domain.ErrConfig, field, raw)
	}
	return common.HexToHash(trimmed), nil
}

func ParseBig(field, raw string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(strings.TrimSpace(raw), 0)
	if !ok {
		return nil, fmt.Errorf("%w: %s: invalid integer %q", domain.ErrConfig, field, raw)
	}
	return value, nil
}

// ParseUint accepts decimal or 0x-prefixed hex.
func ParseUint(field, raw string) (*uint256.Int, error) {
	value, err := ParseBig(field, raw)
	if err != nil {
		return nil, err
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s: must not be negative", domain.ErrConfig, field)
	}
	amount, overflow := uint256.FromBig(value)
	if overflow {
		return nil, fmt.Errorf("%w: %s: exceeds 256 bits", domain.ErrConfig, field)
	}
	return amount, nil
}
