package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int               `toml:"version"`
	Balances   []balanceSchema   `toml:"balances,omitempty"`
	Allowances []allowanceSchema `toml:"allowances,omitempty"`
	Claims     []balanceSchema   `toml:"claims,omitempty"`
	Pools      []poolSchema      `toml:"pools,omitempty"`
	Positions  []positionSchema  `toml:"positions,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// Amounts are decimal strings; TOML integers stop at int64.
type balanceSchema struct {
	Asset  string `toml:"asset"`
	Holder string `toml:"holder"`
	Amount string `toml:"amount"`
}

type allowanceSchema struct {
	Asset   string `toml:"asset"`
	Owner   string `toml:"owner"`
	Spender string `toml:"spender"`
	Amount  string `toml:"amount"`
}

type poolSchema struct {
	ID           string `toml:"id"`
	Currency0    string `toml:"currency0"`
	Currency1    string `toml:"currency1"`
	Fee          uint32 `toml:"fee"`
	TickSpacing  int32  `toml:"tick_spacing"`
	Hooks        string `toml:"hooks,omitempty"`
	SqrtPriceX96 string `toml:"sqrt_price_x96"`
	Liquidity    string `toml:"liquidity"`
}

type positionSchema struct {
	Pool      string `toml:"pool"`
	Owner     string `toml:"owner"`
	TickLower int32  `toml:"tick_lower"`
	TickUpper int32  `toml:"tick_upper"`
	Salt      string `toml:"salt,omitempty"`
	Liquidity string `toml:"liquidity"`
}
