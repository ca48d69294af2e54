package domain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type BalanceEntry struct {
	Asset  Asset
	Holder common.Address
	Amount *uint256.Int
}

type AllowanceEntry struct {
	Asset   Asset
	Owner   common.Address
	Spender common.Address
	Amount  *uint256.Int
}

// ChainState is the persisted view of the local ledger and manager:
// external balances, allowances, claim balances, pools and positions.
type ChainState struct {
	Balances   []BalanceEntry
	Allowances []AllowanceEntry
	Claims     []BalanceEntry
	Pools      []Pool
	Positions  []Position
}
