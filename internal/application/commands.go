package application

import (
	"math/big"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type CreatePoolCommand struct {
	Token0       domain.Asset
	Token1       domain.Asset
	Fee          uint32
	TickSpacing  int32
	Hooks        common.Address
	SqrtPriceX96 *big.Int
}

type AddLiquidityCommand struct {
	Payer     common.Address
	Recipient common.Address
	Key       domain.PoolKey
	Params    domain.ModifyLiquidityParams
	Flags     domain.SettlementFlags
	// NativeValue nil means quote the exact native amount the session owes.
	NativeValue *uint256.Int
	DryRun      bool
}

type CreditCommand struct {
	Holder common.Address
	Asset  domain.Asset
	Amount *uint256.Int
}
