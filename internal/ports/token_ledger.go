package ports

import (
	"context"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// TokenLedger moves native value and fungible tokens between holders.
// Failures caused by missing balance or allowance wrap domain.ErrAuthorization.
type TokenLedger interface {
	BalanceOf(ctx context.Context, asset domain.Asset, holder common.Address) (*uint256.Int, error)
	Allowance(ctx context.Context, asset domain.Asset, owner, spender common.Address) (*uint256.Int, error)
	Approve(ctx context.Context, asset domain.Asset, owner, spender common.Address, amount *uint256.Int) error
	Transfer(ctx context.Context, asset domain.Asset, from, to common.Address, amount *uint256.Int) error
	TransferFrom(ctx context.Context, asset domain.Asset, spender, from, to common.Address, amount *uint256.Int) error
}

// Faucet seeds balances on a local ledger.
type Faucet interface {
	Credit(ctx context.Context, asset domain.Asset, holder common.Address, amount *uint256.Int) error
}
