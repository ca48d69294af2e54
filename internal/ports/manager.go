package ports

import (
	"context"
	"math/big"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// SessionHandle names the single unlocked session a settlement call belongs
// to. It is handed out by OpenSession and must accompany every call made
// while the session is active.
type SessionHandle struct {
	ID     domain.SessionID
	Caller common.Address
}

// Manager is the singleton exchange manager. Every method taking a handle
// fails with domain.ErrSessionNotActive unless that handle is the active one.
type Manager interface {
	Address() common.Address
	Initialize(ctx context.Context, key domain.PoolKey, sqrtPriceX96 *big.Int) (domain.PoolID, error)
	Pool(ctx context.Context, id domain.PoolID) (domain.Pool, error)

	// OpenSession fails with domain.ErrReentrancy while another session is active.
	OpenSession(ctx context.Context, caller common.Address) (SessionHandle, error)
	ModifyPosition(ctx context.Context, handle SessionHandle, key domain.PoolKey, params domain.ModifyLiquidityParams) (domain.PackedDelta, error)
	Sync(ctx context.Context, handle SessionHandle, asset domain.Asset) error
	Settle(ctx context.Context, handle SessionHandle, asset domain.Asset, amount *uint256.Int) error
	Take(ctx context.Context, handle SessionHandle, asset domain.Asset, to common.Address, amount *uint256.Int) error
	MintClaim(ctx context.Context, handle SessionHandle, asset domain.Asset, to common.Address, amount *uint256.Int) error
	BurnClaim(ctx context.Context, handle SessionHandle, asset domain.Asset, from common.Address, amount *uint256.Int) error
	// CloseSession returns a *domain.ResidualError when any delta is nonzero;
	// the session stays active in that case and must be aborted.
	CloseSession(ctx context.Context, handle SessionHandle) (domain.Session, error)
	// AbortSession reverts every effect recorded since OpenSession.
	AbortSession(ctx context.Context, handle SessionHandle) (domain.Session, error)

	ClaimBalance(ctx context.Context, holder common.Address, asset domain.Asset) (*uint256.Int, error)
}
