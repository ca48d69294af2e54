package application

import (
	"context"
	"fmt"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// AssetResolver moves value between the caller side and the manager for
// both native and token assets. The router is the settlement agent: it holds
// the caller's native pre-funding and is the spender of token allowances.
type AssetResolver struct {
	manager ports.Manager
	ledger  ports.TokenLedger
	router  common.Address
}

func NewAssetResolver(manager ports.Manager, ledger ports.TokenLedger, router common.Address) *AssetResolver {
	return &AssetResolver{manager: manager, ledger: ledger, router: router}
}

func (r *AssetResolver) Router() common.Address {
	return r.router
}

func (r *AssetResolver) IsNative(asset domain.Asset) bool {
	return asset.IsNative()
}

// NativeFunding is the part of a session's native pre-funding that
// settlement has not spent yet.
type NativeFunding struct {
	remaining *uint256.Int
}

func NewNativeFunding(value *uint256.Int) *NativeFunding {
	if value == nil {
		return &NativeFunding{remaining: new(uint256.Int)}
	}
	return &NativeFunding{remaining: value.Clone()}
}

func (f *NativeFunding) Remaining() *uint256.Int {
	return f.remaining.Clone()
}

// Pull pays amount of asset into the manager on behalf of payer and settles
// it against the session. Native is paid only out of funding.
func (r *AssetResolver) Pull(ctx context.Context, handle ports.SessionHandle, asset domain.Asset, payer common.Address, amount *uint256.Int, funding *NativeFunding) error {
	if err := r.manager.Sync(ctx, handle, asset); err != nil {
		return fmt.Errorf("sync %s: %w", asset, err)
	}

	if asset.IsNative() {
		held := new(uint256.Int)
		if funding != nil {
			held = funding.remaining
		}
		if held.Lt(amount) {
			return fmt.Errorf("%w: %w: pre-funded %s, owed %s", domain.ErrAuthorization, domain.ErrInsufficientNative, held.Dec(), amount.Dec())
		}
		if err := r.ledger.Transfer(ctx, asset, r.router, r.manager.Address(), amount); err != nil {
			return fmt.Errorf("pay native: %w", err)
		}
		held.Sub(held, amount)
	} else {
		var err error
		if payer == r.router {
			err = r.ledger.Transfer(ctx, asset, r.router, r.manager.Address(), amount)
		} else {
			err = r.ledger.TransferFrom(ctx, asset, r.router, payer, r.manager.Address(), amount)
		}
		if err != nil {
			return fmt.Errorf("pull %s from %s: %w", asset, payer.Hex(), err)
		}
	}

	if err := r.manager.Settle(ctx, handle, asset, amount); err != nil {
		return fmt.Errorf("settle %s: %w", asset, err)
	}

	return nil
}

// Push pays amount of asset from the manager's reserves to to.
func (r *AssetResolver) Push(ctx context.Context, handle ports.SessionHandle, asset domain.Asset, to common.Address, amount *uint256.Int) error {
	if err := r.manager.Take(ctx, handle, asset, to, amount); err != nil {
		return fmt.Errorf("take %s: %w", asset, err)
	}
	return nil
}
