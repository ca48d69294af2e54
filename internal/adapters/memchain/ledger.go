package memchain

import (
	"context"
	"fmt"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var maxAllowance = new(uint256.Int).SetAllOne()

// Ledger is the token ledger view of State. Native value is tracked under
// domain.NativeAsset like any other asset.
type Ledger struct {
	state *State
}

var _ ports.TokenLedger = (*Ledger)(nil)

func NewLedger(state *State) *Ledger {
	return &Ledger{state: state}
}

func (l *Ledger) BalanceOf(ctx context.Context, asset domain.Asset, holder common.Address) (*uint256.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	return l.state.balance(asset, holder), nil
}

func (l *Ledger) Allowance(ctx context.Context, asset domain.Asset, owner, spender common.Address) (*uint256.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	return l.state.allowance(asset, owner, spender), nil
}

func (l *Ledger) Approve(ctx context.Context, asset domain.Asset, owner, spender common.Address, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if asset.IsNative() {
		return fmt.Errorf("%w: native asset has no allowance", domain.ErrConfig)
	}

	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	l.state.setAllowance(asset, owner, spender, amount)
	return nil
}

func (l *Ledger) Transfer(ctx context.Context, asset domain.Asset, from, to common.Address, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	return l.move(asset, from, to, amount)
}

func (l *Ledger) TransferFrom(ctx context.Context, asset domain.Asset, spender, from, to common.Address, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if asset.IsNative() {
		return fmt.Errorf("%w: native asset cannot be pulled by allowance", domain.ErrConfig)
	}

	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	allowed := l.state.allowance(asset, from, spender)
	if allowed.Lt(amount) {
		return fmt.Errorf("%w: allowance %s of %s for %s below %s", domain.ErrAuthorization, allowed.Dec(), from.Hex(), spender.Hex(), amount.Dec())
	}
	if err := l.move(asset, from, to, amount); err != nil {
		return err
	}
	if !allowed.Eq(maxAllowance) {
		l.state.setAllowance(asset, from, spender, new(uint256.Int).Sub(allowed, amount))
	}

	return nil
}

// Credit mints amount of asset to holder. It stands in for deploying and
// funding tokens on a real network.
func (l *Ledger) Credit(ctx context.Context, asset domain.Asset, holder common.Address, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	current := l.state.balance(asset, holder)
	sum, overflow := new(uint256.Int).AddOverflow(current, amount)
	if overflow {
		return fmt.Errorf("credit %s to %s: balance overflow", asset, holder.Hex())
	}
	l.state.setBalance(asset, holder, sum)
	return nil
}

// move expects the state lock to be held.
func (l *Ledger) move(asset domain.Asset, from, to common.Address, amount *uint256.Int) error {
	fromBalance := l.state.balance(asset, from)
	if fromBalance.Lt(amount) {
		return fmt.Errorf("%w: balance %s of %s in %s below %s", domain.ErrAuthorization, fromBalance.Dec(), from.Hex(), asset, amount.Dec())
	}
	if from == to {
		return nil
	}

	l.state.setBalance(asset, from, new(uint256.Int).Sub(fromBalance, amount))
	l.state.setBalance(asset, to, new(uint256.Int).Add(l.state.balance(asset, to), amount))
	return nil
}
