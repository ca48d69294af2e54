package memchain

import (
	"context"
	"math/big"
	"testing"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice  = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob    = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	token0 = domain.NewAsset(common.HexToAddress("0x1000000000000000000000000000000000000001"))
	token1 = domain.NewAsset(common.HexToAddress("0x2000000000000000000000000000000000000002"))
)

func newTestManager(t *testing.T) (*State, *Ledger, *Manager, domain.PoolKey) {
	t.Helper()

	state := NewState()
	ledger := NewLedger(state)
	manager := NewManager(state)
	key := domain.NewPoolKey(token0, token1, 3000, 60, common.Address{})
	_, err := manager.Initialize(context.Background(), key, new(big.Int).Lsh(big.NewInt(1), 96))
	require.NoError(t, err)

	return state, ledger, manager, key
}

func addParams(liquidity int64) domain.ModifyLiquidityParams {
	return domain.ModifyLiquidityParams{TickLower: -60, TickUpper: 60, LiquidityDelta: big.NewInt(liquidity)}
}

func TestManagerRejectsSecondSession(t *testing.T) {
	_, _, manager, _ := newTestManager(t)
	ctx := context.Background()

	handle, err := manager.OpenSession(ctx, alice)
	require.NoError(t, err)

	_, err = manager.OpenSession(ctx, bob)
	require.ErrorIs(t, err, domain.ErrReentrancy)

	_, err = manager.AbortSession(ctx, handle)
	require.NoError(t, err)

	next, err := manager.OpenSession(ctx, bob)
	require.NoError(t, err)
	assert.NotEqual(t, handle.ID, next.ID)
}

func TestManagerRequiresActiveHandle(t *testing.T) {
	_, _, manager, key := newTestManager(t)
	ctx := context.Background()

	handle, err := manager.OpenSession(ctx, alice)
	require.NoError(t, err)
	_, err = manager.AbortSession(ctx, handle)
	require.NoError(t, err)

	_, err = manager.ModifyPosition(ctx, handle, key, addParams(1))
	require.ErrorIs(t, err, domain.ErrSessionNotActive)
	require.ErrorIs(t, manager.Sync(ctx, handle, token0), domain.ErrSessionNotActive)
	require.ErrorIs(t, manager.Take(ctx, handle, token0, alice, uint256.NewInt(1)), domain.ErrSessionNotActive)
	_, err = manager.CloseSession(ctx, handle)
	require.ErrorIs(t, err, domain.ErrSessionNotActive)
}

func TestManagerCloseWithResidualKeepsSessionActive(t *testing.T) {
	_, _, manager, key := newTestManager(t)
	ctx := context.Background()

	handle, err := manager.OpenSession(ctx, alice)
	require.NoError(t, err)
	delta, err := manager.ModifyPosition(ctx, handle, key, addParams(250))
	require.NoError(t, err)
	assert.Equal(t, "(-250, -250)", delta.String())

	_, err = manager.CloseSession(ctx, handle)
	require.ErrorIs(t, err, domain.ErrResidualBalance)

	var residual *domain.ResidualError
	require.ErrorAs(t, err, &residual)
	assert.Len(t, residual.Residuals, 2)

	session, err := manager.AbortSession(ctx, handle)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionAborted, session.State)

	pool, err := manager.Pool(ctx, key.ID())
	require.NoError(t, err)
	assert.Zero(t, pool.Liquidity.Sign())
}

func TestManagerSettleAndTakeBalanceTheSession(t *testing.T) {
	_, ledger, manager, key := newTestManager(t)
	ctx := context.Background()
	require.NoError(t, ledger.Credit(ctx, token0, alice, uint256.NewInt(100)))
	require.NoError(t, ledger.Credit(ctx, token1, manager.Address(), uint256.NewInt(40)))

	manager.quote = func(domain.Pool, domain.ModifyLiquidityParams) (domain.PackedDelta, error) {
		return domain.EncodeDelta(domain.NewAmount(-100), domain.NewAmount(40)), nil
	}

	handle, err := manager.OpenSession(ctx, alice)
	require.NoError(t, err)
	_, err = manager.ModifyPosition(ctx, handle, key, addParams(10))
	require.NoError(t, err)

	require.ErrorIs(t, manager.Settle(ctx, handle, token0, uint256.NewInt(100)), domain.ErrConfig)

	require.NoError(t, manager.Sync(ctx, handle, token0))
	require.NoError(t, ledger.Transfer(ctx, token0, alice, manager.Address(), uint256.NewInt(60)))
	require.ErrorIs(t, manager.Settle(ctx, handle, token0, uint256.NewInt(100)), domain.ErrAuthorization)
	require.NoError(t, ledger.Transfer(ctx, token0, alice, manager.Address(), uint256.NewInt(40)))
	require.NoError(t, manager.Settle(ctx, handle, token0, uint256.NewInt(100)))

	require.ErrorIs(t, manager.Take(ctx, handle, token1, bob, uint256.NewInt(41)), domain.ErrInsufficientReserves)
	require.NoError(t, manager.Take(ctx, handle, token1, bob, uint256.NewInt(40)))

	session, err := manager.CloseSession(ctx, handle)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionClosed, session.State)
	assert.Empty(t, session.Residuals())

	received, err := ledger.BalanceOf(ctx, token1, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), received.Uint64())
}

func TestManagerClaimsRoundTrip(t *testing.T) {
	_, _, manager, key := newTestManager(t)
	ctx := context.Background()

	manager.quote = func(_ domain.Pool, params domain.ModifyLiquidityParams) (domain.PackedDelta, error) {
		amount, err := domain.AmountFromBig(new(big.Int).Neg(params.LiquidityDelta))
		if err != nil {
			return domain.PackedDelta{}, err
		}
		return domain.EncodeDelta(amount, domain.NewAmount(0)), nil
	}

	handle, err := manager.OpenSession(ctx, alice)
	require.NoError(t, err)
	_, err = manager.ModifyPosition(ctx, handle, key, addParams(-1))
	require.ErrorIs(t, err, domain.ErrInsufficientLiquidity)
	require.ErrorIs(t, manager.BurnClaim(ctx, handle, token0, alice, uint256.NewInt(1)), domain.ErrAuthorization)
	_, err = manager.AbortSession(ctx, handle)
	require.NoError(t, err)

	claims, err := manager.ClaimBalance(ctx, alice, token0)
	require.NoError(t, err)
	assert.True(t, claims.IsZero())

	handle, err = manager.OpenSession(ctx, alice)
	require.NoError(t, err)
	require.NoError(t, manager.MintClaim(ctx, handle, token0, alice, uint256.NewInt(9)))
	require.NoError(t, manager.BurnClaim(ctx, handle, token0, alice, uint256.NewInt(9)))
	_, err = manager.CloseSession(ctx, handle)
	require.NoError(t, err)
}

func TestManagerInitializeRejectsDuplicate(t *testing.T) {
	_, _, manager, key := newTestManager(t)

	_, err := manager.Initialize(context.Background(), key, big.NewInt(1))
	require.ErrorIs(t, err, domain.ErrPoolAlreadyInitialized)

	_, err = manager.Pool(context.Background(), domain.NewPoolKey(token0, token1, 500, 10, common.Address{}).ID())
	require.ErrorIs(t, err, domain.ErrPoolNotFound)
}
