package report

import (
	"math/big"
	"testing"
	"time"

	"github.com/bnema/poolctl/internal/adapters/metrics/prom"
	"github.com/bnema/poolctl/internal/application"
	"github.com/bnema/poolctl/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var token = domain.NewAsset(common.HexToAddress("0x1000000000000000000000000000000000000001"))

func closedResult() application.SessionResult {
	amount0 := domain.NewAmount(-1_500_000)
	amount1 := domain.NewAmount(250)
	return application.SessionResult{
		SessionID: "5f0c2a4e",
		State:     domain.SessionClosed,
		Delta:     domain.EncodeDelta(amount0, amount1),
		Amount0:   amount0,
		Amount1:   amount1,
		Instructions: []domain.SettlementInstruction{
			{Asset: domain.NativeAsset, Magnitude: uint256.NewInt(1_500_000), Direction: domain.DirectionOwedByCaller, Strategy: domain.StrategyDirectSettle},
			{Asset: token, Magnitude: uint256.NewInt(250), Direction: domain.DirectionOwedToCaller, Strategy: domain.StrategyDirectTake},
		},
		NativeValue:  uint256.NewInt(2_000_000),
		NativeRefund: uint256.NewInt(500_000),
		Elapsed:      1500 * time.Microsecond,
	}
}

func TestRenderClosedSession(t *testing.T) {
	output, err := RenderSession(closedResult(), Options{})
	require.NoError(t, err)

	assert.Contains(t, output, "Session 5f0c2a4e")
	assert.Contains(t, output, "state: closed")
	assert.Contains(t, output, "amount0: -1500000")
	assert.Contains(t, output, "amount1: +250")
	assert.Contains(t, output, "elapsed: 1.5ms")
	assert.Contains(t, output, "native sent: 2000000")
	assert.Contains(t, output, "native refunded: 500000")
	assert.Contains(t, output, "direct_settle")
	assert.Contains(t, output, "owed_to_caller")
	assert.Contains(t, output, token.String())
	assert.Contains(t, output, closedResult().Delta.Hex())
}

func TestRenderSessionScalesDecimals(t *testing.T) {
	output, err := RenderSession(closedResult(), Options{Decimals: 6})
	require.NoError(t, err)

	assert.Contains(t, output, "amount0: -1.5")
	assert.Contains(t, output, "amount1: +0.00025")
	assert.Contains(t, output, "native refunded: 0.5")
}

func TestRenderQuoteShowsRequiredNative(t *testing.T) {
	result := closedResult()
	result.State = domain.SessionAborted
	result.NativeValue = uint256.NewInt(1_500_000)
	result.NativeRefund = nil
	result.Elapsed = 0

	output, err := RenderSession(result, Options{Quote: true})
	require.NoError(t, err)

	assert.Contains(t, output, "Quote")
	assert.Contains(t, output, "dry run (reverted)")
	assert.Contains(t, output, "required native: 1500000")
	assert.NotContains(t, output, "native refunded")
	assert.NotContains(t, output, "elapsed")
}

func TestRenderSessionWithoutInstructions(t *testing.T) {
	output, err := RenderSession(application.SessionResult{SessionID: "s", State: domain.SessionAborted}, Options{})
	require.NoError(t, err)

	assert.Contains(t, output, "state: aborted")
	assert.Contains(t, output, "No settlement needed.")
	assert.NotContains(t, output, "native sent")
}

func TestRenderPool(t *testing.T) {
	key := domain.NewPoolKey(token, domain.NativeAsset, 3000, 60, common.Address{})
	output, err := RenderPool(application.PoolMeta{
		ID:           key.ID(),
		Key:          key,
		SqrtPriceX96: new(big.Int).Lsh(big.NewInt(1), 96),
		Tick:         0,
		Liquidity:    big.NewInt(42),
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Pool "+key.ID().Hex())
	assert.Contains(t, output, "currency0: native")
	assert.Contains(t, output, "fee: 3000 (0.3%)")
	assert.Contains(t, output, "tick spacing: 60")
	assert.Contains(t, output, "sqrtPriceX96: 79228162514264337593543950336")
	assert.Contains(t, output, "liquidity: 42")
	assert.NotContains(t, output, "hooks")
}

func TestRenderBalances(t *testing.T) {
	holder := common.HexToAddress("0x00000000000000000000000000000000000a11ce")

	output, err := RenderBalances(application.Balances{
		Holder: holder,
		Holdings: []application.Holding{
			{Asset: domain.NativeAsset, External: uint256.NewInt(900), Claims: uint256.NewInt(0)},
			{Asset: token, External: uint256.NewInt(12), Claims: uint256.NewInt(3)},
		},
	}, Options{})
	require.NoError(t, err)

	assert.Contains(t, output, "holder: "+holder.Hex())
	assert.Contains(t, output, "balance")
	assert.Contains(t, output, "claims")
	assert.Contains(t, output, "native")
	assert.Contains(t, output, "900")
	assert.Contains(t, output, token.String())

	empty, err := RenderBalances(application.Balances{Holder: holder}, Options{})
	require.NoError(t, err)
	assert.Contains(t, empty, "No assets requested.")
}

func TestRenderMetrics(t *testing.T) {
	output, err := RenderMetrics([]prom.Sample{
		{Name: "poolctl_sessions_total", Labels: `{state="closed"}`, Value: 3},
		{Name: "poolctl_session_duration_seconds_sum", Value: 0.25},
	})
	require.NoError(t, err)

	assert.Contains(t, output, `poolctl_sessions_total{state="closed"} 3`)
	assert.Contains(t, output, "poolctl_session_duration_seconds_sum 0.25")

	empty, err := RenderMetrics(nil)
	require.NoError(t, err)
	assert.Contains(t, empty, "No samples.")
}
