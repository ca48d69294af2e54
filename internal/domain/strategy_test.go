package domain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		name          string
		sign          int
		flags         SettlementFlags
		wantStrategy  Strategy
		wantDirection Direction
		wantOK        bool
	}{
		{name: "owed without burn pulls", sign: -1, wantStrategy: StrategyDirectSettle, wantDirection: DirectionOwedByCaller, wantOK: true},
		{name: "owed with burn burns claims", sign: -1, flags: SettlementFlags{UseBurn: true}, wantStrategy: StrategyClaimBurn, wantDirection: DirectionOwedByCaller, wantOK: true},
		{name: "owed ignores claims flag", sign: -1, flags: SettlementFlags{UseClaims: true}, wantStrategy: StrategyDirectSettle, wantDirection: DirectionOwedByCaller, wantOK: true},
		{name: "proceeds without claims take", sign: 1, wantStrategy: StrategyDirectTake, wantDirection: DirectionOwedToCaller, wantOK: true},
		{name: "proceeds with claims mint", sign: 1, flags: SettlementFlags{UseClaims: true}, wantStrategy: StrategyClaimMint, wantDirection: DirectionOwedToCaller, wantOK: true},
		{name: "proceeds ignore burn flag", sign: 1, flags: SettlementFlags{UseBurn: true}, wantStrategy: StrategyDirectTake, wantDirection: DirectionOwedToCaller, wantOK: true},
		{name: "zero is a no-op", sign: 0, flags: SettlementFlags{UseClaims: true, UseBurn: true}, wantStrategy: StrategyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, direction, ok := SelectStrategy(tt.sign, tt.flags)
			assert.Equal(t, tt.wantStrategy, strategy)
			assert.Equal(t, tt.wantDirection, direction)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPlanSettlementOrdersOwedFirst(t *testing.T) {
	token0 := NewAsset(common.HexToAddress("0x1000000000000000000000000000000000000001"))
	token1 := NewAsset(common.HexToAddress("0x2000000000000000000000000000000000000002"))
	key := NewPoolKey(token0, token1, 3000, 60, common.Address{})

	plan := PlanSettlement(key, EncodeDelta(NewAmount(300), NewAmount(-500)), SettlementFlags{})

	assert.Equal(t, []SettlementInstruction{
		{Asset: token1, Magnitude: uint256.NewInt(500), Direction: DirectionOwedByCaller, Strategy: StrategyDirectSettle},
		{Asset: token0, Magnitude: uint256.NewInt(300), Direction: DirectionOwedToCaller, Strategy: StrategyDirectTake},
	}, plan)
	assert.Equal(t, "500", plan[0].Delta().String())
	assert.Equal(t, "-300", plan[1].Delta().String())
	assert.Equal(t, "direct_settle "+token1.String()+" 500", plan[0].String())
}

func TestPlanSettlementSkipsZeroLanes(t *testing.T) {
	key := NewPoolKey(NativeAsset, NewAsset(common.HexToAddress("0x2000000000000000000000000000000000000002")), 500, 10, common.Address{})

	assert.Empty(t, PlanSettlement(key, PackedDelta{}, SettlementFlags{}))

	plan := PlanSettlement(key, EncodeDelta(NewAmount(-7), NewAmount(0)), SettlementFlags{})
	assert.Len(t, plan, 1)
	assert.Equal(t, NativeAsset, plan[0].Asset)
	assert.Equal(t, uint64(7), RequiredNative(plan).Uint64())

	burned := PlanSettlement(key, EncodeDelta(NewAmount(-7), NewAmount(0)), SettlementFlags{UseBurn: true})
	assert.True(t, RequiredNative(burned).IsZero())
}

func TestParseStrategyAndState(t *testing.T) {
	for _, s := range []Strategy{StrategyDirectSettle, StrategyClaimBurn, StrategyDirectTake, StrategyClaimMint} {
		parsed, err := ParseStrategy(s.String())
		assert.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := ParseStrategy("none")
	assert.ErrorIs(t, err, ErrConfig)

	state, err := ParseSessionState("aborted")
	assert.NoError(t, err)
	assert.Equal(t, SessionAborted, state)
	_, err = ParseSessionState("pending")
	assert.ErrorIs(t, err, ErrConfig)
}
