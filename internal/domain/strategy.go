package domain

import (
	"fmt"

	"github.com/holiman/uint256"
)

type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyDirectSettle
	StrategyClaimBurn
	StrategyDirectTake
	StrategyClaimMint
)

func (s Strategy) String() string {
	switch s {
	case StrategyDirectSettle:
		return "direct_settle"
	case StrategyClaimBurn:
		return "claim_burn"
	case StrategyDirectTake:
		return "direct_take"
	case StrategyClaimMint:
		return "claim_mint"
	default:
		return "none"
	}
}

func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{StrategyDirectSettle, StrategyClaimBurn, StrategyDirectTake, StrategyClaimMint} {
		if s.String() == name {
			return s, nil
		}
	}
	return StrategyNone, fmt.Errorf("%w: unknown strategy %q", ErrConfig, name)
}

type Direction int

const (
	DirectionOwedByCaller Direction = iota + 1
	DirectionOwedToCaller
)

func (d Direction) String() string {
	switch d {
	case DirectionOwedByCaller:
		return "owed_by_caller"
	case DirectionOwedToCaller:
		return "owed_to_caller"
	default:
		return "unknown"
	}
}

// SettlementFlags are chosen by the caller once for a whole session.
type SettlementFlags struct {
	UseClaims bool
	UseBurn   bool
}

// SelectStrategy maps the sign of a delta and the session flags to a
// settlement strategy. A zero delta needs no settlement and reports false.
//
//	sign < 0, burn      -> claim_burn
//	sign < 0, !burn     -> direct_settle (native or token pull)
//	sign > 0, claims    -> claim_mint
//	sign > 0, !claims   -> direct_take
func SelectStrategy(sign int, flags SettlementFlags) (Strategy, Direction, bool) {
	switch {
	case sign < 0 && flags.UseBurn:
		return StrategyClaimBurn, DirectionOwedByCaller, true
	case sign < 0:
		return StrategyDirectSettle, DirectionOwedByCaller, true
	case sign > 0 && flags.UseClaims:
		return StrategyClaimMint, DirectionOwedToCaller, true
	case sign > 0:
		return StrategyDirectTake, DirectionOwedToCaller, true
	default:
		return StrategyNone, 0, false
	}
}

type SettlementInstruction struct {
	Asset     Asset
	Magnitude *uint256.Int
	Direction Direction
	Strategy  Strategy
}

func (i SettlementInstruction) String() string {
	return fmt.Sprintf("%s %s %s", i.Strategy, i.Asset, i.Magnitude.Dec())
}

// Delta returns the signed change this instruction applies to the caller's
// open delta once executed.
func (i SettlementInstruction) Delta() Amount {
	amount, err := AmountFromMagnitude(i.Magnitude)
	if err != nil {
		return Amount{}
	}
	if i.Direction == DirectionOwedByCaller {
		return amount
	}
	return amount.Neg()
}

// PlanSettlement derives one instruction per nonzero lane of delta. All
// caller-owed instructions come first so the manager is never paid out
// before it has been paid in.
func PlanSettlement(key PoolKey, delta PackedDelta, flags SettlementFlags) []SettlementInstruction {
	amount0, amount1 := delta.Decode()
	lanes := []struct {
		asset  Asset
		amount Amount
	}{
		{asset: key.Currency0, amount: amount0},
		{asset: key.Currency1, amount: amount1},
	}

	owed := make([]SettlementInstruction, 0, 2)
	proceeds := make([]SettlementInstruction, 0, 2)
	for _, lane := range lanes {
		strategy, direction, ok := SelectStrategy(lane.amount.Sign(), flags)
		if !ok {
			continue
		}
		instruction := SettlementInstruction{
			Asset:     lane.asset,
			Magnitude: lane.amount.Magnitude(),
			Direction: direction,
			Strategy:  strategy,
		}
		if direction == DirectionOwedByCaller {
			owed = append(owed, instruction)
			continue
		}
		proceeds = append(proceeds, instruction)
	}

	return append(owed, proceeds...)
}

// RequiredNative is the native value a plan pulls directly from the
// caller's pre-funding: the magnitude of every direct settlement of the
// native asset.
func RequiredNative(plan []SettlementInstruction) *uint256.Int {
	total := new(uint256.Int)
	for _, instruction := range plan {
		if instruction.Strategy == StrategyDirectSettle && instruction.Asset.IsNative() {
			total.Add(total, instruction.Magnitude)
		}
	}
	return total
}
