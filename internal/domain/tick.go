package domain

import (
	"math"
	"math/big"
)

var q96 = new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), 96))

// TickAtSqrtPrice returns the tick nearest below sqrtPriceX96, using
// floating point. It is for display only; no state depends on it.
func TickAtSqrtPrice(sqrtPriceX96 *big.Int) int32 {
	if sqrtPriceX96 == nil || sqrtPriceX96.Sign() <= 0 {
		return MinTick
	}

	ratio, _ := new(big.Float).Quo(new(big.Float).SetInt(sqrtPriceX96), q96).Float64()
	tick := math.Floor(2 * math.Log(ratio) / math.Log(1.0001))
	switch {
	case tick < float64(MinTick):
		return MinTick
	case tick > float64(MaxTick):
		return MaxTick
	default:
		return int32(tick)
	}
}
