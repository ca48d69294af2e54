package domain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	MinTick        int32  = -887272
	MaxTick        int32  = 887272
	MaxFee         uint32 = 1_000_000
	MinTickSpacing int32  = 1
	MaxTickSpacing int32  = 32767
)

var maxSqrtPriceX96 = new(big.Int).Lsh(big.NewInt(1), 160)

type PoolID common.Hash

func (id PoolID) Hex() string {
	return common.Hash(id).Hex()
}

// PoolKey identifies a pool inside the singleton manager. Currency0 must sort
// strictly below Currency1.
type PoolKey struct {
	Currency0   Asset
	Currency1   Asset
	Fee         uint32
	TickSpacing int32
	Hooks       common.Address
}

func NewPoolKey(a, b Asset, fee uint32, tickSpacing int32, hooks common.Address) PoolKey {
	currency0, currency1 := SortPair(a, b)
	return PoolKey{
		Currency0:   currency0,
		Currency1:   currency1,
		Fee:         fee,
		TickSpacing: tickSpacing,
		Hooks:       hooks,
	}
}

func (k PoolKey) Validate() error {
	if k.Currency0 == k.Currency1 {
		return fmt.Errorf("%w: pool currencies must differ", ErrConfig)
	}
	if !k.Currency0.Less(k.Currency1) {
		return fmt.Errorf("%w: currency0 %s must sort below currency1 %s", ErrConfig, k.Currency0, k.Currency1)
	}
	if k.Fee > MaxFee {
		return fmt.Errorf("%w: fee %d exceeds %d", ErrConfig, k.Fee, MaxFee)
	}
	if k.TickSpacing < MinTickSpacing || k.TickSpacing > MaxTickSpacing {
		return fmt.Errorf("%w: tick spacing %d outside [%d, %d]", ErrConfig, k.TickSpacing, MinTickSpacing, MaxTickSpacing)
	}

	return nil
}

// ID is keccak256 over the ABI encoding of the five key fields.
func (k PoolKey) ID() PoolID {
	encoded := make([]byte, 0, 5*32)
	encoded = append(encoded, common.LeftPadBytes(k.Currency0.Address.Bytes(), 32)...)
	encoded = append(encoded, common.LeftPadBytes(k.Currency1.Address.Bytes(), 32)...)
	encoded = append(encoded, math.U256Bytes(new(big.Int).SetUint64(uint64(k.Fee)))...)
	encoded = append(encoded, math.U256Bytes(big.NewInt(int64(k.TickSpacing)))...)
	encoded = append(encoded, common.LeftPadBytes(k.Hooks.Bytes(), 32)...)

	return PoolID(crypto.Keccak256Hash(encoded))
}

// Contains reports whether asset is one side of the pair.
func (k PoolKey) Contains(asset Asset) bool {
	return asset == k.Currency0 || asset == k.Currency1
}

type Pool struct {
	Key          PoolKey
	SqrtPriceX96 *big.Int
	Liquidity    *big.Int
}

func ValidateSqrtPriceX96(sqrtPriceX96 *big.Int) error {
	if sqrtPriceX96 == nil || sqrtPriceX96.Sign() <= 0 {
		return fmt.Errorf("%w: sqrtPriceX96 must be positive", ErrConfig)
	}
	if sqrtPriceX96.Cmp(maxSqrtPriceX96) >= 0 {
		return fmt.Errorf("%w: sqrtPriceX96 exceeds uint160", ErrConfig)
	}
	return nil
}

type ModifyLiquidityParams struct {
	TickLower      int32
	TickUpper      int32
	LiquidityDelta *big.Int
	Salt           common.Hash
}

func (p ModifyLiquidityParams) Validate(tickSpacing int32) error {
	if p.TickLower >= p.TickUpper {
		return fmt.Errorf("%w: tickLower %d must be below tickUpper %d", ErrConfig, p.TickLower, p.TickUpper)
	}
	if p.TickLower < MinTick || p.TickUpper > MaxTick {
		return fmt.Errorf("%w: ticks [%d, %d] outside [%d, %d]", ErrConfig, p.TickLower, p.TickUpper, MinTick, MaxTick)
	}
	if tickSpacing > 0 && (p.TickLower%tickSpacing != 0 || p.TickUpper%tickSpacing != 0) {
		return fmt.Errorf("%w: ticks [%d, %d] not aligned to spacing %d", ErrConfig, p.TickLower, p.TickUpper, tickSpacing)
	}
	if p.LiquidityDelta == nil || p.LiquidityDelta.Sign() == 0 {
		return fmt.Errorf("%w: liquidity delta must be nonzero", ErrConfig)
	}
	if _, err := AmountFromBig(p.LiquidityDelta); err != nil {
		return fmt.Errorf("%w: liquidity delta: %w", ErrConfig, err)
	}

	return nil
}

type PositionKey common.Hash

// NewPositionKey hashes the packed (owner, tickLower, tickUpper, salt) tuple.
func NewPositionKey(owner common.Address, tickLower, tickUpper int32, salt common.Hash) PositionKey {
	packed := make([]byte, 0, 20+3+3+32)
	packed = append(packed, owner.Bytes()...)
	packed = append(packed, int24Bytes(tickLower)...)
	packed = append(packed, int24Bytes(tickUpper)...)
	packed = append(packed, salt.Bytes()...)

	return PositionKey(crypto.Keccak256Hash(packed))
}

func (k PositionKey) Hex() string {
	return common.Hash(k).Hex()
}

type Position struct {
	Pool      PoolID
	Owner     common.Address
	TickLower int32
	TickUpper int32
	Salt      common.Hash
	Liquidity *big.Int
}

func (p Position) Key() PositionKey {
	return NewPositionKey(p.Owner, p.TickLower, p.TickUpper, p.Salt)
}

func int24Bytes(v int32) []byte {
	u := uint32(v) & 0xFFFFFF
	return []byte{byte(u >> 16), byte(u >> 8), byte(u)}
}
