package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

var (
	laneMask     = new(uint256.Int).Rsh(new(uint256.Int).SetAllOne(), 128)
	laneSignByte = uint256.NewInt(15)

	maxInt256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	minInt256 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
)

// Amount is a signed quantity in the int128 range, held as a 256-bit two's
// complement word so it can be packed without conversion.
type Amount struct {
	v uint256.Int
}

func NewAmount(x int64) Amount {
	var a Amount
	if x < 0 {
		a.v.SetUint64(uint64(-(x + 1)) + 1)
		a.v.Neg(&a.v)
		return a
	}
	a.v.SetUint64(uint64(x))
	return a
}

func AmountFromBig(b *big.Int) (Amount, error) {
	var a Amount
	if b == nil {
		return a, nil
	}
	if b.BitLen() > 128 {
		return Amount{}, fmt.Errorf("%w: %s", ErrAmountOverflow, b)
	}
	a.v.SetFromBig(b)
	if !fitsInt128(&a.v) {
		return Amount{}, fmt.Errorf("%w: %s", ErrAmountOverflow, b)
	}
	return a, nil
}

func ParseAmount(raw string) (Amount, error) {
	b, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return Amount{}, fmt.Errorf("%w: invalid amount %q", ErrConfig, raw)
	}
	return AmountFromBig(b)
}

// AmountFromMagnitude builds a non-negative Amount from an unsigned value.
func AmountFromMagnitude(m *uint256.Int) (Amount, error) {
	var a Amount
	a.v.Set(m)
	if a.v.Sign() < 0 || !fitsInt128(&a.v) {
		return Amount{}, fmt.Errorf("%w: %s", ErrAmountOverflow, m.Dec())
	}
	return a, nil
}

func (a Amount) Sign() int {
	return a.v.Sign()
}

func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

func (a Amount) Neg() Amount {
	var n Amount
	n.v.Neg(&a.v)
	return n
}

// Magnitude returns |a| as an unsigned 256-bit integer.
func (a Amount) Magnitude() *uint256.Int {
	return new(uint256.Int).Abs(&a.v)
}

func (a Amount) Add(b Amount) (Amount, error) {
	var sum Amount
	sum.v.Add(&a.v, &b.v)
	if !fitsInt128(&sum.v) {
		return Amount{}, fmt.Errorf("%w: %s + %s", ErrAmountOverflow, a, b)
	}
	return sum, nil
}

func (a Amount) Equal(b Amount) bool {
	return a.v.Eq(&b.v)
}

func (a Amount) Big() *big.Int {
	if a.v.Sign() < 0 {
		return new(big.Int).Neg(a.Magnitude().ToBig())
	}
	return a.v.ToBig()
}

func (a Amount) String() string {
	if a.v.Sign() < 0 {
		return "-" + a.Magnitude().Dec()
	}
	return a.v.Dec()
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func fitsInt128(x *uint256.Int) bool {
	var extended uint256.Int
	extended.ExtendSign(x, laneSignByte)
	return extended.Eq(x)
}

// PackedDelta is the signed 256-bit word returned by a position change.
//
//	bits 255..128  lane0 (amount0, first asset of the pair), two's complement
//	bits 127..0    lane1 (amount1, second asset of the pair), two's complement
//
// The lanes are independent: decoding never lets the sign of one lane leak
// into the other.
type PackedDelta struct {
	word uint256.Int
}

func EncodeDelta(amount0, amount1 Amount) PackedDelta {
	var d PackedDelta
	var low uint256.Int
	d.word.Lsh(&amount0.v, 128)
	low.And(&amount1.v, laneMask)
	d.word.Or(&d.word, &low)
	return d
}

func (d PackedDelta) Decode() (Amount, Amount) {
	var amount0, amount1 Amount
	amount0.v.SRsh(&d.word, 128)
	amount1.v.ExtendSign(&d.word, laneSignByte)
	return amount0, amount1
}

func (d PackedDelta) Amount0() Amount {
	amount0, _ := d.Decode()
	return amount0
}

func (d PackedDelta) Amount1() Amount {
	_, amount1 := d.Decode()
	return amount1
}

func (d PackedDelta) IsZero() bool {
	return d.word.IsZero()
}

// PackedDeltaFromBig interprets b as a signed 256-bit value.
func PackedDeltaFromBig(b *big.Int) (PackedDelta, error) {
	var d PackedDelta
	if b.Cmp(maxInt256) > 0 || b.Cmp(minInt256) < 0 {
		return PackedDelta{}, fmt.Errorf("%w: packed delta %s exceeds int256", ErrAmountOverflow, b)
	}
	d.word.SetFromBig(b)
	return d, nil
}

func (d PackedDelta) Big() *big.Int {
	if d.word.Sign() < 0 {
		return new(big.Int).Neg(new(uint256.Int).Abs(&d.word).ToBig())
	}
	return d.word.ToBig()
}

func (d PackedDelta) Hex() string {
	return "0x" + fmt.Sprintf("%064x", d.word.ToBig())
}

func (d PackedDelta) String() string {
	amount0, amount1 := d.Decode()
	return fmt.Sprintf("(%s, %s)", amount0, amount1)
}
