package domain

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, raw string) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(raw, 0)
	require.True(t, ok, raw)
	return b
}

func mustAmount(t *testing.T, raw string) Amount {
	t.Helper()
	a, err := ParseAmount(raw)
	require.NoError(t, err)
	return a
}

func TestPackedDeltaRoundTrip(t *testing.T) {
	const (
		maxInt128 = "170141183460469231731687303715884105727"
		minInt128 = "-170141183460469231731687303715884105728"
	)

	tests := []struct {
		name    string
		amount0 string
		amount1 string
	}{
		{name: "zero", amount0: "0", amount1: "0"},
		{name: "owe first receive second", amount0: "-500", amount1: "300"},
		{name: "receive first owe second", amount0: "300", amount1: "-500"},
		{name: "both negative", amount0: "-1", amount1: "-1"},
		{name: "negative first zero second", amount0: "-1", amount1: "0"},
		{name: "zero first negative second", amount0: "0", amount1: "-1"},
		{name: "extremes", amount0: maxInt128, amount1: minInt128},
		{name: "extremes swapped", amount0: minInt128, amount1: maxInt128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a0 := mustAmount(t, tt.amount0)
			a1 := mustAmount(t, tt.amount1)

			got0, got1 := EncodeDelta(a0, a1).Decode()
			assert.Equal(t, tt.amount0, got0.String())
			assert.Equal(t, tt.amount1, got1.String())
			assert.True(t, a0.Equal(got0))
			assert.True(t, a1.Equal(got1))
		})
	}
}

func TestPackedDeltaReencodesArbitraryWords(t *testing.T) {
	words := []string{
		"0",
		"-1",
		"0x100000000000000000000000000000000000000000000000005",
		"0x0000000000000000000000000000000780000000000000000000000000000000",
		"-57896044618658097711785492504343953926634992332820282019728792003956564819968",
		"57896044618658097711785492504343953926634992332820282019728792003956564819967",
	}

	for _, raw := range words {
		t.Run(raw, func(t *testing.T) {
			word, err := PackedDeltaFromBig(mustBig(t, raw))
			require.NoError(t, err)

			a0, a1 := word.Decode()
			assert.Equal(t, word, EncodeDelta(a0, a1))
			assert.Equal(t, 0, mustBig(t, raw).Cmp(word.Big()))
		})
	}
}

func TestPackedDeltaLanesAreIndependent(t *testing.T) {
	d := EncodeDelta(NewAmount(0), NewAmount(-1))
	assert.True(t, d.Amount0().IsZero())
	assert.Equal(t, "-1", d.Amount1().String())

	d = EncodeDelta(NewAmount(-1), NewAmount(0))
	assert.Equal(t, "-1", d.Amount0().String())
	assert.True(t, d.Amount1().IsZero())

	word, err := PackedDeltaFromBig(mustBig(t, "0x780000000000000000000000000000000"))
	require.NoError(t, err)
	assert.Equal(t, "7", word.Amount0().String())
	assert.Equal(t, "-170141183460469231731687303715884105728", word.Amount1().String())
}

func TestPackedDeltaHex(t *testing.T) {
	d := EncodeDelta(NewAmount(-500), NewAmount(300))

	want := "0x" + strings.Repeat("f", 29) + "e0c" + strings.Repeat("0", 29) + "12c"
	assert.Equal(t, want, d.Hex())
	assert.Equal(t, "(-500, 300)", d.String())
}

func TestPackedDeltaFromBigRejectsOutOfRange(t *testing.T) {
	_, err := PackedDeltaFromBig(new(big.Int).Lsh(big.NewInt(1), 255))
	require.ErrorIs(t, err, ErrAmountOverflow)

	tooLow := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
	tooLow.Sub(tooLow, big.NewInt(1))
	_, err = PackedDeltaFromBig(tooLow)
	require.ErrorIs(t, err, ErrAmountOverflow)
}

func TestAmountRange(t *testing.T) {
	_, err := AmountFromBig(new(big.Int).Lsh(big.NewInt(1), 127))
	require.ErrorIs(t, err, ErrAmountOverflow)

	minimum := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	a, err := AmountFromBig(minimum)
	require.NoError(t, err)
	assert.Equal(t, -1, a.Sign())
	assert.Equal(t, 0, new(big.Int).Lsh(big.NewInt(1), 127).Cmp(a.Magnitude().ToBig()))
	assert.Equal(t, 0, minimum.Cmp(a.Big()))

	_, err = AmountFromBig(new(big.Int).Sub(minimum, big.NewInt(1)))
	require.ErrorIs(t, err, ErrAmountOverflow)

	maxAmount := mustAmount(t, "170141183460469231731687303715884105727")
	_, err = maxAmount.Add(NewAmount(1))
	require.ErrorIs(t, err, ErrAmountOverflow)

	_, err = ParseAmount("12ab")
	require.ErrorIs(t, err, ErrConfig)
}

func TestAmountArithmetic(t *testing.T) {
	sum, err := NewAmount(-500).Add(NewAmount(500))
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
	assert.Equal(t, Amount{}, sum)

	assert.Equal(t, "42", NewAmount(-42).Neg().String())
	assert.Equal(t, uint64(42), NewAmount(-42).Magnitude().Uint64())

	var decoded Amount
	require.NoError(t, decoded.UnmarshalText([]byte("-7")))
	text, err := decoded.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-7", string(text))
}
