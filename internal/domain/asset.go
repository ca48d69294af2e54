package domain

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Asset identifies a unit of value. The zero address is reserved for the
// chain's native asset; every other value is a fungible-token contract.
type Asset struct {
	Address common.Address
}

var NativeAsset = Asset{}

func NewAsset(addr common.Address) Asset {
	return Asset{Address: addr}
}

func ParseAsset(raw string) (Asset, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "native") {
		return NativeAsset, nil
	}
	if !common.IsHexAddress(trimmed) {
		return Asset{}, fmt.Errorf("%w: invalid asset address %q", ErrConfig, raw)
	}

	return Asset{Address: common.HexToAddress(trimmed)}, nil
}

func (a Asset) IsNative() bool {
	return a.Address == (common.Address{})
}

func (a Asset) String() string {
	if a.IsNative() {
		return "native"
	}
	return a.Address.Hex()
}

// Less orders assets by numeric address value.
func (a Asset) Less(other Asset) bool {
	return bytes.Compare(a.Address.Bytes(), other.Address.Bytes()) < 0
}

// SortPair returns the two assets in canonical (ascending address) order.
func SortPair(a, b Asset) (Asset, Asset) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}
