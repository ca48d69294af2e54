package application

import (
	"math/big"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type PoolMeta struct {
	ID           domain.PoolID
	Key          domain.PoolKey
	SqrtPriceX96 *big.Int
	Tick         int32
	Liquidity    *big.Int
}

type Holding struct {
	Asset    domain.Asset
	External *uint256.Int
	Claims   *uint256.Int
}

type Balances struct {
	Holder   common.Address
	Holdings []Holding
}
