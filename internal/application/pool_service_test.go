package application

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/bnema/poolctl/internal/adapters/memchain"
	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports/mocks"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPoolServiceCreatePoolSortsPairAndRecords(t *testing.T) {
	manager := memchain.NewManager(memchain.NewState())
	journal := mocks.NewMockJournal(t)
	clock := mocks.NewMockClock(t)
	now := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)

	var recorded domain.Record
	journal.EXPECT().Append(mockAnyContext(), mock.AnythingOfType("domain.Record")).
		Run(func(_ context.Context, record domain.Record) { recorded = record }).
		Return(nil)

	service := NewPoolService(manager, journal, clock, nil, "sepolia")
	sqrtPrice := new(big.Int).Lsh(big.NewInt(1), 96)

	meta, err := service.CreatePool(context.Background(), CreatePoolCommand{
		Token0:       testToken1,
		Token1:       testToken0,
		Fee:          3000,
		TickSpacing:  60,
		SqrtPriceX96: sqrtPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, testToken0, meta.Key.Currency0)
	assert.Equal(t, testToken1, meta.Key.Currency1)
	assert.Equal(t, meta.Key.ID(), meta.ID)
	assert.Equal(t, int32(0), meta.Tick)
	assert.Zero(t, meta.Liquidity.Sign())

	assert.Equal(t, domain.RecordPoolCreated, recorded.Kind)
	assert.Equal(t, now, recorded.Time)
	assert.Equal(t, "sepolia", recorded.Network)
	assert.Equal(t, manager.Address().Hex(), recorded.Manager)
	assert.Equal(t, meta.ID.Hex(), recorded.PoolID)
	assert.Equal(t, testToken0.String(), recorded.Token0)
	assert.Equal(t, sqrtPrice.String(), recorded.SqrtPriceX96)
}

func TestPoolServiceCreatePoolRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreatePoolCommand
	}{
		{
			name: "same token",
			cmd:  CreatePoolCommand{Token0: testToken0, Token1: testToken0, Fee: 500, TickSpacing: 10, SqrtPriceX96: big.NewInt(1)},
		},
		{
			name: "fee too high",
			cmd:  CreatePoolCommand{Token0: testToken0, Token1: testToken1, Fee: 1_000_001, TickSpacing: 10, SqrtPriceX96: big.NewInt(1)},
		},
		{
			name: "zero tick spacing",
			cmd:  CreatePoolCommand{Token0: testToken0, Token1: testToken1, Fee: 500, TickSpacing: 0, SqrtPriceX96: big.NewInt(1)},
		},
		{
			name: "zero price",
			cmd:  CreatePoolCommand{Token0: testToken0, Token1: testToken1, Fee: 500, TickSpacing: 10, SqrtPriceX96: big.NewInt(0)},
		},
		{
			name: "price beyond uint160",
			cmd:  CreatePoolCommand{Token0: testToken0, Token1: testToken1, Fee: 500, TickSpacing: 10, SqrtPriceX96: new(big.Int).Lsh(big.NewInt(1), 160)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewPoolService(mocks.NewMockManager(t), mocks.NewMockJournal(t), nil, nil, "local")

			_, err := service.CreatePool(context.Background(), tt.cmd)
			require.ErrorIs(t, err, domain.ErrConfig)
		})
	}
}

func TestPoolServiceCreatePoolRejectsDuplicate(t *testing.T) {
	manager := memchain.NewManager(memchain.NewState())
	journal := mocks.NewMockJournal(t)
	journal.EXPECT().Append(mockAnyContext(), mock.AnythingOfType("domain.Record")).Return(nil).Once()
	service := NewPoolService(manager, journal, nil, nil, "local")

	cmd := CreatePoolCommand{Token0: testToken0, Token1: testToken1, Fee: 500, TickSpacing: 10, Hooks: common.HexToAddress("0x0000000000000000000000000000000000000f00"), SqrtPriceX96: big.NewInt(1 << 40)}
	_, err := service.CreatePool(context.Background(), cmd)
	require.NoError(t, err)

	_, err = service.CreatePool(context.Background(), cmd)
	require.ErrorIs(t, err, domain.ErrPoolAlreadyInitialized)
}

func TestPoolServiceCreatePoolReturnsJournalError(t *testing.T) {
	manager := mocks.NewMockManager(t)
	journal := mocks.NewMockJournal(t)
	service := NewPoolService(manager, journal, nil, nil, "local")

	key := domain.NewPoolKey(testToken0, testToken1, 500, 10, common.Address{})
	journalErr := errors.New("journal closed")
	manager.EXPECT().Initialize(mockAnyContext(), key, big.NewInt(99)).Return(key.ID(), nil)
	manager.EXPECT().Address().Return(memchain.DefaultManagerAddress)
	journal.EXPECT().Append(mockAnyContext(), mock.AnythingOfType("domain.Record")).Return(journalErr)

	_, err := service.CreatePool(context.Background(), CreatePoolCommand{Token0: testToken0, Token1: testToken1, Fee: 500, TickSpacing: 10, SqrtPriceX96: big.NewInt(99)})
	require.ErrorIs(t, err, journalErr)
}

func TestPoolServicePoolMetaUnknownPool(t *testing.T) {
	service := NewPoolService(memchain.NewManager(memchain.NewState()), nil, nil, nil, "local")

	_, err := service.PoolMeta(context.Background(), domain.NewPoolKey(testToken0, testToken1, 500, 10, common.Address{}))
	require.ErrorIs(t, err, domain.ErrPoolNotFound)
}
