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
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLiquidityService(t *testing.T, f *settlementFixture, journal *mocks.MockJournal) *LiquidityService {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	return NewLiquidityService(f.controller, f.ledger, testRouter, journal, clock, nil, "local")
}

func TestLiquidityServiceAddLiquidityQuotesNativeAndApproves(t *testing.T) {
	f := newSettlementFixture(t, domain.NativeAsset, testToken1, nil)
	f.credit(t, domain.NativeAsset, testPayer, 10_000)
	f.credit(t, testToken1, testPayer, 10_000)

	journal := mocks.NewMockJournal(t)
	var recorded domain.Record
	journal.EXPECT().Append(mockAnyContext(), mock.AnythingOfType("domain.Record")).
		Run(func(_ context.Context, record domain.Record) { recorded = record }).
		Return(nil)
	service := newLiquidityService(t, f, journal)

	result, err := service.AddLiquidity(context.Background(), AddLiquidityCommand{
		Payer: testPayer,
		Key:   f.key,
		Params: domain.ModifyLiquidityParams{
			TickLower:      -120,
			TickUpper:      120,
			LiquidityDelta: big.NewInt(3000),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SessionClosed, result.State)
	assert.Equal(t, uint64(3000), result.NativeValue.Uint64())
	assert.True(t, result.NativeRefund.IsZero())
	assert.Equal(t, uint64(7000), f.balance(t, domain.NativeAsset, testPayer))
	assert.Equal(t, uint64(7000), f.balance(t, testToken1, testPayer))

	allowance, err := f.ledger.Allowance(context.Background(), testToken1, testPayer, testRouter)
	require.NoError(t, err)
	assert.True(t, allowance.Eq(maxUint256))

	assert.Equal(t, domain.RecordSession, recorded.Kind)
	assert.Equal(t, "closed", recorded.State)
	assert.Equal(t, "local", recorded.Network)
	assert.Equal(t, "-3000", recorded.Amount0)
	assert.Equal(t, "3000", recorded.NativeValue)
	assert.Equal(t, testPayer.Hex(), recorded.Caller)
	assert.Len(t, recorded.Instructions, 2)
	assert.Empty(t, recorded.Error)
}

func TestLiquidityServiceAddLiquidityRejectsShortNativeBalance(t *testing.T) {
	f := newSettlementFixture(t, domain.NativeAsset, testToken1, nil)
	f.credit(t, domain.NativeAsset, testPayer, 100)
	f.credit(t, testToken1, testPayer, 10_000)

	service := newLiquidityService(t, f, mocks.NewMockJournal(t))

	result, err := service.AddLiquidity(context.Background(), AddLiquidityCommand{
		Payer: testPayer,
		Key:   f.key,
		Params: domain.ModifyLiquidityParams{
			TickLower:      -60,
			TickUpper:      60,
			LiquidityDelta: big.NewInt(1000),
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientNative)
	assert.Equal(t, domain.SessionUninitialized, result.State)
	assert.Equal(t, uint64(100), f.balance(t, domain.NativeAsset, testPayer))
}

func TestLiquidityServiceAddLiquidityRecordsAbortedSession(t *testing.T) {
	f := newSettlementFixture(t, testToken0, testToken1, nil)
	f.credit(t, testToken0, testPayer, 10)

	journal := mocks.NewMockJournal(t)
	var recorded domain.Record
	journal.EXPECT().Append(mockAnyContext(), mock.AnythingOfType("domain.Record")).
		Run(func(_ context.Context, record domain.Record) { recorded = record }).
		Return(nil)
	service := newLiquidityService(t, f, journal)

	result, err := service.AddLiquidity(context.Background(), AddLiquidityCommand{
		Payer:     testPayer,
		Recipient: testRecipient,
		Key:       f.key,
		Params: domain.ModifyLiquidityParams{
			TickLower:      -60,
			TickUpper:      60,
			LiquidityDelta: big.NewInt(1000),
		},
	})
	require.ErrorIs(t, err, domain.ErrAuthorization)
	assert.Equal(t, domain.SessionAborted, result.State)
	assert.Equal(t, "aborted", recorded.State)
	assert.NotEmpty(t, recorded.Error)

	// Approvals are granted before the session and survive its abort.
	allowance, err := f.ledger.Allowance(context.Background(), testToken0, testPayer, testRouter)
	require.NoError(t, err)
	assert.True(t, allowance.Eq(maxUint256))
}

func TestLiquidityServiceAddLiquidityDryRunKeepsState(t *testing.T) {
	f := newSettlementFixture(t, testToken0, testToken1, fixedQuote(-10, -20))
	service := newLiquidityService(t, f, mocks.NewMockJournal(t))

	result, err := service.AddLiquidity(context.Background(), AddLiquidityCommand{
		Payer: testPayer,
		Key:   f.key,
		Params: domain.ModifyLiquidityParams{
			TickLower:      -60,
			TickUpper:      60,
			LiquidityDelta: big.NewInt(5),
		},
		DryRun: true,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SessionAborted, result.State)
	assert.Equal(t, "-10", result.Amount0.String())
	assert.Equal(t, "-20", result.Amount1.String())
	assert.True(t, result.NativeValue.IsZero())

	allowance, err := f.ledger.Allowance(context.Background(), testToken0, testPayer, testRouter)
	require.NoError(t, err)
	assert.True(t, allowance.IsZero())
}

func TestLiquidityServiceRemoveLiquidityTakesProceeds(t *testing.T) {
	f := newSettlementFixture(t, testToken0, testToken1, nil)
	f.credit(t, testToken0, testPayer, 500)
	f.credit(t, testToken1, testPayer, 500)

	journal := mocks.NewMockJournal(t)
	journal.EXPECT().Append(mockAnyContext(), mock.AnythingOfType("domain.Record")).Return(nil).Twice()
	service := newLiquidityService(t, f, journal)

	params := domain.ModifyLiquidityParams{TickLower: -60, TickUpper: 60, LiquidityDelta: big.NewInt(400)}
	_, err := service.AddLiquidity(context.Background(), AddLiquidityCommand{Payer: testPayer, Key: f.key, Params: params})
	require.NoError(t, err)

	params.LiquidityDelta = big.NewInt(-400)
	result, err := service.AddLiquidity(context.Background(), AddLiquidityCommand{Payer: testPayer, Recipient: testRecipient, Key: f.key, Params: params})
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyDirectTake, result.Instructions[0].Strategy)
	assert.Equal(t, uint64(400), f.balance(t, testToken0, testRecipient))
	assert.Equal(t, uint64(400), f.balance(t, testToken1, testRecipient))
	assert.Equal(t, uint64(100), f.balance(t, testToken0, testPayer))
}

func TestLiquidityServiceAddLiquidityReturnsJournalFailure(t *testing.T) {
	f := newSettlementFixture(t, testToken0, testToken1, fixedQuote(-1, -1))
	f.credit(t, testToken0, testPayer, 1)
	f.credit(t, testToken1, testPayer, 1)

	journalErr := errors.New("disk full")
	journal := mocks.NewMockJournal(t)
	journal.EXPECT().Append(mockAnyContext(), mock.AnythingOfType("domain.Record")).Return(journalErr)
	service := newLiquidityService(t, f, journal)

	result, err := service.AddLiquidity(context.Background(), AddLiquidityCommand{
		Payer:  testPayer,
		Key:    f.key,
		Params: domain.ModifyLiquidityParams{TickLower: -60, TickUpper: 60, LiquidityDelta: big.NewInt(1)},
	})
	require.ErrorIs(t, err, journalErr)
	assert.Equal(t, domain.SessionClosed, result.State)
}

func TestLedgerServiceCreditAndBalances(t *testing.T) {
	state := memchain.NewState()
	ledger := memchain.NewLedger(state)
	manager := memchain.NewManager(state)
	service := NewLedgerService(ledger, ledger, manager, nil)

	require.NoError(t, service.Credit(context.Background(), CreditCommand{Holder: testPayer, Asset: testToken0, Amount: uint256.NewInt(42)}))
	require.ErrorIs(t, service.Credit(context.Background(), CreditCommand{Holder: testPayer, Asset: testToken0, Amount: new(uint256.Int)}), domain.ErrConfig)
	require.ErrorIs(t, service.Credit(context.Background(), CreditCommand{Asset: testToken0, Amount: uint256.NewInt(1)}), domain.ErrConfig)

	balances, err := service.Balances(context.Background(), testPayer, []domain.Asset{testToken0, domain.NativeAsset})
	require.NoError(t, err)

	require.Len(t, balances.Holdings, 2)
	assert.Equal(t, uint64(42), balances.Holdings[0].External.Uint64())
	assert.True(t, balances.Holdings[0].Claims.IsZero())
	assert.True(t, balances.Holdings[1].External.IsZero())
}

func TestLedgerServiceBalancesReturnsClaimError(t *testing.T) {
	ledger := mocks.NewMockTokenLedger(t)
	manager := mocks.NewMockManager(t)
	service := NewLedgerService(ledger, nil, manager, nil)

	claimErr := errors.New("manager unavailable")
	ledger.EXPECT().BalanceOf(mockAnyContext(), testToken0, testPayer).Return(uint256.NewInt(1), nil)
	manager.EXPECT().ClaimBalance(mockAnyContext(), testPayer, testToken0).Return(nil, claimErr)

	_, err := service.Balances(context.Background(), testPayer, []domain.Asset{testToken0})
	require.ErrorIs(t, err, claimErr)
}

func mockAnyContext() interface{} {
	return mock.Anything
}

func mockAnything() interface{} {
	return mock.Anything
}
