package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	maxUint256        = new(uint256.Int).SetAllOne()
	approvalThreshold = new(uint256.Int).Rsh(maxUint256, 1)
)

// LiquidityService prepares a position change for the controller: it fills
// in defaults, grants the router its token allowances, sizes the native
// pre-funding and records the outcome.
type LiquidityService struct {
	controller *Controller
	ledger     ports.TokenLedger
	router     common.Address
	journal    ports.Journal
	clock      ports.Clock
	logger     *slog.Logger
	network    string
}

func NewLiquidityService(controller *Controller, ledger ports.TokenLedger, router common.Address, journal ports.Journal, clock ports.Clock, logger *slog.Logger, network string) *LiquidityService {
	if journal == nil {
		journal = ports.NopJournal{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &LiquidityService{
		controller: controller,
		ledger:     ledger,
		router:     router,
		journal:    journal,
		clock:      clock,
		logger:     logger,
		network:    network,
	}
}

func (s *LiquidityService) AddLiquidity(ctx context.Context, cmd AddLiquidityCommand) (SessionResult, error) {
	req := s.request(cmd)
	if err := req.Validate(); err != nil {
		return SessionResult{State: domain.SessionUninitialized}, err
	}

	if cmd.DryRun {
		return s.controller.Quote(ctx, req)
	}

	if req.NativeValue == nil {
		native, err := s.requiredNative(ctx, req)
		if err != nil {
			return SessionResult{State: domain.SessionUninitialized}, err
		}
		req.NativeValue = native
	}
	if err := s.checkNative(ctx, req.Payer, req.NativeValue); err != nil {
		return SessionResult{State: domain.SessionUninitialized}, err
	}
	if err := s.ensureApprovals(ctx, req.Payer, req.Key); err != nil {
		return SessionResult{State: domain.SessionUninitialized}, err
	}

	result, execErr := s.controller.Execute(ctx, req)
	if err := s.journal.Append(ctx, s.sessionRecord(req, result, execErr)); err != nil {
		return result, errors.Join(execErr, fmt.Errorf("append session record: %w", err))
	}

	return result, execErr
}

// Quote reports the delta and plan of a position change without keeping any
// of its effects.
func (s *LiquidityService) Quote(ctx context.Context, cmd AddLiquidityCommand) (SessionResult, error) {
	return s.controller.Quote(ctx, s.request(cmd))
}

func (s *LiquidityService) request(cmd AddLiquidityCommand) ExecuteRequest {
	recipient := cmd.Recipient
	if recipient == (common.Address{}) {
		recipient = cmd.Payer
	}

	var native *uint256.Int
	if cmd.NativeValue != nil {
		native = cmd.NativeValue.Clone()
	}

	return ExecuteRequest{
		Payer:       cmd.Payer,
		Recipient:   recipient,
		Key:         cmd.Key,
		Params:      cmd.Params,
		Flags:       cmd.Flags,
		NativeValue: native,
	}
}

func (s *LiquidityService) requiredNative(ctx context.Context, req ExecuteRequest) (*uint256.Int, error) {
	if !req.Key.Contains(domain.NativeAsset) {
		return new(uint256.Int), nil
	}

	quote, err := s.controller.Quote(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quote native value: %w", err)
	}
	s.logger.Debug("native value quoted", "amount", quote.NativeValue.Dec())

	return quote.NativeValue, nil
}

func (s *LiquidityService) checkNative(ctx context.Context, payer common.Address, value *uint256.Int) error {
	if value.IsZero() {
		return nil
	}

	balance, err := s.ledger.BalanceOf(ctx, domain.NativeAsset, payer)
	if err != nil {
		return fmt.Errorf("read native balance: %w", err)
	}
	if balance.Lt(value) {
		return fmt.Errorf("%w: %s holds %s, needs %s", domain.ErrInsufficientNative, payer.Hex(), balance.Dec(), value.Dec())
	}

	return nil
}

// ensureApprovals gives the router an unlimited allowance on each token side
// whose current allowance has dropped below half of the maximum.
func (s *LiquidityService) ensureApprovals(ctx context.Context, payer common.Address, key domain.PoolKey) error {
	if payer == s.router {
		return nil
	}

	for _, asset := range []domain.Asset{key.Currency0, key.Currency1} {
		if asset.IsNative() {
			continue
		}

		allowance, err := s.ledger.Allowance(ctx, asset, payer, s.router)
		if err != nil {
			return fmt.Errorf("read allowance for %s: %w", asset, err)
		}
		if !allowance.Lt(approvalThreshold) {
			continue
		}
		if err := s.ledger.Approve(ctx, asset, payer, s.router, maxUint256); err != nil {
			return fmt.Errorf("approve router for %s: %w", asset, err)
		}
		s.logger.Info("router approved", "asset", asset.String(), "owner", payer.Hex())
	}

	return nil
}

func (s *LiquidityService) sessionRecord(req ExecuteRequest, result SessionResult, execErr error) domain.Record {
	record := domain.Record{
		Time:        s.clock.Now().UTC(),
		Kind:        domain.RecordSession,
		Network:     s.network,
		Manager:     s.controller.manager.Address().Hex(),
		PoolID:      req.Key.ID().Hex(),
		Token0:      req.Key.Currency0.String(),
		Token1:      req.Key.Currency1.String(),
		Fee:         req.Key.Fee,
		TickSpacing: req.Key.TickSpacing,
		SessionID:   string(result.SessionID),
		Caller:      req.Payer.Hex(),
		State:       result.State.String(),
		DurationMs:  float64(result.Elapsed) / float64(time.Millisecond),
	}
	if !result.Delta.IsZero() {
		record.PackedDelta = result.Delta.Hex()
		record.Amount0 = result.Amount0.String()
		record.Amount1 = result.Amount1.String()
	}
	for _, instruction := range result.Instructions {
		record.Instructions = append(record.Instructions, instruction.String())
	}
	if result.NativeValue != nil {
		record.NativeValue = result.NativeValue.Dec()
	}
	if execErr != nil {
		record.Error = execErr.Error()
	}

	return record
}
