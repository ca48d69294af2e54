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

type ExecuteRequest struct {
	Payer     common.Address
	Recipient common.Address
	Key       domain.PoolKey
	Params    domain.ModifyLiquidityParams
	Flags     domain.SettlementFlags
	// NativeValue is moved from Payer to the router inside the session;
	// whatever the settlement does not consume is refunded before close.
	NativeValue *uint256.Int
}

func (r ExecuteRequest) Validate() error {
	if r.Payer == (common.Address{}) {
		return fmt.Errorf("%w: payer is required", domain.ErrConfig)
	}
	if r.Recipient == (common.Address{}) {
		return fmt.Errorf("%w: recipient is required", domain.ErrConfig)
	}
	if err := r.Key.Validate(); err != nil {
		return err
	}
	if err := r.Params.Validate(r.Key.TickSpacing); err != nil {
		return err
	}
	if r.NativeValue != nil && !r.NativeValue.IsZero() && !r.Key.Contains(domain.NativeAsset) {
		return fmt.Errorf("%w: native value sent to a pool without the native asset", domain.ErrConfig)
	}

	return nil
}

type SessionResult struct {
	SessionID    domain.SessionID
	State        domain.SessionState
	Delta        domain.PackedDelta
	Amount0      domain.Amount
	Amount1      domain.Amount
	Instructions []domain.SettlementInstruction
	NativeValue  *uint256.Int
	NativeRefund *uint256.Int
	Elapsed      time.Duration
}

// Controller drives one unlocked session: open, a single position change,
// settlement of every resulting delta, then close. Any failure after open
// aborts the session, which reverts everything done since open.
type Controller struct {
	manager  ports.Manager
	ledger   ports.TokenLedger
	resolver *AssetResolver
	metrics  ports.SettlementMetrics
	clock    ports.Clock
	logger   *slog.Logger
}

func NewController(manager ports.Manager, ledger ports.TokenLedger, resolver *AssetResolver, metrics ports.SettlementMetrics, clock ports.Clock, logger *slog.Logger) *Controller {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Controller{
		manager:  manager,
		ledger:   ledger,
		resolver: resolver,
		metrics:  metrics,
		clock:    clock,
		logger:   logger,
	}
}

func (c *Controller) Execute(ctx context.Context, req ExecuteRequest) (SessionResult, error) {
	if err := req.Validate(); err != nil {
		return SessionResult{State: domain.SessionUninitialized}, err
	}

	started := c.clock.Now()
	handle, err := c.manager.OpenSession(ctx, req.Payer)
	if err != nil {
		return SessionResult{State: domain.SessionUninitialized}, fmt.Errorf("open session: %w", err)
	}

	// The manager owns the session and its deltas; only the state is tracked here.
	result := SessionResult{SessionID: handle.ID, State: domain.SessionOpen, NativeValue: nativeValue(req.NativeValue)}
	advance := func(to domain.SessionState) error {
		if !result.State.CanTransition(to) {
			return fmt.Errorf("session %s: illegal transition %s -> %s", handle.ID, result.State, to)
		}
		result.State = to
		return nil
	}
	logger := c.logger.With("session_id", handle.ID, "pool_id", req.Key.ID().Hex())
	logger.Debug("session opened", "payer", req.Payer.Hex(), "native_value", result.NativeValue.Dec())

	abort := func(cause error) (SessionResult, error) {
		_, abortErr := c.manager.AbortSession(context.WithoutCancel(ctx), handle)
		if err := advance(domain.SessionAborted); err != nil {
			logger.Warn("abort transition", "err", err)
		}
		result.State = domain.SessionAborted
		result.Elapsed = c.clock.Now().Sub(started)
		c.metrics.SessionEnded(domain.SessionAborted, result.Elapsed)
		logger.Warn("session aborted", "err", cause)
		if abortErr != nil {
			return result, fmt.Errorf("abort session: %w", errors.Join(cause, abortErr))
		}
		return result, cause
	}

	funding := NewNativeFunding(result.NativeValue)
	if !result.NativeValue.IsZero() {
		if err := c.ledger.Transfer(ctx, domain.NativeAsset, req.Payer, c.resolver.Router(), result.NativeValue); err != nil {
			return abort(fmt.Errorf("pre-fund native value: %w", err))
		}
	}

	delta, err := c.manager.ModifyPosition(ctx, handle, req.Key, req.Params)
	if err != nil {
		return abort(fmt.Errorf("modify position: %w", err))
	}
	result.Delta = delta
	result.Amount0, result.Amount1 = delta.Decode()

	if err := advance(domain.SessionSettling); err != nil {
		return abort(err)
	}
	result.Instructions = domain.PlanSettlement(req.Key, delta, req.Flags)
	logger.Debug("settling", "amount0", result.Amount0.String(), "amount1", result.Amount1.String(), "instructions", len(result.Instructions))

	for _, instruction := range result.Instructions {
		if err := c.dispatch(ctx, handle, req, funding, instruction); err != nil {
			return abort(fmt.Errorf("%s: %w", instruction.Strategy, err))
		}
		c.metrics.InstructionExecuted(instruction.Strategy)
		logger.Debug("instruction settled", "strategy", instruction.Strategy.String(), "asset", instruction.Asset.String(), "amount", instruction.Magnitude.Dec())
	}

	refund, err := c.refundNative(ctx, req.Payer, funding)
	if err != nil {
		return abort(err)
	}
	result.NativeRefund = refund

	if _, err := c.manager.CloseSession(ctx, handle); err != nil {
		return abort(fmt.Errorf("close session: %w", err))
	}
	if err := advance(domain.SessionClosed); err != nil {
		return abort(err)
	}

	result.Elapsed = c.clock.Now().Sub(started)
	c.metrics.SessionEnded(domain.SessionClosed, result.Elapsed)
	logger.Info("session closed", "amount0", result.Amount0.String(), "amount1", result.Amount1.String(), "native_refund", refund.Dec())

	return result, nil
}

// Quote runs the position change in a session that is always aborted and
// reports the resulting delta and settlement plan.
func (c *Controller) Quote(ctx context.Context, req ExecuteRequest) (SessionResult, error) {
	if err := req.Validate(); err != nil {
		return SessionResult{State: domain.SessionUninitialized}, err
	}

	handle, err := c.manager.OpenSession(ctx, req.Payer)
	if err != nil {
		return SessionResult{State: domain.SessionUninitialized}, fmt.Errorf("open session: %w", err)
	}

	delta, modifyErr := c.manager.ModifyPosition(ctx, handle, req.Key, req.Params)
	if _, err := c.manager.AbortSession(context.WithoutCancel(ctx), handle); err != nil {
		return SessionResult{State: domain.SessionAborted}, fmt.Errorf("abort quote session: %w", errors.Join(modifyErr, err))
	}
	if modifyErr != nil {
		return SessionResult{SessionID: handle.ID, State: domain.SessionAborted}, fmt.Errorf("modify position: %w", modifyErr)
	}

	amount0, amount1 := delta.Decode()
	plan := domain.PlanSettlement(req.Key, delta, req.Flags)
	return SessionResult{
		SessionID:    handle.ID,
		State:        domain.SessionAborted,
		Delta:        delta,
		Amount0:      amount0,
		Amount1:      amount1,
		Instructions: plan,
		NativeValue:  domain.RequiredNative(plan),
	}, nil
}

func (c *Controller) dispatch(ctx context.Context, handle ports.SessionHandle, req ExecuteRequest, funding *NativeFunding, instruction domain.SettlementInstruction) error {
	switch instruction.Strategy {
	case domain.StrategyDirectSettle:
		return c.resolver.Pull(ctx, handle, instruction.Asset, req.Payer, instruction.Magnitude, funding)
	case domain.StrategyClaimBurn:
		return c.manager.BurnClaim(ctx, handle, instruction.Asset, req.Payer, instruction.Magnitude)
	case domain.StrategyDirectTake:
		return c.resolver.Push(ctx, handle, instruction.Asset, req.Recipient, instruction.Magnitude)
	case domain.StrategyClaimMint:
		return c.manager.MintClaim(ctx, handle, instruction.Asset, req.Recipient, instruction.Magnitude)
	default:
		return fmt.Errorf("unsupported settlement strategy %q", instruction.Strategy)
	}
}

// refundNative returns the unspent part of the session's pre-funding to
// payer. Native the router held before the session, or received as a
// recipient during it, is not touched.
func (c *Controller) refundNative(ctx context.Context, payer common.Address, funding *NativeFunding) (*uint256.Int, error) {
	refund := funding.Remaining()
	if refund.IsZero() {
		return refund, nil
	}

	if err := c.ledger.Transfer(ctx, domain.NativeAsset, c.resolver.Router(), payer, refund); err != nil {
		return nil, fmt.Errorf("refund native value: %w", err)
	}
	funding.remaining.Clear()
	return refund, nil
}

func nativeValue(value *uint256.Int) *uint256.Int {
	if value == nil {
		return new(uint256.Int)
	}
	return value.Clone()
}
