package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports"
)

type PoolService struct {
	manager ports.Manager
	journal ports.Journal
	clock   ports.Clock
	logger  *slog.Logger
	network string
}

func NewPoolService(manager ports.Manager, journal ports.Journal, clock ports.Clock, logger *slog.Logger, network string) *PoolService {
	if journal == nil {
		journal = ports.NopJournal{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &PoolService{manager: manager, journal: journal, clock: clock, logger: logger, network: network}
}

func (s *PoolService) CreatePool(ctx context.Context, cmd CreatePoolCommand) (PoolMeta, error) {
	key := domain.NewPoolKey(cmd.Token0, cmd.Token1, cmd.Fee, cmd.TickSpacing, cmd.Hooks)
	if err := key.Validate(); err != nil {
		return PoolMeta{}, err
	}
	if err := domain.ValidateSqrtPriceX96(cmd.SqrtPriceX96); err != nil {
		return PoolMeta{}, err
	}

	id, err := s.manager.Initialize(ctx, key, cmd.SqrtPriceX96)
	if err != nil {
		return PoolMeta{}, fmt.Errorf("initialize pool: %w", err)
	}

	record := domain.Record{
		Time:         s.clock.Now().UTC(),
		Kind:         domain.RecordPoolCreated,
		Network:      s.network,
		Manager:      s.manager.Address().Hex(),
		PoolID:       id.Hex(),
		Token0:       key.Currency0.String(),
		Token1:       key.Currency1.String(),
		Fee:          key.Fee,
		TickSpacing:  key.TickSpacing,
		SqrtPriceX96: cmd.SqrtPriceX96.String(),
	}
	if err := s.journal.Append(ctx, record); err != nil {
		return PoolMeta{}, fmt.Errorf("append pool record: %w", err)
	}

	s.logger.Info("pool initialized", "pool_id", id.Hex(), "token0", key.Currency0.String(), "token1", key.Currency1.String(), "fee", key.Fee)

	return s.PoolMeta(ctx, key)
}

func (s *PoolService) PoolMeta(ctx context.Context, key domain.PoolKey) (PoolMeta, error) {
	pool, err := s.manager.Pool(ctx, key.ID())
	if err != nil {
		return PoolMeta{}, err
	}

	return PoolMeta{
		ID:           key.ID(),
		Key:          pool.Key,
		SqrtPriceX96: pool.SqrtPriceX96,
		Tick:         domain.TickAtSqrtPrice(pool.SqrtPriceX96),
		Liquidity:    pool.Liquidity,
	}, nil
}
