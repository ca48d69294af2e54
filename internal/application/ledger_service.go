package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports"
	"github.com/ethereum/go-ethereum/common"
)

type LedgerService struct {
	ledger  ports.TokenLedger
	faucet  ports.Faucet
	manager ports.Manager
	logger  *slog.Logger
}

func NewLedgerService(ledger ports.TokenLedger, faucet ports.Faucet, manager ports.Manager, logger *slog.Logger) *LedgerService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &LedgerService{ledger: ledger, faucet: faucet, manager: manager, logger: logger}
}

func (s *LedgerService) Credit(ctx context.Context, cmd CreditCommand) error {
	if cmd.Holder == (common.Address{}) {
		return fmt.Errorf("%w: holder is required", domain.ErrConfig)
	}
	if cmd.Amount == nil || cmd.Amount.IsZero() {
		return fmt.Errorf("%w: credit amount must be positive", domain.ErrConfig)
	}

	if err := s.faucet.Credit(ctx, cmd.Asset, cmd.Holder, cmd.Amount); err != nil {
		return fmt.Errorf("credit %s: %w", cmd.Asset, err)
	}
	s.logger.Info("ledger credited", "holder", cmd.Holder.Hex(), "asset", cmd.Asset.String(), "amount", cmd.Amount.Dec())

	return nil
}

// Balances reads the external and claim balance of holder for each asset.
func (s *LedgerService) Balances(ctx context.Context, holder common.Address, assets []domain.Asset) (Balances, error) {
	out := Balances{Holder: holder, Holdings: make([]Holding, 0, len(assets))}
	for _, asset := range assets {
		external, err := s.ledger.BalanceOf(ctx, asset, holder)
		if err != nil {
			return Balances{}, fmt.Errorf("balance of %s: %w", asset, err)
		}
		claims, err := s.manager.ClaimBalance(ctx, holder, asset)
		if err != nil {
			return Balances{}, fmt.Errorf("claim balance of %s: %w", asset, err)
		}
		out.Holdings = append(out.Holdings, Holding{Asset: asset, External: external, Claims: claims})
	}

	return out, nil
}
