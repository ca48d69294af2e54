package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/poolctl/internal/adapters/config"
	"github.com/bnema/poolctl/internal/adapters/journal/jsonl"
	"github.com/bnema/poolctl/internal/adapters/memchain"
	"github.com/bnema/poolctl/internal/adapters/metrics/prom"
	tomlrepo "github.com/bnema/poolctl/internal/adapters/repo/toml"
	"github.com/bnema/poolctl/internal/application"
	"github.com/bnema/poolctl/internal/ports"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

type app struct {
	viper *viper.Viper
	opts  *rootOptions
	ready bool

	cfg     config.App
	logger  *slog.Logger
	repo    ports.StateRepository
	journal ports.Journal
	state   *memchain.State
	metrics *prom.Metrics

	pools     *application.PoolService
	liquidity *application.LiquidityService
	ledger    *application.LedgerService
}

// load wires the adapters once per process and imports the persisted state.
func (a *app) load(ctx context.Context, stderr io.Writer) error {
	if a.ready {
		return nil
	}

	cfg, err := config.Load(a.viper, a.opts.configPath)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, a.opts.verbose, a.opts.logJSON)

	repo, err := tomlrepo.NewRepository(a.viper)
	if err != nil {
		return fmt.Errorf("wire state repository: %w", err)
	}
	journal, err := jsonl.NewJournal(a.viper)
	if err != nil {
		return fmt.Errorf("wire journal: %w", err)
	}

	managerOpts, err := managerOptions(cfg)
	if err != nil {
		return err
	}
	router, err := cfg.RouterAddress()
	if err != nil {
		return err
	}

	snapshot, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	state := memchain.NewState()
	state.Import(snapshot)

	tokens := memchain.NewLedger(state)
	manager := memchain.NewManager(state, managerOpts...)
	metrics := prom.NewMetrics()
	clock := ports.SystemClock{}

	resolver := application.NewAssetResolver(manager, tokens, router)
	controller := application.NewController(manager, tokens, resolver, metrics, clock, logger)

	a.cfg = cfg
	a.logger = logger
	a.repo = repo
	a.journal = journal
	a.state = state
	a.metrics = metrics
	a.pools = application.NewPoolService(manager, journal, clock, logger, cfg.Network)
	a.liquidity = application.NewLiquidityService(controller, tokens, router, journal, clock, logger, cfg.Network)
	a.ledger = application.NewLedgerService(tokens, tokens, manager, logger)
	a.ready = true

	logger.Debug("state loaded",
		"pools", len(snapshot.Pools),
		"positions", len(snapshot.Positions),
		"balances", len(snapshot.Balances),
	)

	return nil
}

// commit persists the local chain state.
func (a *app) commit(ctx context.Context) error {
	if err := a.repo.Save(ctx, a.state.Export()); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func managerOptions(cfg config.App) ([]memchain.ManagerOption, error) {
	unit0, unit1, err := cfg.ManagerUnits()
	if err != nil {
		return nil, err
	}
	opts := []memchain.ManagerOption{memchain.WithQuote(memchain.UnitQuote(unit0, unit1))}

	address, err := cfg.ManagerAddress()
	if err != nil {
		return nil, err
	}
	if address != (common.Address{}) {
		opts = append(opts, memchain.WithAddress(address))
	}

	return opts, nil
}

func newLogger(w io.Writer, verbose, asJSON bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if asJSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
