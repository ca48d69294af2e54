package memchain

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// DefaultManagerAddress is where the local manager holds its reserves.
var DefaultManagerAddress = common.HexToAddress("0x00000000000000000000000000000000000f4e00")

// QuoteFunc prices a position change as the caller's packed delta. Negative
// lanes are owed by the caller.
type QuoteFunc func(pool domain.Pool, params domain.ModifyLiquidityParams) (domain.PackedDelta, error)

// UnitQuote charges unit0/unit1 per unit of liquidity, scaled down by 1e18.
// Adding liquidity yields negative lanes; removing yields positive lanes.
func UnitQuote(unit0, unit1 *big.Int) QuoteFunc {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	return func(_ domain.Pool, params domain.ModifyLiquidityParams) (domain.PackedDelta, error) {
		lane := func(unit *big.Int) (domain.Amount, error) {
			raw := new(big.Int).Mul(params.LiquidityDelta, unit)
			raw.Quo(raw, scale)
			return domain.AmountFromBig(raw.Neg(raw))
		}

		amount0, err := lane(unit0)
		if err != nil {
			return domain.PackedDelta{}, fmt.Errorf("quote amount0: %w", err)
		}
		amount1, err := lane(unit1)
		if err != nil {
			return domain.PackedDelta{}, fmt.Errorf("quote amount1: %w", err)
		}

		return domain.EncodeDelta(amount0, amount1), nil
	}
}

type activeSession struct {
	session  domain.Session
	revision int
	synced   map[domain.Asset]*uint256.Int
}

// Manager is the singleton exchange manager. At most one session is active;
// every effect made while it is open can be reverted by AbortSession.
type Manager struct {
	state   *State
	address common.Address
	quote   QuoteFunc
	clock   ports.Clock

	mu     sync.Mutex
	active *activeSession
}

var _ ports.Manager = (*Manager)(nil)

type ManagerOption func(*Manager)

func WithAddress(addr common.Address) ManagerOption {
	return func(m *Manager) { m.address = addr }
}

func WithQuote(quote QuoteFunc) ManagerOption {
	return func(m *Manager) { m.quote = quote }
}

func WithClock(clock ports.Clock) ManagerOption {
	return func(m *Manager) { m.clock = clock }
}

func NewManager(state *State, opts ...ManagerOption) *Manager {
	oneEther := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	m := &Manager{
		state:   state,
		address: DefaultManagerAddress,
		quote:   UnitQuote(oneEther, oneEther),
		clock:   ports.SystemClock{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Address() common.Address {
	return m.address
}

func (m *Manager) Initialize(ctx context.Context, key domain.PoolKey, sqrtPriceX96 *big.Int) (domain.PoolID, error) {
	if err := ctx.Err(); err != nil {
		return domain.PoolID{}, err
	}
	if err := key.Validate(); err != nil {
		return domain.PoolID{}, err
	}
	if err := domain.ValidateSqrtPriceX96(sqrtPriceX96); err != nil {
		return domain.PoolID{}, err
	}

	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	id := key.ID()
	if _, ok := m.state.pools[id]; ok {
		return domain.PoolID{}, fmt.Errorf("%w: %s", domain.ErrPoolAlreadyInitialized, id.Hex())
	}
	m.state.setPool(domain.Pool{Key: key, SqrtPriceX96: sqrtPriceX96, Liquidity: new(big.Int)})

	return id, nil
}

func (m *Manager) Pool(ctx context.Context, id domain.PoolID) (domain.Pool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Pool{}, err
	}

	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	pool, ok := m.state.pools[id]
	if !ok {
		return domain.Pool{}, fmt.Errorf("%w: %s", domain.ErrPoolNotFound, id.Hex())
	}
	return clonePool(*pool), nil
}

func (m *Manager) OpenSession(ctx context.Context, caller common.Address) (ports.SessionHandle, error) {
	if err := ctx.Err(); err != nil {
		return ports.SessionHandle{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil {
		return ports.SessionHandle{}, fmt.Errorf("%w: session %s held by %s", domain.ErrReentrancy, m.active.session.ID, m.active.session.Caller.Hex())
	}

	session := domain.NewSession(caller, m.clock.Now())
	m.active = &activeSession{
		session:  session,
		revision: m.state.Snapshot(),
		synced:   map[domain.Asset]*uint256.Int{},
	}

	return ports.SessionHandle{ID: session.ID, Caller: caller}, nil
}

func (m *Manager) ModifyPosition(ctx context.Context, handle ports.SessionHandle, key domain.PoolKey, params domain.ModifyLiquidityParams) (domain.PackedDelta, error) {
	if err := ctx.Err(); err != nil {
		return domain.PackedDelta{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	active, err := m.require(handle)
	if err != nil {
		return domain.PackedDelta{}, err
	}
	if err := params.Validate(key.TickSpacing); err != nil {
		return domain.PackedDelta{}, err
	}

	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	id := key.ID()
	stored, ok := m.state.pools[id]
	if !ok {
		return domain.PackedDelta{}, fmt.Errorf("%w: %s", domain.ErrPoolNotFound, id.Hex())
	}
	pool := clonePool(*stored)

	position := domain.Position{
		Pool:      id,
		Owner:     handle.Caller,
		TickLower: params.TickLower,
		TickUpper: params.TickUpper,
		Salt:      params.Salt,
		Liquidity: new(big.Int),
	}
	if existing, ok := m.state.positions[positionKey{pool: id, key: position.Key()}]; ok {
		position.Liquidity = cloneBig(existing.Liquidity)
	}

	position.Liquidity.Add(position.Liquidity, params.LiquidityDelta)
	if position.Liquidity.Sign() < 0 {
		return domain.PackedDelta{}, fmt.Errorf("%w: position %s", domain.ErrInsufficientLiquidity, position.Key().Hex())
	}

	delta, err := m.quote(pool, params)
	if err != nil {
		return domain.PackedDelta{}, fmt.Errorf("quote position change: %w", err)
	}

	amount0, amount1 := delta.Decode()
	if err := active.session.Apply(key.Currency0, amount0); err != nil {
		return domain.PackedDelta{}, err
	}
	if err := active.session.Apply(key.Currency1, amount1); err != nil {
		return domain.PackedDelta{}, err
	}

	pool.Liquidity.Add(pool.Liquidity, params.LiquidityDelta)
	m.state.setPool(pool)
	m.state.setPosition(position)

	return delta, nil
}

func (m *Manager) Sync(ctx context.Context, handle ports.SessionHandle, asset domain.Asset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	active, err := m.require(handle)
	if err != nil {
		return err
	}

	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	active.synced[asset] = m.state.balance(asset, m.address)
	return nil
}

// Settle credits amount paid in for asset. The manager's balance must have
// grown by at least amount since the last Sync of that asset.
func (m *Manager) Settle(ctx context.Context, handle ports.SessionHandle, asset domain.Asset, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	active, err := m.require(handle)
	if err != nil {
		return err
	}

	reserve, ok := active.synced[asset]
	if !ok {
		return fmt.Errorf("%w: settle %s without sync", domain.ErrConfig, asset)
	}

	m.state.mu.Lock()
	current := m.state.balance(asset, m.address)
	m.state.mu.Unlock()

	paid := new(uint256.Int)
	if current.Gt(reserve) {
		paid.Sub(current, reserve)
	}
	if paid.Lt(amount) {
		return fmt.Errorf("%w: settle %s paid %s of %s", domain.ErrAuthorization, asset, paid.Dec(), amount.Dec())
	}

	credit, err := domain.AmountFromMagnitude(amount)
	if err != nil {
		return err
	}
	if err := active.session.Apply(asset, credit); err != nil {
		return err
	}
	delete(active.synced, asset)

	return nil
}

func (m *Manager) Take(ctx context.Context, handle ports.SessionHandle, asset domain.Asset, to common.Address, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	active, err := m.require(handle)
	if err != nil {
		return err
	}
	debit, err := domain.AmountFromMagnitude(amount)
	if err != nil {
		return err
	}

	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	held := m.state.balance(asset, m.address)
	if held.Lt(amount) {
		return fmt.Errorf("%w: take %s of %s, holding %s", domain.ErrInsufficientReserves, amount.Dec(), asset, held.Dec())
	}
	if err := active.session.Apply(asset, debit.Neg()); err != nil {
		return err
	}
	if to != m.address {
		m.state.setBalance(asset, m.address, new(uint256.Int).Sub(held, amount))
		m.state.setBalance(asset, to, new(uint256.Int).Add(m.state.balance(asset, to), amount))
	}

	return nil
}

func (m *Manager) MintClaim(ctx context.Context, handle ports.SessionHandle, asset domain.Asset, to common.Address, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	active, err := m.require(handle)
	if err != nil {
		return err
	}
	debit, err := domain.AmountFromMagnitude(amount)
	if err != nil {
		return err
	}

	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	sum, overflow := new(uint256.Int).AddOverflow(m.state.claim(asset, to), amount)
	if overflow {
		return fmt.Errorf("mint claim %s for %s: balance overflow", asset, to.Hex())
	}
	if err := active.session.Apply(asset, debit.Neg()); err != nil {
		return err
	}
	m.state.setClaim(asset, to, sum)

	return nil
}

func (m *Manager) BurnClaim(ctx context.Context, handle ports.SessionHandle, asset domain.Asset, from common.Address, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	active, err := m.require(handle)
	if err != nil {
		return err
	}
	credit, err := domain.AmountFromMagnitude(amount)
	if err != nil {
		return err
	}

	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	held := m.state.claim(asset, from)
	if held.Lt(amount) {
		return fmt.Errorf("%w: claim balance %s of %s in %s below %s", domain.ErrAuthorization, held.Dec(), from.Hex(), asset, amount.Dec())
	}
	if err := active.session.Apply(asset, credit); err != nil {
		return err
	}
	m.state.setClaim(asset, from, new(uint256.Int).Sub(held, amount))

	return nil
}

func (m *Manager) CloseSession(ctx context.Context, handle ports.SessionHandle) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	active, err := m.require(handle)
	if err != nil {
		return domain.Session{}, err
	}

	if residuals := active.session.Residuals(); len(residuals) > 0 {
		return active.session, &domain.ResidualError{Residuals: residuals}
	}

	active.session.State = domain.SessionClosed
	active.session.EndedAt = m.clock.Now()
	m.state.Commit(active.revision)
	m.active = nil

	return active.session, nil
}

func (m *Manager) AbortSession(ctx context.Context, handle ports.SessionHandle) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	active, err := m.require(handle)
	if err != nil {
		return domain.Session{}, err
	}

	m.state.RevertToSnapshot(active.revision)
	active.session.State = domain.SessionAborted
	active.session.EndedAt = m.clock.Now()
	m.active = nil

	return active.session, nil
}

func (m *Manager) ClaimBalance(ctx context.Context, holder common.Address, asset domain.Asset) (*uint256.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.state.mu.Lock()
	defer m.state.mu.Unlock()

	return m.state.claim(asset, holder), nil
}

// require expects m.mu to be held.
func (m *Manager) require(handle ports.SessionHandle) (*activeSession, error) {
	if m.active == nil || m.active.session.ID != handle.ID {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotActive, handle.ID)
	}
	return m.active, nil
}
