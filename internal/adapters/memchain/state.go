package memchain

import (
	"bytes"
	"math/big"
	"sort"
	"sync"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type holdingKey struct {
	asset  domain.Asset
	holder common.Address
}

type allowanceKey struct {
	asset   domain.Asset
	owner   common.Address
	spender common.Address
}

type positionKey struct {
	pool domain.PoolID
	key  domain.PositionKey
}

// State is the shared in-process world: external balances and allowances
// (read by the ledger) plus claims, pools and positions (owned by the
// manager). Every mutation records an undo entry so a revision can be
// reverted as one unit.
type State struct {
	mu sync.Mutex

	balances   map[holdingKey]*uint256.Int
	allowances map[allowanceKey]*uint256.Int
	claims     map[holdingKey]*uint256.Int
	pools      map[domain.PoolID]*domain.Pool
	positions  map[positionKey]*domain.Position

	undo      []func()
	revisions []int
}

func NewState() *State {
	return &State{
		balances:   map[holdingKey]*uint256.Int{},
		allowances: map[allowanceKey]*uint256.Int{},
		claims:     map[holdingKey]*uint256.Int{},
		pools:      map[domain.PoolID]*domain.Pool{},
		positions:  map[positionKey]*domain.Position{},
	}
}

// Snapshot opens a revision and returns its id.
func (s *State) Snapshot() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := len(s.revisions)
	s.revisions = append(s.revisions, len(s.undo))
	return id
}

// RevertToSnapshot undoes every mutation made since revision id was opened
// and drops that revision and all later ones.
func (s *State) RevertToSnapshot(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 0 || id >= len(s.revisions) {
		return
	}
	mark := s.revisions[id]
	for i := len(s.undo) - 1; i >= mark; i-- {
		s.undo[i]()
	}
	s.undo = s.undo[:mark]
	s.revisions = s.revisions[:id]
}

// Commit keeps the mutations of revision id. The undo log is released once
// no revision remains open.
func (s *State) Commit(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 0 || id >= len(s.revisions) {
		return
	}
	s.revisions = s.revisions[:id]
	if len(s.revisions) == 0 {
		s.undo = nil
	}
}

func (s *State) balance(asset domain.Asset, holder common.Address) *uint256.Int {
	return readAmount(s.balances, holdingKey{asset: asset, holder: holder})
}

func (s *State) setBalance(asset domain.Asset, holder common.Address, amount *uint256.Int) {
	writeAmount(s, s.balances, holdingKey{asset: asset, holder: holder}, amount)
}

func (s *State) claim(asset domain.Asset, holder common.Address) *uint256.Int {
	return readAmount(s.claims, holdingKey{asset: asset, holder: holder})
}

func (s *State) setClaim(asset domain.Asset, holder common.Address, amount *uint256.Int) {
	writeAmount(s, s.claims, holdingKey{asset: asset, holder: holder}, amount)
}

func (s *State) allowance(asset domain.Asset, owner, spender common.Address) *uint256.Int {
	return readAmount(s.allowances, allowanceKey{asset: asset, owner: owner, spender: spender})
}

func (s *State) setAllowance(asset domain.Asset, owner, spender common.Address, amount *uint256.Int) {
	writeAmount(s, s.allowances, allowanceKey{asset: asset, owner: owner, spender: spender}, amount)
}

func (s *State) setPool(pool domain.Pool) {
	id := pool.Key.ID()
	previous, existed := s.pools[id]
	stored := clonePool(pool)
	s.pools[id] = &stored
	s.record(func() {
		if existed {
			s.pools[id] = previous
			return
		}
		delete(s.pools, id)
	})
}

func (s *State) setPosition(position domain.Position) {
	key := positionKey{pool: position.Pool, key: position.Key()}
	previous, existed := s.positions[key]
	stored := clonePosition(position)
	s.positions[key] = &stored
	s.record(func() {
		if existed {
			s.positions[key] = previous
			return
		}
		delete(s.positions, key)
	})
}

// record keeps an undo entry while a revision is open.
func (s *State) record(undo func()) {
	if len(s.revisions) == 0 {
		return
	}
	s.undo = append(s.undo, undo)
}

func readAmount[K comparable](m map[K]*uint256.Int, key K) *uint256.Int {
	if amount, ok := m[key]; ok {
		return amount.Clone()
	}
	return new(uint256.Int)
}

func writeAmount[K comparable](s *State, m map[K]*uint256.Int, key K, amount *uint256.Int) {
	previous, existed := m[key]
	if amount.IsZero() {
		delete(m, key)
	} else {
		m[key] = amount.Clone()
	}
	s.record(func() {
		if existed {
			m[key] = previous
			return
		}
		delete(m, key)
	})
}

// Export returns a deterministic copy of the state for persistence.
func (s *State) Export() domain.ChainState {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out domain.ChainState
	for key, amount := range s.balances {
		out.Balances = append(out.Balances, domain.BalanceEntry{Asset: key.asset, Holder: key.holder, Amount: amount.Clone()})
	}
	for key, amount := range s.claims {
		out.Claims = append(out.Claims, domain.BalanceEntry{Asset: key.asset, Holder: key.holder, Amount: amount.Clone()})
	}
	for key, amount := range s.allowances {
		out.Allowances = append(out.Allowances, domain.AllowanceEntry{Asset: key.asset, Owner: key.owner, Spender: key.spender, Amount: amount.Clone()})
	}
	for _, pool := range s.pools {
		out.Pools = append(out.Pools, clonePool(*pool))
	}
	for _, position := range s.positions {
		out.Positions = append(out.Positions, clonePosition(*position))
	}

	sortBalances(out.Balances)
	sortBalances(out.Claims)
	sort.Slice(out.Allowances, func(i, j int) bool {
		left, right := out.Allowances[i], out.Allowances[j]
		if c := compareHolding(left.Asset, left.Owner, right.Asset, right.Owner); c != 0 {
			return c < 0
		}
		return bytes.Compare(left.Spender.Bytes(), right.Spender.Bytes()) < 0
	})
	sort.Slice(out.Pools, func(i, j int) bool {
		left, right := out.Pools[i].Key.ID(), out.Pools[j].Key.ID()
		return bytes.Compare(left[:], right[:]) < 0
	})
	sort.Slice(out.Positions, func(i, j int) bool {
		left, right := out.Positions[i].Key(), out.Positions[j].Key()
		if out.Positions[i].Pool != out.Positions[j].Pool {
			return bytes.Compare(out.Positions[i].Pool[:], out.Positions[j].Pool[:]) < 0
		}
		return bytes.Compare(left[:], right[:]) < 0
	})

	return out
}

// Import replaces the whole state. Open revisions are discarded.
func (s *State) Import(in domain.ChainState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances = map[holdingKey]*uint256.Int{}
	s.allowances = map[allowanceKey]*uint256.Int{}
	s.claims = map[holdingKey]*uint256.Int{}
	s.pools = map[domain.PoolID]*domain.Pool{}
	s.positions = map[positionKey]*domain.Position{}
	s.undo = nil
	s.revisions = nil

	for _, entry := range in.Balances {
		if entry.Amount != nil && !entry.Amount.IsZero() {
			s.balances[holdingKey{asset: entry.Asset, holder: entry.Holder}] = entry.Amount.Clone()
		}
	}
	for _, entry := range in.Claims {
		if entry.Amount != nil && !entry.Amount.IsZero() {
			s.claims[holdingKey{asset: entry.Asset, holder: entry.Holder}] = entry.Amount.Clone()
		}
	}
	for _, entry := range in.Allowances {
		if entry.Amount != nil && !entry.Amount.IsZero() {
			s.allowances[allowanceKey{asset: entry.Asset, owner: entry.Owner, spender: entry.Spender}] = entry.Amount.Clone()
		}
	}
	for _, pool := range in.Pools {
		stored := clonePool(pool)
		s.pools[pool.Key.ID()] = &stored
	}
	for _, position := range in.Positions {
		stored := clonePosition(position)
		s.positions[positionKey{pool: position.Pool, key: position.Key()}] = &stored
	}
}

func sortBalances(entries []domain.BalanceEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return compareHolding(entries[i].Asset, entries[i].Holder, entries[j].Asset, entries[j].Holder) < 0
	})
}

func compareHolding(leftAsset domain.Asset, leftHolder common.Address, rightAsset domain.Asset, rightHolder common.Address) int {
	if c := bytes.Compare(leftAsset.Address.Bytes(), rightAsset.Address.Bytes()); c != 0 {
		return c
	}
	return bytes.Compare(leftHolder.Bytes(), rightHolder.Bytes())
}

func clonePool(pool domain.Pool) domain.Pool {
	pool.SqrtPriceX96 = cloneBig(pool.SqrtPriceX96)
	pool.Liquidity = cloneBig(pool.Liquidity)
	return pool
}

func clonePosition(position domain.Position) domain.Position {
	position.Liquidity = cloneBig(position.Liquidity)
	return position
}

func cloneBig(b *big.Int) *big.Int {
	if b == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b)
}
