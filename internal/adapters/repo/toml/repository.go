package toml

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/bnema/poolctl/internal/ports"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StatePathKey    = "state.path"
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	stateConfigDir  = ".poolctl"
	stateConfigFile = "state.toml"
	tempFilePattern = ".state-*.toml.tmp"
)

type Repository struct {
	statePath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.StateRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(StatePathKey, filepath.Join(homeDir, stateConfigDir, stateConfigFile))

	statePath := cfg.GetString(StatePathKey)
	if statePath == "" {
		return nil, errors.New("state path is empty")
	}
	statePath, err = normalizeStatePath(statePath)
	if err != nil {
		return nil, err
	}

	return &Repository{statePath: statePath, mu: lockForPath(statePath)}, nil
}

func (r *Repository) Path() string {
	return r.statePath
}

func (r *Repository) Load(ctx context.Context) (domain.ChainState, error) {
	if err := ctx.Err(); err != nil {
		return domain.ChainState{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.ChainState{}, err
	}

	state, err := fromSchema(file)
	if err != nil {
		return domain.ChainState{}, fmt.Errorf("decode state file: %w", err)
	}

	return state, nil
}

func (r *Repository) Save(ctx context.Context, state domain.ChainState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := toSchema(state)
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.statePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read state file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode state file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeStatePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.statePath), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.statePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, r.statePath); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.statePath, stateFileMode); err != nil {
		return fmt.Errorf("chmod state file: %w", err)
	}

	return nil
}

func toSchema(state domain.ChainState) fileSchema {
	file := fileSchema{Version: currentSchemaVersion}

	for _, entry := range state.Balances {
		file.Balances = append(file.Balances, toBalanceSchema(entry))
	}
	for _, entry := range state.Claims {
		file.Claims = append(file.Claims, toBalanceSchema(entry))
	}
	for _, entry := range state.Allowances {
		file.Allowances = append(file.Allowances, allowanceSchema{
			Asset:   entry.Asset.String(),
			Owner:   entry.Owner.Hex(),
			Spender: entry.Spender.Hex(),
			Amount:  formatUint(entry.Amount),
		})
	}
	for _, pool := range state.Pools {
		file.Pools = append(file.Pools, poolSchema{
			ID:           pool.Key.ID().Hex(),
			Currency0:    pool.Key.Currency0.String(),
			Currency1:    pool.Key.Currency1.String(),
			Fee:          pool.Key.Fee,
			TickSpacing:  pool.Key.TickSpacing,
			Hooks:        formatHooks(pool.Key.Hooks),
			SqrtPriceX96: formatBig(pool.SqrtPriceX96),
			Liquidity:    formatBig(pool.Liquidity),
		})
	}
	for _, position := range state.Positions {
		file.Positions = append(file.Positions, positionSchema{
			Pool:      position.Pool.Hex(),
			Owner:     position.Owner.Hex(),
			TickLower: position.TickLower,
			TickUpper: position.TickUpper,
			Salt:      formatSalt(position.Salt),
			Liquidity: formatBig(position.Liquidity),
		})
	}

	return file
}

func fromSchema(file fileSchema) (domain.ChainState, error) {
	var state domain.ChainState

	for _, entry := range file.Balances {
		balance, err := fromBalanceSchema(entry)
		if err != nil {
			return domain.ChainState{}, fmt.Errorf("balance: %w", err)
		}
		state.Balances = append(state.Balances, balance)
	}
	for _, entry := range file.Claims {
		claim, err := fromBalanceSchema(entry)
		if err != nil {
			return domain.ChainState{}, fmt.Errorf("claim: %w", err)
		}
		state.Claims = append(state.Claims, claim)
	}
	for _, entry := range file.Allowances {
		asset, err := domain.ParseAsset(entry.Asset)
		if err != nil {
			return domain.ChainState{}, fmt.Errorf("allowance: %w", err)
		}
		owner, err := parseAddress(entry.Owner)
		if err != nil {
			return domain.ChainState{}, fmt.Errorf("allowance owner: %w", err)
		}
		spender, err := parseAddress(entry.Spender)
		if err != nil {
			return domain.ChainState{}, fmt.Errorf("allowance spender: %w", err)
		}
		amount, err := parseUint(entry.Amount)
		if err != nil {
			return domain.ChainState{}, fmt.Errorf("allowance amount: %w", err)
		}
		state.Allowances = append(state.Allowances, domain.AllowanceEntry{Asset: asset, Owner: owner, Spender: spender, Amount: amount})
	}
	for _, entry := range file.Pools {
		pool, err := fromPoolSchema(entry)
		if err != nil {
			return domain.ChainState{}, fmt.Errorf("pool %s: %w", entry.ID, err)
		}
		state.Pools = append(state.Pools, pool)
	}
	for _, entry := range file.Positions {
		position, err := fromPositionSchema(entry)
		if err != nil {
			return domain.ChainState{}, fmt.Errorf("position in %s: %w", entry.Pool, err)
		}
		state.Positions = append(state.Positions, position)
	}

	return state, nil
}

func toBalanceSchema(entry domain.BalanceEntry) balanceSchema {
	return balanceSchema{
		Asset:  entry.Asset.String(),
		Holder: entry.Holder.Hex(),
		Amount: formatUint(entry.Amount),
	}
}

func fromBalanceSchema(entry balanceSchema) (domain.BalanceEntry, error) {
	asset, err := domain.ParseAsset(entry.Asset)
	if err != nil {
		return domain.BalanceEntry{}, err
	}
	holder, err := parseAddress(entry.Holder)
	if err != nil {
		return domain.BalanceEntry{}, err
	}
	amount, err := parseUint(entry.Amount)
	if err != nil {
		return domain.BalanceEntry{}, err
	}

	return domain.BalanceEntry{Asset: asset, Holder: holder, Amount: amount}, nil
}

func fromPoolSchema(entry poolSchema) (domain.Pool, error) {
	currency0, err := domain.ParseAsset(entry.Currency0)
	if err != nil {
		return domain.Pool{}, err
	}
	currency1, err := domain.ParseAsset(entry.Currency1)
	if err != nil {
		return domain.Pool{}, err
	}
	var hooks common.Address
	if entry.Hooks != "" {
		if hooks, err = parseAddress(entry.Hooks); err != nil {
			return domain.Pool{}, err
		}
	}
	sqrtPrice, err := parseBig(entry.SqrtPriceX96)
	if err != nil {
		return domain.Pool{}, err
	}
	liquidity, err := parseBig(entry.Liquidity)
	if err != nil {
		return domain.Pool{}, err
	}

	key := domain.PoolKey{Currency0: currency0, Currency1: currency1, Fee: entry.Fee, TickSpacing: entry.TickSpacing, Hooks: hooks}
	if err := key.Validate(); err != nil {
		return domain.Pool{}, err
	}
	if entry.ID != "" && entry.ID != key.ID().Hex() {
		return domain.Pool{}, fmt.Errorf("stored id does not match key (computed %s)", key.ID().Hex())
	}

	return domain.Pool{Key: key, SqrtPriceX96: sqrtPrice, Liquidity: liquidity}, nil
}

func fromPositionSchema(entry positionSchema) (domain.Position, error) {
	if !isHexHash(entry.Pool) {
		return domain.Position{}, fmt.Errorf("invalid pool id %q", entry.Pool)
	}
	owner, err := parseAddress(entry.Owner)
	if err != nil {
		return domain.Position{}, err
	}
	var salt common.Hash
	if entry.Salt != "" {
		if !isHexHash(entry.Salt) {
			return domain.Position{}, fmt.Errorf("invalid salt %q", entry.Salt)
		}
		salt = common.HexToHash(entry.Salt)
	}
	liquidity, err := parseBig(entry.Liquidity)
	if err != nil {
		return domain.Position{}, err
	}

	return domain.Position{
		Pool:      domain.PoolID(common.HexToHash(entry.Pool)),
		Owner:     owner,
		TickLower: entry.TickLower,
		TickUpper: entry.TickUpper,
		Salt:      salt,
		Liquidity: liquidity,
	}, nil
}

func parseAddress(raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("invalid address %q", raw)
	}
	return common.HexToAddress(raw), nil
}

func isHexHash(raw string) bool {
	decoded, err := hexutil.Decode(raw)
	return err == nil && len(decoded) == common.HashLength
}

func parseUint(raw string) (*uint256.Int, error) {
	if raw == "" {
		return new(uint256.Int), nil
	}
	amount, err := uint256.FromDecimal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}

func formatUint(amount *uint256.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.Dec()
}

func parseBig(raw string) (*big.Int, error) {
	if raw == "" {
		return new(big.Int), nil
	}
	value, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", raw)
	}
	return value, nil
}

func formatBig(value *big.Int) string {
	if value == nil {
		return "0"
	}
	return value.String()
}

func formatHooks(hooks common.Address) string {
	if hooks == (common.Address{}) {
		return ""
	}
	return hooks.Hex()
}

func formatSalt(salt common.Hash) string {
	if salt == (common.Hash{}) {
		return ""
	}
	return salt.Hex()
}
