package toml

import (
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/poolctl/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice  = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	router = common.HexToAddress("0x0000000000000000000000000000000000000e0e")
	token0 = domain.NewAsset(common.HexToAddress("0x1000000000000000000000000000000000000001"))
)

func newRepo(t *testing.T, path string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(StatePathKey, path)
	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func sampleState() domain.ChainState {
	q96 := new(big.Int).Lsh(big.NewInt(1), 96)
	key := domain.NewPoolKey(domain.NativeAsset, token0, 3000, 60, common.Address{})
	huge, _ := uint256.FromDecimal("115792089237316195423570985008687907853269984665640564039457584007913129639935")

	return domain.ChainState{
		Balances: []domain.BalanceEntry{
			{Asset: domain.NativeAsset, Holder: alice, Amount: uint256.NewInt(1_000_000)},
			{Asset: token0, Holder: alice, Amount: uint256.NewInt(42)},
		},
		Allowances: []domain.AllowanceEntry{
			{Asset: token0, Owner: alice, Spender: router, Amount: huge},
		},
		Claims: []domain.BalanceEntry{
			{Asset: token0, Holder: alice, Amount: uint256.NewInt(7)},
		},
		Pools: []domain.Pool{
			{Key: key, SqrtPriceX96: q96, Liquidity: big.NewInt(1500)},
		},
		Positions: []domain.Position{
			{Pool: key.ID(), Owner: alice, TickLower: -120, TickUpper: 120, Salt: common.HexToHash("0x01"), Liquidity: big.NewInt(1500)},
		},
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newRepo(t, filepath.Join(t.TempDir(), "state.toml"))
	want := sampleState()

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, want.Balances, got.Balances)
	assert.Equal(t, want.Allowances, got.Allowances)
	assert.Equal(t, want.Claims, got.Claims)

	require.Len(t, got.Pools, 1)
	assert.Equal(t, want.Pools[0].Key, got.Pools[0].Key)
	assert.Zero(t, want.Pools[0].SqrtPriceX96.Cmp(got.Pools[0].SqrtPriceX96))
	assert.Zero(t, want.Pools[0].Liquidity.Cmp(got.Pools[0].Liquidity))

	require.Len(t, got.Positions, 1)
	assert.Equal(t, want.Positions[0].Key(), got.Positions[0].Key())
	assert.Equal(t, want.Positions[0].Pool, got.Positions[0].Pool)
	assert.Zero(t, want.Positions[0].Liquidity.Cmp(got.Positions[0].Liquidity))
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), sampleState()))

	statePath := filepath.Join(homeDir, ".poolctl", "state.toml")
	assert.Equal(t, statePath, repo.Path())
	info, err := os.Stat(statePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileLoadsEmptyState(t *testing.T) {
	t.Parallel()

	repo := newRepo(t, filepath.Join(t.TempDir(), "missing", "state.toml"))

	state, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Balances)
	assert.Empty(t, state.Pools)
}

func TestRepositoryLoadMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(statePath, []byte("balances = ["), 0o600))

	_, err := newRepo(t, statePath).Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode state file")
}

func TestRepositoryLoadRejectsBadEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "amount",
			lines: []string{"[[balances]]", `asset = "native"`, `holder = "0x00000000000000000000000000000000000a11ce"`, `amount = "-1"`},
			want:  "invalid amount",
		},
		{
			name:  "holder",
			lines: []string{"[[claims]]", `asset = "native"`, `holder = "alice"`, `amount = "1"`},
			want:  "invalid address",
		},
		{
			name: "pool id",
			lines: []string{
				"[[pools]]",
				`id = "0x0000000000000000000000000000000000000000000000000000000000000001"`,
				`currency0 = "native"`,
				`currency1 = "0x1000000000000000000000000000000000000001"`,
				"fee = 3000",
				"tick_spacing = 60",
				`sqrt_price_x96 = "79228162514264337593543950336"`,
				`liquidity = "0"`,
			},
			want: "stored id does not match key",
		},
		{
			name:  "position pool",
			lines: []string{"[[positions]]", `pool = "0x01"`, `owner = "0x00000000000000000000000000000000000a11ce"`, `liquidity = "1"`},
			want:  "invalid pool id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			statePath := filepath.Join(t.TempDir(), "state.toml")
			content := strings.Join(append([]string{"version = 1", ""}, tt.lines...), "\n") + "\n"
			require.NoError(t, os.WriteFile(statePath, []byte(content), 0o600))

			_, err := newRepo(t, statePath).Load(context.Background())
			require.Error(t, err)
			assert.ErrorContains(t, err, "decode state file")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	repo := newRepo(t, statePath)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, sampleState())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	_, statErr := os.Stat(statePath)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestRepositoryConcurrentSavesAcrossInstancesLeaveReadableFile(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	repoA := newRepo(t, statePath)
	repoB := newRepo(t, statePath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *Repository, amount uint64) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			state := domain.ChainState{Balances: []domain.BalanceEntry{
				{Asset: token0, Holder: alice, Amount: uint256.NewInt(amount)},
			}}
			errCh <- repo.Save(context.Background(), state)
		}
	}
	go write(repoA, 1)
	go write(repoB, 2)

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	state, err := repoA.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, state.Balances, 1)
	assert.Contains(t, []uint64{1, 2}, state.Balances[0].Amount.Uint64())
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, newRepo(t, statePath).Save(context.Background(), sampleState()))

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "115792089237316195423570985008687907853269984665640564039457584007913129639935")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(statePath, []byte("version = 999\n"), 0o600))

	_, err := newRepo(t, statePath).Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported state schema version")
}
