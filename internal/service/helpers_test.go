package service

import (
	"context"
	"io"
	"testing"
	"time"

	"insurance-gateway/internal/adapter/storage/memory"
	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/internal/metrics"
	"insurance-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testVerifier = common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	alice        = common.HexToAddress("0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2")
	bob          = common.HexToAddress("0x4B20993Bc481177ec7E8f571ceCaE8A9e22C02db")
	carol        = common.HexToAddress("0x78731D3Ca6b7E34aC0F824c42a7cC18A495cabaB")
)

// testStart is a fixed point in time well past the epoch, so interval checks are meaningful.
var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func amt(n uint64) *uint256.Int {
	return uint256.NewInt(n)
}

func plus(a, b *uint256.Int) *uint256.Int {
	return new(uint256.Int).Add(a, b)
}

func times(n uint64, v *uint256.Int) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), v)
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}

// fixture wires registries and engines over a fresh memory store.
type fixture struct {
	store     *memory.Store
	clock     *ManualClock
	metrics   *metrics.Metrics
	ledger    ports.LedgerRepository
	policies  *Registry[ports.PolicyEngine]
	wallets   *Registry[ports.WalletEngine]
	engineDep EngineDeps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	clock := NewManualClock(testStart)
	m := metrics.New(prometheus.NewRegistry())
	ledgerRepo := memory.NewLedgerRepository(store)

	engineDeps := EngineDeps{
		Transactor: store,
		LedgerRepo: ledgerRepo,
		Clock:      clock,
		Metrics:    m,
		Log:        newTestLogger(),
	}
	registryDeps := RegistryDeps{
		InstanceRepo: memory.NewInstanceRepository(store),
		Transactor:   store,
		Clock:        clock,
		Metrics:      m,
		Log:          newTestLogger(),
	}

	policies, err := NewPolicyRegistry(
		DefaultRegistryAddress(testVerifier, domain.InstanceKindInsurance), testVerifier,
		memory.NewPolicyRepository(store), registryDeps, engineDeps,
	)
	require.NoError(t, err)

	wallets, err := NewWalletRegistry(
		DefaultRegistryAddress(testVerifier, domain.InstanceKindWallet), testVerifier,
		memory.NewWalletUserRepository(store), memory.NewClaimRepository(store), registryDeps, engineDeps,
	)
	require.NoError(t, err)

	return &fixture{
		store:     store,
		clock:     clock,
		metrics:   m,
		ledger:    ledgerRepo,
		policies:  policies,
		wallets:   wallets,
		engineDep: engineDeps,
	}
}

func (f *fixture) policyEngine(t *testing.T, owner common.Address) ports.PolicyEngine {
	t.Helper()
	ctx := context.Background()
	instance, err := f.policies.Create(ctx, owner)
	require.NoError(t, err)
	eng, err := f.policies.Resolve(ctx, instance.Ref)
	require.NoError(t, err)
	return eng
}

func (f *fixture) walletEngine(t *testing.T, owner common.Address) ports.WalletEngine {
	t.Helper()
	ctx := context.Background()
	instance, err := f.wallets.Create(ctx, owner)
	require.NoError(t, err)
	eng, err := f.wallets.Resolve(ctx, instance.Ref)
	require.NoError(t, err)
	return eng
}

func (f *fixture) verifierBalance(t *testing.T) *uint256.Int {
	t.Helper()
	balance, err := f.ledger.Balance(context.Background(), testVerifier)
	require.NoError(t, err)
	return balance
}

func (f *fixture) transfers(t *testing.T) []domain.Transfer {
	t.Helper()
	transfers, _, err := f.ledger.ListTransfers(context.Background(), ports.TransferListParams{Page: 1, PageSize: 100})
	require.NoError(t, err)
	return transfers
}
