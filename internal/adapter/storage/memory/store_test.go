package memory

import (
	"context"
	"testing"
	"time"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	instanceA = common.HexToAddress("0x1000000000000000000000000000000000000001")
	ownerA    = common.HexToAddress("0x2000000000000000000000000000000000000002")
	ownerB    = common.HexToAddress("0x3000000000000000000000000000000000000003")
	verifier  = common.HexToAddress("0x4000000000000000000000000000000000000004")
)

func TestStore_CommitPersistsWrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewPolicyRepository(store)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, tx, &domain.PolicyRecord{Instance: instanceA, Owner: ownerA, CollateralAmount: *uint256.NewInt(5)}))
	require.NoError(t, tx.Commit(ctx))

	got, err := repo.Get(ctx, instanceA, ownerA)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *uint256.NewInt(5), got.CollateralAmount)

	// Rollback after commit is a no-op
	assert.ErrorIs(t, tx.Rollback(ctx), pgx.ErrTxClosed)
}

func TestStore_RollbackRestoresPreviousState(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	policies := NewPolicyRepository(store)
	ledger := NewLedgerRepository(store)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, policies.Upsert(ctx, tx, &domain.PolicyRecord{Instance: instanceA, Owner: ownerA, CollateralAmount: *uint256.NewInt(1)}))
	require.NoError(t, ledger.SetBalance(ctx, tx, verifier, uint256.NewInt(10)))
	require.NoError(t, tx.Commit(ctx))

	tx, err = store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, policies.Upsert(ctx, tx, &domain.PolicyRecord{Instance: instanceA, Owner: ownerA, CollateralAmount: *uint256.NewInt(2)}))
	require.NoError(t, policies.Upsert(ctx, tx, &domain.PolicyRecord{Instance: instanceA, Owner: ownerB, CollateralAmount: *uint256.NewInt(3)}))
	require.NoError(t, ledger.SetBalance(ctx, tx, verifier, uint256.NewInt(20)))
	require.NoError(t, ledger.RecordTransfer(ctx, tx, &domain.Transfer{ID: uuid.New(), To: verifier, Amount: *uint256.NewInt(10)}))
	require.NoError(t, tx.Rollback(ctx))

	got, err := policies.Get(ctx, instanceA, ownerA)
	require.NoError(t, err)
	assert.Equal(t, *uint256.NewInt(1), got.CollateralAmount)

	missing, err := policies.Get(ctx, instanceA, ownerB)
	require.NoError(t, err)
	assert.Nil(t, missing)

	balance, err := ledger.Balance(ctx, verifier)
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(10), balance)

	transfers, total, err := ledger.ListTransfers(ctx, ports.TransferListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, transfers)
	assert.Zero(t, total)
}

func TestStore_RejectsClosedAndForeignTx(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	other := NewStore()
	repo := NewClaimRepository(store)

	foreign, err := other.Begin(ctx)
	require.NoError(t, err)
	defer foreign.Rollback(ctx) //nolint:errcheck

	err = repo.Upsert(ctx, foreign, &domain.ClaimRecord{Instance: instanceA, Owner: ownerA})
	assert.ErrorIs(t, err, errForeignTx)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	_, err = repo.GetForUpdate(ctx, tx, instanceA, ownerA)
	assert.ErrorIs(t, err, pgx.ErrTxClosed)
}

func TestStore_BeginHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().Begin(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInstanceRepo_OrderAndUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewInstanceRepository(store)

	create := func(ref, owner common.Address, seq uint64) error {
		tx, err := store.Begin(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx) //nolint:errcheck

		if err := repo.Create(ctx, tx, &domain.Instance{
			Ref: ref, Kind: domain.InstanceKindWallet, Owner: owner, Verifier: verifier, Seq: seq, CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	refB := common.HexToAddress("0x1000000000000000000000000000000000000002")
	require.NoError(t, create(instanceA, ownerA, 1))
	require.NoError(t, create(refB, ownerB, 2))

	err := create(common.HexToAddress("0x1000000000000000000000000000000000000003"), ownerA, 3)
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicateInstance))

	list, err := repo.List(ctx, domain.InstanceKindWallet)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, instanceA, list[0].Ref)
	assert.Equal(t, refB, list[1].Ref)

	other, err := repo.List(ctx, domain.InstanceKindInsurance)
	require.NoError(t, err)
	assert.Empty(t, other)

	got, err := repo.GetByOwner(ctx, domain.InstanceKindWallet, ownerB)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, refB, got.Ref)

	none, err := repo.GetByOwner(ctx, domain.InstanceKindInsurance, ownerB)
	require.NoError(t, err)
	assert.Nil(t, none)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	count, err := repo.CountForUpdate(ctx, tx, domain.InstanceKindWallet)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
	require.NoError(t, tx.Rollback(ctx))
}

func TestLedgerRepo_ListTransfersFiltersAndPages(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewLedgerRepository(store)
	otherInstance := common.HexToAddress("0x1000000000000000000000000000000000000009")

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		instance := instanceA
		if i%2 == 1 {
			instance = otherInstance
		}
		require.NoError(t, repo.RecordTransfer(ctx, tx, &domain.Transfer{
			ID: uuid.New(), Instance: instance, From: ownerA, To: verifier, Amount: *uint256.NewInt(uint64(i + 1)),
		}))
	}
	require.NoError(t, tx.Commit(ctx))

	page, total, err := repo.ListTransfers(ctx, ports.TransferListParams{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, *uint256.NewInt(5), page[0].Amount, "newest first")
	assert.Equal(t, *uint256.NewInt(4), page[1].Amount)

	last, _, err := repo.ListTransfers(ctx, ports.TransferListParams{Page: 3, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, *uint256.NewInt(1), last[0].Amount)

	filtered, total, err := repo.ListTransfers(ctx, ports.TransferListParams{Instance: &instanceA, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, tr := range filtered {
		assert.Equal(t, instanceA, tr.Instance)
	}

	beyond, _, err := repo.ListTransfers(ctx, ports.TransferListParams{Page: 9, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestAuditRepo_Create(t *testing.T) {
	store := NewStore()
	repo := NewAuditRepository(store)

	require.NoError(t, repo.Create(context.Background(), &domain.AuditLog{ID: uuid.New(), Action: domain.AuditActionSubmitClaim}))

	logs := store.AuditLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, domain.AuditActionSubmitClaim, logs[0].Action)
}

func TestStore_HealthCheck(t *testing.T) {
	store := NewStore()
	assert.NoError(t, store.Ping(context.Background()))
	assert.Equal(t, "memory", store.Name())
}
