package postgres

import (
	"context"
	"errors"
	"testing"

	"insurance-gateway/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWalletUser() *domain.WalletUserRecord {
	return &domain.WalletUserRecord{
		Instance:             testRef,
		Owner:                testOwner,
		Package:              domain.PackagePremium,
		PremiumAmount:        *uint256.NewInt(50_000_000_000_000_000),
		IsActive:             true,
		TotalPayments:        3,
		PackageSelectedAt:    1_704_067_200,
		LastPaymentTimestamp: 1_708_905_600,
	}
}

func walletUserRow(u *domain.WalletUserRecord) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"instance", "owner", "package", "premium_amount", "is_active", "total_payments",
		"package_selected_at", "last_payment_timestamp",
	}).AddRow(u.Instance.Hex(), u.Owner.Hex(), int16(u.Package), amount(&u.PremiumAmount), u.IsActive,
		counter(u.TotalPayments), int64(u.PackageSelectedAt), int64(u.LastPaymentTimestamp))
}

func TestWalletUserRepo_Get(t *testing.T) {
	mock := newMock(t)
	repo := NewWalletUserRepo(mock)
	u := newTestWalletUser()

	mock.ExpectQuery("SELECT .+ FROM wallet_users WHERE instance").
		WithArgs(testRef.Hex(), testOwner.Hex()).
		WillReturnRows(walletUserRow(u))

	result, err := repo.Get(context.Background(), testRef, testOwner)
	require.NoError(t, err)
	assert.Equal(t, u, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletUserRepo_GetForUpdate_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewWalletUserRepo(mock)

	tx := beginTx(t, mock)
	mock.ExpectQuery("SELECT .+ FROM wallet_users WHERE .+ FOR UPDATE").
		WithArgs(testRef.Hex(), testOwner.Hex()).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetForUpdate(context.Background(), tx, testRef, testOwner)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestWalletUserRepo_Upsert(t *testing.T) {
	mock := newMock(t)
	repo := NewWalletUserRepo(mock)
	u := newTestWalletUser()

	tx := beginTx(t, mock)
	mock.ExpectExec("INSERT INTO wallet_users .+ ON CONFLICT").
		WithArgs(testRef.Hex(), testOwner.Hex(), int16(2), "50000000000000000", true, "3",
			int64(1_704_067_200), int64(1_708_905_600)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Upsert(context.Background(), tx, u))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletUserRepo_Upsert_Error(t *testing.T) {
	mock := newMock(t)
	repo := NewWalletUserRepo(mock)

	tx := beginTx(t, mock)
	mock.ExpectExec("INSERT INTO wallet_users").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	assert.Error(t, repo.Upsert(context.Background(), tx, newTestWalletUser()))
}
