package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/internal/core/ports/mocks"
	"insurance-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ==================== setCollateralValue ====================

func TestPolicyEngine_SetCollateralValue(t *testing.T) {
	tests := []struct {
		name     string
		amount   *uint256.Int
		wantCode string
	}{
		{"zero", amt(0), ""},
		{"category B ceiling", domain.CategoryBCollateralLimit, ""},
		{"category A ceiling", domain.CategoryACollateralLimit, ""},
		{"above ceiling", plus(domain.CategoryACollateralLimit, amt(1)), apperror.CodeCollateralExceedsLimit},
		{"beyond 64 bits", domain.Units(100), apperror.CodeCollateralExceedsLimit},
		{"max uint256", new(uint256.Int).SetAllOne(), apperror.CodeCollateralExceedsLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			eng := f.policyEngine(t, alice)
			ctx := context.Background()

			err := eng.SetCollateralValue(ctx, alice, tt.amount)
			record, readErr := eng.Users(ctx, alice)
			require.NoError(t, readErr)

			if tt.wantCode != "" {
				assertAppError(t, err, tt.wantCode)
				assert.Nil(t, record, "rejected call must not create a record")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, record)
			assert.Equal(t, *tt.amount, record.CollateralAmount)
		})
	}
}

func TestPolicyEngine_SetCollateralValue_OverwritesRecord(t *testing.T) {
	f := newFixture(t)
	eng := f.policyEngine(t, alice)
	ctx := context.Background()

	require.NoError(t, eng.SetCollateralValue(ctx, alice, domain.Units(1)))
	require.NoError(t, eng.SetCollateralStatus(ctx, alice, true))
	require.NoError(t, eng.ApproveCollateral(ctx, testVerifier, alice))
	require.NoError(t, eng.PayPremiumCategoryA(ctx, alice, domain.CategoryAPremium))

	require.NoError(t, eng.SetCollateralValue(ctx, alice, domain.Units(2)))

	record, err := eng.Users(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, &domain.PolicyRecord{
		Instance:         eng.Ref(),
		Owner:            alice,
		CollateralAmount: *domain.Units(2),
	}, record)
}

// ==================== setCollateralStatus ====================

func TestPolicyEngine_SetCollateralStatus(t *testing.T) {
	f := newFixture(t)
	eng := f.policyEngine(t, alice)
	ctx := context.Background()

	t.Run("no record", func(t *testing.T) {
		assertAppError(t, eng.SetCollateralStatus(ctx, bob, true), apperror.CodeNoCollateralSet)
		record, err := eng.Users(ctx, bob)
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("zero collateral", func(t *testing.T) {
		require.NoError(t, eng.SetCollateralValue(ctx, carol, amt(0)))
		assertAppError(t, eng.SetCollateralStatus(ctx, carol, true), apperror.CodeNoCollateralSet)
	})

	t.Run("toggle", func(t *testing.T) {
		require.NoError(t, eng.SetCollateralValue(ctx, alice, domain.Units(1)))

		require.NoError(t, eng.SetCollateralStatus(ctx, alice, true))
		record, err := eng.Users(ctx, alice)
		require.NoError(t, err)
		assert.True(t, record.CollateralDropped)

		require.NoError(t, eng.SetCollateralStatus(ctx, alice, false))
		record, err = eng.Users(ctx, alice)
		require.NoError(t, err)
		assert.False(t, record.CollateralDropped)
		assert.Equal(t, *domain.Units(1), record.CollateralAmount)
	})
}

// ==================== approveCollateral ====================

func TestPolicyEngine_ApproveCollateral(t *testing.T) {
	f := newFixture(t)
	eng := f.policyEngine(t, alice)
	ctx := context.Background()

	assertAppError(t, eng.ApproveCollateral(ctx, alice, alice), apperror.CodeNotVerifier)
	assertAppError(t, eng.ApproveCollateral(ctx, testVerifier, alice), apperror.CodeNoCollateralSet)

	require.NoError(t, eng.SetCollateralValue(ctx, alice, domain.Units(1)))
	assertAppError(t, eng.ApproveCollateral(ctx, bob, alice), apperror.CodeNotVerifier)
	require.NoError(t, eng.ApproveCollateral(ctx, testVerifier, alice))

	record, err := eng.Users(ctx, alice)
	require.NoError(t, err)
	assert.True(t, record.IsApproved)
}

// ==================== payPremiumCategoryA/B ====================

func TestPolicyEngine_PayPremium(t *testing.T) {
	payA := func(eng ports.PolicyEngine, value *uint256.Int) error {
		return eng.PayPremiumCategoryA(context.Background(), alice, value)
	}
	payB := func(eng ports.PolicyEngine, value *uint256.Int) error {
		return eng.PayPremiumCategoryB(context.Background(), alice, value)
	}

	tests := []struct {
		name     string
		pay      func(eng ports.PolicyEngine, value *uint256.Int) error
		premium  *uint256.Int
		reason   domain.TransferReason
		wrongFee *uint256.Int
	}{
		{"category A", payA, domain.CategoryAPremium, domain.TransferReasonPremiumCategoryA, domain.CategoryBPremium},
		{"category B", payB, domain.CategoryBPremium, domain.TransferReasonPremiumCategoryB, domain.CategoryAPremium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			eng := f.policyEngine(t, alice)
			ctx := context.Background()

			wrongValues := []*uint256.Int{
				nil,
				amt(0),
				new(uint256.Int).SubUint64(tt.premium, 1),
				plus(tt.premium, amt(1)),
				tt.wrongFee,
				plus(tt.premium, domain.Units(100)),
			}
			for _, wrong := range wrongValues {
				assertAppError(t, tt.pay(eng, wrong), apperror.CodeIncorrectPremium)
			}
			assert.True(t, f.verifierBalance(t).IsZero())

			// Absent record is created on payment
			require.NoError(t, tt.pay(eng, tt.premium))
			record, err := eng.Users(ctx, alice)
			require.NoError(t, err)
			require.NotNil(t, record)
			assert.Equal(t, uint64(testStart.Unix()), record.LastPaymentTimestamp)
			assert.True(t, record.CollateralAmount.IsZero())

			f.clock.Advance(time.Hour)
			require.NoError(t, tt.pay(eng, tt.premium))
			record, err = eng.Users(ctx, alice)
			require.NoError(t, err)
			assert.Equal(t, uint64(testStart.Add(time.Hour).Unix()), record.LastPaymentTimestamp)

			assert.Equal(t, plus(tt.premium, tt.premium), f.verifierBalance(t))
			transfers := f.transfers(t)
			require.Len(t, transfers, 2)
			for _, tr := range transfers {
				assert.Equal(t, tt.reason, tr.Reason)
				assert.Equal(t, alice, tr.From)
				assert.Equal(t, testVerifier, tr.To)
				assert.Equal(t, eng.Ref(), tr.Instance)
				assert.Equal(t, *tt.premium, tr.Amount)
			}
			assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.PremiumsCollected.WithLabelValues(string(tt.reason))))
		})
	}
}

func TestPolicyEngine_PayPremium_KeepsCollateral(t *testing.T) {
	f := newFixture(t)
	eng := f.policyEngine(t, alice)
	ctx := context.Background()

	require.NoError(t, eng.SetCollateralValue(ctx, alice, domain.Units(1)))
	require.NoError(t, eng.SetCollateralStatus(ctx, alice, true))
	require.NoError(t, eng.PayPremiumCategoryB(ctx, alice, domain.CategoryBPremium))

	record, err := eng.Users(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, *domain.Units(1), record.CollateralAmount)
	assert.True(t, record.CollateralDropped)
}

func TestPolicyEngine_PayPremium_TransferOverflowRollsBack(t *testing.T) {
	f := newFixture(t)
	eng := f.policyEngine(t, alice)
	ctx := context.Background()

	// Pre-credit the verifier close to the 256-bit limit
	nearMax := new(uint256.Int).SubUint64(new(uint256.Int).SetAllOne(), 1)
	tx, err := f.store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, f.ledger.SetBalance(ctx, tx, testVerifier, nearMax))
	require.NoError(t, tx.Commit(ctx))

	err = eng.PayPremiumCategoryA(ctx, alice, domain.CategoryAPremium)
	assertAppError(t, err, apperror.CodeTransferFailed)

	record, err := eng.Users(ctx, alice)
	require.NoError(t, err)
	assert.Nil(t, record, "record creation must be rolled back with the transfer")
	assert.Equal(t, nearMax, f.verifierBalance(t))
	assert.Empty(t, f.transfers(t))
}

func TestPolicyEngine_RejectsZeroCaller(t *testing.T) {
	f := newFixture(t)
	eng := f.policyEngine(t, alice)

	err := eng.SetCollateralValue(context.Background(), common.Address{}, amt(1))
	assertAppError(t, err, apperror.CodeInvalidAddress)
}

func TestPolicyEngine_VerifierCompany(t *testing.T) {
	f := newFixture(t)
	e1 := f.policyEngine(t, alice)
	e2 := f.policyEngine(t, bob)

	assert.Equal(t, testVerifier, e1.VerifierCompany())
	assert.Equal(t, testVerifier, e2.VerifierCompany())
	assert.NotEqual(t, e1.Ref(), e2.Ref())
}

func TestPolicyEngine_InstancesAreIsolated(t *testing.T) {
	f := newFixture(t)
	e1 := f.policyEngine(t, alice)
	e2 := f.policyEngine(t, bob)
	ctx := context.Background()

	require.NoError(t, e1.SetCollateralValue(ctx, carol, domain.Units(1)))

	record, err := e2.Users(ctx, carol)
	require.NoError(t, err)
	assert.Nil(t, record)
}

// ==================== Infrastructure failures (mocks) ====================

type policyMockDeps struct {
	eng        *PolicyEngineImpl
	policyRepo *mocks.MockPolicyRepository
	ledgerRepo *mocks.MockLedgerRepository
	transactor *mocks.MockDBTransactor
	clock      *mocks.MockClock
}

func setupPolicyEngineMocks(t *testing.T) *policyMockDeps {
	ctrl := gomock.NewController(t)
	d := &policyMockDeps{
		policyRepo: mocks.NewMockPolicyRepository(ctrl),
		ledgerRepo: mocks.NewMockLedgerRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	instance := domain.Instance{
		Ref:      common.HexToAddress("0x1000000000000000000000000000000000000001"),
		Kind:     domain.InstanceKindInsurance,
		Owner:    alice,
		Verifier: testVerifier,
		Seq:      1,
	}
	d.eng = NewPolicyEngine(instance, d.policyRepo, EngineDeps{
		Transactor: d.transactor,
		LedgerRepo: d.ledgerRepo,
		Clock:      d.clock,
		Log:        newTestLogger(),
	})
	return d
}

func TestPolicyEngine_PayPremium_LedgerFailure(t *testing.T) {
	d := setupPolicyEngineMocks(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.clock.EXPECT().Now().Return(testStart).AnyTimes()
	d.policyRepo.EXPECT().GetForUpdate(ctx, tx, d.eng.Ref(), alice).Return(nil, nil)
	d.policyRepo.EXPECT().Upsert(ctx, tx, gomock.Any()).Return(nil)
	d.ledgerRepo.EXPECT().BalanceForUpdate(ctx, tx, testVerifier).Return(amt(0), nil)
	d.ledgerRepo.EXPECT().SetBalance(ctx, tx, testVerifier, domain.CategoryAPremium).Return(errors.New("disk full"))

	err := d.eng.PayPremiumCategoryA(ctx, alice, domain.CategoryAPremium)
	assertAppError(t, err, apperror.CodeTransferFailed)
}

func TestPolicyEngine_PayPremium_RecordsTransfer(t *testing.T) {
	d := setupPolicyEngineMocks(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.clock.EXPECT().Now().Return(testStart).AnyTimes()
	d.policyRepo.EXPECT().GetForUpdate(ctx, tx, d.eng.Ref(), alice).Return(&domain.PolicyRecord{
		Instance: d.eng.Ref(), Owner: alice, CollateralAmount: *amt(7),
	}, nil)
	d.policyRepo.EXPECT().Upsert(ctx, tx, &domain.PolicyRecord{
		Instance: d.eng.Ref(), Owner: alice, CollateralAmount: *amt(7), LastPaymentTimestamp: uint64(testStart.Unix()),
	}).Return(nil)
	d.ledgerRepo.EXPECT().BalanceForUpdate(ctx, tx, testVerifier).Return(amt(5), nil)
	d.ledgerRepo.EXPECT().SetBalance(ctx, tx, testVerifier, plus(amt(5), domain.CategoryBPremium)).Return(nil)
	d.ledgerRepo.EXPECT().RecordTransfer(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, tr *domain.Transfer) error {
			assert.Equal(t, domain.TransferReasonPremiumCategoryB, tr.Reason)
			assert.Equal(t, *domain.CategoryBPremium, tr.Amount)
			assert.Equal(t, testStart, tr.CreatedAt)
			return nil
		},
	)

	require.NoError(t, d.eng.PayPremiumCategoryB(ctx, alice, domain.CategoryBPremium))
}

func TestPolicyEngine_BeginFailure(t *testing.T) {
	d := setupPolicyEngineMocks(t)
	ctx := context.Background()

	d.transactor.EXPECT().Begin(ctx).Return(nil, errors.New("connection refused"))

	err := d.eng.SetCollateralValue(ctx, alice, amt(1))
	assertAppError(t, err, apperror.CodeInternal)
}

func TestPolicyEngine_Users_RepoFailure(t *testing.T) {
	d := setupPolicyEngineMocks(t)
	ctx := context.Background()

	d.policyRepo.EXPECT().Get(ctx, d.eng.Ref(), bob).Return(nil, errors.New("timeout"))

	record, err := d.eng.Users(ctx, bob)
	assert.Nil(t, record)
	assertAppError(t, err, apperror.CodeInternal)
}
