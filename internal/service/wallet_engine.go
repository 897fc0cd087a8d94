package service

import (
	"context"
	"fmt"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// WalletEngineImpl implements ports.WalletEngine for one wallet instance.
type WalletEngineImpl struct {
	engine
	userRepo  ports.WalletUserRepository
	claimRepo ports.ClaimRepository
}

// NewWalletEngine binds a wallet engine to a registry entry.
func NewWalletEngine(
	instance domain.Instance,
	userRepo ports.WalletUserRepository,
	claimRepo ports.ClaimRepository,
	deps EngineDeps,
) *WalletEngineImpl {
	return &WalletEngineImpl{
		engine:    newEngine(instance, deps),
		userRepo:  userRepo,
		claimRepo: claimRepo,
	}
}

// SelectPackage activates a package for the caller; the paid value is the first premium.
func (s *WalletEngineImpl) SelectPackage(ctx context.Context, caller common.Address, pkg uint64, value *uint256.Int) error {
	value = orZero(value)
	var selected domain.Package
	err := s.run(ctx, "select_package", caller, func(dbTx pgx.Tx, now uint64) error {
		p, ok := domain.ParsePackage(pkg)
		if !ok {
			return apperror.ErrInvalidPackage()
		}
		selected = p

		user, err := s.lockUser(ctx, dbTx, caller)
		if err != nil {
			return err
		}
		if user.Active() {
			return apperror.ErrAlreadyActive()
		}

		user = &domain.WalletUserRecord{
			Instance:             s.instance.Ref,
			Owner:                caller,
			Package:              p,
			PremiumAmount:        *value,
			IsActive:             true,
			TotalPayments:        1,
			PackageSelectedAt:    now,
			LastPaymentTimestamp: now,
		}
		if err := s.userRepo.Upsert(ctx, dbTx, user); err != nil {
			return apperror.InternalError(fmt.Errorf("save user: %w", err))
		}
		return s.transferToVerifier(ctx, dbTx, caller, value, domain.TransferReasonPackageSelection, now)
	})
	if err != nil {
		return err
	}

	s.recordPremium(domain.TransferReasonPackageSelection, value)
	s.log.Info().
		Str("caller", caller.Hex()).
		Str("package", selected.String()).
		Str("amount", value.Dec()).
		Msg("package selected")
	return nil
}

// PayPremiumToVerifier accepts a recurring premium once the payment interval has elapsed.
func (s *WalletEngineImpl) PayPremiumToVerifier(ctx context.Context, caller common.Address, value *uint256.Int) error {
	value = orZero(value)
	var total uint64
	err := s.run(ctx, "pay_premium", caller, func(dbTx pgx.Tx, now uint64) error {
		user, err := s.lockUser(ctx, dbTx, caller)
		if err != nil {
			return err
		}
		if !user.Active() {
			return apperror.ErrUserNotActive()
		}
		if now < user.NextPaymentDue() {
			return apperror.ErrIntervalNotElapsed()
		}

		user.LastPaymentTimestamp = now
		user.TotalPayments++
		total = user.TotalPayments
		if err := s.userRepo.Upsert(ctx, dbTx, user); err != nil {
			return apperror.InternalError(fmt.Errorf("save user: %w", err))
		}
		return s.transferToVerifier(ctx, dbTx, caller, value, domain.TransferReasonRecurringPremium, now)
	})
	if err != nil {
		return err
	}

	s.recordPremium(domain.TransferReasonRecurringPremium, value)
	s.log.Info().
		Str("caller", caller.Hex()).
		Str("amount", value.Dec()).
		Uint64("total_payments", total).
		Msg("recurring premium paid")
	return nil
}

// SubmitClaim moves the caller's claim to pending.
func (s *WalletEngineImpl) SubmitClaim(ctx context.Context, caller common.Address) error {
	err := s.run(ctx, "submit_claim", caller, func(dbTx pgx.Tx, now uint64) error {
		user, err := s.lockUser(ctx, dbTx, caller)
		if err != nil {
			return err
		}
		if !user.Active() {
			return apperror.ErrUserNotActive()
		}

		claim, err := s.lockClaim(ctx, dbTx, caller)
		if err != nil {
			return err
		}
		switch domain.StatusOf(claim) {
		case domain.ClaimStatusPending:
			return apperror.ErrClaimAlreadyPending()
		case domain.ClaimStatusApproved:
			return apperror.ErrClaimAlreadySettled()
		}

		return s.saveClaim(ctx, dbTx, caller, domain.ClaimStatusPending, now)
	})
	if err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.IncrementClaimsSubmitted()
	}
	s.log.Info().Str("caller", caller.Hex()).Msg("claim submitted")
	return nil
}

// ApproveClaim settles target's pending claim. Verifier only.
func (s *WalletEngineImpl) ApproveClaim(ctx context.Context, caller, target common.Address) error {
	return s.decideClaim(ctx, "approve_claim", caller, target, domain.ClaimStatusApproved)
}

// RejectClaim rejects target's pending claim. Verifier only.
func (s *WalletEngineImpl) RejectClaim(ctx context.Context, caller, target common.Address) error {
	return s.decideClaim(ctx, "reject_claim", caller, target, domain.ClaimStatusRejected)
}

// decideClaim checks, in order: verifier capability, target activity, pending status.
func (s *WalletEngineImpl) decideClaim(ctx context.Context, op string, caller, target common.Address, outcome domain.ClaimStatus) error {
	err := s.run(ctx, op, caller, func(dbTx pgx.Tx, now uint64) error {
		if !s.isVerifier(caller) {
			return apperror.ErrNotVerifier()
		}

		user, err := s.lockUser(ctx, dbTx, target)
		if err != nil {
			return err
		}
		if !user.Active() {
			return apperror.ErrUserNotActive()
		}

		claim, err := s.lockClaim(ctx, dbTx, target)
		if err != nil {
			return err
		}
		if domain.StatusOf(claim) != domain.ClaimStatusPending {
			return apperror.ErrNoPendingClaim()
		}

		return s.saveClaim(ctx, dbTx, target, outcome, now)
	})
	if err != nil {
		return err
	}

	if s.metrics != nil {
		if outcome == domain.ClaimStatusApproved {
			s.metrics.IncrementClaimsDecided("approved")
		} else {
			s.metrics.IncrementClaimsDecided("rejected")
		}
	}
	s.log.Info().Str("target", target.Hex()).Str("status", outcome.String()).Msg("claim decided")
	return nil
}

// CancelInsurance deactivates the caller's package. Claim history is kept.
func (s *WalletEngineImpl) CancelInsurance(ctx context.Context, caller common.Address) error {
	err := s.run(ctx, "cancel_insurance", caller, func(dbTx pgx.Tx, _ uint64) error {
		user, err := s.lockUser(ctx, dbTx, caller)
		if err != nil {
			return err
		}
		if !user.Active() {
			return apperror.ErrUserNotActive()
		}

		user.IsActive = false
		if err := s.userRepo.Upsert(ctx, dbTx, user); err != nil {
			return apperror.InternalError(fmt.Errorf("save user: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("caller", caller.Hex()).Msg("insurance cancelled")
	return nil
}

// Users returns the record of address, or nil when none exists.
func (s *WalletEngineImpl) Users(ctx context.Context, address common.Address) (*domain.WalletUserRecord, error) {
	user, err := s.userRepo.Get(ctx, s.instance.Ref, address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	return user, nil
}

// Claims returns the claim status of address. Addresses without a claim report None.
func (s *WalletEngineImpl) Claims(ctx context.Context, address common.Address) (domain.ClaimStatus, error) {
	claim, err := s.claimRepo.Get(ctx, s.instance.Ref, address)
	if err != nil {
		return domain.ClaimStatusNone, apperror.InternalError(fmt.Errorf("get claim: %w", err))
	}
	return domain.StatusOf(claim), nil
}

func (s *WalletEngineImpl) lockUser(ctx context.Context, dbTx pgx.Tx, owner common.Address) (*domain.WalletUserRecord, error) {
	user, err := s.userRepo.GetForUpdate(ctx, dbTx, s.instance.Ref, owner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock user: %w", err))
	}
	return user, nil
}

func (s *WalletEngineImpl) lockClaim(ctx context.Context, dbTx pgx.Tx, owner common.Address) (*domain.ClaimRecord, error) {
	claim, err := s.claimRepo.GetForUpdate(ctx, dbTx, s.instance.Ref, owner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock claim: %w", err))
	}
	return claim, nil
}

func (s *WalletEngineImpl) saveClaim(ctx context.Context, dbTx pgx.Tx, owner common.Address, status domain.ClaimStatus, now uint64) error {
	claim := &domain.ClaimRecord{
		Instance:  s.instance.Ref,
		Owner:     owner,
		Status:    status,
		UpdatedAt: now,
	}
	if err := s.claimRepo.Upsert(ctx, dbTx, claim); err != nil {
		return apperror.InternalError(fmt.Errorf("save claim: %w", err))
	}
	return nil
}
