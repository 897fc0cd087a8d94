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

// PolicyEngineImpl implements ports.PolicyEngine for one insurance instance.
type PolicyEngineImpl struct {
	engine
	policyRepo ports.PolicyRepository
}

// NewPolicyEngine binds a policy engine to a registry entry.
func NewPolicyEngine(instance domain.Instance, policyRepo ports.PolicyRepository, deps EngineDeps) *PolicyEngineImpl {
	return &PolicyEngineImpl{
		engine:     newEngine(instance, deps),
		policyRepo: policyRepo,
	}
}

// SetCollateralValue resets the caller's record to the given collateral amount.
func (s *PolicyEngineImpl) SetCollateralValue(ctx context.Context, caller common.Address, amount *uint256.Int) error {
	amount = orZero(amount)
	err := s.run(ctx, "set_collateral_value", caller, func(dbTx pgx.Tx, _ uint64) error {
		if amount.Gt(domain.CategoryACollateralLimit) {
			return apperror.ErrCollateralExceedsLimit()
		}

		record := domain.NewPolicyRecord(s.instance.Ref, caller)
		record.CollateralAmount.Set(amount)
		if err := s.policyRepo.Upsert(ctx, dbTx, record); err != nil {
			return apperror.InternalError(fmt.Errorf("save policy: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("caller", caller.Hex()).Str("amount", amount.Dec()).Msg("collateral value set")
	return nil
}

// SetCollateralStatus flags the caller's collateral as dropped or restored.
func (s *PolicyEngineImpl) SetCollateralStatus(ctx context.Context, caller common.Address, dropped bool) error {
	err := s.run(ctx, "set_collateral_status", caller, func(dbTx pgx.Tx, _ uint64) error {
		record, err := s.lockRecord(ctx, dbTx, caller)
		if err != nil {
			return err
		}
		if !record.HasCollateral() {
			return apperror.ErrNoCollateralSet()
		}

		record.CollateralDropped = dropped
		if err := s.policyRepo.Upsert(ctx, dbTx, record); err != nil {
			return apperror.InternalError(fmt.Errorf("save policy: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("caller", caller.Hex()).Bool("dropped", dropped).Msg("collateral status updated")
	return nil
}

// ApproveCollateral marks target's collateral as approved. Verifier only.
func (s *PolicyEngineImpl) ApproveCollateral(ctx context.Context, caller, target common.Address) error {
	err := s.run(ctx, "approve_collateral", caller, func(dbTx pgx.Tx, _ uint64) error {
		if !s.isVerifier(caller) {
			return apperror.ErrNotVerifier()
		}

		record, err := s.lockRecord(ctx, dbTx, target)
		if err != nil {
			return err
		}
		if !record.HasCollateral() {
			return apperror.ErrNoCollateralSet()
		}

		record.IsApproved = true
		if err := s.policyRepo.Upsert(ctx, dbTx, record); err != nil {
			return apperror.InternalError(fmt.Errorf("save policy: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("target", target.Hex()).Msg("collateral approved")
	return nil
}

// PayPremiumCategoryA accepts exactly the category A premium.
func (s *PolicyEngineImpl) PayPremiumCategoryA(ctx context.Context, caller common.Address, value *uint256.Int) error {
	return s.payPremium(ctx, "pay_premium_category_a", caller, value, domain.CategoryA, domain.TransferReasonPremiumCategoryA)
}

// PayPremiumCategoryB accepts exactly the category B premium.
func (s *PolicyEngineImpl) PayPremiumCategoryB(ctx context.Context, caller common.Address, value *uint256.Int) error {
	return s.payPremium(ctx, "pay_premium_category_b", caller, value, domain.CategoryB, domain.TransferReasonPremiumCategoryB)
}

func (s *PolicyEngineImpl) payPremium(
	ctx context.Context,
	op string,
	caller common.Address,
	value *uint256.Int,
	category domain.Category,
	reason domain.TransferReason,
) error {
	value = orZero(value)
	err := s.run(ctx, op, caller, func(dbTx pgx.Tx, now uint64) error {
		if !value.Eq(category.Premium()) {
			return apperror.ErrIncorrectPremiumAmount()
		}

		record, err := s.lockRecord(ctx, dbTx, caller)
		if err != nil {
			return err
		}
		if record == nil {
			record = domain.NewPolicyRecord(s.instance.Ref, caller)
		}

		record.LastPaymentTimestamp = now
		if err := s.policyRepo.Upsert(ctx, dbTx, record); err != nil {
			return apperror.InternalError(fmt.Errorf("save policy: %w", err))
		}
		return s.transferToVerifier(ctx, dbTx, caller, value, reason, now)
	})
	if err != nil {
		return err
	}

	s.recordPremium(reason, value)
	s.log.Info().
		Str("caller", caller.Hex()).
		Str("category", string(category)).
		Str("amount", value.Dec()).
		Msg("premium paid")
	return nil
}

// Users returns the record of address, or nil when none exists.
func (s *PolicyEngineImpl) Users(ctx context.Context, address common.Address) (*domain.PolicyRecord, error) {
	record, err := s.policyRepo.Get(ctx, s.instance.Ref, address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get policy: %w", err))
	}
	return record, nil
}

func (s *PolicyEngineImpl) lockRecord(ctx context.Context, dbTx pgx.Tx, owner common.Address) (*domain.PolicyRecord, error) {
	record, err := s.policyRepo.GetForUpdate(ctx, dbTx, s.instance.Ref, owner)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock policy: %w", err))
	}
	return record, nil
}
