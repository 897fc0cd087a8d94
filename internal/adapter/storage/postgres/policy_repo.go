package postgres

import (
	"context"
	"errors"
	"fmt"

	"insurance-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

const policyColumns = `instance, owner, collateral_amount::text, collateral_dropped, is_approved, last_payment_timestamp`

// PolicyRepo implements ports.PolicyRepository.
type PolicyRepo struct {
	pool Pool
}

// NewPolicyRepo creates a new PolicyRepo.
func NewPolicyRepo(pool Pool) *PolicyRepo {
	return &PolicyRepo{pool: pool}
}

// Get fetches a policy record (without locking).
func (r *PolicyRepo) Get(ctx context.Context, instance, owner common.Address) (*domain.PolicyRecord, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE instance = $1 AND owner = $2`

	p, err := scanPolicy(r.pool.QueryRow(ctx, query, addr(instance), addr(owner)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get policy: %w", err)
	}
	return p, nil
}

// GetForUpdate fetches a policy record with pessimistic locking.
// This MUST be called within a transaction.
func (r *PolicyRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, instance, owner common.Address) (*domain.PolicyRecord, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE instance = $1 AND owner = $2 FOR UPDATE`

	p, err := scanPolicy(tx.QueryRow(ctx, query, addr(instance), addr(owner)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get policy for update: %w", err)
	}
	return p, nil
}

// Upsert writes the whole record within a transaction.
func (r *PolicyRepo) Upsert(ctx context.Context, tx pgx.Tx, p *domain.PolicyRecord) error {
	query := `INSERT INTO policies (instance, owner, collateral_amount, collateral_dropped, is_approved, last_payment_timestamp)
		VALUES ($1, $2, $3::numeric, $4, $5, $6)
		ON CONFLICT (instance, owner) DO UPDATE SET
			collateral_amount = EXCLUDED.collateral_amount,
			collateral_dropped = EXCLUDED.collateral_dropped,
			is_approved = EXCLUDED.is_approved,
			last_payment_timestamp = EXCLUDED.last_payment_timestamp`

	_, err := tx.Exec(ctx, query,
		addr(p.Instance), addr(p.Owner), amount(&p.CollateralAmount),
		p.CollateralDropped, p.IsApproved, int64(p.LastPaymentTimestamp),
	)
	if err != nil {
		return fmt.Errorf("upsert policy: %w", err)
	}
	return nil
}

func scanPolicy(row pgx.Row) (*domain.PolicyRecord, error) {
	var (
		instance, owner, collateral string
		lastPayment                 int64
		p                           domain.PolicyRecord
	)
	if err := row.Scan(&instance, &owner, &collateral, &p.CollateralDropped, &p.IsApproved, &lastPayment); err != nil {
		return nil, err
	}
	v, err := parseAmount(collateral)
	if err != nil {
		return nil, err
	}
	p.Instance = common.HexToAddress(instance)
	p.Owner = common.HexToAddress(owner)
	p.CollateralAmount = v
	p.LastPaymentTimestamp = uint64(lastPayment)
	return &p, nil
}
