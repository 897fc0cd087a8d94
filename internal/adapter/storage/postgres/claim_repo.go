package postgres

import (
	"context"
	"errors"
	"fmt"

	"insurance-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

const claimColumns = `instance, owner, status, updated_at`

// ClaimRepo implements ports.ClaimRepository.
type ClaimRepo struct {
	pool Pool
}

// NewClaimRepo creates a new ClaimRepo.
func NewClaimRepo(pool Pool) *ClaimRepo {
	return &ClaimRepo{pool: pool}
}

// Get fetches a claim record (without locking).
func (r *ClaimRepo) Get(ctx context.Context, instance, owner common.Address) (*domain.ClaimRecord, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE instance = $1 AND owner = $2`

	c, err := scanClaim(r.pool.QueryRow(ctx, query, addr(instance), addr(owner)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get claim: %w", err)
	}
	return c, nil
}

// GetForUpdate fetches a claim record with pessimistic locking.
// This MUST be called within a transaction.
func (r *ClaimRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, instance, owner common.Address) (*domain.ClaimRecord, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE instance = $1 AND owner = $2 FOR UPDATE`

	c, err := scanClaim(tx.QueryRow(ctx, query, addr(instance), addr(owner)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get claim for update: %w", err)
	}
	return c, nil
}

// Upsert writes the claim status within a transaction.
func (r *ClaimRepo) Upsert(ctx context.Context, tx pgx.Tx, c *domain.ClaimRecord) error {
	query := `INSERT INTO claims (instance, owner, status, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (instance, owner) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`

	_, err := tx.Exec(ctx, query, addr(c.Instance), addr(c.Owner), int16(c.Status), int64(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upsert claim: %w", err)
	}
	return nil
}

func scanClaim(row pgx.Row) (*domain.ClaimRecord, error) {
	var (
		instance, owner string
		status          int16
		updatedAt       int64
	)
	if err := row.Scan(&instance, &owner, &status, &updatedAt); err != nil {
		return nil, err
	}
	return &domain.ClaimRecord{
		Instance:  common.HexToAddress(instance),
		Owner:     common.HexToAddress(owner),
		Status:    domain.ClaimStatus(status),
		UpdatedAt: uint64(updatedAt),
	}, nil
}
