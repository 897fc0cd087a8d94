package postgres

import (
	"context"
	"errors"
	"fmt"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	instanceColumns = `ref, kind, owner, verifier, seq, created_at`

	uniqueViolation = "23505"
	ownerConstraint = "instances_kind_owner_key"
)

// InstanceRepo implements ports.InstanceRepository.
type InstanceRepo struct {
	pool Pool
}

// NewInstanceRepo creates a new InstanceRepo.
func NewInstanceRepo(pool Pool) *InstanceRepo {
	return &InstanceRepo{pool: pool}
}

// Create inserts a registry entry. A second entry for the same owner and kind maps to ErrDuplicateInstance.
func (r *InstanceRepo) Create(ctx context.Context, tx pgx.Tx, instance *domain.Instance) error {
	query := `INSERT INTO instances (` + instanceColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query,
		addr(instance.Ref), string(instance.Kind), addr(instance.Owner), addr(instance.Verifier),
		int64(instance.Seq), instance.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == ownerConstraint {
			return apperror.ErrDuplicateInstance()
		}
		return fmt.Errorf("insert instance: %w", err)
	}
	return nil
}

// GetByRef fetches a registry entry by its reference.
func (r *InstanceRepo) GetByRef(ctx context.Context, ref common.Address) (*domain.Instance, error) {
	query := `SELECT ` + instanceColumns + ` FROM instances WHERE ref = $1`

	instance, err := scanInstance(r.pool.QueryRow(ctx, query, addr(ref)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get instance by ref: %w", err)
	}
	return instance, nil
}

// GetByOwner fetches the entry of kind owned by owner.
func (r *InstanceRepo) GetByOwner(ctx context.Context, kind domain.InstanceKind, owner common.Address) (*domain.Instance, error) {
	query := `SELECT ` + instanceColumns + ` FROM instances WHERE kind = $1 AND owner = $2`

	instance, err := scanInstance(r.pool.QueryRow(ctx, query, string(kind), addr(owner)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get instance by owner: %w", err)
	}
	return instance, nil
}

// List returns all entries of kind in creation order.
func (r *InstanceRepo) List(ctx context.Context, kind domain.InstanceKind) ([]domain.Instance, error) {
	query := `SELECT ` + instanceColumns + ` FROM instances WHERE kind = $1 ORDER BY seq`

	rows, err := r.pool.Query(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	defer rows.Close()

	instances := []domain.Instance{}
	for rows.Next() {
		instance, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan instance row: %w", err)
		}
		instances = append(instances, *instance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate instance rows: %w", err)
	}
	return instances, nil
}

// CountForUpdate serializes creations of kind with a transaction-scoped advisory lock, then counts.
// This MUST be called within a transaction.
func (r *InstanceRepo) CountForUpdate(ctx context.Context, tx pgx.Tx, kind domain.InstanceKind) (uint64, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, string(kind)); err != nil {
		return 0, fmt.Errorf("lock instance sequence: %w", err)
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM instances WHERE kind = $1`, string(kind)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count instances: %w", err)
	}
	return uint64(count), nil
}

func scanInstance(row pgx.Row) (*domain.Instance, error) {
	var (
		ref, kind, owner, verifier string
		seq                        int64
		instance                   domain.Instance
	)
	if err := row.Scan(&ref, &kind, &owner, &verifier, &seq, &instance.CreatedAt); err != nil {
		return nil, err
	}
	instance.Ref = common.HexToAddress(ref)
	instance.Kind = domain.InstanceKind(kind)
	instance.Owner = common.HexToAddress(owner)
	instance.Verifier = common.HexToAddress(verifier)
	instance.Seq = uint64(seq)
	return &instance, nil
}
