package memory

import (
	"context"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

type claimRepo struct {
	store *Store
}

// NewClaimRepository creates a memory-backed ClaimRepository.
func NewClaimRepository(store *Store) ports.ClaimRepository {
	return &claimRepo{store: store}
}

func (r *claimRepo) Get(_ context.Context, instance, owner common.Address) (*domain.ClaimRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.lookup(recordKey{instance, owner}), nil
}

func (r *claimRepo) GetForUpdate(_ context.Context, tx pgx.Tx, instance, owner common.Address) (*domain.ClaimRecord, error) {
	if _, err := r.store.tx(tx); err != nil {
		return nil, err
	}
	return r.lookup(recordKey{instance, owner}), nil
}

func (r *claimRepo) Upsert(_ context.Context, tx pgx.Tx, record *domain.ClaimRecord) error {
	mt, err := r.store.tx(tx)
	if err != nil {
		return err
	}

	key := recordKey{record.Instance, record.Owner}
	prev, existed := r.store.claims[key]
	r.store.claims[key] = *record
	mt.onRollback(func() {
		if existed {
			r.store.claims[key] = prev
		} else {
			delete(r.store.claims, key)
		}
	})
	return nil
}

func (r *claimRepo) lookup(key recordKey) *domain.ClaimRecord {
	record, ok := r.store.claims[key]
	if !ok {
		return nil
	}
	return &record
}
