package memory

import (
	"context"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

type policyRepo struct {
	store *Store
}

// NewPolicyRepository creates a memory-backed PolicyRepository.
func NewPolicyRepository(store *Store) ports.PolicyRepository {
	return &policyRepo{store: store}
}

func (r *policyRepo) Get(_ context.Context, instance, owner common.Address) (*domain.PolicyRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.lookup(recordKey{instance, owner}), nil
}

func (r *policyRepo) GetForUpdate(_ context.Context, tx pgx.Tx, instance, owner common.Address) (*domain.PolicyRecord, error) {
	if _, err := r.store.tx(tx); err != nil {
		return nil, err
	}
	return r.lookup(recordKey{instance, owner}), nil
}

func (r *policyRepo) Upsert(_ context.Context, tx pgx.Tx, record *domain.PolicyRecord) error {
	mt, err := r.store.tx(tx)
	if err != nil {
		return err
	}

	key := recordKey{record.Instance, record.Owner}
	prev, existed := r.store.policies[key]
	r.store.policies[key] = *record
	mt.onRollback(func() {
		if existed {
			r.store.policies[key] = prev
		} else {
			delete(r.store.policies, key)
		}
	})
	return nil
}

func (r *policyRepo) lookup(key recordKey) *domain.PolicyRecord {
	record, ok := r.store.policies[key]
	if !ok {
		return nil
	}
	return &record
}
