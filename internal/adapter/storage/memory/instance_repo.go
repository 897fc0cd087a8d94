package memory

import (
	"context"
	"fmt"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

type instanceRepo struct {
	store *Store
}

// NewInstanceRepository creates a memory-backed InstanceRepository.
func NewInstanceRepository(store *Store) ports.InstanceRepository {
	return &instanceRepo{store: store}
}

func (r *instanceRepo) Create(_ context.Context, tx pgx.Tx, instance *domain.Instance) error {
	mt, err := r.store.tx(tx)
	if err != nil {
		return err
	}
	if _, ok := r.store.instances[instance.Ref]; ok {
		return fmt.Errorf("instance %s already exists", instance.Ref.Hex())
	}
	if r.findByOwner(instance.Kind, instance.Owner) != nil {
		return apperror.ErrDuplicateInstance()
	}

	kind := instance.Kind
	r.store.instances[instance.Ref] = *instance
	r.store.instanceOrder[kind] = append(r.store.instanceOrder[kind], instance.Ref)

	ref := instance.Ref
	mt.onRollback(func() {
		delete(r.store.instances, ref)
		order := r.store.instanceOrder[kind]
		r.store.instanceOrder[kind] = order[:len(order)-1]
	})
	return nil
}

func (r *instanceRepo) GetByRef(_ context.Context, ref common.Address) (*domain.Instance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	instance, ok := r.store.instances[ref]
	if !ok {
		return nil, nil
	}
	return &instance, nil
}

func (r *instanceRepo) GetByOwner(_ context.Context, kind domain.InstanceKind, owner common.Address) (*domain.Instance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.findByOwner(kind, owner), nil
}

func (r *instanceRepo) List(_ context.Context, kind domain.InstanceKind) ([]domain.Instance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	order := r.store.instanceOrder[kind]
	instances := make([]domain.Instance, 0, len(order))
	for _, ref := range order {
		instances = append(instances, r.store.instances[ref])
	}
	return instances, nil
}

func (r *instanceRepo) CountForUpdate(_ context.Context, tx pgx.Tx, kind domain.InstanceKind) (uint64, error) {
	if _, err := r.store.tx(tx); err != nil {
		return 0, err
	}
	return uint64(len(r.store.instanceOrder[kind])), nil
}

// findByOwner expects the caller to hold the store lock.
func (r *instanceRepo) findByOwner(kind domain.InstanceKind, owner common.Address) *domain.Instance {
	for _, ref := range r.store.instanceOrder[kind] {
		if instance := r.store.instances[ref]; instance.Owner == owner {
			return &instance
		}
	}
	return nil
}
