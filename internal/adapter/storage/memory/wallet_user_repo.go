package memory

import (
	"context"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

type walletUserRepo struct {
	store *Store
}

// NewWalletUserRepository creates a memory-backed WalletUserRepository.
func NewWalletUserRepository(store *Store) ports.WalletUserRepository {
	return &walletUserRepo{store: store}
}

func (r *walletUserRepo) Get(_ context.Context, instance, owner common.Address) (*domain.WalletUserRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.lookup(recordKey{instance, owner}), nil
}

func (r *walletUserRepo) GetForUpdate(_ context.Context, tx pgx.Tx, instance, owner common.Address) (*domain.WalletUserRecord, error) {
	if _, err := r.store.tx(tx); err != nil {
		return nil, err
	}
	return r.lookup(recordKey{instance, owner}), nil
}

func (r *walletUserRepo) Upsert(_ context.Context, tx pgx.Tx, record *domain.WalletUserRecord) error {
	mt, err := r.store.tx(tx)
	if err != nil {
		return err
	}

	key := recordKey{record.Instance, record.Owner}
	prev, existed := r.store.users[key]
	r.store.users[key] = *record
	mt.onRollback(func() {
		if existed {
			r.store.users[key] = prev
		} else {
			delete(r.store.users, key)
		}
	})
	return nil
}

func (r *walletUserRepo) lookup(key recordKey) *domain.WalletUserRecord {
	record, ok := r.store.users[key]
	if !ok {
		return nil
	}
	return &record
}
