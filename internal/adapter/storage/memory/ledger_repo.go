package memory

import (
	"context"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

type ledgerRepo struct {
	store *Store
}

// NewLedgerRepository creates a memory-backed LedgerRepository.
func NewLedgerRepository(store *Store) ports.LedgerRepository {
	return &ledgerRepo{store: store}
}

func (r *ledgerRepo) Balance(_ context.Context, account common.Address) (*uint256.Int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	balance := r.store.balances[account]
	return &balance, nil
}

func (r *ledgerRepo) BalanceForUpdate(_ context.Context, tx pgx.Tx, account common.Address) (*uint256.Int, error) {
	if _, err := r.store.tx(tx); err != nil {
		return nil, err
	}
	balance := r.store.balances[account]
	return &balance, nil
}

func (r *ledgerRepo) SetBalance(_ context.Context, tx pgx.Tx, account common.Address, balance *uint256.Int) error {
	mt, err := r.store.tx(tx)
	if err != nil {
		return err
	}

	prev, existed := r.store.balances[account]
	r.store.balances[account] = *balance
	mt.onRollback(func() {
		if existed {
			r.store.balances[account] = prev
		} else {
			delete(r.store.balances, account)
		}
	})
	return nil
}

func (r *ledgerRepo) RecordTransfer(_ context.Context, tx pgx.Tx, transfer *domain.Transfer) error {
	mt, err := r.store.tx(tx)
	if err != nil {
		return err
	}

	r.store.transfers = append(r.store.transfers, *transfer)
	mt.onRollback(func() {
		r.store.transfers = r.store.transfers[:len(r.store.transfers)-1]
	})
	return nil
}

func (r *ledgerRepo) ListTransfers(_ context.Context, params ports.TransferListParams) ([]domain.Transfer, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// Newest first, matching the SQL ordering.
	var matched []domain.Transfer
	for i := len(r.store.transfers) - 1; i >= 0; i-- {
		t := r.store.transfers[i]
		if params.Instance != nil && t.Instance != *params.Instance {
			continue
		}
		if params.To != nil && t.To != *params.To {
			continue
		}
		matched = append(matched, t)
	}

	total := int64(len(matched))
	offset := (params.Page - 1) * params.PageSize
	if offset < 0 || offset >= len(matched) {
		return []domain.Transfer{}, total, nil
	}
	end := offset + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}
