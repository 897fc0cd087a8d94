package service

import (
	"context"
	"errors"
	"fmt"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/pkg/apperror"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

var errBalanceOverflow = errors.New("recipient balance overflow")

// ledger credits transferred value to its recipient inside an open transaction.
// Every failure surfaces as a transfer failure so the caller's transaction is rolled back.
type ledger struct {
	repo ports.LedgerRepository
}

func (l ledger) credit(ctx context.Context, dbTx pgx.Tx, transfer *domain.Transfer) error {
	balance, err := l.repo.BalanceForUpdate(ctx, dbTx, transfer.To)
	if err != nil {
		return apperror.ErrTransferFailed(fmt.Errorf("lock balance: %w", err))
	}
	next, overflow := new(uint256.Int).AddOverflow(balance, &transfer.Amount)
	if overflow {
		return apperror.ErrTransferFailed(errBalanceOverflow)
	}

	if err := l.repo.SetBalance(ctx, dbTx, transfer.To, next); err != nil {
		return apperror.ErrTransferFailed(fmt.Errorf("update balance: %w", err))
	}
	if err := l.repo.RecordTransfer(ctx, dbTx, transfer); err != nil {
		return apperror.ErrTransferFailed(fmt.Errorf("record transfer: %w", err))
	}
	return nil
}
