package ports

import (
	"context"

	"insurance-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// InstanceRepository persists registry entries.
// Lookups return nil, nil when no entry exists.
type InstanceRepository interface {
	Create(ctx context.Context, tx pgx.Tx, instance *domain.Instance) error
	GetByRef(ctx context.Context, ref common.Address) (*domain.Instance, error)
	GetByOwner(ctx context.Context, kind domain.InstanceKind, owner common.Address) (*domain.Instance, error)
	// List returns all entries of a kind ordered by creation sequence.
	List(ctx context.Context, kind domain.InstanceKind) ([]domain.Instance, error)
	// CountForUpdate returns the number of entries of a kind inside a transaction.
	CountForUpdate(ctx context.Context, tx pgx.Tx, kind domain.InstanceKind) (uint64, error)
}

// PolicyRepository persists per-owner policy records of insurance instances.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type PolicyRepository interface {
	Get(ctx context.Context, instance, owner common.Address) (*domain.PolicyRecord, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, instance, owner common.Address) (*domain.PolicyRecord, error)
	Upsert(ctx context.Context, tx pgx.Tx, record *domain.PolicyRecord) error
}

// WalletUserRepository persists per-owner records of wallet instances.
type WalletUserRepository interface {
	Get(ctx context.Context, instance, owner common.Address) (*domain.WalletUserRecord, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, instance, owner common.Address) (*domain.WalletUserRecord, error)
	Upsert(ctx context.Context, tx pgx.Tx, record *domain.WalletUserRecord) error
}

// ClaimRepository persists claim records of wallet instances.
type ClaimRepository interface {
	Get(ctx context.Context, instance, owner common.Address) (*domain.ClaimRecord, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, instance, owner common.Address) (*domain.ClaimRecord, error)
	Upsert(ctx context.Context, tx pgx.Tx, record *domain.ClaimRecord) error
}

// LedgerRepository persists credited balances and the transfer log.
type LedgerRepository interface {
	Balance(ctx context.Context, account common.Address) (*uint256.Int, error)
	// BalanceForUpdate locks the account row, returning 0 for unknown accounts.
	BalanceForUpdate(ctx context.Context, tx pgx.Tx, account common.Address) (*uint256.Int, error)
	SetBalance(ctx context.Context, tx pgx.Tx, account common.Address, balance *uint256.Int) error
	RecordTransfer(ctx context.Context, tx pgx.Tx, transfer *domain.Transfer) error
	ListTransfers(ctx context.Context, params TransferListParams) ([]domain.Transfer, int64, error)
}

// TransferListParams holds filter + pagination for listing transfers.
type TransferListParams struct {
	Instance *common.Address
	To       *common.Address
	Page     int
	PageSize int
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
