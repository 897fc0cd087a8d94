package postgres

import (
	"context"
	"errors"
	"fmt"

	"insurance-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
)

const walletUserColumns = `instance, owner, package, premium_amount::text, is_active, total_payments::text,
	package_selected_at, last_payment_timestamp`

// WalletUserRepo implements ports.WalletUserRepository.
type WalletUserRepo struct {
	pool Pool
}

// NewWalletUserRepo creates a new WalletUserRepo.
func NewWalletUserRepo(pool Pool) *WalletUserRepo {
	return &WalletUserRepo{pool: pool}
}

// Get fetches a wallet user record (without locking).
func (r *WalletUserRepo) Get(ctx context.Context, instance, owner common.Address) (*domain.WalletUserRecord, error) {
	query := `SELECT ` + walletUserColumns + ` FROM wallet_users WHERE instance = $1 AND owner = $2`

	u, err := scanWalletUser(r.pool.QueryRow(ctx, query, addr(instance), addr(owner)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet user: %w", err)
	}
	return u, nil
}

// GetForUpdate fetches a wallet user record with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletUserRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, instance, owner common.Address) (*domain.WalletUserRecord, error) {
	query := `SELECT ` + walletUserColumns + ` FROM wallet_users WHERE instance = $1 AND owner = $2 FOR UPDATE`

	u, err := scanWalletUser(tx.QueryRow(ctx, query, addr(instance), addr(owner)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet user for update: %w", err)
	}
	return u, nil
}

// Upsert writes the whole record within a transaction.
func (r *WalletUserRepo) Upsert(ctx context.Context, tx pgx.Tx, u *domain.WalletUserRecord) error {
	query := `INSERT INTO wallet_users (instance, owner, package, premium_amount, is_active, total_payments,
			package_selected_at, last_payment_timestamp)
		VALUES ($1, $2, $3, $4::numeric, $5, $6::numeric, $7, $8)
		ON CONFLICT (instance, owner) DO UPDATE SET
			package = EXCLUDED.package,
			premium_amount = EXCLUDED.premium_amount,
			is_active = EXCLUDED.is_active,
			total_payments = EXCLUDED.total_payments,
			package_selected_at = EXCLUDED.package_selected_at,
			last_payment_timestamp = EXCLUDED.last_payment_timestamp`

	_, err := tx.Exec(ctx, query,
		addr(u.Instance), addr(u.Owner), int16(u.Package), amount(&u.PremiumAmount), u.IsActive,
		counter(u.TotalPayments), int64(u.PackageSelectedAt), int64(u.LastPaymentTimestamp),
	)
	if err != nil {
		return fmt.Errorf("upsert wallet user: %w", err)
	}
	return nil
}

func scanWalletUser(row pgx.Row) (*domain.WalletUserRecord, error) {
	var (
		instance, owner, premium, payments string
		pkg                                int16
		selectedAt, lastPayment            int64
		u                                  domain.WalletUserRecord
	)
	err := row.Scan(&instance, &owner, &pkg, &premium, &u.IsActive, &payments, &selectedAt, &lastPayment)
	if err != nil {
		return nil, err
	}
	if u.PremiumAmount, err = parseAmount(premium); err != nil {
		return nil, err
	}
	if u.TotalPayments, err = parseCounter(payments); err != nil {
		return nil, err
	}
	u.Instance = common.HexToAddress(instance)
	u.Owner = common.HexToAddress(owner)
	u.Package = domain.Package(pkg)
	u.PackageSelectedAt = uint64(selectedAt)
	u.LastPaymentTimestamp = uint64(lastPayment)
	return &u, nil
}
