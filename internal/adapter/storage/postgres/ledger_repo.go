package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Balance returns the credited balance of account (without locking). Unknown accounts hold 0.
func (r *LedgerRepo) Balance(ctx context.Context, account common.Address) (*uint256.Int, error) {
	var balance string
	err := r.pool.QueryRow(ctx, `SELECT balance::text FROM balances WHERE account = $1`, addr(account)).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return new(uint256.Int), nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return scanBalance(balance)
}

// BalanceForUpdate ensures the account row exists and locks it.
// This MUST be called within a transaction.
func (r *LedgerRepo) BalanceForUpdate(ctx context.Context, tx pgx.Tx, account common.Address) (*uint256.Int, error) {
	_, err := tx.Exec(ctx,
		`INSERT INTO balances (account, balance) VALUES ($1, 0) ON CONFLICT (account) DO NOTHING`, addr(account))
	if err != nil {
		return nil, fmt.Errorf("ensure balance row: %w", err)
	}

	var balance string
	err = tx.QueryRow(ctx, `SELECT balance::text FROM balances WHERE account = $1 FOR UPDATE`, addr(account)).Scan(&balance)
	if err != nil {
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return scanBalance(balance)
}

func scanBalance(s string) (*uint256.Int, error) {
	v, err := parseAmount(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SetBalance overwrites the balance of a locked account row.
func (r *LedgerRepo) SetBalance(ctx context.Context, tx pgx.Tx, account common.Address, balance *uint256.Int) error {
	tag, err := tx.Exec(ctx, `UPDATE balances SET balance = $1::numeric WHERE account = $2`, amount(balance), addr(account))
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("balance not found: %s", account.Hex())
	}
	return nil
}

// RecordTransfer appends a transfer to the log within a transaction.
func (r *LedgerRepo) RecordTransfer(ctx context.Context, tx pgx.Tx, t *domain.Transfer) error {
	query := `INSERT INTO transfers (id, instance, from_account, to_account, amount, reason, created_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7)`

	_, err := tx.Exec(ctx, query,
		t.ID, addr(t.Instance), addr(t.From), addr(t.To), amount(&t.Amount), string(t.Reason), t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// ListTransfers fetches transfers with filtering and pagination, newest first.
func (r *LedgerRepo) ListTransfers(ctx context.Context, params ports.TransferListParams) ([]domain.Transfer, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Instance != nil {
		conditions = append(conditions, fmt.Sprintf("instance = $%d", argIdx))
		args = append(args, addr(*params.Instance))
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("to_account = $%d", argIdx))
		args = append(args, addr(*params.To))
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transfers %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transfers: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT id, instance, from_account, to_account, amount::text, reason, created_at
		FROM transfers %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		var (
			t                                 domain.Transfer
			instance, from, to, value, reason string
		)
		if err := rows.Scan(&t.ID, &instance, &from, &to, &value, &reason, &t.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan transfer row: %w", err)
		}
		if t.Amount, err = parseAmount(value); err != nil {
			return nil, 0, err
		}
		t.Instance = common.HexToAddress(instance)
		t.From = common.HexToAddress(from)
		t.To = common.HexToAddress(to)
		t.Reason = domain.TransferReason(reason)
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transfer rows: %w", err)
	}

	return transfers, total, nil
}
