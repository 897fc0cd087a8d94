package memory

import (
	"context"
	"errors"
	"sync"

	"insurance-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errForeignTx = errors.New("memory: transaction does not belong to this store")

type recordKey struct {
	instance common.Address
	owner    common.Address
}

// Store is an in-process storage backend for development and tests.
// A transaction holds the store-wide write lock from Begin until Commit or Rollback,
// and Rollback replays an undo log so that aborted writes leave no trace.
type Store struct {
	mu sync.RWMutex

	instances     map[common.Address]domain.Instance
	instanceOrder map[domain.InstanceKind][]common.Address
	policies      map[recordKey]domain.PolicyRecord
	users         map[recordKey]domain.WalletUserRecord
	claims        map[recordKey]domain.ClaimRecord
	balances      map[common.Address]uint256.Int
	transfers     []domain.Transfer
	auditLogs     []domain.AuditLog
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		instances:     make(map[common.Address]domain.Instance),
		instanceOrder: make(map[domain.InstanceKind][]common.Address),
		policies:      make(map[recordKey]domain.PolicyRecord),
		users:         make(map[recordKey]domain.WalletUserRecord),
		claims:        make(map[recordKey]domain.ClaimRecord),
		balances:      make(map[common.Address]uint256.Int),
	}
}

// Begin implements ports.DBTransactor.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &memTx{store: s}, nil
}

// Ping implements ports.HealthChecker.
func (s *Store) Ping(_ context.Context) error { return nil }

// Name returns the dependency name.
func (s *Store) Name() string { return "memory" }

// tx returns the open transaction of this store, or an error for anything else.
func (s *Store) tx(tx pgx.Tx) (*memTx, error) {
	mt, ok := tx.(*memTx)
	if !ok || mt.store != s {
		return nil, errForeignTx
	}
	if mt.done {
		return nil, pgx.ErrTxClosed
	}
	return mt, nil
}

// memTx is a pgx.Tx over the in-memory store. Only Commit and Rollback carry meaning.
type memTx struct {
	store *Store
	undo  []func()
	done  bool
}

func (t *memTx) onRollback(fn func()) {
	t.undo = append(t.undo, fn)
}

func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.undo = nil
	t.store.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	t.store.mu.Unlock()
	return nil
}

func (t *memTx) Begin(_ context.Context) (pgx.Tx, error) {
	return nil, errors.New("memory: nested transactions are not supported")
}

func (t *memTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                           { return pgx.LargeObjects{} }
func (t *memTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return nil, nil }
func (t *memTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row      { return nil }
func (t *memTx) Conn() *pgx.Conn                                             { return nil }
