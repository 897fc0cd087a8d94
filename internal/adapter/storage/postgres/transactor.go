package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Transactor opens the transaction each engine operation runs in. Row locks
// taken with FOR UPDATE inside it serialize operations on the same instance
// across gateway processes until Commit or Rollback.
type Transactor struct {
	pool Pool
}

func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// Begin starts an operation transaction.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin operation tx: %w", err)
	}
	return tx, nil
}
