package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"insurance-gateway/internal/core/domain"
	"insurance-gateway/internal/core/ports"
	"insurance-gateway/internal/metrics"
	"insurance-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// EngineDeps holds the collaborators shared by every engine instance.
type EngineDeps struct {
	Transactor ports.DBTransactor
	LedgerRepo ports.LedgerRepository
	Clock      ports.Clock
	Metrics    *metrics.Metrics // optional
	Log        zerolog.Logger
}

// engine carries the instance binding and the serialized transaction runner.
type engine struct {
	instance   domain.Instance
	transactor ports.DBTransactor
	ledger     ledger
	clock      ports.Clock
	metrics    *metrics.Metrics
	log        zerolog.Logger

	// mu serializes all mutating operations on the instance.
	mu sync.Mutex
}

func newEngine(instance domain.Instance, deps EngineDeps) engine {
	return engine{
		instance:   instance,
		transactor: deps.Transactor,
		ledger:     ledger{repo: deps.LedgerRepo},
		clock:      deps.Clock,
		metrics:    deps.Metrics,
		log: deps.Log.With().
			Str("instance", instance.Ref.Hex()).
			Str("kind", string(instance.Kind)).
			Logger(),
	}
}

// Ref returns the instance reference.
func (e *engine) Ref() common.Address {
	return e.instance.Ref
}

// VerifierCompany returns the verifier bound at construction.
func (e *engine) VerifierCompany() common.Address {
	return e.instance.Verifier
}

func (e *engine) isVerifier(caller common.Address) bool {
	return caller == e.instance.Verifier
}

// run executes fn inside one database transaction while holding the instance lock.
// now is read under the lock, in unix seconds. Nothing fn writes survives unless it returns nil.
func (e *engine) run(ctx context.Context, op string, caller common.Address, fn func(dbTx pgx.Tx, now uint64) error) error {
	start := time.Now()
	err := e.runLocked(ctx, caller, fn)
	if e.metrics != nil {
		e.metrics.ObserveOperation(op, start)
		if err != nil {
			e.metrics.IncrementFailure(op, errorCode(err))
		}
	}
	if err != nil {
		event := e.log.Debug()
		if apperror.Category(errorCode(err)) == apperror.CategorySystem {
			event = e.log.Error()
		}
		event.Err(err).Str("op", op).Str("caller", caller.Hex()).Msg("operation rejected")
	}
	return err
}

func (e *engine) runLocked(ctx context.Context, caller common.Address, fn func(dbTx pgx.Tx, now uint64) error) error {
	if domain.IsZeroAddress(caller) {
		return apperror.ErrInvalidAddress("caller")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	dbTx, err := e.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := fn(dbTx, uint64(e.clock.Now().Unix())); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// transferToVerifier credits value from caller to the bound verifier. now is the
// operation timestamp taken under the instance lock.
func (e *engine) transferToVerifier(
	ctx context.Context,
	dbTx pgx.Tx,
	caller common.Address,
	value *uint256.Int,
	reason domain.TransferReason,
	now uint64,
) error {
	return e.ledger.credit(ctx, dbTx, &domain.Transfer{
		ID:        uuid.New(),
		Instance:  e.instance.Ref,
		From:      caller,
		To:        e.instance.Verifier,
		Amount:    *value,
		Reason:    reason,
		CreatedAt: time.Unix(int64(now), 0).UTC(),
	})
}

// orZero treats a missing amount as zero.
func orZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return v
}

func (e *engine) recordPremium(reason domain.TransferReason, value *uint256.Int) {
	if e.metrics != nil {
		e.metrics.AddPremium(string(reason), value)
	}
}

// errorCode extracts the stable code of err, defaulting to SYS_001.
func errorCode(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return apperror.CodeInternal
}
