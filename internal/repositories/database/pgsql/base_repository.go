package pgsql

import (
	"context"
	"errors"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/apperrors"
	portsrepo "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx operations shared by the pool and a
// transaction. Repositories route every statement through it so a single
// method body serves both autonomous and transactional calls.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// conn selects the caller's transaction when given, the pool otherwise.
func (r *BaseRepository) conn(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.Pool
}

// TxManager implements the unit-of-work contract on a pgx pool.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a transaction manager bound to the pool.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// Ensure TxManager implements portsrepo.TransactionManager
var _ portsrepo.TransactionManager = (*TxManager)(nil)

// RunInTx executes fn inside a transaction. A non-nil tx means the work
// joins the caller's transaction: fn runs directly and commit/rollback
// stay with the outer caller. Otherwise a new transaction is begun,
// committed when fn succeeds and rolled back when it fails. fn's error is
// returned unmodified; only begin/commit infrastructure failures are
// reported as connection errors.
func (m *TxManager) RunInTx(ctx context.Context, tx pgx.Tx, fn func(tx pgx.Tx) error) error {
	if tx != nil {
		return fn(tx)
	}

	newTx, err := m.pool.Begin(ctx)
	if err != nil {
		return apperrors.NewConnectionError("failed to begin transaction", err)
	}
	defer func() {
		// No-op once the transaction is committed.
		_ = newTx.Rollback(ctx)
	}()

	if err := fn(newTx); err != nil {
		return err
	}

	if err := newTx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return apperrors.NewConnectionError("transaction already closed", err)
		}
		return apperrors.NewConnectionError("failed to commit transaction", err)
	}
	return nil
}
