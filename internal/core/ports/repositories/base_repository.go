package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is the unit-of-work contract. All multi-entity
// workflows run under it.
type TransactionManager interface {
	// RunInTx executes fn inside a database transaction. When tx is non-nil
	// the work joins the caller's transaction directly and no nested
	// transaction is started; otherwise a new transaction is begun,
	// committed when fn returns nil and rolled back on any error. The error
	// returned by fn propagates unmodified.
	RunInTx(ctx context.Context, tx pgx.Tx, fn func(tx pgx.Tx) error) error
}
