package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/apperrors"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	portsrepo "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/repositories"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/models"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/utils/mapping"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/utils/validation"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for financial transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, client_id, project_id, type, amount, description, method, date, category, invoice_number, created_at, last_updated_at`

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	if err := validation.Struct(txn); err != nil {
		return err
	}
	if !txn.Amount.IsPositive() {
		return apperrors.NewValidationError("transaction amount must be positive")
	}
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.conn(tx).Exec(ctx, query,
		m.TransactionID,
		m.ClientID,
		m.ProjectID,
		m.Type,
		m.Amount,
		m.Description,
		m.Method,
		m.Date,
		m.Category,
		m.InvoiceNumber,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewNotFoundError("referenced client or project missing for transaction " + m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	var m models.Transaction
	err := r.conn(tx).QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.ClientID,
		&m.ProjectID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.Method,
		&m.Date,
		&m.Category,
		&m.InvoiceNumber,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, tx pgx.Tx) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date;`
	return r.queryTransactions(ctx, tx, query)
}

func (r *PgxTransactionRepository) ListTransactionsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE client_id = $1 ORDER BY date;`
	return r.queryTransactions(ctx, tx, query, clientID)
}

func (r *PgxTransactionRepository) ListTransactionsByProject(ctx context.Context, tx pgx.Tx, projectID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE project_id = $1 ORDER BY date;`
	return r.queryTransactions(ctx, tx, query, projectID)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, tx pgx.Tx, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.conn(tx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.ClientID,
			&m.ProjectID,
			&m.Type,
			&m.Amount,
			&m.Description,
			&m.Method,
			&m.Date,
			&m.Category,
			&m.InvoiceNumber,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}
