package services

import (
	"context"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/dto"
	"github.com/shopspring/decimal"
)

// FinancialSvcFacade defines transaction registration and the aggregate
// reads. Aggregates are point-in-time folds over stored transactions.
type FinancialSvcFacade interface {
	// RegisterTransaction validates referenced entities exist and records
	// the transaction.
	RegisterTransaction(ctx context.Context, req dto.RegisterTransactionRequest) (*domain.Transaction, error)

	// GetBalance folds all transactions into income, expenses and net.
	GetBalance(ctx context.Context) (*domain.Balance, error)

	// GetClientIncome sums INCOME transactions tied to the client.
	GetClientIncome(ctx context.Context, clientID string) (decimal.Decimal, error)

	// GetExpensesByCategory breaks EXPENSE transactions down per category.
	GetExpensesByCategory(ctx context.Context) ([]dto.CategoryExpense, error)
}
