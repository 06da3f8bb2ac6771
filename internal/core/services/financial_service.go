package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/apperrors"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	portsrepo "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/repositories"
	portssvc "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/services"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/dto"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/utils/validation"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// financialService implements the FinancialSvcFacade interface
type financialService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	transactionRepo portsrepo.TransactionRepositoryFacade
	projectRepo     portsrepo.ProjectReader
	clientRepo      portsrepo.ClientReader
}

// NewFinancialService creates a new financial service with the provided dependencies
func NewFinancialService(
	txManager portsrepo.TransactionManager,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	projectRepo portsrepo.ProjectReader,
	clientRepo portsrepo.ClientReader,
) portssvc.FinancialSvcFacade {
	return &financialService{
		txManager:       txManager,
		transactionRepo: transactionRepo,
		projectRepo:     projectRepo,
		clientRepo:      clientRepo,
	}
}

// Ensure financialService implements the FinancialSvcFacade interface
var _ portssvc.FinancialSvcFacade = (*financialService)(nil)

// RegisterTransaction records a financial transaction after validating that
// any referenced project or client actually exists.
func (s *financialService) RegisterTransaction(ctx context.Context, req dto.RegisterTransactionRequest) (*domain.Transaction, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("transaction amount must be positive")
	}

	now := time.Now()
	date := req.Date
	if date.IsZero() {
		date = now
	}
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ClientID:      req.ClientID,
		ProjectID:     req.ProjectID,
		Type:          domain.TransactionType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		Method:        domain.PaymentMethod(req.Method),
		Date:          date,
		Category:      req.Category,
		InvoiceNumber: req.InvoiceNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		if req.ProjectID != nil {
			if _, err := s.projectRepo.FindProjectByID(ctx, tx, *req.ProjectID); err != nil {
				return err
			}
		}
		if req.ClientID != nil {
			if _, err := s.clientRepo.FindClientByID(ctx, tx, *req.ClientID); err != nil {
				return err
			}
		}
		return s.transactionRepo.SaveTransaction(ctx, tx, txn)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to register transaction",
				slog.String("type", req.Type))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction registered",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// GetBalance folds all stored transactions into income, expenses and net.
// This is a point-in-time read; no snapshot isolation is implied.
func (s *financialService) GetBalance(ctx context.Context) (*domain.Balance, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for balance")
		return nil, err
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case domain.Income:
			income = income.Add(txn.Amount)
		case domain.Expense:
			expenses = expenses.Add(txn.Amount)
		}
	}

	return &domain.Balance{
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}, nil
}

// GetClientIncome sums INCOME transactions tied to the client.
func (s *financialService) GetClientIncome(ctx context.Context, clientID string) (decimal.Decimal, error) {
	txns, err := s.transactionRepo.ListTransactionsByClient(ctx, nil, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for client income",
			slog.String("client_id", clientID))
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, txn := range txns {
		if txn.Type == domain.Income {
			total = total.Add(txn.Amount)
		}
	}
	return total, nil
}

// GetExpensesByCategory breaks EXPENSE transactions down per category.
// Uncategorized expenses fold into an empty-string bucket.
func (s *financialService) GetExpensesByCategory(ctx context.Context) ([]dto.CategoryExpense, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for category breakdown")
		return nil, err
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if txn.Type != domain.Expense {
			continue
		}
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Amount)
	}

	breakdown := make([]dto.CategoryExpense, 0, len(byCategory))
	for category, amount := range byCategory {
		breakdown = append(breakdown, dto.CategoryExpense{Category: category, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown, nil
}
