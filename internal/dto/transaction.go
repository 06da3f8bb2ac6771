package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterTransactionRequest defines the data needed to register a
// financial transaction. ClientID and ProjectID, when present, must
// reference existing entities.
type RegisterTransactionRequest struct {
	ClientID      *string         `json:"clientID,omitempty"`
	ProjectID     *string         `json:"projectID,omitempty"`
	Type          string          `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description" validate:"required,max=200"`
	Method        string          `json:"method" validate:"required,oneof=CASH TRANSFER CREDIT_CARD CRYPTO"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category,omitempty" validate:"max=50"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty" validate:"max=20"`
}

// CategoryExpense is one row of the expense-by-category breakdown.
type CategoryExpense struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
