package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// PaymentMethod indicates how a transaction was settled.
type PaymentMethod string

const (
	MethodCash       PaymentMethod = "CASH"
	MethodTransfer   PaymentMethod = "TRANSFER"
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodCrypto     PaymentMethod = "CRYPTO"
)

// Transaction represents a single financial movement, optionally tied to a
// client and/or a project.
type Transaction struct {
	TransactionID string          `json:"transactionID" validate:"required"`
	ClientID      *string         `json:"clientID,omitempty"`
	ProjectID     *string         `json:"projectID,omitempty"`
	Type          TransactionType `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description" validate:"required,max=200"`
	Method        PaymentMethod   `json:"method" validate:"required,oneof=CASH TRANSFER CREDIT_CARD CRYPTO"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category,omitempty" validate:"max=50"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty" validate:"max=20"`
	AuditFields
}

// Balance is the aggregate view over a set of transactions.
type Balance struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}
