package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence row for a financial transaction.
type Transaction struct {
	TransactionID string
	ClientID      *string
	ProjectID     *string
	Type          string
	Amount        decimal.Decimal
	Description   string
	Method        string
	Date          time.Time
	Category      string
	InvoiceNumber string
	AuditFields
}
