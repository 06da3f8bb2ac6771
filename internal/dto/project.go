package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddDeliverableRequest defines the data needed to add a deliverable to a project.
type AddDeliverableRequest struct {
	Name        string    `json:"name" validate:"required,min=5,max=100"`
	Description string    `json:"description,omitempty" validate:"max=500"`
	Deadline    time.Time `json:"deadline"`
	Attachments []string  `json:"attachments,omitempty"`
}

// RecordPaymentRequest defines the data needed to record a project payment.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Method    string          `json:"method" validate:"required,oneof=CASH TRANSFER CREDIT_CARD CRYPTO"`
	Reference string          `json:"reference,omitempty" validate:"max=100"`
}
