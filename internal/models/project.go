package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is the persistence row for a project.
type Project struct {
	ProjectID   string
	Name        string
	Description string
	ClientID    string
	ProposalID  string
	Budget      decimal.Decimal
	Status      string
	StartDate   time.Time
	Deadline    time.Time
	Progress    int
	AuditFields
}

// Payment is the persistence row for a project payment.
type Payment struct {
	PaymentID string
	ProjectID string
	Amount    decimal.Decimal
	Date      time.Time
	Method    string
	Reference string
	CreatedAt time.Time
}
