package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProposalRequest defines the data needed to pitch a proposal.
type CreateProposalRequest struct {
	ClientID     string          `json:"clientID" validate:"required"`
	Title        string          `json:"title" validate:"required,min=10,max=100"`
	Description  string          `json:"description" validate:"required,min=50"`
	Value        decimal.Decimal `json:"value"`
	DeliveryDate time.Time       `json:"deliveryDate"`
}
