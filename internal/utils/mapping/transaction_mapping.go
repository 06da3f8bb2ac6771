package mapping

import (
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/models"
)

// ToModelTransaction converts a domain transaction to its persistence row.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		ClientID:      d.ClientID,
		ProjectID:     d.ProjectID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Description:   d.Description,
		Method:        string(d.Method),
		Date:          d.Date,
		Category:      d.Category,
		InvoiceNumber: d.InvoiceNumber,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a transaction row to a domain transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ClientID:      m.ClientID,
		ProjectID:     m.ProjectID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		Method:        domain.PaymentMethod(m.Method),
		Date:          m.Date,
		Category:      m.Category,
		InvoiceNumber: m.InvoiceNumber,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of transaction rows.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
