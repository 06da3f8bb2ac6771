package mapping

import (
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/models"
)

// ToModelContract converts a domain contract to its persistence row.
func ToModelContract(d domain.Contract) models.Contract {
	return models.Contract{
		ContractID:   d.ContractID,
		ClientID:     d.ClientID,
		ProposalID:   d.ProposalID,
		ProjectID:    d.ProjectID,
		Title:        d.Title,
		Content:      d.Content,
		Terms:        d.Terms,
		Status:       string(d.Status),
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		SignedAt:     d.SignedAt,
		SignedBy:     d.SignedBy,
		DocumentPath: d.DocumentPath,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContract converts a contract row to a domain contract.
func ToDomainContract(m models.Contract) domain.Contract {
	return domain.Contract{
		ContractID:   m.ContractID,
		ClientID:     m.ClientID,
		ProposalID:   m.ProposalID,
		ProjectID:    m.ProjectID,
		Title:        m.Title,
		Content:      m.Content,
		Terms:        m.Terms,
		Status:       domain.ContractStatus(m.Status),
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		SignedAt:     m.SignedAt,
		SignedBy:     m.SignedBy,
		DocumentPath: m.DocumentPath,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainContractSlice converts a slice of contract rows.
func ToDomainContractSlice(ms []models.Contract) []domain.Contract {
	ds := make([]domain.Contract, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContract(m)
	}
	return ds
}
