package mapping

import (
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/models"
)

// ToModelProposal converts a domain proposal to its persistence row.
func ToModelProposal(d domain.Proposal) models.Proposal {
	return models.Proposal{
		ProposalID:   d.ProposalID,
		ClientID:     d.ClientID,
		Title:        d.Title,
		Description:  d.Description,
		Value:        d.Value,
		DeliveryDate: d.DeliveryDate,
		Status:       string(d.Status),
		ProjectID:    d.ProjectID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProposal converts a proposal row to a domain proposal.
func ToDomainProposal(m models.Proposal) domain.Proposal {
	return domain.Proposal{
		ProposalID:   m.ProposalID,
		ClientID:     m.ClientID,
		Title:        m.Title,
		Description:  m.Description,
		Value:        m.Value,
		DeliveryDate: m.DeliveryDate,
		Status:       domain.ProposalStatus(m.Status),
		ProjectID:    m.ProjectID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProposalSlice converts a slice of proposal rows.
func ToDomainProposalSlice(ms []models.Proposal) []domain.Proposal {
	ds := make([]domain.Proposal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProposal(m)
	}
	return ds
}
