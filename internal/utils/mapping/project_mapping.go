package mapping

import (
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/models"
)

// ToModelProject converts a domain project to its persistence row.
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:   d.ProjectID,
		Name:        d.Name,
		Description: d.Description,
		ClientID:    d.ClientID,
		ProposalID:  d.ProposalID,
		Budget:      d.Budget,
		Status:      string(d.Status),
		StartDate:   d.StartDate,
		Deadline:    d.Deadline,
		Progress:    d.Progress,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a project row to a domain project.
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Description: m.Description,
		ClientID:    m.ClientID,
		ProposalID:  m.ProposalID,
		Budget:      m.Budget,
		Status:      domain.ProjectStatus(m.Status),
		StartDate:   m.StartDate,
		Deadline:    m.Deadline,
		Progress:    m.Progress,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProjectSlice converts a slice of project rows.
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}

// ToModelPayment converts a domain payment to its persistence row.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID: d.PaymentID,
		ProjectID: d.ProjectID,
		Amount:    d.Amount,
		Date:      d.Date,
		Method:    string(d.Method),
		Reference: d.Reference,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainPayment converts a payment row to a domain payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID: m.PaymentID,
		ProjectID: m.ProjectID,
		Amount:    m.Amount,
		Date:      m.Date,
		Method:    domain.PaymentMethod(m.Method),
		Reference: m.Reference,
		CreatedAt: m.CreatedAt,
	}
}
