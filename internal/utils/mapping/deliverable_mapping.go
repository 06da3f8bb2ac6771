package mapping

import (
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/models"
)

// ToModelDeliverable converts a domain deliverable to its persistence row.
func ToModelDeliverable(d domain.Deliverable) models.Deliverable {
	return models.Deliverable{
		DeliverableID: d.DeliverableID,
		ProjectID:     d.ProjectID,
		Name:          d.Name,
		Description:   d.Description,
		Deadline:      d.Deadline,
		Status:        string(d.Status),
		Feedback:      d.Feedback,
		Attachments:   d.Attachments,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeliverable converts a deliverable row to a domain deliverable.
func ToDomainDeliverable(m models.Deliverable) domain.Deliverable {
	return domain.Deliverable{
		DeliverableID: m.DeliverableID,
		ProjectID:     m.ProjectID,
		Name:          m.Name,
		Description:   m.Description,
		Deadline:      m.Deadline,
		Status:        domain.DeliverableStatus(m.Status),
		Feedback:      m.Feedback,
		Attachments:   m.Attachments,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDeliverableSlice converts a slice of deliverable rows.
func ToDomainDeliverableSlice(ms []models.Deliverable) []domain.Deliverable {
	ds := make([]domain.Deliverable, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeliverable(m)
	}
	return ds
}
