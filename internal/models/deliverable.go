package models

import "time"

// Deliverable is the persistence row for a deliverable.
type Deliverable struct {
	DeliverableID string
	ProjectID     string
	Name          string
	Description   string
	Deadline      time.Time
	Status        string
	Feedback      string
	Attachments   []string
	AuditFields
}
