package models

import "time"

// AuditFields holds standard audit columns shared by all rows.
type AuditFields struct {
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}
