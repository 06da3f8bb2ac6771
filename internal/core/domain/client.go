package domain

// Client represents a customer the freelancer works with.
// Clients are never physically deleted; deactivation preserves history.
type Client struct {
	ClientID   string   `json:"clientID" validate:"required"`
	Name       string   `json:"name" validate:"required,min=3,max=50"`
	Email      string   `json:"email" validate:"required,email"` // stored lowercased, unique
	Phone      string   `json:"phone" validate:"required,numeric,min=10,max=15"`
	Company    string   `json:"company,omitempty" validate:"max=50"`
	ProjectIDs []string `json:"projectIDs"`
	IsActive   bool     `json:"isActive"`
	AuditFields
}
