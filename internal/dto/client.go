package dto

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required,min=3,max=50"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,numeric,min=10,max=15"`
	Company string `json:"company,omitempty" validate:"max=50"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
}
