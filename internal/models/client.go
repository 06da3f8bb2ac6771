package models

// Client is the persistence row for a client.
type Client struct {
	ClientID string
	Name     string
	Email    string
	Phone    string
	Company  string
	IsActive bool
	AuditFields
}
