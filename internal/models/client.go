package models

type ClientStatus string

const (
	ClientActive   ClientStatus = "Active"
	ClientInactive ClientStatus = "Inactive"
)

// Client is a person or company the firm represents. PendingAmount is in
// rupees.
type Client struct {
	ID            string       `json:"id" yaml:"id"`
	Name          string       `json:"name" yaml:"name"`
	Phone         string       `json:"phone" yaml:"phone"`
	Email         string       `json:"email" yaml:"email"`
	Address       string       `json:"address" yaml:"address"`
	Status        ClientStatus `json:"status" yaml:"status"`
	TotalCases    int          `json:"totalCases" yaml:"total_cases"`
	PendingAmount int          `json:"pendingAmount" yaml:"pending_amount"`
	LastContact   string       `json:"lastContact" yaml:"last_contact"`
}
