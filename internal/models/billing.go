package models

// SubscriptionInvoice is one line of the plan billing history. Amount is in
// rupees.
type SubscriptionInvoice struct {
	ID     string `json:"id" yaml:"id"`
	Date   string `json:"date" yaml:"date"`
	Amount int    `json:"amount" yaml:"amount"`
	Status string `json:"status" yaml:"status"` // Paid, Unpaid, Overdue
}
