package models

// Notification is an in-app alert shown in the notification center.
type Notification struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
	Type    string `json:"type" yaml:"type"` // hearing, billing, system
	Date    string `json:"date" yaml:"date"`
	Read    bool   `json:"read" yaml:"read"`
}
