package storage

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"vakildesk/internal/calendar"
	"vakildesk/internal/models"
)

// Seed is the full mock dataset the stores boot from. Collections reset to
// these values on every restart; there is no persistence layer. A YAML seed
// file can replace any section, and sections it leaves empty fall back to
// the built-in defaults.
type Seed struct {
	ProPlan       bool                         `yaml:"pro_plan"`
	Cases         []models.Case                `yaml:"cases"`
	Clients       []models.Client              `yaml:"clients"`
	Events        []models.CalendarEvent       `yaml:"events"`
	Evidence      []models.Evidence            `yaml:"evidence"`
	Team          []models.TeamMember          `yaml:"team"`
	Notifications []models.Notification        `yaml:"notifications"`
	Invoices      []models.SubscriptionInvoice `yaml:"invoices"`
}

// Load reads a YAML seed file and normalizes it against the defaults.
func Load(path string) (*Seed, error) {
	op := "internal/storage/seed.go Load"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: read seed file: %w", op, err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%s: parse seed file: %w", op, err)
	}

	seed.Normalize()
	return &seed, nil
}

// Normalize fills empty sections with the built-in defaults so a partial
// seed file still boots a complete workspace.
func (s *Seed) Normalize() {
	def := Default()
	if len(s.Cases) == 0 {
		s.Cases = def.Cases
	}
	if len(s.Clients) == 0 {
		s.Clients = def.Clients
	}
	if len(s.Events) == 0 {
		s.Events = def.Events
	}
	if len(s.Evidence) == 0 {
		s.Evidence = def.Evidence
	}
	if len(s.Team) == 0 {
		s.Team = def.Team
	}
	if len(s.Notifications) == 0 {
		s.Notifications = def.Notifications
	}
	if len(s.Invoices) == 0 {
		s.Invoices = def.Invoices
	}
}

// Default returns the compiled-in mock dataset. Event dates are relative to
// today so the calendar always opens with something visible.
func Default() *Seed {
	today := time.Now().Format(calendar.DateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(calendar.DateLayout)

	return &Seed{
		Cases: []models.Case{
			{ID: "1", Title: "Sharma vs State of Maharashtra", CNRNumber: "MHB001-2023-1029", ClientName: "Rajesh Sharma", Court: models.HighCourt, Judge: "Hon. Justice Patel", NextHearing: today + "T10:00:00", Status: models.CaseOpen, Notes: "Bail hearing scheduled."},
			{ID: "2", Title: "Land Dispute: Plot 44A", CNRNumber: "DL0405-2022-8892", ClientName: "Amit Verma", Court: models.DistrictCourt, Judge: "Judge Singh", NextHearing: tomorrow + "T14:00:00", Status: models.CasePending, Notes: "Documents submission."},
			{ID: "3", Title: "TechCorp Breach of Contract", CNRNumber: "KA0203-2023-1111", ClientName: "Innovate Systems Ltd", Court: models.Tribunal, Judge: "Member Rao", NextHearing: tomorrow + "T11:30:00", Status: models.CaseStayed, Notes: "Arbitration pending."},
		},
		Clients: []models.Client{
			{ID: "c1", Name: "Rajesh Sharma", Phone: "+91 98765 43210", Email: "rajesh@example.com", Address: "Mumbai, MH", Status: models.ClientActive, TotalCases: 2, PendingAmount: 5000, LastContact: "2023-10-15"},
			{ID: "c2", Name: "Amit Verma", Phone: "+91 91234 56789", Email: "amit@example.com", Address: "Delhi, DL", Status: models.ClientActive, TotalCases: 1, PendingAmount: 0, LastContact: "2023-10-10"},
			{ID: "c3", Name: "Innovate Systems Ltd", Phone: "+91 99887 76655", Email: "legal@innovate.com", Address: "Bangalore, KA", Status: models.ClientActive, TotalCases: 3, PendingAmount: 45000, LastContact: "2023-10-05"},
			{ID: "c4", Name: "Suresh Raina", Phone: "+91 88776 65544", Email: "suresh@example.com", Address: "Chennai, TN", Status: models.ClientInactive, TotalCases: 0, PendingAmount: 0, LastContact: "2023-08-20"},
			{ID: "c5", Name: "Priya Patel", Phone: "+91 77665 54433", Email: "priya@example.com", Address: "Ahmedabad, GJ", Status: models.ClientActive, TotalCases: 1, PendingAmount: 12000, LastContact: "2023-10-12"},
		},
		Events: []models.CalendarEvent{
			{ID: "e1", Title: "Bail Hearing - Sharma vs State", Type: models.EventHearing, Date: today, StartTime: "10:00", EndTime: "11:00", CaseID: "1", CaseTitle: "Sharma vs State of Maharashtra", Reminders: models.Reminders{Email: true, ReminderTime: 60}},
			{ID: "e2", Title: "Evidence Submission Deadline", Type: models.EventEvidence, Date: today, StartTime: "14:00", EndTime: "15:00", CaseID: "2", CaseTitle: "Land Dispute: Plot 44A", Reminders: models.Reminders{Email: true, WhatsApp: true, ReminderTime: 1440}},
			{ID: "e3", Title: "Client Meeting - New Litigation", Type: models.EventClientMeeting, Date: tomorrow, StartTime: "16:00", EndTime: "17:00", Reminders: models.Reminders{Email: true, ReminderTime: 30}},
		},
		Evidence: []models.Evidence{
			{ID: "f1", FileName: "FIR_Copy_Sharma.pdf", CaseID: "1", Type: "Document", Tags: []string{"FIR", "Critical"}, SizeMB: 1.2, UploadedAt: "2023-10-12"},
			{ID: "f2", FileName: "Site_Photo_Plot44A.jpg", CaseID: "2", Type: "Image", Tags: []string{"Survey"}, SizeMB: 3.4, UploadedAt: "2023-10-14"},
			{ID: "f3", FileName: "Contract_Signed_TechCorp.pdf", CaseID: "3", Type: "Document", Tags: []string{"Agreement"}, SizeMB: 0.8, UploadedAt: "2023-10-01"},
			{ID: "f4", FileName: "Witness_Statement.mp3", CaseID: "1", Type: "Audio", Tags: []string{"Witness"}, SizeMB: 12.6, UploadedAt: "2023-10-18"},
		},
		Team: []models.TeamMember{
			{ID: "m1", Name: "Adv. Meera Iyer", Email: "meera@vakildesk.in", Role: models.RolePartner, Access: "All", Status: "Active"},
			{ID: "m2", Name: "Karan Mehta", Email: "karan@vakildesk.in", Role: models.RoleAssociate, Access: "Assigned", CaseIDs: []string{"1", "2"}, Status: "Active"},
		},
		Notifications: []models.Notification{
			{ID: "n1", Title: "Hearing Tomorrow", Message: "Sharma vs State hearing at 10:30 AM", Type: "hearing", Date: "2 mins ago"},
			{ID: "n2", Title: "Invoice Overdue", Message: "Client TechCorp Ltd has pending invoice #203", Type: "billing", Date: "1 hour ago"},
			{ID: "n3", Title: "System Update", Message: "New AI drafting features available now.", Type: "system", Date: "Yesterday", Read: true},
		},
		Invoices: []models.SubscriptionInvoice{
			{ID: "INV-2023-001", Date: "2023-09-01", Amount: ProMonthlyPrice, Status: "Paid"},
		},
	}
}

// Stores bundles every in-memory collection behind one owner, the only place
// application state lives.
type Stores struct {
	Cases         *CaseStore
	Clients       *ClientStore
	Events        *EventStore
	Evidence      *EvidenceStore
	Team          *TeamStore
	Notifications *NotificationStore
	Plan          *PlanStore
}

// NewStores builds the full store set from a seed.
func NewStores(seed *Seed) *Stores {
	cases := NewCaseStore(seed.Cases)
	return &Stores{
		Cases:         cases,
		Clients:       NewClientStore(seed.Clients),
		Events:        NewEventStore(cases, seed.Events),
		Evidence:      NewEvidenceStore(seed.Evidence),
		Team:          NewTeamStore(seed.Team),
		Notifications: NewNotificationStore(seed.Notifications),
		Plan:          NewPlanStore(seed.ProPlan, seed.Invoices),
	}
}
