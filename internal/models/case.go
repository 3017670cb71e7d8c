package models

type CaseStatus string

const (
	CaseOpen    CaseStatus = "Open"
	CaseClosed  CaseStatus = "Closed"
	CaseStayed  CaseStatus = "Stayed"
	CasePending CaseStatus = "Pending"
)

type CourtType string

const (
	SupremeCourt  CourtType = "Supreme Court"
	HighCourt     CourtType = "High Court"
	DistrictCourt CourtType = "District Court"
	Tribunal      CourtType = "Tribunal"
)

// Case is a court matter handled by the firm. CNRNumber is the court-assigned
// case reference number, treated as an opaque string.
type Case struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	CNRNumber   string     `json:"cnrNumber" yaml:"cnr_number"`
	ClientName  string     `json:"clientName" yaml:"client_name"`
	Court       CourtType  `json:"court" yaml:"court"`
	Judge       string     `json:"judge" yaml:"judge"`
	NextHearing string     `json:"nextHearing" yaml:"next_hearing"`
	Status      CaseStatus `json:"status" yaml:"status"`
	Notes       string     `json:"notes" yaml:"notes"`
}

// CaseRef is the read-only picker shape consumed by the calendar form.
type CaseRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
