package models

type Role string

const (
	RolePartner   Role = "Partner"
	RoleAssociate Role = "Associate"
	RoleParalegal Role = "Paralegal"
	RoleIntern    Role = "Intern"
)

// TeamMember is a colleague with access to the firm workspace. Access is
// either "All" or "Assigned"; CaseIDs only matters for "Assigned".
type TeamMember struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Email   string   `json:"email" yaml:"email"`
	Role    Role     `json:"role" yaml:"role"`
	Access  string   `json:"access" yaml:"access"`
	CaseIDs []string `json:"caseIds" yaml:"case_ids"`
	Status  string   `json:"status" yaml:"status"` // Active or Invited
}
