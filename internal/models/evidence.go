package models

// Evidence is a file stored in the evidence locker, always linked to a case.
type Evidence struct {
	ID         string   `json:"id" yaml:"id"`
	FileName   string   `json:"fileName" yaml:"file_name"`
	CaseID     string   `json:"caseId" yaml:"case_id"`
	Type       string   `json:"type" yaml:"type"` // Document, Image, Audio, Video
	Tags       []string `json:"tags" yaml:"tags"`
	SizeMB     float64  `json:"sizeMB" yaml:"size_mb"`
	UploadedAt string   `json:"uploadedAt" yaml:"uploaded_at"`
}
