package intake

import "time"

// State is the wizard position of one intake session.
type State string

const (
	StateStep1Editing    State = "step1_editing"
	StateStep1Submitting State = "step1_submitting"
	StateStep2Editing    State = "step2_editing"
	StateStep2Uploading  State = "step2_uploading"
	StateStep2Submitting State = "step2_submitting"
	// StateCompleted is transient: the controller passes through it and
	// immediately resets to a fresh step-1 draft.
	StateCompleted State = "completed"
)

const (
	// MaxFileSize caps each individual attachment.
	MaxFileSize = 20 * 1024 * 1024
	// MaxPoolSchemeFiles caps the scheme list; with the single company
	// card that makes at most six attachments per draft.
	MaxPoolSchemeFiles = 5
)

// Step1Data identifies the contact and the object a quote is asked for.
type Step1Data struct {
	Phone         string
	Email         string
	Company       string
	Role          string
	FullName      string
	ObjectName    string
	ObjectAddress string
	Consent       bool
}

// Step2Data holds the sizing and scheduling details.
type Step2Data struct {
	VisitorsInfo string
	PoolSize     string
	Deadline     string
}

// Attachment is a file accepted into the draft. Content stays in memory
// until the upload sequence runs; nothing is persisted locally.
type Attachment struct {
	Name     string
	MimeType string
	Size     int64
	Content  []byte
}

// Draft is the in-memory state of one submission attempt. It is created
// empty, survives the back/next transitions, and is discarded only after
// the remote endpoint confirms the completed submission.
type Draft struct {
	Step1       Step1Data
	Step2       Step2Data
	CompanyCard *Attachment
	PoolSchemes []Attachment
}

// AttachmentCount returns how many files the upload sequence would send.
func (d *Draft) AttachmentCount() int {
	n := len(d.PoolSchemes)
	if d.CompanyCard != nil {
		n++
	}
	return n
}

// Snapshot is a read-only view of a controller for rendering.
type Snapshot struct {
	State          State
	RequestID      int64
	Step1          Step1Data
	Step2          Step2Data
	CompanyCard    *AttachmentInfo
	PoolSchemes    []AttachmentInfo
	UploadProgress string
	StartedAt      time.Time
}

// AttachmentInfo is attachment metadata without the file bytes.
type AttachmentInfo struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}
