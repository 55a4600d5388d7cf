package intake

// SubmitStep1Request is the step-1 form payload.
type SubmitStep1Request struct {
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Company       string `json:"company"`
	Role          string `json:"role"`
	FullName      string `json:"fullName"`
	ObjectName    string `json:"objectName"`
	ObjectAddress string `json:"objectAddress"`
	Consent       bool   `json:"consent"`
}

// UpdateStep2Request carries the step-2 free-text fields.
type UpdateStep2Request struct {
	VisitorsInfo string `json:"visitorsInfo"`
	PoolSize     string `json:"poolSize"`
	Deadline     string `json:"deadline"`
}

// StateResponse is what the form renders from.
type StateResponse struct {
	State          State            `json:"state"`
	Step           int              `json:"step"`
	HasRequestID   bool             `json:"has_request_id"`
	Step1          SubmitStep1Request `json:"step1"`
	Step2          UpdateStep2Request `json:"step2"`
	CompanyCard    *AttachmentInfo  `json:"company_card,omitempty"`
	PoolSchemes    []AttachmentInfo `json:"pool_schemes"`
	UploadProgress string           `json:"upload_progress,omitempty"`
}

func stateResponse(snap Snapshot) StateResponse {
	resp := StateResponse{
		State:        snap.State,
		Step:         1,
		HasRequestID: snap.RequestID != 0,
		Step1: SubmitStep1Request{
			Phone:         snap.Step1.Phone,
			Email:         snap.Step1.Email,
			Company:       snap.Step1.Company,
			Role:          snap.Step1.Role,
			FullName:      snap.Step1.FullName,
			ObjectName:    snap.Step1.ObjectName,
			ObjectAddress: snap.Step1.ObjectAddress,
			Consent:       snap.Step1.Consent,
		},
		Step2: UpdateStep2Request{
			VisitorsInfo: snap.Step2.VisitorsInfo,
			PoolSize:     snap.Step2.PoolSize,
			Deadline:     snap.Step2.Deadline,
		},
		CompanyCard:    snap.CompanyCard,
		PoolSchemes:    snap.PoolSchemes,
		UploadProgress: snap.UploadProgress,
	}
	if resp.PoolSchemes == nil {
		resp.PoolSchemes = []AttachmentInfo{}
	}
	switch snap.State {
	case StateStep2Editing, StateStep2Uploading, StateStep2Submitting:
		resp.Step = 2
	}
	return resp
}
