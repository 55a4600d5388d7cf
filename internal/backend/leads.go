package backend

import "context"

// Step1Request is the lead-creation payload. Field names follow the
// remote save-request contract.
type Step1Request struct {
	Step          int    `json:"step"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Company       string `json:"company"`
	Role          string `json:"role"`
	FullName      string `json:"fullName"`
	ObjectName    string `json:"objectName"`
	ObjectAddress string `json:"objectAddress"`
	Consent       bool   `json:"consent"`
	VisitorID     string `json:"visitorId,omitempty"`
	StartedAt     string `json:"startedAt,omitempty"`
}

type step1Response struct {
	Success   bool   `json:"success"`
	RequestID int64  `json:"requestId"`
	Error     string `json:"error"`
}

// Step2Request completes a lead created by SubmitLeadStep1.
type Step2Request struct {
	Step           int      `json:"step"`
	RequestID      int64    `json:"requestId"`
	VisitorsInfo   string   `json:"visitorsInfo"`
	PoolSize       string   `json:"poolSize"`
	Deadline       string   `json:"deadline"`
	CompanyCardURL string   `json:"companyCardUrl,omitempty"`
	PoolSchemeURLs []string `json:"poolSchemeUrls"`
}

type step2Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SubmitLeadStep1 creates the lead and returns the request ID the rest of
// the submission is tagged with.
func (c *Client) SubmitLeadStep1(ctx context.Context, req *Step1Request) (int64, error) {
	req.Step = 1
	var resp step1Response
	if err := c.postJSON(ctx, c.urls.SaveRequest, "", req, &resp); err != nil {
		return 0, err
	}
	if !resp.Success {
		return 0, &Error{Status: 200, Message: nonEmpty(resp.Error, "lead was not saved")}
	}
	return resp.RequestID, nil
}

// SubmitLeadStep2 sends the consolidated second step: free-text fields
// plus the attachment URLs collected by the upload sequence.
func (c *Client) SubmitLeadStep2(ctx context.Context, req *Step2Request) error {
	req.Step = 2
	if req.PoolSchemeURLs == nil {
		req.PoolSchemeURLs = []string{}
	}
	var resp step2Response
	if err := c.postJSON(ctx, c.urls.SaveRequest, "", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &Error{Status: 200, Message: nonEmpty(resp.Error, "lead was not completed")}
	}
	return nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
