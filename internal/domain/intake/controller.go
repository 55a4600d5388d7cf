package intake

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"sentagsite/internal/backend"
	"sentagsite/internal/pkg/validator"
)

// RemoteAPI is the slice of the backend client the controller drives.
type RemoteAPI interface {
	SubmitLeadStep1(ctx context.Context, req *backend.Step1Request) (int64, error)
	SubmitLeadStep2(ctx context.Context, req *backend.Step2Request) error
	UploadFile(ctx context.Context, requestID int64, category backend.FileCategory, name, mimeType string, content []byte) (string, error)
}

type step1Fields struct {
	Phone         string `validate:"notblank"`
	Email         string `validate:"notblank"`
	Company       string `validate:"notblank"`
	Role          string `validate:"required,oneof=contractor customer design"`
	FullName      string `validate:"notblank"`
	ObjectName    string `validate:"notblank"`
	ObjectAddress string `validate:"notblank"`
	Consent       bool   `validate:"eq=true"`
}

type step2Fields struct {
	PoolSize string `validate:"notblank"`
}

// Controller drives the two-step quote wizard for one browser session.
// It owns the draft, enforces the step ordering and guarantees that no
// two of its network operations are ever in flight at once: a trigger
// arriving while the state is a submitting/uploading one fails with
// ErrBusy. Remote calls run outside the lock so the session stays
// readable (progress polling) while an upload sequence is running.
type Controller struct {
	api       RemoteAPI
	visitorID string

	mu             sync.Mutex
	state          State
	draft          Draft
	requestID      int64
	startedAt      time.Time
	step2StartedAt time.Time
	progress       string

	ctx    context.Context
	cancel context.CancelFunc
}

// NewController creates a fresh wizard in Step1Editing.
func NewController(api RemoteAPI, visitorID string) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		api:       api,
		visitorID: visitorID,
		state:     StateStep1Editing,
		startedAt: time.Now(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Close tears the controller down and cancels any in-flight remote call.
func (c *Controller) Close() {
	c.cancel()
}

// Snapshot returns the current wizard view for rendering. Safe to call
// while an upload sequence is running.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:          c.state,
		RequestID:      c.requestID,
		Step1:          c.draft.Step1,
		Step2:          c.draft.Step2,
		UploadProgress: c.progress,
		StartedAt:      c.startedAt,
	}
	if c.draft.CompanyCard != nil {
		snap.CompanyCard = &AttachmentInfo{
			Name:     c.draft.CompanyCard.Name,
			MimeType: c.draft.CompanyCard.MimeType,
			Size:     c.draft.CompanyCard.Size,
		}
	}
	for _, a := range c.draft.PoolSchemes {
		snap.PoolSchemes = append(snap.PoolSchemes, AttachmentInfo{
			Name:     a.Name,
			MimeType: a.MimeType,
			Size:     a.Size,
		})
	}
	return snap
}

// SubmitStep1 validates the step-1 draft and, on first success, creates
// the lead remotely. A non-nil field map means validation failed; every
// failing field is present in it, not just the first. Entered values are
// always retained.
func (c *Controller) SubmitStep1(ctx context.Context, data Step1Data) (map[string]string, error) {
	c.mu.Lock()
	if c.state != StateStep1Editing {
		defer c.mu.Unlock()
		return nil, stateErr(c.state)
	}

	c.draft.Step1 = data

	if errs := validator.Validate(step1Fields(data)); errs != nil {
		c.mu.Unlock()
		return errs, ErrValidation
	}

	// "Back" from step 2 and returning does not redo the remote call;
	// the request ID from the first pass stays valid.
	if c.requestID != 0 {
		c.state = StateStep2Editing
		c.mu.Unlock()
		return nil, nil
	}

	c.state = StateStep1Submitting
	req := &backend.Step1Request{
		Phone:         strings.TrimSpace(data.Phone),
		Email:         strings.TrimSpace(data.Email),
		Company:       strings.TrimSpace(data.Company),
		Role:          data.Role,
		FullName:      strings.TrimSpace(data.FullName),
		ObjectName:    strings.TrimSpace(data.ObjectName),
		ObjectAddress: strings.TrimSpace(data.ObjectAddress),
		Consent:       data.Consent,
		VisitorID:     c.visitorID,
		StartedAt:     c.startedAt.UTC().Format(time.RFC3339),
	}
	c.mu.Unlock()

	id, err := c.api.SubmitLeadStep1(c.callCtx(ctx), req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateStep1Editing
		return nil, err
	}
	c.requestID = id
	c.step2StartedAt = time.Now()
	c.state = StateStep2Editing
	return nil, nil
}

// Back returns from step 2 to step 1 without touching the request ID.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateStep2Editing {
		return stateErr(c.state)
	}
	c.state = StateStep1Editing
	return nil
}

// UpdateStep2 stores the free-text step-2 fields.
func (c *Controller) UpdateStep2(data Step2Data) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateStep2Editing {
		return stateErr(c.state)
	}
	c.draft.Step2 = data
	return nil
}

// AttachCompanyCard accepts the single company-card file, replacing any
// previous one. Oversized files never enter the draft.
func (c *Controller) AttachCompanyCard(att Attachment) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateStep2Editing {
		return stateErr(c.state)
	}
	if att.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	c.draft.CompanyCard = &att
	return nil
}

// RemoveCompanyCard drops the company-card attachment.
func (c *Controller) RemoveCompanyCard() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateStep2Editing {
		return stateErr(c.state)
	}
	if c.draft.CompanyCard == nil {
		return ErrNoSuchAttachment
	}
	c.draft.CompanyCard = nil
	return nil
}

// AttachPoolScheme appends a pool-scheme file. A rejection leaves the
// already-attached files untouched.
func (c *Controller) AttachPoolScheme(att Attachment) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateStep2Editing {
		return stateErr(c.state)
	}
	if len(c.draft.PoolSchemes) >= MaxPoolSchemeFiles {
		return ErrSchemeLimit
	}
	if att.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	c.draft.PoolSchemes = append(c.draft.PoolSchemes, att)
	return nil
}

// RemovePoolScheme drops the scheme file at the given position.
func (c *Controller) RemovePoolScheme(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateStep2Editing {
		return stateErr(c.state)
	}
	if index < 0 || index >= len(c.draft.PoolSchemes) {
		return ErrNoSuchAttachment
	}
	c.draft.PoolSchemes = append(c.draft.PoolSchemes[:index], c.draft.PoolSchemes[index+1:]...)
	return nil
}

// SubmitStep2 runs the upload sequence and the final submission. Uploads
// go strictly one at a time: company card first, then scheme files in
// attachment order. Any failure aborts the rest, discards the URLs
// already obtained and returns the wizard to step-2 editing; a retry
// re-uploads everything. Success resets the draft and puts the wizard
// back at step 1 for a new submission.
func (c *Controller) SubmitStep2(ctx context.Context) (map[string]string, error) {
	c.mu.Lock()
	if c.state != StateStep2Editing {
		defer c.mu.Unlock()
		return nil, stateErr(c.state)
	}
	if errs := validator.Validate(step2Fields{PoolSize: c.draft.Step2.PoolSize}); errs != nil {
		c.mu.Unlock()
		return errs, ErrValidation
	}
	if c.requestID == 0 {
		// The wizard must not be able to reach step 2 without a request
		// ID; treat this as a defect, not a user error.
		c.mu.Unlock()
		return nil, ErrMissingRequestID
	}

	c.state = StateStep2Uploading
	requestID := c.requestID
	step2 := c.draft.Step2
	card := c.draft.CompanyCard
	schemes := make([]Attachment, len(c.draft.PoolSchemes))
	copy(schemes, c.draft.PoolSchemes)
	total := c.draft.AttachmentCount()
	c.mu.Unlock()

	callCtx := c.callCtx(ctx)
	uploaded := 0

	uploadOne := func(category backend.FileCategory, att *Attachment) (string, error) {
		uploaded++
		c.setProgress(fmt.Sprintf("Uploading file %d of %d...", uploaded, total))
		return c.api.UploadFile(callCtx, requestID, category, att.Name, att.MimeType, att.Content)
	}

	var companyCardURL string
	poolSchemeURLs := make([]string, 0, len(schemes))

	if card != nil {
		url, err := uploadOne(backend.CategoryCompanyCard, card)
		if err != nil {
			return nil, c.abortToStep2(err)
		}
		companyCardURL = url
	}
	for i := range schemes {
		url, err := uploadOne(backend.CategoryPoolScheme, &schemes[i])
		if err != nil {
			// URLs collected so far are dropped, including a company
			// card that already made it through.
			return nil, c.abortToStep2(err)
		}
		poolSchemeURLs = append(poolSchemeURLs, url)
	}

	c.mu.Lock()
	c.state = StateStep2Submitting
	c.progress = ""
	c.mu.Unlock()

	err := c.api.SubmitLeadStep2(callCtx, &backend.Step2Request{
		RequestID:      requestID,
		VisitorsInfo:   strings.TrimSpace(step2.VisitorsInfo),
		PoolSize:       strings.TrimSpace(step2.PoolSize),
		Deadline:       strings.TrimSpace(step2.Deadline),
		CompanyCardURL: companyCardURL,
		PoolSchemeURLs: poolSchemeURLs,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateStep2Editing
		return nil, err
	}

	// Completed is transient: the wizard immediately rearms for a new
	// submission with an empty draft.
	c.state = StateCompleted
	c.reset()
	return nil, nil
}

func (c *Controller) setProgress(p string) {
	c.mu.Lock()
	c.progress = p
	c.mu.Unlock()
}

func (c *Controller) abortToStep2(err error) error {
	c.mu.Lock()
	c.state = StateStep2Editing
	c.progress = ""
	c.mu.Unlock()
	return err
}

// reset discards the draft after a confirmed submission. Caller holds mu.
func (c *Controller) reset() {
	c.draft = Draft{}
	c.requestID = 0
	c.startedAt = time.Now()
	c.step2StartedAt = time.Time{}
	c.progress = ""
	c.state = StateStep1Editing
}

// callCtx derives a request context that is also cancelled when the
// controller is closed, so a torn-down session aborts its remote call.
func (c *Controller) callCtx(ctx context.Context) context.Context {
	merged, cancel := context.WithCancel(ctx)
	context.AfterFunc(c.ctx, cancel)
	return merged
}

func stateErr(s State) error {
	switch s {
	case StateStep1Submitting, StateStep2Uploading, StateStep2Submitting:
		return ErrBusy
	default:
		return ErrInvalidState
	}
}
