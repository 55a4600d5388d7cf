package intake

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sentagsite/internal/pkg/logger"
	"sentagsite/internal/pkg/response"
	"sentagsite/internal/pkg/token"
)

const sessionCookie = "intake_session"

// Handler exposes the wizard controller over HTTP. The browser holds a
// signed session cookie; each cookie maps to one live controller.
type Handler struct {
	registry *Registry
	tokens   *token.Service
}

func NewHandler(registry *Registry, tokens *token.Service) *Handler {
	return &Handler{registry: registry, tokens: tokens}
}

// controller resolves the session cookie to a controller, creating a
// fresh session (and cookie) when there is none or it went stale.
func (h *Handler) controller(c *gin.Context) *Controller {
	if raw, err := c.Cookie(sessionCookie); err == nil {
		if id, err := h.tokens.Validate(raw); err == nil {
			if ctrl, ok := h.registry.Get(id); ok {
				return ctrl
			}
		}
	}

	visitorID, _ := c.Cookie("visitor_id")
	id, ctrl := h.registry.Create(visitorID)
	signed, err := h.tokens.Generate(id)
	if err != nil {
		logger.Errorf("intake: sign session: %v", err)
		return ctrl
	}
	c.SetCookie(sessionCookie, signed, int(h.tokens.TTL().Seconds()), "/", "", false, true)
	return ctrl
}

// GetState returns the wizard snapshot for rendering.
func (h *Handler) GetState(c *gin.Context) {
	ctrl := h.controller(c)
	response.Success(c, http.StatusOK, stateResponse(ctrl.Snapshot()))
}

// SubmitStep1 validates and submits the first step.
func (h *Handler) SubmitStep1(c *gin.Context) {
	var req SubmitStep1Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	ctrl := h.controller(c)
	fieldErrs, err := ctrl.SubmitStep1(c.Request.Context(), Step1Data{
		Phone:         req.Phone,
		Email:         req.Email,
		Company:       req.Company,
		Role:          req.Role,
		FullName:      req.FullName,
		ObjectName:    req.ObjectName,
		ObjectAddress: req.ObjectAddress,
		Consent:       req.Consent,
	})
	if err != nil {
		h.respondError(c, err, fieldErrs)
		return
	}
	response.Success(c, http.StatusOK, stateResponse(ctrl.Snapshot()))
}

// Back moves from step 2 to step 1, keeping the draft and request ID.
func (h *Handler) Back(c *gin.Context) {
	ctrl := h.controller(c)
	if err := ctrl.Back(); err != nil {
		h.respondError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, stateResponse(ctrl.Snapshot()))
}

// UpdateStep2 stores the step-2 free-text fields.
func (h *Handler) UpdateStep2(c *gin.Context) {
	var req UpdateStep2Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	ctrl := h.controller(c)
	if err := ctrl.UpdateStep2(Step2Data(req)); err != nil {
		h.respondError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, stateResponse(ctrl.Snapshot()))
}

// AttachCompanyCard accepts the single company-card file.
func (h *Handler) AttachCompanyCard(c *gin.Context) {
	att, ok := h.readAttachment(c)
	if !ok {
		return
	}

	ctrl := h.controller(c)
	if err := ctrl.AttachCompanyCard(att); err != nil {
		h.respondFileError(c, err, att.Name)
		return
	}
	response.Success(c, http.StatusOK, stateResponse(ctrl.Snapshot()))
}

// RemoveCompanyCard drops the company-card attachment.
func (h *Handler) RemoveCompanyCard(c *gin.Context) {
	ctrl := h.controller(c)
	if err := ctrl.RemoveCompanyCard(); err != nil {
		h.respondError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, stateResponse(ctrl.Snapshot()))
}

// AttachPoolScheme appends one pool-scheme file.
func (h *Handler) AttachPoolScheme(c *gin.Context) {
	att, ok := h.readAttachment(c)
	if !ok {
		return
	}

	ctrl := h.controller(c)
	if err := ctrl.AttachPoolScheme(att); err != nil {
		h.respondFileError(c, err, att.Name)
		return
	}
	response.Success(c, http.StatusOK, stateResponse(ctrl.Snapshot()))
}

// RemovePoolScheme drops the scheme file at the given position.
func (h *Handler) RemovePoolScheme(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INDEX", "Invalid attachment index")
		return
	}

	ctrl := h.controller(c)
	if err := ctrl.RemovePoolScheme(index); err != nil {
		h.respondError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, stateResponse(ctrl.Snapshot()))
}

// Submit runs the upload sequence and the final step-2 submission.
func (h *Handler) Submit(c *gin.Context) {
	ctrl := h.controller(c)
	fieldErrs, err := ctrl.SubmitStep2(c.Request.Context())
	if err != nil {
		h.respondError(c, err, fieldErrs)
		return
	}
	response.Success(c, http.StatusOK, stateResponse(ctrl.Snapshot()))
}

func (h *Handler) readAttachment(c *gin.Context) (Attachment, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file provided")
		return Attachment{}, false
	}

	// Rejected before the bytes are read so an oversized file never
	// enters the draft.
	if fileHeader.Size > MaxFileSize {
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
			fmt.Sprintf("File %q exceeds the 20 MB limit", fileHeader.Filename))
		return Attachment{}, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UNREADABLE_FILE", "Could not read uploaded file")
		return Attachment{}, false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UNREADABLE_FILE", "Could not read uploaded file")
		return Attachment{}, false
	}

	return Attachment{
		Name:     fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Content:  content,
	}, true
}

func (h *Handler) respondFileError(c *gin.Context, err error, fileName string) {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
			fmt.Sprintf("File %q exceeds the 20 MB limit", fileName))
	case errors.Is(err, ErrSchemeLimit):
		response.Error(c, http.StatusBadRequest, "TOO_MANY_FILES", "No more than 5 pool scheme files")
	default:
		h.respondError(c, err, nil)
	}
}

func (h *Handler) respondError(c *gin.Context, err error, fieldErrs map[string]string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Please fill in the required fields", fieldErrs)
	case errors.Is(err, ErrBusy):
		response.Error(c, http.StatusConflict, "BUSY", "Please wait for the current operation to finish")
	case errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Action not available at this step")
	case errors.Is(err, ErrNoSuchAttachment):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Attachment not found")
	case errors.Is(err, ErrMissingRequestID):
		logger.Errorf("intake: step 2 submission without request id")
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Something went wrong, please start over")
	default:
		logger.Warnf("intake: remote call failed: %v", err)
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR",
			"Could not submit the request, please try again")
	}
}
