package tracking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sentagsite/internal/pkg/logger"
	"sentagsite/internal/pkg/response"
)

const visitorCookie = "visitor_id"

// One year; the visitor id is a long-lived anonymous identifier.
const visitorCookieMaxAge = 365 * 24 * 3600

// Handler accepts tracking pings from the public pages. Every endpoint
// answers 200 quickly; delivery to the analytics functions is async.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ClickRequest names the button that was pressed and where.
type ClickRequest struct {
	ButtonName     string `json:"button_name" binding:"required"`
	ButtonLocation string `json:"button_location" binding:"required"`
}

// visitor resolves (or issues) the visitor cookie.
func (h *Handler) visitor(c *gin.Context) (string, bool) {
	current, _ := c.Cookie(visitorCookie)
	id, err := h.service.EnsureVisitor(c.Request.Context(), current)
	if err != nil {
		logger.Warnf("tracking: visitor lookup failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return "", false
	}
	if id != current {
		c.SetCookie(visitorCookie, id, visitorCookieMaxAge, "/", "", false, false)
	}
	return id, true
}

// Visit records the daily page-visit ping.
func (h *Handler) Visit(c *gin.Context) {
	id, ok := h.visitor(c)
	if !ok {
		return
	}
	h.service.RecordVisit(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"visitor_id": id})
}

// Click records a button press.
func (h *Handler) Click(c *gin.Context) {
	var req ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Button name and location are required")
		return
	}

	id, ok := h.visitor(c)
	if !ok {
		return
	}
	h.service.RecordClick(id, req.ButtonName, req.ButtonLocation)
	response.Success(c, http.StatusOK, gin.H{"visitor_id": id})
}
