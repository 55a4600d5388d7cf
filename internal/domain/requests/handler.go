package requests

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sentagsite/internal/backend"
	"sentagsite/internal/pkg/logger"
	"sentagsite/internal/pkg/response"
)

// RemoteAPI is the slice of the backend client the handlers use.
type RemoteAPI interface {
	ListLeadRequests(ctx context.Context, token string) ([]backend.LeadRequest, error)
	DeleteLeadRequest(ctx context.Context, token string, id int64) error
}

// Handler serves the submitted quote requests to the admin console.
type Handler struct {
	api RemoteAPI
}

func NewHandler(api RemoteAPI) *Handler {
	return &Handler{api: api}
}

// List returns all submitted requests, newest first per the remote side.
func (h *Handler) List(c *gin.Context) {
	reqs, err := h.api.ListLeadRequests(c.Request.Context(), c.GetString("admin_token"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if reqs == nil {
		reqs = []backend.LeadRequest{}
	}
	response.Success(c, http.StatusOK, gin.H{"requests": reqs})
}

// Delete removes one request by id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request id")
		return
	}

	if err := h.api.DeleteLeadRequest(c.Request.Context(), c.GetString("admin_token"), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Request deleted"})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var be *backend.Error
	if errors.As(err, &be) && be.Status == http.StatusNotFound {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
		return
	}
	logger.Warnf("requests: remote call failed: %v", err)
	response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "Could not reach the requests service")
}
