package settings

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentagsite/internal/pkg/logger"
	"sentagsite/internal/pkg/response"
)

// Handler serves the public settings read side and the admin write side.
type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	h := &Handler{service: service, hub: hub}
	service.Subscribe(hub.Broadcast)
	return h
}

// Get returns the effective settings with the derived head metadata.
func (h *Handler) Get(c *gin.Context) {
	current := h.service.Current()
	response.Success(c, http.StatusOK, gin.H{
		"settings": current,
		"meta":     Meta(current),
	})
}

// Watch upgrades to a WebSocket that pushes every settings change.
func (h *Handler) Watch(c *gin.Context) {
	if err := h.hub.ServeWS(c.Writer, c.Request, h.service.Current()); err != nil {
		logger.Warnf("settings: websocket upgrade failed: %v", err)
	}
}

// UpdateRequest is one admin key write.
type UpdateRequest struct {
	Key   string `json:"key" binding:"required"`
	Value any    `json:"value"`
}

// Update writes one settings key through to the remote endpoint.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if !knownKey(req.Key) {
		response.Error(c, http.StatusBadRequest, "UNKNOWN_KEY", "Unknown settings key")
		return
	}

	token := c.GetString("admin_token")
	if err := h.service.Update(c.Request.Context(), token, req.Key, req.Value); err != nil {
		logger.Warnf("settings: update %s failed: %v", req.Key, err)
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "Could not save the setting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": h.service.Current()})
}

// UploadAsset stores a favicon or OG image through the remote endpoint.
// The kind comes from the path so the two asset slots share one handler.
func (h *Handler) UploadAsset(c *gin.Context) {
	kind := c.Param("kind")
	if kind != "favicon" && kind != "og_image" {
		response.Error(c, http.StatusBadRequest, "UNKNOWN_KIND", "Unknown asset kind")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file provided")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UNREADABLE_FILE", "Could not read uploaded file")
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UNREADABLE_FILE", "Could not read uploaded file")
		return
	}

	token := c.GetString("admin_token")
	encoded := base64.StdEncoding.EncodeToString(content)
	if err := h.service.UploadAsset(c.Request.Context(), token, kind, fileHeader.Filename, encoded); err != nil {
		logger.Warnf("settings: asset upload failed: %v", err)
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "Could not upload the file")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": h.service.Current()})
}
