package documents

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sentagsite/internal/backend"
	"sentagsite/internal/domain/settings"
	"sentagsite/internal/pkg/logger"
	"sentagsite/internal/pkg/response"
)

// 20 MB, same ceiling the quote form applies to its uploads.
const maxDocumentSize = 20 * 1024 * 1024

// RemoteAPI is the slice of the backend client the handlers use.
type RemoteAPI interface {
	ListDocuments(ctx context.Context) ([]backend.Document, error)
	UploadDocument(ctx context.Context, token string, doc *backend.DocumentUpload) (int64, error)
	UpdateDocument(ctx context.Context, token string, doc *backend.DocumentUpload) error
	DeleteDocument(ctx context.Context, token string, id int64) error
}

// Handler serves the public document library and the admin management
// endpoints. The public side honours the show_documents_section flag.
type Handler struct {
	api      RemoteAPI
	settings *settings.Service
}

func NewHandler(api RemoteAPI, settings *settings.Service) *Handler {
	return &Handler{api: api, settings: settings}
}

// List returns the public library. When the section is switched off the
// list is empty rather than an error, so the page simply hides it.
func (h *Handler) List(c *gin.Context) {
	if !h.settings.Current().ShowDocuments {
		response.Success(c, http.StatusOK, gin.H{"documents": []backend.Document{}, "enabled": false})
		return
	}

	docs, err := h.api.ListDocuments(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if docs == nil {
		docs = []backend.Document{}
	}
	response.Success(c, http.StatusOK, gin.H{"documents": docs, "enabled": true})
}

// AdminList returns the library regardless of the public flag.
func (h *Handler) AdminList(c *gin.Context) {
	docs, err := h.api.ListDocuments(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if docs == nil {
		docs = []backend.Document{}
	}
	response.Success(c, http.StatusOK, gin.H{"documents": docs})
}

// Upload creates a document from a multipart form.
func (h *Handler) Upload(c *gin.Context) {
	var form UploadForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Title and icon are required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file provided")
		return
	}
	upload := &backend.DocumentUpload{
		Title:       form.Title,
		Description: form.Description,
		IconName:    form.IconName,
	}
	if ok := h.fillFile(c, upload, fileHeader); !ok {
		return
	}
	if ok := h.fillThumbnail(c, upload); !ok {
		return
	}

	id, err := h.api.UploadDocument(c.Request.Context(), c.GetString("admin_token"), upload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

// Update rewrites metadata and optionally replaces the stored file.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid document id")
		return
	}

	var form UpdateForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Title and icon are required")
		return
	}
	upload := &backend.DocumentUpload{
		ID:          id,
		Title:       form.Title,
		Description: form.Description,
		IconName:    form.IconName,
	}
	if fileHeader, err := c.FormFile("file"); err == nil {
		if ok := h.fillFile(c, upload, fileHeader); !ok {
			return
		}
	}
	if ok := h.fillThumbnail(c, upload); !ok {
		return
	}

	if err := h.api.UpdateDocument(c.Request.Context(), c.GetString("admin_token"), upload); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Document updated"})
}

// Delete removes a document by id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid document id")
		return
	}

	if err := h.api.DeleteDocument(c.Request.Context(), c.GetString("admin_token"), id); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Document deleted"})
}

func (h *Handler) fillFile(c *gin.Context, upload *backend.DocumentUpload, fileHeader *multipart.FileHeader) bool {
	if fileHeader.Size > maxDocumentSize {
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File exceeds the 20 MB limit")
		return false
	}
	content, ok := readPart(c, fileHeader)
	if !ok {
		return false
	}
	upload.FileName = fileHeader.Filename
	upload.FileType = fileHeader.Header.Get("Content-Type")
	upload.FileContent = base64.StdEncoding.EncodeToString(content)
	return true
}

func (h *Handler) fillThumbnail(c *gin.Context, upload *backend.DocumentUpload) bool {
	thumbHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return true // optional
	}
	content, ok := readPart(c, thumbHeader)
	if !ok {
		return false
	}
	upload.Thumbnail = base64.StdEncoding.EncodeToString(content)
	return true
}

func readPart(c *gin.Context, fileHeader *multipart.FileHeader) ([]byte, bool) {
	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UNREADABLE_FILE", "Could not read uploaded file")
		return nil, false
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UNREADABLE_FILE", "Could not read uploaded file")
		return nil, false
	}
	return content, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var be *backend.Error
	if errors.As(err, &be) && be.Status == http.StatusNotFound {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Document not found")
		return
	}
	logger.Warnf("documents: remote call failed: %v", err)
	response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "Could not reach the documents service")
}
