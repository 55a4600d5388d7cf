package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sentagsite/internal/domain/settings"
	"sentagsite/internal/pkg/response"
)

// Handler serves the static marketing copy. The documents section is
// filtered out when the admin has switched it off.
type Handler struct {
	settings *settings.Service
}

func NewHandler(settings *settings.Service) *Handler {
	return &Handler{settings: settings}
}

// Get returns the page content.
func (h *Handler) Get(c *gin.Context) {
	page := Sections()
	if !h.settings.Current().ShowDocuments {
		kept := page.Sections[:0]
		for _, s := range page.Sections {
			if s.ID != "documents" {
				kept = append(kept, s)
			}
		}
		page.Sections = kept
	}
	response.Success(c, http.StatusOK, page)
}
