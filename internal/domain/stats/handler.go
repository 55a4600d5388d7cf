package stats

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentagsite/internal/backend"
	"sentagsite/internal/pkg/logger"
	"sentagsite/internal/pkg/response"
)

// RemoteAPI is the slice of the backend client the handlers use.
type RemoteAPI interface {
	GetClickStats(ctx context.Context, token string) (*backend.ClickStats, error)
	ClearClickStats(ctx context.Context, token string) error
}

// Handler serves the 30-day click/visit statistics to the admin console.
type Handler struct {
	api RemoteAPI
}

func NewHandler(api RemoteAPI) *Handler {
	return &Handler{api: api}
}

// Get returns the aggregated statistics view.
func (h *Handler) Get(c *gin.Context) {
	stats, err := h.api.GetClickStats(c.Request.Context(), c.GetString("admin_token"))
	if err != nil {
		logger.Warnf("stats: remote fetch failed: %v", err)
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "Could not load statistics")
		return
	}
	if stats.ByDay == nil {
		stats.ByDay = map[string][]backend.ClickStat{}
	}
	if stats.Totals == nil {
		stats.Totals = []backend.ClickStat{}
	}
	response.Success(c, http.StatusOK, stats)
}

// Clear wipes the collected statistics.
func (h *Handler) Clear(c *gin.Context) {
	if err := h.api.ClearClickStats(c.Request.Context(), c.GetString("admin_token")); err != nil {
		logger.Warnf("stats: clear failed: %v", err)
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", "Could not clear statistics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Statistics cleared"})
}
