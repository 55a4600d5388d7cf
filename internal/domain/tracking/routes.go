package tracking

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public tracking endpoints.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/track")
	{
		group.POST("/visit", handler.Visit)
		group.POST("/click", handler.Click)
	}
}
