package stats

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the protected statistics endpoints.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/stats")
	{
		group.GET("", handler.Get)
		group.POST("/clear", handler.Clear)
	}
}
