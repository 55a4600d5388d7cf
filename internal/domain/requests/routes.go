package requests

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the protected request management endpoints.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/requests")
	{
		group.GET("", handler.List)
		group.DELETE("/:id", handler.Delete)
	}
}
