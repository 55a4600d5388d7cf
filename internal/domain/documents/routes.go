package documents

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public document library endpoint.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/documents", handler.List)
}

// RegisterAdminRoutes mounts the protected management endpoints.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/documents")
	{
		group.GET("", handler.AdminList)
		group.POST("", handler.Upload)
		group.PUT("/:id", handler.Update)
		group.DELETE("/:id", handler.Delete)
	}
}
