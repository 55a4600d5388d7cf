package settings

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public settings read endpoints.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/settings", handler.Get)
	r.GET("/settings/ws", handler.Watch)
}

// RegisterAdminRoutes mounts the protected settings write endpoints.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/settings", handler.Update)
	r.POST("/settings/assets/:kind", handler.UploadAsset)
}
