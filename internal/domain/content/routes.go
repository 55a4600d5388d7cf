package content

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public content endpoint.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/content", handler.Get)
}
