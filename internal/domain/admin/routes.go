package admin

import (
	"github.com/gin-gonic/gin"

	"sentagsite/internal/middleware"
)

// RegisterRoutes mounts the login endpoints (public) and the user
// management endpoints (session + admin role required).
func RegisterRoutes(public, protected *gin.RouterGroup, handler *Handler) {
	auth := public.Group("/admin/auth")
	{
		auth.POST("/otp", handler.RequestOTP)
		auth.POST("/login", handler.VerifyOTP)
	}

	protected.GET("/me", handler.Me)

	users := protected.Group("/users", middleware.RequireAdminRole())
	{
		users.GET("", handler.ListUsers)
		users.POST("", handler.CreateUser)
		users.PATCH("/:id", handler.UpdateUser)
	}
}
