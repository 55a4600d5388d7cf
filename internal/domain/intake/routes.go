package intake

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public quote-wizard endpoints.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	form := r.Group("/intake")
	{
		form.GET("", handler.GetState)
		form.POST("/step1", handler.SubmitStep1)
		form.POST("/back", handler.Back)
		form.PATCH("/step2", handler.UpdateStep2)
		form.POST("/attachments/company-card", handler.AttachCompanyCard)
		form.DELETE("/attachments/company-card", handler.RemoveCompanyCard)
		form.POST("/attachments/pool-scheme", handler.AttachPoolScheme)
		form.DELETE("/attachments/pool-scheme/:index", handler.RemovePoolScheme)
		form.POST("/submit", handler.Submit)
	}
}
