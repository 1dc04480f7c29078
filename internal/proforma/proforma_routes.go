package proforma

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/branches/:branch_id/periods/:id/proforma", handler.Generate)

	mappings := r.Group("/account-mappings")
	{
		mappings.GET("", handler.GetMappings)
		mappings.POST("", handler.CreateMapping)
	}
}
