package paycode

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	codes := r.Group("/pay-codes")
	{
		codes.GET("", handler.GetAll)
		codes.POST("", handler.Create)
		codes.PUT("/:code", handler.Update)
		codes.DELETE("/:code", handler.Delete)
	}
}
