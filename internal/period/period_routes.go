package period

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	periods := r.Group("/branches/:branch_id/periods")
	{
		periods.GET("", handler.GetAll)
		periods.GET("/:id", handler.GetByID)
		periods.POST("/:id/approve", handler.Approve)
		periods.POST("/:id/mark-paid", handler.MarkAsPaid)
	}
}
