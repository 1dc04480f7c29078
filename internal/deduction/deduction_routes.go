package deduction

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	deductions := r.Group("/branches/:branch_id")
	{
		deductions.POST("/deductions", handler.Create)
		deductions.GET("/employees/:employee_id/deductions", handler.GetByEmployee)
	}
}
