package branch

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	branches := r.Group("/branches/:branch_id")
	{
		branches.GET("/config", handler.GetConfig)
		branches.PUT("/config", handler.UpdateConfig)
	}
}
