package payroll

import (
	"time"

	"github.com/Pachosan13/7granos-app-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	periods := r.Group("/branches/:branch_id/periods/:id")
	{
		periods.GET("/results", handler.GetResults)
		periods.GET("/totals", handler.GetTotals)

		// Kalkulasi itu mahal; selain idempotency, laju per sucursal dibatasi.
		calcLimit := middleware.RateLimitByBranch(rate.Every(2*time.Second), 2)
		if redisClient != nil {
			periods.POST("/calculate", calcLimit, middleware.Idempotency(redisClient), handler.Calculate)
		} else {
			periods.POST("/calculate", calcLimit, handler.Calculate)
		}
	}
}
