package middleware

import (
	"github.com/Pachosan13/7granos-app-sub000/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger menempelkan request ID dan branch ID ke logger dan context,
// supaya layer service/repo bisa mengambilnya via contextutil tanpa tahu Gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// RequestID() biasanya sudah jalan duluan; pakai ID yang sama.
		rid := contextutil.GetRequestID(c.Request.Context())
		if rid == "" {
			rid = c.GetHeader("X-Request-ID")
		}
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)

		fields := []zap.Field{zap.String("request_id", rid)}

		// Branch ID diambil dari path param kalau route memang branch-scoped.
		bid := c.Param("branch_id")
		if bid != "" {
			fields = append(fields, zap.String("branch_id", bid))
		}

		reqLogger := logger.With(fields...)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		if bid != "" {
			ctx = contextutil.WithBranchID(ctx, bid)
		}
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
