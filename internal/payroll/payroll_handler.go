package payroll

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Pachosan13/7granos-app-sub000/internal/shared/apperror"
	"github.com/Pachosan13/7granos-app-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func pathIDs(c *gin.Context) (branchID, periodID string, ok bool) {
	branchID = c.Param("branch_id")
	periodID = c.Param("id")
	if _, err := uuid.Parse(branchID); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", "branch_id must be a valid UUID")
		return "", "", false
	}
	if _, err := uuid.Parse(periodID); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", "period id must be a valid UUID")
		return "", "", false
	}
	return branchID, periodID, true
}

// Calculate memicu satu run payroll penuh untuk periode di path. Endpoint ini
// duduk di belakang middleware idempotency: response run sukses di-cache agar
// retry dengan Idempotency-Key sama tidak menghitung ulang.
func (h *Handler) Calculate(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	branchID, periodID, ok := pathIDs(c)
	if !ok {
		return
	}

	summary, err := h.service.Calculate(c.Request.Context(), branchID, periodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := mapCalculateResponse(summary)

	if h.rdb != nil && summary.Success {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	if !summary.Success {
		response.Success(c, http.StatusUnprocessableEntity, resp, nil)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetResults(c *gin.Context) {
	branchID, periodID, ok := pathIDs(c)
	if !ok {
		return
	}

	resp, err := h.service.GetResults(c.Request.Context(), branchID, periodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetTotals(c *gin.Context) {
	branchID, periodID, ok := pathIDs(c)
	if !ok {
		return
	}

	resp, err := h.service.GetTotals(c.Request.Context(), branchID, periodID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
