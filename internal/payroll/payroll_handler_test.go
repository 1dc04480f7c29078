package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Pachosan13/7granos-app-sub000/internal/payroll"
	payrollerrors "github.com/Pachosan13/7granos-app-sub000/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	calculateFn  func(ctx context.Context, branchID, periodID string) (payroll.RunSummary, error)
	getResultsFn func(ctx context.Context, branchID, periodID string) ([]payroll.ResultResponse, error)
	getTotalsFn  func(ctx context.Context, branchID, periodID string) (payroll.TotalsResponse, error)
}

func (f *fakePayrollService) Calculate(ctx context.Context, branchID, periodID string) (payroll.RunSummary, error) {
	return f.calculateFn(ctx, branchID, periodID)
}

func (f *fakePayrollService) GetResults(ctx context.Context, branchID, periodID string) ([]payroll.ResultResponse, error) {
	return f.getResultsFn(ctx, branchID, periodID)
}

func (f *fakePayrollService) GetTotals(ctx context.Context, branchID, periodID string) (payroll.TotalsResponse, error) {
	return f.getTotalsFn(ctx, branchID, periodID)
}

func setupRouter(svc payroll.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	payroll.RegisterRoutes(api, payroll.NewHandler(svc))
	return router
}

func TestPayrollHandler_Calculate(t *testing.T) {
	branchID := uuid.New().String()
	periodID := uuid.New().String()

	t.Run("successful run", func(t *testing.T) {
		svc := &fakePayrollService{
			calculateFn: func(ctx context.Context, bid, pid string) (payroll.RunSummary, error) {
				assert.Equal(t, branchID, bid)
				assert.Equal(t, periodID, pid)
				return payroll.RunSummary{
					Success:            true,
					Message:            "payroll calculated",
					EmployeesProcessed: 3,
					TotalGross:         dec("2500.00"),
					TotalNet:           dec("2100.00"),
				}, nil
			},
		}
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/branches/"+branchID+"/periods/"+periodID+"/calculate", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var data payroll.CalculateResponse
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.True(t, data.Success)
		assert.Equal(t, 3, data.EmployeesProcessed)
		assert.Equal(t, "2100.00", data.TotalNet)
	})

	t.Run("no entries reported as unprocessable", func(t *testing.T) {
		svc := &fakePayrollService{
			calculateFn: func(ctx context.Context, bid, pid string) (payroll.RunSummary, error) {
				return payroll.RunSummary{Success: false, Message: "no payroll entries found for the period"}, nil
			},
		}
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/branches/"+branchID+"/periods/"+periodID+"/calculate", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		var data payroll.CalculateResponse
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.False(t, data.Success)
	})

	t.Run("concurrent run maps to conflict", func(t *testing.T) {
		svc := &fakePayrollService{
			calculateFn: func(ctx context.Context, bid, pid string) (payroll.RunSummary, error) {
				return payroll.RunSummary{}, payrollerrors.ErrCalculationInProgress
			},
		}
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/branches/"+branchID+"/periods/"+periodID+"/calculate", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})

	t.Run("invalid ids rejected before the service runs", func(t *testing.T) {
		called := false
		svc := &fakePayrollService{
			calculateFn: func(ctx context.Context, bid, pid string) (payroll.RunSummary, error) {
				called = true
				return payroll.RunSummary{}, nil
			},
		}
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/branches/nope/periods/"+periodID+"/calculate", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}

func TestPayrollHandler_GetTotals(t *testing.T) {
	branchID := uuid.New().String()
	periodID := uuid.New().String()

	t.Run("found", func(t *testing.T) {
		svc := &fakePayrollService{
			getTotalsFn: func(ctx context.Context, bid, pid string) (payroll.TotalsResponse, error) {
				return payroll.TotalsResponse{PeriodID: pid, EmployeesProcessed: 2, Net: "900.00"}, nil
			},
		}
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/branches/"+branchID+"/periods/"+periodID+"/totals", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		svc := &fakePayrollService{
			getTotalsFn: func(ctx context.Context, bid, pid string) (payroll.TotalsResponse, error) {
				return payroll.TotalsResponse{}, payrollerrors.ErrResultsNotFound
			},
		}
		router := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/branches/"+branchID+"/periods/"+periodID+"/totals", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}
