package payrollerrors

import (
	"net/http"

	"github.com/Pachosan13/7granos-app-sub000/internal/shared/apperror"
)

var (
	ErrInvalidBranchID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid branch id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period id",
		http.StatusBadRequest,
	)
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"pay period not found",
		http.StatusNotFound,
	)
	ErrPeriodNotCalculable = apperror.New(
		apperror.CodeInvalidState,
		"pay period can only be calculated while DRAFT or CALCULATED",
		http.StatusBadRequest,
	)
	ErrCalculationInProgress = apperror.New(
		apperror.CodeConflict,
		"a payroll calculation for this branch is already running",
		http.StatusConflict,
	)
	ErrResultsNotFound = apperror.New(
		apperror.CodeNotFound,
		"no payroll results for this period",
		http.StatusNotFound,
	)
)
