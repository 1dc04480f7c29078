package proformaerrors

import (
	"fmt"
	"net/http"

	"github.com/Pachosan13/7granos-app-sub000/internal/shared/apperror"
)

var (
	ErrPeriodNotCalculated = apperror.New(
		apperror.CodeInvalidState,
		"period has no calculated payroll results yet",
		http.StatusBadRequest,
	)
	ErrTotalsNotFound = apperror.New(
		apperror.CodeNotFound,
		"no payroll totals for this period",
		http.StatusNotFound,
	)
	ErrDuplicateCode = apperror.New(
		apperror.CodeConflict,
		"an account mapping with this code already exists",
		http.StatusConflict,
	)
	ErrInvalidSide = apperror.New(
		apperror.CodeInvalidInput,
		"side must be DEBIT or CREDIT",
		http.StatusBadRequest,
	)
)

// UnmappedCode dibuat per kode supaya pesan error menyebut kode yang hilang.
func UnmappedCode(code string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("payroll code %s has no account mapping", code),
		http.StatusUnprocessableEntity,
	)
}
