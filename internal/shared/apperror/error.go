package apperror

import "fmt"

// AppError adalah error terstruktur yang dipakai di seluruh service.
type AppError struct {
	Code       string // kode stabil untuk klien (mis. PERIOD_NOT_FOUND)
	Message    string // pesan yang aman ditampilkan ke pengguna
	HTTPStatus int
	Err        error // error asli (opsional)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supaya errors.Is/As bisa menelusuri error asli.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New membuat AppError tanpa membungkus error lain.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap membungkus error yang sudah ada dengan konteks AppError.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
