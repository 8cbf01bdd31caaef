// Package errors provides custom error types for the WalletMate ledger.
// All service-layer errors should use AppError so callers can tell a rejected
// input from a missing record or a storage failure without inspecting strings.
package errors

import (
	"errors"
	"net/http"
)

// Kind groups error codes into the categories callers branch on.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindStorage    Kind = "storage"
	KindAuth       Kind = "auth"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, kind, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Kind       Kind   `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Kind:       sentinel.Kind,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Kind:       sentinel.Kind,
		Internal:   sentinel.Internal,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Kind == kind
}

// HasCode reports whether err is an AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}

// Validation errors. The input is rejected before anything is written.
var (
	ErrMissingRequiredField = &AppError{Code: "MISSING_REQUIRED_FIELD", Message: "A required field is missing", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrInvalidInput         = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrInvalidCategory      = &AppError{Code: "INVALID_CATEGORY", Message: "Unknown budget category", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrCategoryTaken        = &AppError{Code: "CATEGORY_TAKEN", Message: "Another budget already uses this category", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrNoMatchingBudget     = &AppError{Code: "NO_MATCHING_BUDGET", Message: "Please create a budget for this category first", StatusCode: http.StatusBadRequest, Kind: KindValidation}
	ErrBudgetExceeded       = &AppError{Code: "BUDGET_EXCEEDED", Message: "Expense exceeds the remaining budget for this category", StatusCode: http.StatusBadRequest, Kind: KindValidation}
)

// Not found errors.
var (
	ErrNotFound        = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrBudgetNotFound  = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound, Kind: KindNotFound}
)

// Storage errors. The message stays generic; the cause lives in Internal.
var (
	ErrStorageFailure = &AppError{Code: "STORAGE_FAILURE", Message: "Could not read or write ledger data", StatusCode: http.StatusInternalServerError, Kind: KindStorage}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Internal server error", StatusCode: http.StatusInternalServerError, Kind: KindStorage}
)

// Authentication errors.
var (
	ErrInvalidAPIKey = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized, Kind: KindAuth}
)
