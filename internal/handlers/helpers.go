package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "walletmate/internal/errors"
	"walletmate/internal/uuid"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// parsePathID reads an id path parameter.
// Returns ErrInvalidInput if the parameter is not a UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// bindError converts a request binding failure into an AppError. A missing
// required field and an unknown budget category keep their ledger error codes;
// every other failure is reported as invalid input.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return apperrors.WithMessage(apperrors.ErrMissingRequiredField, fe.Field()+" is required")
		case "budget_category":
			return apperrors.WithMessage(apperrors.ErrInvalidCategory, fmt.Sprintf("unknown budget category: %v", fe.Value()))
		}
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}
