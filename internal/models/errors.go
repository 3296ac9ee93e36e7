package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorCode classifies an application error for both API responses and
// HTTP status mapping.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeDuplicateField     ErrorCode = "DUPLICATE_FIELD"
	CodeDuplicateFavorite  ErrorCode = "DUPLICATE_FAVORITE"
	CodeDuplicateFollow    ErrorCode = "DUPLICATE_FOLLOW"
	CodeInvalidOperation   ErrorCode = "INVALID_OPERATION"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// AppError represents a custom application error.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status maps the error code to its HTTP status.
func (e *AppError) Status() int {
	switch e.Code {
	case CodeValidation, CodeDuplicateField, CodeDuplicateFavorite,
		CodeDuplicateFollow, CodeInvalidOperation:
		return fiber.StatusBadRequest
	case CodeUnauthorized, CodeInvalidCredentials:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Predefined error constructors
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

// NewNotFoundError creates a NOT_FOUND error. Clients always see the
// generic message; the resource name travels in the wrapped error for
// logs.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: "Resource not found!",
		Err:     fmt.Errorf("%s not found", resource),
	}
}

// NewReplyTargetGoneError reports a reply posted to a missing tweet.
func NewReplyTargetGoneError() *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: "selected tweet was not found!",
	}
}

func NewDuplicateFieldError(field string) *AppError {
	return &AppError{
		Code:    CodeDuplicateField,
		Message: fmt.Sprintf("%s already exists!", field),
	}
}

func NewDuplicateFavoriteError() *AppError {
	return &AppError{
		Code:    CodeDuplicateFavorite,
		Message: "This tweet is already on your favorites!",
	}
}

func NewDuplicateFollowError() *AppError {
	return &AppError{
		Code:    CodeDuplicateFollow,
		Message: "You're already following this user!",
	}
}

func NewInvalidOperationError(message string) *AppError {
	return &AppError{Code: CodeInvalidOperation, Message: message}
}

func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Code:    CodeInvalidCredentials,
		Message: "Invalid username/email or password.",
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// CodeOf extracts the error code, or CodeInternal for unknown errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// RespondWithError writes a standardized error response, deriving the
// HTTP status from the error code.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status()).JSON(ErrorResponse{
			Error: appErr.Message,
			Code:  string(appErr.Code),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: "Internal server error",
	})
}
