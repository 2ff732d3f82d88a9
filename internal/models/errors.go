package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the application.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeState           = "STATE_ERROR"
	CodeInternal        = "INTERNAL_ERROR"
)

// ExposeErrorDetails controls whether raw error detail strings are
// included in responses. Set once at startup; true outside production.
var ExposeErrorDetails = true

// AppError is the application error type. Every controller maps faults
// into one of these before responding; nothing reaches the client raw.
type AppError struct {
	Code    string
	Message string
	// Fields carries a field-keyed error map for validation failures.
	Fields map[string]string
	Err    error
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

// HTTPStatus maps the error code to its response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeValidation, CodeState:
		return fiber.StatusBadRequest
	case CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewFieldValidationError carries a per-field error map alongside the message.
func NewFieldValidationError(fields map[string]string) *AppError {
	return &AppError{Code: CodeValidation, Message: "Validation failed", Fields: fields}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found"}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

// NewStateError marks a valid request blocked by a business invariant.
func NewStateError(message string) *AppError {
	return &AppError{Code: CodeState, Message: message}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
}

// RespondWithError writes the standard error envelope. AppErrors choose
// their own status; anything else becomes a 500 with a generic message.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	body := fiber.Map{"message": appErr.Message}
	if len(appErr.Fields) > 0 {
		body["errors"] = appErr.Fields
	}
	if appErr.Err != nil && ExposeErrorDetails {
		body["error"] = appErr.Err.Error()
	}

	return c.Status(appErr.HTTPStatus()).JSON(body)
}
