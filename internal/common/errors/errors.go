// Package errors provides standardized error handling for the interest-capture service.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	ErrCodeProductNotFound     ErrorCode = "PRODUCT_NOT_FOUND"
	ErrCodeCatalogLoadFailed   ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeNotifyRejected      ErrorCode = "NOTIFY_REJECTED"
	ErrCodeNotifyTransport     ErrorCode = "NOTIFY_TRANSPORT_FAILED"
	ErrCodeSubmissionInFlight  ErrorCode = "SUBMISSION_IN_FLIGHT"
	ErrCodeStaleSubmission     ErrorCode = "STALE_SUBMISSION"
	ErrCodeModalNotOpen        ErrorCode = "MODAL_NOT_OPEN"
	ErrCodeInternal            ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationFailedError creates a non-retryable input validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Input validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProductNotFoundError creates a non-retryable unknown product error.
func NewProductNotFoundError(productID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProductNotFound,
		Message:   "Product not found in catalog",
		Details:   fmt.Sprintf("productId: %s", productID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError creates a non-retryable catalog load error.
func NewCatalogLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Product catalog could not be loaded",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotifyRejectedError records an endpoint that was reachable but declined the record.
func NewNotifyRejectedError(statusCode int) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotifyRejected,
		Message:   "Notification endpoint rejected the record",
		Details:   fmt.Sprintf("status: %d", statusCode),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotifyTransportError records a request that never completed.
func NewNotifyTransportError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotifyTransport,
		Message:   "Notification request failed in transport",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionInFlightError signals that a surface already has a pending submission.
func NewSubmissionInFlightError(surface string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionInFlight,
		Message:   "A submission is already in flight for this surface",
		Details:   fmt.Sprintf("surface: %s", surface),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStaleSubmissionError signals a begin on a machine that needs a reset first.
func NewStaleSubmissionError(state string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStaleSubmission,
		Message:   "Submission machine holds a previous result, reset required",
		Details:   fmt.Sprintf("state: %s", state),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModalNotOpenError signals a modal submit without an open modal.
func NewModalNotOpenError() *StandardError {
	return &StandardError{
		Code:      ErrCodeModalNotOpen,
		Message:   "Modal is not open, no target product",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "PRODUCT") || strings.Contains(codeStr, "CATALOG"):
		return "CATALOG"
	case strings.Contains(codeStr, "NOTIFY"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "SUBMISSION") || strings.Contains(codeStr, "MODAL"):
		return "SUBMISSION"
	default:
		return "OTHER"
	}
}
