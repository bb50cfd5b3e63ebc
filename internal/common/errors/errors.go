// Package errors provides standardized error handling for the FCM send pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeCredentialLoadFailed ErrorCode = "CREDENTIAL_LOAD_FAILED"
	ErrCodeProjectIDMissing     ErrorCode = "PROJECT_ID_MISSING"
	ErrCodeTokenExchangeFailed  ErrorCode = "TOKEN_EXCHANGE_FAILED"
	ErrCodePayloadInvalid       ErrorCode = "PAYLOAD_INVALID"
	ErrCodeMessageSendFailed    ErrorCode = "MESSAGE_SEND_FAILED"
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

// NewCredentialLoadError creates a non-retryable service-account key error.
func NewCredentialLoadError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCredentialLoadFailed,
		Message:   "Failed to load service account key",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProjectIDMissingError creates a non-retryable key content error.
func NewProjectIDMissingError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProjectIDMissing,
		Message:   "Service account key has no project_id",
		Details:   fmt.Sprintf("path: %s", path),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTokenExchangeError creates a retryable OAuth2 token exchange error.
func NewTokenExchangeError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTokenExchangeFailed,
		Message:   "OAuth2 token exchange failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPayloadInvalidError creates a non-retryable message parameter error.
func NewPayloadInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePayloadInvalid,
		Message:   "Message parameters failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMessageSendError creates a retryable transport error for the send call.
func NewMessageSendError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMessageSendFailed,
		Message:   "FCM send request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// IsCode reports whether err is a *StandardError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	stdErr, ok := err.(*StandardError)
	return ok && stdErr.Code == code
}
