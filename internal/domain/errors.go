package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode identifies a class of domain failure.
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Access errors
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeNotFound        ErrorCode = "NOT_FOUND"

	// Pipeline errors
	CodeInvalidReference    ErrorCode = "INVALID_REFERENCE"
	CodeAcquisitionFailed   ErrorCode = "ACQUISITION_FAILED"
	CodeTranscriptionFailed ErrorCode = "TRANSCRIPTION_FAILED"
	CodeGenerationThrottled ErrorCode = "GENERATION_THROTTLED"
	CodeGenerationFailed    ErrorCode = "GENERATION_FAILED"
	CodeEmptyGeneration     ErrorCode = "EMPTY_GENERATION"
	CodeMalformedGeneration ErrorCode = "MALFORMED_GENERATION"
	CodePersistenceRejected ErrorCode = "PERSISTENCE_REJECTED"
)

// DomainError is the error type surfaced by every layer below the handlers.
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON keeps the wrapped cause out of client responses.
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a named detail to the error for the response body.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a DomainError with an arbitrary code.
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnauthenticatedError() *DomainError {
	return NewError(CodeUnauthenticated, "Authentication is required", nil)
}

func NewForbiddenError(quizID string) *DomainError {
	return NewError(CodeForbidden, "Only the quiz creator may perform this action", nil).
		WithContext("quiz_id", quizID)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeNotFound, fmt.Sprintf("Quiz not found: %s", quizID), nil)
}

func NewInvalidReferenceError(message string) *DomainError {
	return NewError(CodeInvalidReference, message, nil)
}

func NewAcquisitionFailedError(cause error) *DomainError {
	return NewError(CodeAcquisitionFailed, "Audio download failed", cause)
}

func NewTranscriptionFailedError(cause error) *DomainError {
	return NewError(CodeTranscriptionFailed, "Audio transcription failed", cause)
}

func NewGenerationThrottledError(cause error) *DomainError {
	return NewError(CodeGenerationThrottled, "Generation quota exceeded, retry after backoff", cause)
}

func NewGenerationFailedError(cause error) *DomainError {
	return NewError(CodeGenerationFailed, "Quiz generation failed", cause)
}

func NewEmptyGenerationError() *DomainError {
	return NewError(CodeEmptyGeneration, "Generation response is empty", nil)
}

func NewMalformedGenerationError(message string, cause error) *DomainError {
	return NewError(CodeMalformedGeneration, message, cause)
}

func NewPersistenceRejectedError(message string, cause error) *DomainError {
	return NewError(CodePersistenceRejected, message, cause)
}
