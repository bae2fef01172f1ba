package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Catalog and recommendation errors
	CodeInvalidRole      ErrorCode = "INVALID_ROLE"
	CodeInvalidGoalTag   ErrorCode = "INVALID_GOAL_TAG"
	CodeInvalidCatalog   ErrorCode = "INVALID_CATALOG"
	CodePathNotFound     ErrorCode = "PATH_NOT_FOUND"
	CodeInvalidSelection ErrorCode = "INVALID_SELECTION"

	// Quiz outcome errors
	CodeDivisionUndefined ErrorCode = "DIVISION_UNDEFINED"
	CodeInvalidAttempt    ErrorCode = "INVALID_ATTEMPT"
	CodeResultNotFound    ErrorCode = "RESULT_NOT_FOUND"
)

// DomainError represents a domain-specific error
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

// Is reports whether target is a DomainError with the same code, so sentinel
// errors such as ErrDivisionUndefined match any error carrying that code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithContext attaches a detail value that is reported to API clients.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Sentinels for errors.Is checks.
var (
	ErrDivisionUndefined = NewError(CodeDivisionUndefined, "cannot score a quiz with zero questions", nil)
	ErrInvalidAttempt    = NewError(CodeInvalidAttempt, "invalid quiz attempt", nil)
	ErrInvalidRole       = NewError(CodeInvalidRole, "invalid role", nil)
	ErrInvalidGoalTag    = NewError(CodeInvalidGoalTag, "invalid goal tag", nil)
	ErrInvalidCatalog    = NewError(CodeInvalidCatalog, "invalid catalog", nil)
	ErrPathNotFound      = NewError(CodePathNotFound, "learning path not found", nil)
	ErrResultNotFound    = NewError(CodeResultNotFound, "quiz result not found", nil)
	ErrInvalidSelection  = NewError(CodeInvalidSelection, "invalid path selection", nil)
)

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewInvalidAttemptError(message string) *DomainError {
	return NewError(CodeInvalidAttempt, message, nil)
}

func NewInvalidRoleError(role string) *DomainError {
	return NewError(CodeInvalidRole, fmt.Sprintf("unknown role: %s", role), nil).WithContext("role", role)
}

func NewInvalidGoalTagError(goal string) *DomainError {
	return NewError(CodeInvalidGoalTag, fmt.Sprintf("unknown goal tag: %s", goal), nil).WithContext("goal", goal)
}

func NewInvalidCatalogError(message string) *DomainError {
	return NewError(CodeInvalidCatalog, message, nil)
}

func NewPathNotFoundError(pathID int64) *DomainError {
	return NewError(CodePathNotFound, fmt.Sprintf("learning path not found with ID: %d", pathID), nil)
}

func NewResultNotFoundError(resultID string) *DomainError {
	return NewError(CodeResultNotFound, fmt.Sprintf("quiz result not found with ID: %s", resultID), nil)
}

func NewInvalidSelectionError(pathID int64) *DomainError {
	return NewError(CodeInvalidSelection, fmt.Sprintf("path %d is not among the recommended paths", pathID), nil).
		WithContext("selected_path", pathID)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects field errors for one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	if len(v) == 1 {
		return v[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Code: CodeMissingField, Message: field + " is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Code: CodeInvalidFormat, Message: field + " has an invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}
