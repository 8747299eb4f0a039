package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Scheduling errors
var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrMissingReference = errors.New("referenced record not found")
	ErrAnalysisFailed   = errors.New("conflict analysis failed")
	ErrPersistence      = errors.New("failed to persist exam sessions")
	ErrNotYetValidated  = errors.New("exam session has not been validated by the department head")
	ErrAlreadyValidated = errors.New("exam session is already validated")
	ErrUnboundedWindow  = errors.New("window must have both a start and an end date")
)

// Entity errors
var (
	ErrExamSessionNotFound = errors.New("exam session not found")
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrProgramNotFound     = errors.New("program not found")
	ErrModuleNotFound      = errors.New("module not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrProfessorNotFound   = errors.New("professor not found")
)

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewInputError creates an InputError for a rejected date range
func NewInputError(message string) *CustomError {
	return &CustomError{
		Err:     ErrInvalidDateRange,
		Message: message,
		Code:    "INPUT_ERROR",
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
