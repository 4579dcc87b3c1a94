package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates the init request was invalid.
	ValidationFailed AppErrorType = iota
	// PreconditionFailed indicates a guard fired before any mutation.
	PreconditionFailed
	// TemplateFetchFailed indicates template fetching failed.
	TemplateFetchFailed
	// GitFailed indicates a version-control operation failed.
	GitFailed
	// InstallFailed indicates dependency installation failed.
	InstallFailed
	// EditorConfigFailed indicates editor config generation failed.
	EditorConfigFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewPreconditionError creates a precondition error.
func NewPreconditionError(message string, cause error) *AppError {
	return NewAppError(PreconditionFailed, message, cause)
}

// NewTemplateFetchError creates a template fetch error.
func NewTemplateFetchError(message string, cause error) *AppError {
	return NewAppError(TemplateFetchFailed, message, cause)
}

// NewGitError creates a version-control error.
func NewGitError(message string, cause error) *AppError {
	return NewAppError(GitFailed, message, cause)
}

// NewInstallError creates an install error.
func NewInstallError(message string, cause error) *AppError {
	return NewAppError(InstallFailed, message, cause)
}

// NewEditorConfigError creates an editor config error.
func NewEditorConfigError(message string, cause error) *AppError {
	return NewAppError(EditorConfigFailed, message, cause)
}
