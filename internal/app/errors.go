package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/john/tinter/internal/recolor"
	"github.com/john/tinter/internal/ui/color"
	"github.com/john/tinter/internal/ui/components"
)

// ErrorType categorizes different types of errors
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeStorage
	ErrorTypeConfig
	ErrorTypeValidation
	ErrorTypeClipboard
)

// String returns the string representation of ErrorType
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeStorage:
		return "Storage"
	case ErrorTypeConfig:
		return "Configuration"
	case ErrorTypeValidation:
		return "Validation"
	case ErrorTypeClipboard:
		return "Clipboard"
	default:
		return "Unknown"
	}
}

// AppError represents an application-specific error with context
type AppError struct {
	Type        ErrorType
	Message     string
	Cause       error
	Context     map[string]interface{}
	Recoverable bool
	UserMessage string
	Timestamp   time.Time
}

// NewAppError creates a new application error
func NewAppError(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errorType,
		Message:   message,
		Cause:     cause,
		Context:   make(map[string]interface{}),
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (ae *AppError) Error() string {
	if ae.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", ae.Type.String(), ae.Message, ae.Cause)
	}
	return fmt.Sprintf("%s: %s", ae.Type.String(), ae.Message)
}

// Unwrap returns the underlying cause error
func (ae *AppError) Unwrap() error {
	return ae.Cause
}

// WithContext adds context information to the error
func (ae *AppError) WithContext(key string, value interface{}) *AppError {
	ae.Context[key] = value
	return ae
}

// WithUserMessage sets a user-friendly message
func (ae *AppError) WithUserMessage(message string) *AppError {
	ae.UserMessage = message
	return ae
}

// MakeRecoverable marks the error as recoverable
func (ae *AppError) MakeRecoverable() *AppError {
	ae.Recoverable = true
	return ae
}

// GetUserMessage returns a user-friendly error message
func (ae *AppError) GetUserMessage() string {
	if ae.UserMessage != "" {
		return ae.UserMessage
	}
	return ae.Message
}

// ErrorHandler logs errors and surfaces them in the toast
type ErrorHandler struct {
	logger *log.Logger
	toast  *components.Toast
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *log.Logger, toast *components.Toast) *ErrorHandler {
	return &ErrorHandler{logger: logger, toast: toast}
}

// HandleError classifies err, logs it and returns the command that shows it
func (eh *ErrorHandler) HandleError(err error) tea.Cmd {
	if err == nil {
		return nil
	}

	appErr := eh.classifyError(err)

	keyvals := []interface{}{"type", appErr.Type.String(), "recoverable", appErr.Recoverable}
	for k, v := range appErr.Context {
		keyvals = append(keyvals, k, v)
	}
	keyvals = append(keyvals, "error", appErr.Error())
	eh.logger.Error("Application error", keyvals...)

	kind := components.NotificationError
	if appErr.Recoverable {
		kind = components.NotificationWarning
	}
	return eh.toast.Show(appErr.GetUserMessage(), kind)
}

// classifyError wraps plain errors in an AppError
func (eh *ErrorHandler) classifyError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var zoneErr *recolor.UnknownZoneError
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, color.ErrInvalidHex):
		return NewAppError(ErrorTypeValidation, "invalid color", err).
			WithUserMessage(err.Error()).
			MakeRecoverable()
	case errors.As(err, &zoneErr):
		return NewAppError(ErrorTypeValidation, "unknown zone", err).
			WithUserMessage(zoneErr.Error()).
			MakeRecoverable()
	case errors.As(err, &pathErr):
		return NewAppError(ErrorTypeStorage, "file operation failed", err).
			WithContext("path", pathErr.Path).
			WithUserMessage(fmt.Sprintf("Could not access %s", pathErr.Path))
	default:
		return NewAppError(ErrorTypeUnknown, err.Error(), err)
	}
}
