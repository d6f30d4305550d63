package errors

import "errors"

// Codes shared by the domain services and the HTTP transport.
const (
	CodeInvalidInput    = "invalid_input"
	CodeNotFound        = "not_found"
	CodePublishDisabled = "publish_disabled"
	CodePublishError    = "publish_error"
)

// AppError encodes domain specific error details.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap produces a new AppError instance.
func Wrap(code, message string, err error) error {
	if err == nil {
		return &AppError{Code: code, Message: message}
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// Invalid is shorthand for an input validation failure.
func Invalid(message string) error {
	return Wrap(CodeInvalidInput, message, nil)
}

// IsCode helps handler differentiate failures.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
