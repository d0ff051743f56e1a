package model

import (
	"errors"
	"fmt"
)

// ErrorState classifies why a password could not be shown.
type ErrorState string

const (
	ErrorStateNone               ErrorState = ""
	ErrorStateFileNotFound       ErrorState = "file-not-found"
	ErrorStateInvalidCSVFormat   ErrorState = "invalid-csv-format"
	ErrorStateNoPasswordForDate  ErrorState = "no-password-for-date"
	ErrorStateParsingError       ErrorState = "parsing-error"
	ErrorStateConfigurationError ErrorState = "configuration-error"
)

const unexpectedErrorMessage = "An unexpected error occurred. Please try again."

var errorMessages = map[ErrorState]string{
	ErrorStateFileNotFound:       "Unable to load password file. Please contact staff for assistance.",
	ErrorStateInvalidCSVFormat:   "Password file format is invalid. Please contact staff for assistance.",
	ErrorStateNoPasswordForDate:  "No password available for today. Please check with staff for the current password.",
	ErrorStateParsingError:       "Unable to read password file. Please contact staff for assistance.",
	ErrorStateConfigurationError: "System configuration error. Please contact staff for assistance.",
}

// Message returns the guest-facing message for the state.
func (s ErrorState) Message() string {
	if msg, ok := errorMessages[s]; ok {
		return msg
	}
	return unexpectedErrorMessage
}

// Recoverable reports whether a guest retry might succeed without staff
// fixing the password table.
func (s ErrorState) Recoverable() bool {
	return s == ErrorStateParsingError || s == ErrorStateConfigurationError
}

// ActionText returns the label for the call-to-action shown next to the error.
func (s ErrorState) ActionText() string {
	switch s {
	case ErrorStateFileNotFound, ErrorStateInvalidCSVFormat, ErrorStateNoPasswordForDate:
		return "Contact Staff"
	default:
		return "Try Again"
	}
}

// SourceError is returned by record sources and the parser. Message is shown
// to guests; Err carries the underlying cause for logs.
type SourceError struct {
	State   ErrorState
	Message string
	Err     error
}

// NewSourceError builds a SourceError with an explicit guest message.
func NewSourceError(state ErrorState, message string, err error) *SourceError {
	return &SourceError{State: state, Message: message, Err: err}
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.State, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.State, e.Message)
	}
	return string(e.State)
}

func (e *SourceError) Unwrap() error { return e.Err }

// UserMessage returns Message, falling back to the state's default message.
func (e *SourceError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.State.Message()
}

// ErrorStateOf extracts the ErrorState from err. Errors that are not a
// SourceError are classified as configuration errors.
func ErrorStateOf(err error) ErrorState {
	if err == nil {
		return ErrorStateNone
	}
	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		return srcErr.State
	}
	return ErrorStateConfigurationError
}
