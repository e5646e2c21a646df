package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/shopkeeper/internal/order"
	"github.com/roach88/shopkeeper/internal/store"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (validation, not-found, insufficient stock)
	ExitCommandError = 2 // Command error (bad flags, unreadable config, unopenable database)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// errorCode maps an error to a stable category string for the JSON
// error envelope.
func errorCode(err error) string {
	var oe *order.OrderError
	if errors.As(err, &oe) {
		return string(oe.Code)
	}
	switch {
	case order.IsValidation(err):
		return "VALIDATION"
	case store.IsNotFound(err):
		return "NOT_FOUND"
	case store.IsReferenced(err):
		return "CONFLICT"
	default:
		return "STORAGE"
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // error category, e.g. "INSUFFICIENT_STOCK"
	Message string `json:"message"` // human-readable message
}

// Success outputs a successful result in the configured format.
// In text mode the payload is printed as-is; structured data should be
// rendered to a string (e.g. a table) before reaching here.
func (f *OutputFormatter) Success(text string, data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, text)
	return nil
}

// Fail emits the error envelope in JSON mode and passes the error
// through unchanged for the caller to surface on stderr. Machine
// consumers read the envelope from stdout; humans read stderr.
func (f *OutputFormatter) Fail(err error) error {
	if f.Format == "json" {
		_ = f.Error(errorCode(err), err.Error())
	}
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return nil
}
