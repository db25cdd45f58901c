package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested contact was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: A stored contact list that is malformed (list refuses to print it).
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Blank names, duplicate names.
	ExitValidation = 5
)

// CodeError carries the process exit code for a failed command.
// main unwraps it with ExitCode after the error has been reported.
type CodeError struct {
	Code int
	Err  error
}

func (e *CodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &CodeError{Code: code, Err: err}
}

// ExitCode returns the exit code for err: ExitSuccess for nil,
// the carried code for a *CodeError, ExitError otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
