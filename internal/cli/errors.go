package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/qri-io/jsondiff"
	"github.com/qri-io/jsondiff/internal/config"
)

// Exit codes
const (
	ExitSuccess      = 0   // Success, no differences
	ExitDifferences  = 1   // Differences found, with --exit-code
	ExitRuntimeError = 1   // Runtime error (unreadable input, etc.)
	ExitConfigError  = 2   // Configuration error (invalid config or options)
	ExitInterrupted  = 130 // Standard shell convention for SIGINT
)

// ExitError carries a specific process exit code. A nil Err means the
// command already reported everything it needed to
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Silent reports whether the error has nothing left to print
func (e *ExitError) Silent() bool {
	return e.Err == nil
}

// errDifferences signals differences were found when --exit-code is set
var errDifferences = &ExitError{Code: ExitDifferences}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	var ee *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ee):
		return ee.Code
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, jsondiff.ErrInvalidOptions):
		return ExitConfigError
	default:
		return ExitRuntimeError
	}
}

// IsSilent reports whether err should exit without printing a message
func IsSilent(err error) bool {
	var ee *ExitError
	return errors.As(err, &ee) && ee.Silent()
}
