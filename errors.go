package jsondiff

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptions is matched by any *OptionsError
	ErrInvalidOptions = errors.New("invalid diff options")
	// ErrCircularReference is matched by any *CircularReferenceError
	ErrCircularReference = errors.New("circular reference")
	// ErrInvalidComparison is matched by any *InvalidComparisonError
	ErrInvalidComparison = errors.New("invalid comparison")
	// ErrSyntax is matched by any *SyntaxError
	ErrSyntax = errors.New("json syntax error")
)

// OptionsError reports a bad configuration value. It's always a caller bug,
// and is returned before any comparison work begins
type OptionsError struct {
	Field   string // name of the offending option
	Message string
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("invalid diff options: %s %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrInvalidOptions) match
func (e *OptionsError) Is(target error) bool { return target == ErrInvalidOptions }

// CircularReferenceError is returned when an input contains itself. Parsed
// JSON can't do this, values assembled in code can
type CircularReferenceError struct {
	Path Path // location the cycle closes at
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("circular reference at %s", e.Path)
}

// Is lets errors.Is(err, ErrCircularReference) match
func (e *CircularReferenceError) Is(target error) bool { return target == ErrCircularReference }

// InvalidComparisonError means both sides of a comparison were absent
type InvalidComparisonError struct {
	Path Path
}

func (e *InvalidComparisonError) Error() string {
	return fmt.Sprintf("invalid comparison at %s: both values are absent", e.Path)
}

// Is lets errors.Is(err, ErrInvalidComparison) match
func (e *InvalidComparisonError) Is(target error) bool { return target == ErrInvalidComparison }

// SyntaxError describes malformed input text. Line and Column are 1-based,
// and zero when the position is unknown
type SyntaxError struct {
	Msg    string
	Offset int64 // byte offset the error was detected at
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	return "syntax error: " + e.Msg
}

// Is lets errors.Is(err, ErrSyntax) match
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
