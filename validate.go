package jsondiff

import (
	"errors"
	"fmt"
)

// Validation is the outcome of checking whether text is well-formed JSON
type Validation struct {
	IsValid bool `json:"isValid"`
	// Parsed holds the decoded value when IsValid is true
	Parsed Value `json:"parsed,omitempty"`
	// Error describes the problem when IsValid is false
	Error string `json:"error,omitempty"`
	// Line & Column locate the problem, when known. 1-based
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`
}

// ValidateText checks text is well-formed JSON. it never panics and never
// returns an error: malformed input is reported in the returned Validation
func ValidateText(text string) (v Validation) {
	defer func() {
		if r := recover(); r != nil {
			v = Validation{Error: fmt.Sprintf("%v", r)}
		}
	}()

	parsed, err := ParseJSON([]byte(text))
	if err != nil {
		v.Error = err.Error()
		var se *SyntaxError
		if errors.As(err, &se) {
			v.Error = se.Msg
			v.Line, v.Column = se.Line, se.Column
		}
		return v
	}
	return Validation{IsValid: true, Parsed: parsed}
}
