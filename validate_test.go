package jsondiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateText(t *testing.T) {
	cases := []struct {
		description string
		text        string
		expect      Validation
	}{
		{"object",
			`{"a": [1, true, null]}`,
			Validation{IsValid: true, Parsed: NewObject().Set("a", NewArray(Number(1), Bool(true), Null{}))},
		},
		{"scalar", `"hi"`, Validation{IsValid: true, Parsed: String("hi")}},
		{"missing value",
			`{"a":}`,
			Validation{Error: "invalid character '}' looking for beginning of value", Line: 1, Column: 6},
		},
		{"empty", ``, Validation{Error: "unexpected end of JSON input", Line: 1, Column: 1}},
		{"trailing data",
			"{}\n{}",
			Validation{Error: "invalid character '{' after top-level value", Line: 2, Column: 1},
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			got := ValidateText(c.text)
			if diff := cmp.Diff(c.expect, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateTextNeverPanics(t *testing.T) {
	inputs := []string{
		strings.Repeat("[", 10000),
		"\x00\xff",
		`{"a":"\ud800"}`,
		`{"a":1e99999}`,
	}
	for _, in := range inputs {
		v := ValidateText(in)
		if !v.IsValid && v.Error == "" {
			t.Errorf("invalid input %q should carry an error message", in)
		}
	}
}
