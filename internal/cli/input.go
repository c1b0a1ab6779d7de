package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/qri-io/jsondiff"
)

// stdinPath is the argument that reads a document from standard input
const stdinPath = "-"

// readInput reads raw bytes from path, or from in when path is "-"
func readInput(path string, in io.Reader) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// inputFormat picks a parser for path. stdin & unrecognized extensions are
// read as JSON
func inputFormat(path string) jsondiff.Format {
	if path == stdinPath {
		return jsondiff.FormatJSON
	}
	format, err := jsondiff.FormatFromPath(path)
	if err != nil {
		return jsondiff.FormatJSON
	}
	return format
}

// readDocument loads & parses the document at path
func readDocument(path string, in io.Reader) (jsondiff.Value, error) {
	data, err := readInput(path, in)
	if err != nil {
		return nil, err
	}
	v, err := jsondiff.ParseFormat(inputFormat(path), data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", displayName(path), err)
	}
	return v, nil
}

func displayName(path string) string {
	if path == stdinPath {
		return "stdin"
	}
	return path
}
