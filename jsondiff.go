package jsondiff

import (
	"fmt"
)

// Result is the outcome of comparing two values
type Result struct {
	// Tree is the root of the diff tree, it's path is empty
	Tree *Delta `json:"tree"`
	// Stats are counted from Tree once, at comparison time
	Stats *Stats `json:"stats"`
	// HasChanges is true when Stats.TotalChanges > 0
	HasChanges bool `json:"hasChanges"`
	// Warnings lists inconsistencies in the input the differ had to work
	// around, eg: duplicate array keys
	Warnings []string `json:"warnings,omitempty"`
}

// JSONDiff is a configured differ. it holds no state between comparisons,
// and is safe for concurrent use so long as compared values aren't modified
// mid-comparison
type JSONDiff struct {
	cfg *Config
}

// New creates a JSONDiff. options are validated on first use
func New(opts ...DiffOption) *JSONDiff {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &JSONDiff{cfg: cfg}
}

// Compare calculates the structural difference between a & b
func (jd *JSONDiff) Compare(a, b Value) (*Result, error) {
	return Compare(a, b, OptionConfig(*jd.cfg))
}

// Report compares a & b, rendering the result as a text report
func (jd *JSONDiff) Report(a, b Value) (string, error) {
	return Report(a, b, OptionConfig(*jd.cfg))
}

// Compare calculates the structural difference between a & b. Invalid
// options and circular inputs fail before any comparison work is done.
// A nil value is absent: comparing against it yields an Added or Removed
// root, comparing two absent values is an *InvalidComparisonError.
// Compare never returns a partial result alongside an error. Neither input
// is modified
func Compare(a, b Value, opts ...DiffOption) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkAcyclic(a, Path{}); err != nil {
		return nil, err
	}
	if err := checkAcyclic(b, Path{}); err != nil {
		return nil, err
	}

	d := newDiffer(cfg)
	d.log.Debug("comparing values",
		"left", typeOf(a), "right", typeOf(b),
		"ignoreArrayOrder", cfg.IgnoreArrayOrder, "keyFields", cfg.KeyFields,
		"ignoreCase", cfg.IgnoreCase, "numericTolerance", cfg.NumericTolerance)

	tree, err := d.compare(a, b, Path{})
	if err != nil {
		return nil, fmt.Errorf("comparing values: %w", err)
	}

	st := CalcStats(tree)
	d.log.Debug("comparison complete", "changes", st.TotalChanges, "leaves", st.Leaves())

	return &Result{
		Tree:       tree,
		Stats:      st,
		HasChanges: st.TotalChanges > 0,
		Warnings:   d.warnings,
	}, nil
}

// Report is a convenience wrapper that compares a & b and renders a plain
// text report of the result
func Report(a, b Value, opts ...DiffOption) (string, error) {
	res, err := Compare(a, b, opts...)
	if err != nil {
		return "", err
	}
	return FormatReportString(res, false)
}
