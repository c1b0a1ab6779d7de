package jsondiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MaxRenderedValueLen caps the length of a value rendered into a report, in
// characters. longer values are cut short and end with an ellipsis
var MaxRenderedValueLen = 200

// reportSections is the fixed order change kinds are listed in
var reportSections = []Kind{KindAdded, KindRemoved, KindChanged, KindTypeChanged}

var (
	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleSummary = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	kindStyles   = map[Kind]lipgloss.Style{
		KindAdded:       lipgloss.NewStyle().Foreground(lipgloss.Color("35")),  // green
		KindRemoved:     lipgloss.NewStyle().Foreground(lipgloss.Color("167")), // red
		KindChanged:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // blue
		KindTypeChanged: lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // amber
	}
)

// FormatReportString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatReportString(res *Result, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatReport(buf, res, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatReport writes a text report of a comparison to w. Every node that
// isn't Unchanged is listed once, in tree pre-order, grouped under a header
// per kind of change, followed by a statistics line. Changed containers are
// listed along with their changed descendants. if colorTTY is true headers &
// lines are colored with ANSI escapes:
// green for additions
// red for removals
// blue for changes
// amber for type changes
// Output is byte-identical for identical results
func FormatReport(w io.Writer, res *Result, colorTTY bool) error {
	if res == nil || res.Tree == nil {
		return fmt.Errorf("no comparison result to format")
	}

	paint := func(s lipgloss.Style, str string) string {
		if !colorTTY {
			return str
		}
		return s.Render(str)
	}

	sections := map[Kind][]*Delta{}
	Walk(res.Tree, func(d *Delta) bool {
		if d.Kind != KindUnchanged {
			sections[d.Kind] = append(sections[d.Kind], d)
		}
		return true
	})

	if _, err := fmt.Fprintln(w, paint(styleTitle, "# JSON Diff Report")); err != nil {
		return err
	}

	if !res.HasChanges {
		if _, err := fmt.Fprintf(w, "\nNo differences found\n"); err != nil {
			return err
		}
	}

	for _, kind := range reportSections {
		ds := sections[kind]
		if len(ds) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", paint(styleTitle, "## "+kind.String())); err != nil {
			return err
		}
		for _, d := range ds {
			a, err := renderValue(d.A)
			if err != nil {
				return err
			}
			b, err := renderValue(d.B)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("%s: %s (A=%s, B=%s)", d.Path, d.Kind, a, b)
			if _, err := fmt.Fprintln(w, paint(kindStyles[kind], line)); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n", paint(styleSummary, FormatStats(res.Stats)))
	return err
}

// FormatStats prints a one-line summary of diff statistics
func FormatStats(st *Stats) string {
	if st == nil {
		return ""
	}
	changesWord := "changes"
	if st.TotalChanges == 1 {
		changesWord = "change"
	}
	return fmt.Sprintf("Summary: %d added, %d removed, %d changed, %d type changed, %d unchanged. %d total %s, max depth %d.",
		st.Added, st.Removed, st.Changed, st.TypeChanged, st.Unchanged,
		st.TotalChanges, changesWord, st.MaxDepthReached)
}

// Summarize describes a result in a single sentence, eg:
// "3 added, 1 removed, 2 changed (6 total changes)". kinds with no changes
// are left out
func Summarize(res *Result) string {
	if res == nil || res.Stats == nil || !res.HasChanges {
		return "No differences found"
	}
	st := res.Stats

	var parts []string
	for _, p := range []struct {
		n    int
		word string
	}{
		{st.Added, "added"},
		{st.Removed, "removed"},
		{st.Changed, "changed"},
		{st.TypeChanged, "type changed"},
	} {
		if p.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", p.n, p.word))
		}
	}

	changesWord := "changes"
	if st.TotalChanges == 1 {
		changesWord = "change"
	}
	return fmt.Sprintf("%s (%d total %s)", strings.Join(parts, ", "), st.TotalChanges, changesWord)
}

// renderValue writes v as compact JSON, truncated to MaxRenderedValueLen
// characters. absent values render as "absent"
func renderValue(v Value) (string, error) {
	if v == nil {
		return "absent", nil
	}
	data, err := marshalCompact(v)
	if err != nil {
		return "", err
	}
	return truncate(string(data), MaxRenderedValueLen), nil
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
