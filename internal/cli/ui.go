package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/qri-io/jsondiff/internal/config"
)

var (
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorGray  = lipgloss.Color("245") // Gray - secondary text
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleDetail      = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// useColor resolves a color mode against the writer output is headed to.
// "auto" colors terminals unless NO_COLOR is set
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		// lipgloss detects its profile from stdout, which may not be w
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// paint renders str in style s when color is enabled
func paint(color bool, s lipgloss.Style, str string) string {
	if !color {
		return str
	}
	return s.Render(str)
}
